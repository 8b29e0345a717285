package engine

import (
	"regexp"

	"github.com/samber/lo"
)

// FilterEntries turns enumerated key names into display entries.
// Names in exclusions are dropped. A non-empty search keeps only entries whose
// raw name or display path contains it, case-insensitively and literally.
// Relative order is preserved.
func FilterEntries(names, exclusions []string, search, escape string) []WorkspaceEntry {
	var matcher *regexp.Regexp
	if search != "" {
		matcher = regexp.MustCompile("(?i)" + regexp.QuoteMeta(search))
	}

	entries := make([]WorkspaceEntry, 0, len(names))
	for _, name := range names {
		if lo.Contains(exclusions, name) {
			continue
		}

		path := DisplayPath(name, escape)
		if matcher != nil && !matcher.MatchString(name) && !matcher.MatchString(path) {
			continue
		}

		entries = append(entries, WorkspaceEntry{Name: name, Path: path})
	}
	return entries
}
