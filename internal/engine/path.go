package engine

import "strings"

// ResolvePath substitutes version for the first occurrence of
// VersionPlaceholder in template. The substituted text is not rescanned, so a
// version containing the placeholder is inserted literally.
func ResolvePath(template, version string) string {
	return strings.Replace(template, VersionPlaceholder, version, 1)
}

// DisplayPath converts a raw workspace key name into the filesystem path it
// encodes by replacing every escape with DisplaySeparator.
func DisplayPath(name, escape string) string {
	if escape == "" {
		return name
	}
	return strings.ReplaceAll(name, escape, DisplaySeparator)
}
