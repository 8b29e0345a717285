package engine

import "github.com/samber/lo"

// WorkspaceEntry is one workspace subkey as shown to the user.
type WorkspaceEntry struct {
	// Name is the raw key name as stored in the registry
	Name string `json:"name"`

	// Path is Name with separator escapes replaced for display
	Path string `json:"path"`
}

// ListWorkspacesResult represents the filtered workspace keys for a version.
type ListWorkspacesResult struct {
	Version string `json:"version"`

	// KeyPath is the concrete registry path that was enumerated
	KeyPath string `json:"keyPath"`

	// Exists is false when the workspace key for the version is absent
	Exists bool `json:"exists"`

	// Enumerated is the number of subkeys read before filtering
	Enumerated int `json:"enumerated"`

	Search  string           `json:"search,omitempty"`
	Entries []WorkspaceEntry `json:"entries"`
}

// DeleteStatus describes what happened to one selected name.
type DeleteStatus string

const (
	StatusDeleted     DeleteStatus = "deleted"
	StatusWouldDelete DeleteStatus = "would-delete"
	StatusMissing     DeleteStatus = "missing"
	StatusExcluded    DeleteStatus = "excluded"
	StatusInvalid     DeleteStatus = "invalid"
	StatusFailed      DeleteStatus = "failed"
)

// DeleteOutcome is the per-name result of a delete.
type DeleteOutcome struct {
	Name   string       `json:"name"`
	Path   string       `json:"path"`
	Status DeleteStatus `json:"status"`

	// Err is nil for StatusDeleted and StatusWouldDelete
	Err error `json:"-"`

	// Error is Err's message, for JSON output
	Error string `json:"error,omitempty"`
}

// OK reports whether the name was (or in a dry run would be) deleted.
func (o DeleteOutcome) OK() bool {
	return o.Err == nil
}

// DeleteWorkspacesResult represents the result of deleting workspace keys.
type DeleteWorkspacesResult struct {
	Version  string          `json:"version"`
	KeyPath  string          `json:"keyPath"`
	DryRun   bool            `json:"dryRun"`
	Outcomes []DeleteOutcome `json:"outcomes"`
}

// Succeeded returns the outcomes that deleted (or would delete) their key.
func (r *DeleteWorkspacesResult) Succeeded() []DeleteOutcome {
	return lo.Filter(r.Outcomes, func(o DeleteOutcome, _ int) bool { return o.OK() })
}

// Failed returns the outcomes that did not delete their key.
func (r *DeleteWorkspacesResult) Failed() []DeleteOutcome {
	return lo.Filter(r.Outcomes, func(o DeleteOutcome, _ int) bool { return !o.OK() })
}
