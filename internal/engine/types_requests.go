package engine

// ListWorkspacesRequest represents a request to list workspace keys.
type ListWorkspacesRequest struct {
	// Version selects the PowerBuilder version whose workspace key is read
	Version string

	// Search is an optional literal, case-insensitive filter
	Search string
}

// DeleteWorkspacesRequest represents a request to delete workspace keys.
type DeleteWorkspacesRequest struct {
	// Version selects the PowerBuilder version whose workspace key is modified
	Version string

	// Names are the raw key names to delete
	Names []string

	// DryRun reports what would be deleted without deleting
	DryRun bool
}
