package engine

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/danieljhkim/regreset/internal/regkey"
)

// ListWorkspaces enumerates the workspace keys for a version.
// Algorithm steps:
// 1. Resolve the concrete key path from the version
// 2. Open it read-only; a missing key yields zero entries
// 3. Read subkey names in registry order
// 4. Drop excluded names and apply the search filter
func (e *Engine) ListWorkspaces(ctx context.Context, req *ListWorkspacesRequest) (*ListWorkspacesResult, error) {
	// Step 1: Resolve path
	keyPath, err := e.WorkspacePath(req.Version)
	if err != nil {
		return nil, err
	}

	// Steps 2-3: Enumerate
	names, err := e.enumerate(keyPath)
	exists := true
	if err != nil {
		if !errors.Is(err, ErrPathNotFound) {
			return nil, errors.Wrapf(err, "failed to enumerate %s", keyPath)
		}
		exists = false
	}

	// Step 4: Filter
	return &ListWorkspacesResult{
		Version:    req.Version,
		KeyPath:    keyPath,
		Exists:     exists,
		Enumerated: len(names),
		Search:     req.Search,
		Entries:    FilterEntries(names, e.exclusions, req.Search, e.escape),
	}, nil
}

// enumerate returns the immediate subkey names of keyPath.
// Returns an error marked ErrPathNotFound when keyPath is absent.
func (e *Engine) enumerate(keyPath string) ([]string, error) {
	key, err := e.registry.OpenKey(keyPath, regkey.Read)
	if err != nil {
		return nil, classify(err)
	}
	defer func() {
		_ = key.Close()
	}()

	names, err := key.SubKeyNames()
	if err != nil {
		return nil, classify(err)
	}
	return names, nil
}
