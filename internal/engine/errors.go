package engine

import (
	"github.com/cockroachdb/errors"

	"github.com/danieljhkim/regreset/internal/regkey"
)

var (
	// ErrPathNotFound indicates the workspace key for a version does not exist.
	// ListWorkspaces treats it as zero entries.
	ErrPathNotFound = errors.New("workspace key not found")

	// ErrAccessDenied indicates the registry refused access.
	ErrAccessDenied = errors.New("access denied")

	// ErrRegistryIO indicates any other registry failure.
	ErrRegistryIO = errors.New("registry I/O error")

	// ErrDeleteTargetMissing indicates a selected workspace key no longer exists.
	ErrDeleteTargetMissing = errors.New("workspace key no longer exists")

	// ErrInvalidSelection indicates a delete was requested without usable names.
	ErrInvalidSelection = errors.New("no workspace keys selected")

	// ErrInvalidVersion indicates the version is empty or not configured.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrExcluded indicates a selected name is protected from deletion.
	ErrExcluded = errors.New("key is excluded from workspace management")
)

// classify marks a regkey error with the matching engine error kind while
// keeping the original message.
func classify(err error) error {
	switch {
	case errors.Is(err, regkey.ErrNotExist):
		return errors.Mark(err, ErrPathNotFound)
	case errors.Is(err, regkey.ErrAccessDenied):
		return errors.Mark(err, ErrAccessDenied)
	default:
		return errors.Mark(err, ErrRegistryIO)
	}
}
