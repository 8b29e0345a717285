// Package regkey is the boundary between regreset and the per-user registry hive.
//
// All registry access goes through the Registry interface. The Windows
// implementation is backed by golang.org/x/sys/windows/registry and always
// operates under HKEY_CURRENT_USER. On other platforms the system registry
// reports ErrUnsupported. MemRegistry is an in-memory hive used by tests.
//
// Key handles are scoped: callers open a key, use it, and close it with defer.
package regkey

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Separator separates components of a registry path.
const Separator = `\`

var (
	// ErrNotExist indicates the requested key does not exist.
	ErrNotExist = errors.New("registry key does not exist")

	// ErrAccessDenied indicates the caller lacks the rights to open or modify a key.
	ErrAccessDenied = errors.New("registry access denied")

	// ErrUnsupported indicates the registry is not available on this platform.
	ErrUnsupported = errors.New("registry is not supported on this platform")
)

// Access selects the rights a key is opened with.
type Access int

const (
	// Read opens a key for enumeration only.
	Read Access = iota
	// Write opens a key for enumeration and deletion of subkeys.
	Write
)

// String returns the access mode name.
func (a Access) String() string {
	switch a {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return "unknown"
	}
}

// Registry opens keys relative to the current user's hive.
type Registry interface {
	// OpenKey opens the key at path with the given access.
	// Returns ErrNotExist if the key is absent.
	OpenKey(path string, access Access) (Key, error)
}

// Key is an open registry key handle.
type Key interface {
	// SubKeyNames returns the names of the immediate subkeys in registry order.
	SubKeyNames() ([]string, error)

	// DeleteTree removes the named subkey and all of its descendants.
	// Returns ErrNotExist if the subkey is absent.
	DeleteTree(name string) error

	// Close releases the handle.
	Close() error
}

// SplitPath splits a registry path into its non-empty components.
func SplitPath(path string) []string {
	parts := strings.Split(path, Separator)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinPath joins components into a registry path.
func JoinPath(elem ...string) string {
	return strings.Join(SplitPath(strings.Join(elem, Separator)), Separator)
}
