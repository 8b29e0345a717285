//go:build windows

package regkey

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// CurrentUser implements Registry on HKEY_CURRENT_USER.
type CurrentUser struct{}

// NewSystemRegistry returns the registry of the running platform.
func NewSystemRegistry() Registry {
	return &CurrentUser{}
}

// OpenKey opens HKEY_CURRENT_USER\path.
func (r *CurrentUser) OpenKey(path string, access Access) (Key, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, path, accessMask(access))
	if err != nil {
		return nil, translate(err, path)
	}
	return &winKey{key: k, path: path, access: access}, nil
}

func accessMask(access Access) uint32 {
	if access == Write {
		return registry.ENUMERATE_SUB_KEYS | registry.QUERY_VALUE | registry.SET_VALUE | windows.DELETE
	}
	return registry.ENUMERATE_SUB_KEYS | registry.QUERY_VALUE
}

type winKey struct {
	key    registry.Key
	path   string
	access Access
}

func (k *winKey) SubKeyNames() ([]string, error) {
	names, err := k.key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, translate(err, k.path)
	}
	return names, nil
}

func (k *winKey) DeleteTree(name string) error {
	if k.access != Write {
		return errors.Wrapf(ErrAccessDenied, "key %s opened read-only", k.path)
	}
	return deleteTree(k.key, name, JoinPath(k.path, name))
}

func (k *winKey) Close() error {
	return k.key.Close()
}

// deleteTree removes parent\name depth-first. RegDeleteKey only removes
// keys without subkeys.
func deleteTree(parent registry.Key, name, fullPath string) error {
	child, err := registry.OpenKey(parent, name, accessMask(Write))
	if err != nil {
		return translate(err, fullPath)
	}

	names, err := child.ReadSubKeyNames(-1)
	if err != nil {
		_ = child.Close()
		return translate(err, fullPath)
	}
	for _, sub := range names {
		if err := deleteTree(child, sub, JoinPath(fullPath, sub)); err != nil && !errors.Is(err, ErrNotExist) {
			_ = child.Close()
			return err
		}
	}
	if err := child.Close(); err != nil {
		return errors.Wrapf(err, "failed to close key %s", fullPath)
	}

	if err := registry.DeleteKey(parent, name); err != nil {
		return translate(err, fullPath)
	}
	return nil
}

func translate(err error, path string) error {
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return errors.Wrapf(ErrNotExist, "%s", path)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return errors.Wrapf(ErrAccessDenied, "%s", path)
	default:
		return errors.Wrapf(err, "registry operation on %s failed", path)
	}
}
