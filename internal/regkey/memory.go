package regkey

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// MemRegistry implements Registry in memory for testing.
// Key names compare case-insensitively and subkeys enumerate in creation order,
// matching the behavior of the real hive closely enough for the engine.
type MemRegistry struct {
	root   *memNode
	denied map[string]Access
	opened int
	closed int
}

type memNode struct {
	name     string
	children []*memNode
}

// NewMemRegistry creates an empty in-memory registry.
func NewMemRegistry() *MemRegistry {
	return &MemRegistry{
		root:   &memNode{},
		denied: make(map[string]Access),
	}
}

// CreateKey creates the key at path and any missing parents.
func (r *MemRegistry) CreateKey(path string) {
	n := r.root
	for _, part := range SplitPath(path) {
		child := n.child(part)
		if child == nil {
			child = &memNode{name: part}
			n.children = append(n.children, child)
		}
		n = child
	}
}

// Exists reports whether the key at path exists.
func (r *MemRegistry) Exists(path string) bool {
	return r.lookup(path) != nil
}

// Deny makes OpenKey fail with ErrAccessDenied for path when opened with at
// least the given access. Deny(path, Read) refuses every open.
func (r *MemRegistry) Deny(path string, access Access) {
	r.denied[normalize(path)] = access
}

// OpenHandles returns the number of keys opened and not yet closed.
func (r *MemRegistry) OpenHandles() int {
	return r.opened - r.closed
}

// OpenKey opens the key at path.
func (r *MemRegistry) OpenKey(path string, access Access) (Key, error) {
	if floor, ok := r.denied[normalize(path)]; ok && access >= floor {
		return nil, errors.Wrapf(ErrAccessDenied, "%s", path)
	}
	n := r.lookup(path)
	if n == nil {
		return nil, errors.Wrapf(ErrNotExist, "%s", path)
	}
	r.opened++
	return &memKey{reg: r, node: n, path: path, access: access}, nil
}

func (r *MemRegistry) lookup(path string) *memNode {
	n := r.root
	for _, part := range SplitPath(path) {
		n = n.child(part)
		if n == nil {
			return nil
		}
	}
	return n
}

func (n *memNode) child(name string) *memNode {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c
		}
	}
	return nil
}

func (n *memNode) remove(name string) bool {
	for i, c := range n.children {
		if strings.EqualFold(c.name, name) {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return true
		}
	}
	return false
}

func normalize(path string) string {
	return strings.ToLower(JoinPath(path))
}

type memKey struct {
	reg    *MemRegistry
	node   *memNode
	path   string
	access Access
	closed bool
}

func (k *memKey) SubKeyNames() ([]string, error) {
	names := make([]string, 0, len(k.node.children))
	for _, c := range k.node.children {
		names = append(names, c.name)
	}
	return names, nil
}

func (k *memKey) DeleteTree(name string) error {
	if k.access != Write {
		return errors.Wrapf(ErrAccessDenied, "key %s opened read-only", k.path)
	}
	full := JoinPath(k.path, name)
	if floor, ok := k.reg.denied[normalize(full)]; ok && Write >= floor {
		return errors.Wrapf(ErrAccessDenied, "%s", full)
	}
	if !k.node.remove(name) {
		return errors.Wrapf(ErrNotExist, "%s", full)
	}
	return nil
}

func (k *memKey) Close() error {
	if k.closed {
		return errors.Newf("key %s already closed", k.path)
	}
	k.closed = true
	k.reg.closed++
	return nil
}
