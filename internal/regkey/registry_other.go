//go:build !windows

package regkey

// unsupported reports ErrUnsupported for every operation.
type unsupported struct{}

// NewSystemRegistry returns the registry of the running platform.
func NewSystemRegistry() Registry {
	return unsupported{}
}

func (unsupported) OpenKey(path string, access Access) (Key, error) {
	return nil, ErrUnsupported
}
