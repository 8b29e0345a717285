package regkey

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"simple", `Software\Sybase`, []string{"Software", "Sybase"}},
		{"leading and trailing separators", `\Software\Sybase\`, []string{"Software", "Sybase"}},
		{"doubled separator", `Software\\Sybase`, []string{"Software", "Sybase"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPath(tt.path))
		})
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, `Software\Sybase\Workspace`, JoinPath(`Software\Sybase\`, "Workspace"))
	assert.Equal(t, "a", JoinPath("", "a"))
}

func TestMemRegistry_EnumerationOrder(t *testing.T) {
	reg := NewMemRegistry()
	reg.CreateKey(`Software\Test\zeta`)
	reg.CreateKey(`Software\Test\alpha`)
	reg.CreateKey(`Software\Test\mid`)

	key, err := reg.OpenKey(`Software\Test`, Read)
	require.NoError(t, err)
	defer key.Close()

	names, err := key.SubKeyNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestMemRegistry_CaseInsensitive(t *testing.T) {
	reg := NewMemRegistry()
	reg.CreateKey(`Software\Test\Key`)

	assert.True(t, reg.Exists(`SOFTWARE\test\key`))

	// Creating with a different case reuses the existing key.
	reg.CreateKey(`software\TEST\key`)
	key, err := reg.OpenKey(`Software\Test`, Read)
	require.NoError(t, err)
	defer key.Close()
	names, err := key.SubKeyNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Key"}, names)
}

func TestMemRegistry_OpenMissing(t *testing.T) {
	reg := NewMemRegistry()

	_, err := reg.OpenKey(`Software\Missing`, Read)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotExist))
	assert.Zero(t, reg.OpenHandles())
}

func TestMemRegistry_DeleteTree(t *testing.T) {
	reg := NewMemRegistry()
	reg.CreateKey(`Root\a\child\grandchild`)
	reg.CreateKey(`Root\b`)

	key, err := reg.OpenKey("Root", Write)
	require.NoError(t, err)

	require.NoError(t, key.DeleteTree("a"))
	assert.False(t, reg.Exists(`Root\a`))
	assert.False(t, reg.Exists(`Root\a\child\grandchild`))
	assert.True(t, reg.Exists(`Root\b`))

	err = key.DeleteTree("a")
	assert.True(t, errors.Is(err, ErrNotExist))

	require.NoError(t, key.Close())
	assert.Zero(t, reg.OpenHandles())
}

func TestMemRegistry_DeleteRequiresWrite(t *testing.T) {
	reg := NewMemRegistry()
	reg.CreateKey(`Root\a`)

	key, err := reg.OpenKey("Root", Read)
	require.NoError(t, err)
	defer key.Close()

	err = key.DeleteTree("a")
	assert.True(t, errors.Is(err, ErrAccessDenied))
	assert.True(t, reg.Exists(`Root\a`))
}

func TestMemRegistry_Deny(t *testing.T) {
	reg := NewMemRegistry()
	reg.CreateKey(`Root\locked`)
	reg.CreateKey(`Root\readonly`)
	reg.Deny(`Root\locked`, Read)
	reg.Deny(`Root\readonly`, Write)

	_, err := reg.OpenKey(`Root\locked`, Read)
	assert.True(t, errors.Is(err, ErrAccessDenied))

	key, err := reg.OpenKey(`Root\readonly`, Read)
	require.NoError(t, err)
	require.NoError(t, key.Close())

	_, err = reg.OpenKey(`root\READONLY`, Write)
	assert.True(t, errors.Is(err, ErrAccessDenied))

	parent, err := reg.OpenKey("Root", Write)
	require.NoError(t, err)
	defer parent.Close()
	err = parent.DeleteTree("readonly")
	assert.True(t, errors.Is(err, ErrAccessDenied))
	assert.True(t, reg.Exists(`Root\readonly`))
}

func TestMemRegistry_DoubleClose(t *testing.T) {
	reg := NewMemRegistry()
	reg.CreateKey("Root")

	key, err := reg.OpenKey("Root", Read)
	require.NoError(t, err)
	require.NoError(t, key.Close())
	assert.Error(t, key.Close())
	assert.Zero(t, reg.OpenHandles())
}

func TestAccess_String(t *testing.T) {
	assert.Equal(t, "read", Read.String())
	assert.Equal(t, "write", Write.String())
	assert.Equal(t, "unknown", Access(7).String())
}
