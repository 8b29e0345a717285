package engine

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/regreset/internal/regkey"
)

func seedWorkspaces(reg *regkey.MemRegistry, keyPath string, names ...string) {
	reg.CreateKey(keyPath)
	for _, n := range names {
		reg.CreateKey(regkey.JoinPath(keyPath, n))
	}
}

func TestListWorkspaces_Scenario(t *testing.T) {
	eng, reg := newTestEngine(t)
	seedWorkspaces(reg, testKeyPath, "C$3AProjects$5CAppA", "C$3AProjects$5CAppB", "MRUList")

	result, err := eng.ListWorkspaces(context.Background(), &ListWorkspacesRequest{
		Version: "2019",
		Search:  "AppA",
	})
	require.NoError(t, err)

	assert.Equal(t, testKeyPath, result.KeyPath)
	assert.True(t, result.Exists)
	assert.Equal(t, 3, result.Enumerated)
	assert.Equal(t, []WorkspaceEntry{
		{Name: "C$3AProjects$5CAppA", Path: `C\3AProjects\5CAppA`},
	}, result.Entries)
	assert.Zero(t, reg.OpenHandles())
}

func TestListWorkspaces_EmptySearchKeepsRegistryOrder(t *testing.T) {
	eng, reg := newTestEngine(t)
	seedWorkspaces(reg, testKeyPath, `Z:$last.pbw`, "MRUList", `A:$first.pbw`)

	result, err := eng.ListWorkspaces(context.Background(), &ListWorkspacesRequest{Version: "2019"})
	require.NoError(t, err)

	assert.Equal(t, []WorkspaceEntry{
		{Name: `Z:$last.pbw`, Path: `Z:\last.pbw`},
		{Name: `A:$first.pbw`, Path: `A:\first.pbw`},
	}, result.Entries)
}

func TestListWorkspaces_MissingPathIsEmpty(t *testing.T) {
	eng, reg := newTestEngine(t)
	seedWorkspaces(reg, `Software\Sybase\PowerBuilder\2017\Workspace`, `C:$a.pbw`)

	result, err := eng.ListWorkspaces(context.Background(), &ListWorkspacesRequest{Version: "2019"})
	require.NoError(t, err)

	assert.False(t, result.Exists)
	assert.Zero(t, result.Enumerated)
	assert.Empty(t, result.Entries)
	assert.NotNil(t, result.Entries)
}

func TestListWorkspaces_VersionChangeRecomputesPath(t *testing.T) {
	eng, reg := newTestEngine(t)
	seedWorkspaces(reg, `Software\Sybase\PowerBuilder\2017\Workspace`, `C:$old.pbw`)
	seedWorkspaces(reg, testKeyPath, `C:$new.pbw`)

	old, err := eng.ListWorkspaces(context.Background(), &ListWorkspacesRequest{Version: "2017"})
	require.NoError(t, err)
	current, err := eng.ListWorkspaces(context.Background(), &ListWorkspacesRequest{Version: "2019"})
	require.NoError(t, err)

	require.Len(t, old.Entries, 1)
	require.Len(t, current.Entries, 1)
	assert.Equal(t, `C:$old.pbw`, old.Entries[0].Name)
	assert.Equal(t, `C:$new.pbw`, current.Entries[0].Name)
}

func TestListWorkspaces_AccessDenied(t *testing.T) {
	eng, reg := newTestEngine(t)
	seedWorkspaces(reg, testKeyPath, `C:$a.pbw`)
	reg.Deny(testKeyPath, regkey.Read)

	result, err := eng.ListWorkspaces(context.Background(), &ListWorkspacesRequest{Version: "2019"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrAccessDenied))
	assert.False(t, errors.Is(err, ErrPathNotFound))
}

func TestListWorkspaces_InvalidVersion(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.ListWorkspaces(context.Background(), &ListWorkspacesRequest{Version: ""})
	assert.True(t, errors.Is(err, ErrInvalidVersion))
}

type failingRegistry struct{ err error }

func (r failingRegistry) OpenKey(path string, access regkey.Access) (regkey.Key, error) {
	return nil, r.err
}

func TestListWorkspaces_RegistryIOError(t *testing.T) {
	eng := New(failingRegistry{err: regkey.ErrUnsupported}, *newSettings())

	_, err := eng.ListWorkspaces(context.Background(), &ListWorkspacesRequest{Version: "2019"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegistryIO))
	assert.True(t, errors.Is(err, regkey.ErrUnsupported))
}
