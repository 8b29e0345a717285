package integration

import (
	"testing"

	"github.com/danieljhkim/regreset/internal/config"
	"github.com/danieljhkim/regreset/internal/engine"
	"github.com/danieljhkim/regreset/internal/regkey"
)

// hive describes a PowerBuilder registry layout to seed: version -> workspace
// key names. Each workspace key also gets a few value-holding children so
// deletes exercise whole subtrees.
type hive map[string][]string

// testEnv holds an engine wired to an in-memory registry.
type testEnv struct {
	t        *testing.T
	registry *regkey.MemRegistry
	engine   *engine.Engine
	settings *config.Settings
}

// newTestEnv creates an engine over a registry seeded with h.
func newTestEnv(t *testing.T, h hive) *testEnv {
	t.Helper()

	reg := regkey.NewMemRegistry()
	// Unrelated keys that must never be touched.
	reg.CreateKey(`Software\Sybase\PowerBuilder\2019\Layout`)
	reg.CreateKey(`Software\Microsoft\Windows`)

	for version, names := range h {
		keyPath := engine.ResolvePath(engine.WorkspaceKeyTemplate, version)
		reg.CreateKey(keyPath)
		for _, name := range names {
			reg.CreateKey(regkey.JoinPath(keyPath, name, "Targets"))
			reg.CreateKey(regkey.JoinPath(keyPath, name, "Targets", "Target1"))
		}
	}

	settings := config.DefaultSettings()
	return &testEnv{
		t:        t,
		registry: reg,
		engine:   engine.New(reg, *settings),
		settings: settings,
	}
}

// workspaceKey returns the full registry path of a workspace entry.
func (e *testEnv) workspaceKey(version, name string) string {
	return regkey.JoinPath(engine.ResolvePath(engine.WorkspaceKeyTemplate, version), name)
}

// names extracts raw key names from entries.
func names(entries []engine.WorkspaceEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
