// Package engine manages PowerBuilder workspace keys in the registry.
//
// The Engine resolves the versioned workspace key path, enumerates its
// subkeys, filters them for display and deletes selected subtrees. It does
// no logging and no prompting; the CLI owns both.
//
// Key components:
//   - ResolvePath: pure template substitution of the version token
//   - ListWorkspaces: enumerate + exclude + filter
//   - DeleteWorkspaces: per-name recursive delete with per-name outcomes
package engine

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/danieljhkim/regreset/internal/config"
	"github.com/danieljhkim/regreset/internal/regkey"
)

const (
	// VersionPlaceholder is replaced by the selected version in WorkspaceKeyTemplate.
	VersionPlaceholder = "%VERSION%"

	// WorkspaceKeyTemplate is the HKEY_CURRENT_USER path PowerBuilder stores
	// workspace entries under.
	WorkspaceKeyTemplate = `Software\Sybase\PowerBuilder\` + VersionPlaceholder + `\Workspace`

	// DisplaySeparator replaces the separator escape in display paths.
	DisplaySeparator = `\`
)

// ExcludedKeys are never listed or deleted.
var ExcludedKeys = []string{"MRUList"}

// Engine orchestrates registry workspace operations.
// It is the main API surface called by the CLI.
type Engine struct {
	registry   regkey.Registry
	template   string
	exclusions []string
	escape     string
	versions   []string
}

// New creates a new Engine over the given registry. The settings supply the
// selectable versions and the separator escape.
func New(registry regkey.Registry, settings config.Settings) *Engine {
	escape := settings.SeparatorEscape
	if escape == "" {
		escape = config.DefaultSettings().SeparatorEscape
	}
	return &Engine{
		registry:   registry,
		template:   WorkspaceKeyTemplate,
		exclusions: ExcludedKeys,
		escape:     escape,
		versions:   settings.Versions,
	}
}

// Versions returns the selectable versions.
func (e *Engine) Versions() []string {
	return e.versions
}

// Exclusions returns the names that are never listed or deleted.
func (e *Engine) Exclusions() []string {
	return e.exclusions
}

// WorkspacePath validates version and returns the concrete workspace key path.
func (e *Engine) WorkspacePath(version string) (string, error) {
	if err := e.validateVersion(version); err != nil {
		return "", err
	}
	return ResolvePath(e.template, version), nil
}

func (e *Engine) validateVersion(version string) error {
	if version == "" {
		return errors.Wrap(ErrInvalidVersion, "version is empty")
	}
	if len(e.versions) > 0 && !lo.Contains(e.versions, version) {
		return errors.Wrapf(ErrInvalidVersion, "version %q is not one of %v", version, e.versions)
	}
	return nil
}
