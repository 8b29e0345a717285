package cli

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/danieljhkim/regreset/internal/config"
	"github.com/danieljhkim/regreset/internal/engine"
	"github.com/danieljhkim/regreset/internal/fsops"
	"github.com/danieljhkim/regreset/internal/regkey"
)

// newRegistry opens the platform registry; replaced in tests.
var newRegistry = regkey.NewSystemRegistry

// session bundles what a command needs to talk to the engine.
type session struct {
	engine   *engine.Engine
	settings *config.Settings
	store    *config.Store
	log      *zap.Logger
}

// newSettingsStore returns the settings store for --config or the default path.
func newSettingsStore() (*config.Store, error) {
	path := settingsPath
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get config paths")
		}
		path = paths.Config
	}
	return config.NewStore(fsops.NewRealFS(), path), nil
}

// newSession loads settings and creates an engine with the real registry.
func newSession() (*session, error) {
	log := newLogger(verbose)

	store, err := newSettingsStore()
	if err != nil {
		return nil, err
	}

	settings, found, err := store.Load()
	if err != nil {
		return nil, err
	}
	log.Debug("loaded settings",
		zap.String("path", store.Path()),
		zap.Bool("found", found),
		zap.Strings("versions", settings.Versions),
		zap.String("default", settings.Default))

	return &session{
		engine:   engine.New(newRegistry(), *settings),
		settings: settings,
		store:    store,
		log:      log,
	}, nil
}

// version returns the version to operate on for the given flag value.
func (s *session) version(flagValue string) string {
	v := s.settings.ResolveVersion(flagValue)
	s.log.Debug("selected version", zap.String("flag", flagValue), zap.String("version", v))
	return v
}

// close flushes the logger.
func (s *session) close() {
	_ = s.log.Sync()
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// registryDisplayPath prefixes a key path with the hive name.
func registryDisplayPath(keyPath string) string {
	return `HKEY_CURRENT_USER\` + keyPath
}
