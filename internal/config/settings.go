package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/regreset/internal/fsops"
)

// ErrInvalidSettings indicates the settings file failed validation.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings stores the user-editable configuration.
type Settings struct {
	// Versions lists the selectable PowerBuilder version tokens in display order.
	Versions []string `yaml:"versions" json:"versions"`

	// Default is the version used when none is given on the command line.
	Default string `yaml:"default" json:"default"`

	// SeparatorEscape is the character PowerBuilder writes in place of a path
	// separator inside workspace key names.
	SeparatorEscape string `yaml:"separatorEscape" json:"separatorEscape"`
}

// DefaultSettings returns the built-in settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Versions:        []string{"12.5", "12.6", "2017", "2019", "2021", "2022"},
		Default:         "2019",
		SeparatorEscape: "$",
	}
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	for _, v := range s.Versions {
		if v == "" {
			return errors.Wrap(ErrInvalidSettings, "versions must not contain empty entries")
		}
	}
	if len(lo.Uniq(s.Versions)) != len(s.Versions) {
		return errors.Wrapf(ErrInvalidSettings, "duplicate entries in versions %v", s.Versions)
	}
	if s.Default == "" {
		return errors.Wrap(ErrInvalidSettings, "default version is empty")
	}
	if len(s.Versions) > 0 && !lo.Contains(s.Versions, s.Default) {
		return errors.Wrapf(ErrInvalidSettings, "default version %q is not one of %v", s.Default, s.Versions)
	}
	if len([]rune(s.SeparatorEscape)) != 1 {
		return errors.Wrapf(ErrInvalidSettings, "separatorEscape must be a single character, got %q", s.SeparatorEscape)
	}
	return nil
}

// Store loads and saves the settings file.
type Store struct {
	fs   fsops.FS
	path string
}

// NewStore creates a Store for the settings file at path.
func NewStore(fs fsops.FS, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the settings file is present.
func (s *Store) Exists() (bool, error) {
	return s.fs.Exists(s.path)
}

// Load reads the settings file, falling back to DefaultSettings when the file
// does not exist. Fields missing from the file keep their default values.
// found reports whether the file was read.
func (s *Store) Load() (settings *Settings, found bool, err error) {
	settings = DefaultSettings()

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, false, nil
		}
		return nil, false, errors.Wrap(err, "failed to read settings")
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, true, errors.Wrapf(err, "failed to parse settings %s", s.path)
	}
	if err := settings.Validate(); err != nil {
		return nil, true, errors.Wrapf(err, "settings %s", s.path)
	}

	return settings, true, nil
}

// Save validates and writes the settings file atomically.
func (s *Store) Save(settings *Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write settings")
	}
	return nil
}

// ResolveVersion picks the version to operate on: the explicit flag value,
// then REGRESET_VERSION, then the configured default.
func (s *Settings) ResolveVersion(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvVersion); env != "" {
		return env
	}
	return s.Default
}
