// Package config manages regreset configuration and filesystem paths.
//
// The settings file supplies the selectable PowerBuilder versions and the
// default version. The root directory defaults to ~/.regreset/ and can be
// moved with REGRESET_ROOT.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/go-homedir"
)

const (
	// EnvRoot overrides the root directory.
	EnvRoot = "REGRESET_ROOT"

	// EnvVersion overrides the configured default version.
	EnvVersion = "REGRESET_VERSION"

	configFileName = "config.yaml"
	rootDirName    = ".regreset"
)

// Paths contains all the filesystem paths used by regreset.
type Paths struct {
	// Root is the base directory for regreset data (default: ~/.regreset)
	Root string

	// Config is the path to the settings file
	Config string
}

// DefaultPaths returns the default paths for regreset.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(EnvRoot)
	if root == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get user home directory")
		}
		root = filepath.Join(home, rootDirName)
	}

	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:   root,
		Config: filepath.Join(root, configFileName),
	}
}
