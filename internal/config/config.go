// Package config owns the gpick configuration file: the named project paths,
// the watched directories, and the commands used to open projects and edit
// the file itself. Mutations persist to disk before they return.
package config

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/grovetools/core/errors"
)

// Config mirrors the gpick.toml document. Field names match the TOML keys
// written by earlier releases, so existing files load unchanged.
type Config struct {
	OpenCmd         string            `toml:"open_cmd"`          // command spawned with the selected path as argument; empty prints the path
	Editor          string            `toml:"editor"`            // editor spawned on the config file
	Sort            bool              `toml:"sort"`              // sort projects alphabetically
	ExcludeProjDirs bool              `toml:"exclude_proj_dirs"` // skip watched subdirectories that already contain a named project
	Dirs            []string          `toml:"dirs"`              // directories whose immediate subdirectories become projects
	Paths           map[string]string `toml:"paths"`             // named project paths
}

// DefaultPath returns the standard config file location:
// $XDG_CONFIG_HOME/gpick/gpick.toml or the platform equivalent.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeConfigNotFound, "locate user config directory")
	}
	return filepath.Join(base, "gpick", "gpick.toml"), nil
}

// DefaultEditor resolves the editor recorded in new config files from
// $VISUAL or $EDITOR, falling back to a platform default.
func DefaultEditor() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

func defaults() *Config {
	return &Config{
		Editor: DefaultEditor(),
		Sort:   true,
		Dirs:   []string{},
		Paths:  map[string]string{},
	}
}
