package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/grovetools/core/errors"
)

// NamedPath is one explicit name→path entry.
type NamedPath struct {
	Name string
	Path string
}

// Store owns the loaded configuration and its file. Every mutation writes the
// file before returning, so a restarted session always sees the new state.
type Store struct {
	path  string
	cfg   *Config
	order []string // named-path order: file appearance, then insertion
}

// Open loads the config file at path, creating it with defaults when it does
// not exist. Fields added after the first release (sort, dirs,
// exclude_proj_dirs) are backfilled into older files with a single rewrite.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		s.cfg = defaults()
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "parse config file").WithDetail("path", path)
	}
	if cfg.Paths == nil {
		cfg.Paths = map[string]string{}
	}
	s.cfg = &cfg
	for _, key := range md.Keys() {
		if len(key) == 2 && key[0] == "paths" {
			s.order = append(s.order, key[1])
		}
	}

	// Backfill config items added after the first release.
	changed := false
	if !md.IsDefined("sort") {
		cfg.Sort = true
		s.sortNames()
		changed = true
	}
	if !md.IsDefined("dirs") {
		cfg.Dirs = []string{}
		changed = true
	}
	if !md.IsDefined("exclude_proj_dirs") {
		cfg.ExcludeProjDirs = false
		changed = true
	}
	if changed {
		if err := s.save(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the location of the config file.
func (s *Store) Path() string { return s.path }

// Config returns the loaded configuration.
func (s *Store) Config() *Config { return s.cfg }

// NamedPaths returns the explicit entries in emission order: file appearance
// order for loaded entries, insertion order for entries added this session.
func (s *Store) NamedPaths() []NamedPath {
	out := make([]NamedPath, 0, len(s.order))
	for _, name := range s.order {
		path, ok := s.cfg.Paths[name]
		if !ok {
			continue
		}
		out = append(out, NamedPath{Name: name, Path: path})
	}
	return out
}

// AddProject inserts or replaces a named path and persists the file.
func (s *Store) AddProject(name, path string) error {
	if s.cfg.Paths == nil {
		s.cfg.Paths = map[string]string{}
	}
	if _, exists := s.cfg.Paths[name]; !exists {
		s.order = append(s.order, name)
	}
	s.cfg.Paths[name] = path
	if s.cfg.Sort {
		s.sortNames()
	}
	return s.save()
}

// AddDir appends a watched directory and persists the file.
func (s *Store) AddDir(path string) error {
	s.cfg.Dirs = append(s.cfg.Dirs, path)
	return s.save()
}

func (s *Store) sortNames() {
	sort.Strings(s.order)
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "create config directory")
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.cfg); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "encode config")
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "write config file").WithDetail("path", s.path)
	}
	return nil
}
