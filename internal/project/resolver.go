// Package project resolves the configured project set: named paths plus the
// immediate subdirectories of every watched directory, deduplicated and
// optionally sorted.
package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grovetools/core/errors"
	"github.com/grovetools/pick/internal/config"
)

// ErrCodeDirUnreadable marks a watched directory that could not be listed.
const ErrCodeDirUnreadable = errors.ErrorCode("DIR_UNREADABLE")

// Project is one selectable directory.
type Project struct {
	Name string // display label: the configured name or the subdirectory basename
	Path string // as configured or discovered
}

// Resolve expands the store into a flat project list. Named paths come first,
// in emission order, then each watched directory's immediate subdirectories
// in listing order. Entries resolving to an already-seen absolute path are
// dropped, so a named entry wins over a later discovery of the same
// directory. When sort is enabled the result is stable-sorted by name.
//
// A watched directory that cannot be listed contributes no projects and one
// warning; resolution continues with the remaining sources.
func Resolve(store *config.Store) ([]Project, []error) {
	cfg := store.Config()

	var (
		projects []Project
		warns    []error
	)
	seen := map[string]bool{}
	add := func(p Project) {
		key := absKey(p.Path)
		if seen[key] {
			return
		}
		seen[key] = true
		projects = append(projects, p)
	}

	named := store.NamedPaths()
	for _, np := range named {
		add(Project{Name: np.Name, Path: np.Path})
	}

	for _, dir := range cfg.Dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			warns = append(warns, errors.Wrap(err, ErrCodeDirUnreadable, "list watched directory").WithDetail("dir", dir))
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			sub := filepath.Join(dir, entry.Name())
			if cfg.ExcludeProjDirs && containsNamedProject(named, sub) {
				continue
			}
			add(Project{Name: entry.Name(), Path: sub})
		}
	}

	if cfg.Sort {
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Name < projects[j].Name
		})
	}
	return projects, warns
}

// containsNamedProject reports whether any named path points at dir or
// somewhere beneath it.
func containsNamedProject(named []config.NamedPath, dir string) bool {
	dirKey := absKey(dir)
	for _, np := range named {
		pk := absKey(np.Path)
		if pk == dirKey || strings.HasPrefix(pk, dirKey+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func absKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
