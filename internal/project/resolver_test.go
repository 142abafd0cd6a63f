package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/core/errors"
	"github.com/grovetools/pick/internal/config"
)

// openStore writes a config file with the given body and opens it.
func openStore(t *testing.T, body string) *config.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gpick.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	s, err := config.Open(path)
	if err != nil {
		t.Fatalf("open config: %v", err)
	}
	return s
}

func names(projects []Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Name
	}
	return out
}

func TestResolveSortsWatchedSubdirectories(t *testing.T) {
	watched := t.TempDir()
	for _, sub := range []string{"foo", "bar"} {
		if err := os.Mkdir(filepath.Join(watched, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// Plain files must not become projects.
	if err := os.WriteFile(filepath.Join(watched, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := openStore(t, `
sort = true
exclude_proj_dirs = false
dirs = ["`+watched+`"]
`)

	projects, warns := Resolve(s)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	got := names(projects)
	want := []string{"bar", "foo"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("projects = %v, want %v", got, want)
	}
}

func TestResolvePreservesEmissionOrderWhenUnsorted(t *testing.T) {
	watched := t.TempDir()
	if err := os.Mkdir(filepath.Join(watched, "aaa"), 0o755); err != nil {
		t.Fatal(err)
	}

	s := openStore(t, `
sort = false
exclude_proj_dirs = false
dirs = ["`+watched+`"]

[paths]
zeta = "/tmp/zeta"
alpha = "/tmp/alpha"
`)

	projects, warns := Resolve(s)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	got := names(projects)
	// Named paths in file order first, then watched expansions.
	want := []string{"zeta", "alpha", "aaa"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("projects = %v, want %v", got, want)
			break
		}
	}
}

func TestResolveDeduplicatesPreferringNamedEntry(t *testing.T) {
	watched := t.TempDir()
	target := filepath.Join(watched, "foo")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}

	s := openStore(t, `
sort = false
exclude_proj_dirs = false
dirs = ["`+watched+`"]

[paths]
mine = "`+target+`"
`)

	projects, _ := Resolve(s)
	if len(projects) != 1 {
		t.Fatalf("projects = %v, want exactly one entry", names(projects))
	}
	if projects[0].Name != "mine" {
		t.Errorf("kept %q, want the named entry %q", projects[0].Name, "mine")
	}
	if projects[0].Path != target {
		t.Errorf("kept path %q, want %q", projects[0].Path, target)
	}
}

func TestResolveContinuesPastUnreadableDir(t *testing.T) {
	watched := t.TempDir()
	if err := os.Mkdir(filepath.Join(watched, "real"), 0o755); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	s := openStore(t, `
sort = true
exclude_proj_dirs = false
dirs = ["`+missing+`", "`+watched+`"]
`)

	projects, warns := Resolve(s)
	if len(warns) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warns)
	}
	if code := errors.GetCode(warns[0]); code != ErrCodeDirUnreadable {
		t.Errorf("warning code = %q, want %q", code, ErrCodeDirUnreadable)
	}
	got := names(projects)
	if len(got) != 1 || got[0] != "real" {
		t.Errorf("projects = %v, want [real]", got)
	}
}

func TestResolveExcludeProjDirs(t *testing.T) {
	watched := t.TempDir()
	covered := filepath.Join(watched, "covered")
	plain := filepath.Join(watched, "plain")
	for _, dir := range []string{covered, plain, filepath.Join(covered, "nested")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("drops subdirectories containing a named project", func(t *testing.T) {
		s := openStore(t, `
sort = true
exclude_proj_dirs = true
dirs = ["`+watched+`"]

[paths]
nested = "`+filepath.Join(covered, "nested")+`"
`)
		projects, _ := Resolve(s)
		got := names(projects)
		want := []string{"nested", "plain"}
		if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("projects = %v, want %v", got, want)
		}
	})

	t.Run("keeps everything when disabled", func(t *testing.T) {
		s := openStore(t, `
sort = true
exclude_proj_dirs = false
dirs = ["`+watched+`"]

[paths]
nested = "`+filepath.Join(covered, "nested")+`"
`)
		projects, _ := Resolve(s)
		if len(projects) != 3 {
			t.Errorf("projects = %v, want covered, nested and plain", names(projects))
		}
	})
}
