package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
	"github.com/grovetools/tend/pkg/verify"
)

// Helper to check if tmux is available (the TUI harness drives the picker
// through a tmux-backed terminal)
func skipIfNoTmux(ctx *harness.Context) error {
	cmd := command.New("which", "tmux")
	result := cmd.Run()
	if result.ExitCode != 0 {
		// Return nil to skip the test gracefully without failing
		ctx.Set("skip_tmux_test", true)
		ctx.ShowCommandOutput("which tmux", "", "tmux not found - skipping TUI tests")
		return nil
	}
	return nil
}

// Helper to check if we should skip the test
func shouldSkipTmuxTest(ctx *harness.Context) bool {
	return ctx.GetBool("skip_tmux_test")
}

// setupPickerTestEnv creates a sandboxed environment with:
// - A watched directory holding two project subdirectories (and a plain file
//   that must not show up)
// - One named path entry
func setupPickerTestEnv(ctx *harness.Context) error {
	projectsDir := filepath.Join(ctx.RootDir, "projects")
	if err := fs.CreateDir(projectsDir); err != nil {
		return fmt.Errorf("failed to create projects directory: %w", err)
	}
	for _, name := range []string{"bar", "foo"} {
		if err := fs.CreateDir(filepath.Join(projectsDir, name)); err != nil {
			return fmt.Errorf("failed to create project %s: %w", name, err)
		}
	}
	if err := fs.WriteString(filepath.Join(projectsDir, "notes.txt"), "not a project\n"); err != nil {
		return fmt.Errorf("failed to write plain file: %w", err)
	}

	zebraDir := filepath.Join(ctx.RootDir, "zebra-home")
	if err := fs.CreateDir(zebraDir); err != nil {
		return fmt.Errorf("failed to create named project directory: %w", err)
	}

	return writePickConfig(ctx, fmt.Sprintf(`open_cmd = ""
editor = "vi"
sort = true
exclude_proj_dirs = false
dirs = [%q]

[paths]
zebra = %q
`, projectsDir, zebraDir))
}

// GpickPickerRenderScenario tests that the interactive picker renders the
// resolved projects followed by the action rows.
func GpickPickerRenderScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "gpick-picker-render",
		Description: "Tests the picker layout: projects from both sources plus action rows",
		LocalOnly:   true, // TUI tests require tmux
		Steps: []harness.Step{
			harness.NewStep("Check tmux availability", skipIfNoTmux),
			harness.NewStep("Setup picker test environment", func(ctx *harness.Context) error {
				if shouldSkipTmuxTest(ctx) {
					return nil
				}
				return setupPickerTestEnv(ctx)
			}),
			harness.NewStep("Launch gpick and verify the menu", func(ctx *harness.Context) error {
				if shouldSkipTmuxTest(ctx) {
					return nil
				}

				gpickBinary, err := FindProjectBinary()
				if err != nil {
					return fmt.Errorf("failed to find gpick binary: %w", err)
				}

				session, err := ctx.StartTUI(gpickBinary, []string{})
				if err != nil {
					return fmt.Errorf("failed to start gpick: %w", err)
				}

				if err := session.WaitForText("Select project", 10*time.Second); err != nil {
					return fmt.Errorf("TUI did not render the header: %w", err)
				}
				if err := session.WaitStable(); err != nil {
					return fmt.Errorf("TUI did not stabilize: %w", err)
				}

				content, err := session.Capture()
				if err != nil {
					return fmt.Errorf("failed to capture screen: %w", err)
				}
				ctx.ShowCommandOutput("Picker Content", content, "")

				return ctx.Verify(func(v *verify.Collector) {
					v.Contains("named project is visible", content, "zebra")
					v.Contains("watched project bar is visible", content, "bar")
					v.Contains("watched project foo is visible", content, "foo")
					v.NotContains("plain files are not projects", content, "notes.txt")

					v.Contains("new project action present", content, "[new project]")
					v.Contains("new dir action present", content, "[new dir]")
					v.Contains("edit action present", content, "[edit]")
				})
			}),
		},
	}
}

// GpickPickerUnreadableDirScenario tests that an unreadable watched directory
// does not keep the picker from starting with the remaining entries.
func GpickPickerUnreadableDirScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "gpick-picker-unreadable-dir",
		Description: "Tests that resolution tolerates a missing watched directory",
		LocalOnly:   true,
		Steps: []harness.Step{
			harness.NewStep("Check tmux availability", skipIfNoTmux),
			harness.NewStep("Setup config with a dead watched directory", func(ctx *harness.Context) error {
				if shouldSkipTmuxTest(ctx) {
					return nil
				}

				realDir := filepath.Join(ctx.RootDir, "realproj")
				if err := fs.CreateDir(realDir); err != nil {
					return fmt.Errorf("failed to create project directory: %w", err)
				}
				deadDir := filepath.Join(ctx.RootDir, "does-not-exist")

				return writePickConfig(ctx, fmt.Sprintf(`open_cmd = ""
editor = "vi"
sort = true
exclude_proj_dirs = false
dirs = [%q]

[paths]
realproj = %q
`, deadDir, realDir))
			}),
			harness.NewStep("Launch gpick and verify the survivors render", func(ctx *harness.Context) error {
				if shouldSkipTmuxTest(ctx) {
					return nil
				}

				gpickBinary, err := FindProjectBinary()
				if err != nil {
					return fmt.Errorf("failed to find gpick binary: %w", err)
				}

				session, err := ctx.StartTUI(gpickBinary, []string{})
				if err != nil {
					return fmt.Errorf("failed to start gpick: %w", err)
				}

				if err := session.WaitForText("Select project", 10*time.Second); err != nil {
					return fmt.Errorf("TUI did not render past the dead directory: %w", err)
				}
				if err := session.WaitStable(); err != nil {
					return fmt.Errorf("TUI did not stabilize: %w", err)
				}

				content, err := session.Capture()
				if err != nil {
					return fmt.Errorf("failed to capture screen: %w", err)
				}
				ctx.ShowCommandOutput("Picker Content", content, "")

				return ctx.Verify(func(v *verify.Collector) {
					v.Contains("named project survived resolution", content, "realproj")
					v.Contains("action rows still present", content, "[edit]")
				})
			}),
		},
	}
}
