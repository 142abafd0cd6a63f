package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
	"github.com/grovetools/tend/pkg/verify"
)

// configPath returns where a spawned gpick process looks for its config file.
// The harness sets XDG_CONFIG_HOME to ctx.ConfigDir() for spawned processes.
func configPath(ctx *harness.Context) string {
	return filepath.Join(ctx.ConfigDir(), "gpick", "gpick.toml")
}

// writePickConfig writes a gpick.toml into the sandboxed config directory.
func writePickConfig(ctx *harness.Context, content string) error {
	path := configPath(ctx)
	if err := fs.CreateDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := fs.WriteString(path, content); err != nil {
		return fmt.Errorf("failed to write gpick.toml: %w", err)
	}
	return nil
}

// GpickDirectPathScenario tests dispatching a path argument without the menu.
func GpickDirectPathScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "gpick-direct-path",
		Description: "Tests that a path argument skips the picker and dispatches directly",
		Steps: []harness.Step{
			harness.NewStep("Setup config with echo as the open command", func(ctx *harness.Context) error {
				projectDir := ctx.NewDir("myproj")
				if err := fs.CreateDir(projectDir); err != nil {
					return fmt.Errorf("failed to create project directory: %w", err)
				}
				ctx.Set("project_dir", projectDir)

				return writePickConfig(ctx, `open_cmd = "echo"
editor = "vi"
sort = true
exclude_proj_dirs = false
dirs = []

[paths]
`)
			}),
			harness.NewStep("Run 'gpick <path>' and expect the open command to receive it", func(ctx *harness.Context) error {
				gpickBinary, err := FindProjectBinary()
				if err != nil {
					return err
				}

				projectDir := ctx.GetString("project_dir")
				cmd := command.New(gpickBinary, projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "gpick <path> should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, projectDir, "echo should print the dispatched path")
			}),
			harness.NewStep("Rewrite config with a failing open command", func(ctx *harness.Context) error {
				return writePickConfig(ctx, `open_cmd = "/bin/false"
editor = "vi"
sort = true
exclude_proj_dirs = false
dirs = []

[paths]
`)
			}),
			harness.NewStep("Run 'gpick --print <path>' and expect print mode to bypass the command", func(ctx *harness.Context) error {
				gpickBinary, err := FindProjectBinary()
				if err != nil {
					return err
				}

				projectDir := ctx.GetString("project_dir")
				cmd := command.New(gpickBinary, "--print", projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "print mode should never run the open command"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, projectDir, "print mode should write the path to stdout")
			}),
			harness.NewStep("Run 'gpick <path>' against the failing command and expect an error", func(ctx *harness.Context) error {
				gpickBinary, err := FindProjectBinary()
				if err != nil {
					return err
				}

				projectDir := ctx.GetString("project_dir")
				cmd := command.New(gpickBinary, projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("expected non-zero exit when the open command fails")
				}
				return assert.Contains(result.Stderr, "Error", "failure should be reported on stderr")
			}),
		},
	}
}

// GpickFirstRunScenario tests that a missing config file is created with
// defaults before anything else happens.
func GpickFirstRunScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "gpick-first-run",
		Description: "Tests that the config file is created with defaults on first use",
		Steps: []harness.Step{
			harness.NewStep("Run gpick with no config present", func(ctx *harness.Context) error {
				gpickBinary, err := FindProjectBinary()
				if err != nil {
					return err
				}

				projectDir := ctx.NewDir("fresh")
				if err := fs.CreateDir(projectDir); err != nil {
					return fmt.Errorf("failed to create project directory: %w", err)
				}

				cmd := command.New(gpickBinary, "--print", projectDir)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "first run should succeed"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, projectDir, "first run should still dispatch the path")
			}),
			harness.NewStep("Verify the created config carries the defaults", func(ctx *harness.Context) error {
				cmd := command.New("cat", configPath(ctx))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "config file should exist after first run"); err != nil {
					return err
				}

				content := result.Stdout
				return ctx.Verify(func(v *verify.Collector) {
					v.Contains("sort defaults to true", content, "sort = true")
					v.Contains("exclude_proj_dirs defaults to false", content, "exclude_proj_dirs = false")
					v.Contains("watched dirs default to empty", content, "dirs = []")
				})
			}),
		},
	}
}

// GpickVersionScenario tests the version command output formats.
func GpickVersionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "gpick-version",
		Description: "Tests plain and JSON version output",
		Steps: []harness.Step{
			harness.NewStep("Run 'gpick version'", func(ctx *harness.Context) error {
				gpickBinary, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(gpickBinary, "version")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "version should exit successfully"); err != nil {
					return err
				}
				if strings.TrimSpace(result.Stdout) == "" {
					return fmt.Errorf("version output should not be empty")
				}
				return nil
			}),
			harness.NewStep("Run 'gpick version --json'", func(ctx *harness.Context) error {
				gpickBinary, err := FindProjectBinary()
				if err != nil {
					return err
				}

				cmd := command.New(gpickBinary, "version", "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "version --json should exit successfully"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, `"version"`, "JSON output should carry the version field")
			}),
		},
	}
}
