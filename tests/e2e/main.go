package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/grovetools/tend/pkg/app"
	"github.com/grovetools/tend/pkg/harness"
)

func main() {
	scenarios := []*harness.Scenario{
		GpickDirectPathScenario(),
		GpickFirstRunScenario(),
		GpickVersionScenario(),

		// TUI scenarios (only run locally with tmux installed)
		GpickPickerRenderScenario(),
		GpickPickerUnreadableDirScenario(),
	}

	if err := app.Execute(context.Background(), scenarios); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// FindProjectBinary locates the gpick binary for the scenarios: an explicit
// override first, then PATH, then the repo-local bin directory.
func FindProjectBinary() (string, error) {
	if bin := os.Getenv("GPICK_E2E_BINARY"); bin != "" {
		return bin, nil
	}
	if bin, err := exec.LookPath("gpick"); err == nil {
		return bin, nil
	}
	local, err := filepath.Abs(filepath.Join("..", "..", "bin", "gpick"))
	if err == nil {
		if _, statErr := os.Stat(local); statErr == nil {
			return local, nil
		}
	}
	return "", fmt.Errorf("gpick binary not found: set GPICK_E2E_BINARY or add it to PATH")
}
