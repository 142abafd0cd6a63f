package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/grovetools/core/errors"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/pick/internal/config"
	"github.com/grovetools/pick/internal/picker"
	"github.com/grovetools/pick/internal/project"
)

// errCodeNoSelection marks a session that ended without a selection.
const errCodeNoSelection = errors.ErrorCode("NO_SELECTION")

// openStore loads the config store from the default location, creating the
// file on first run.
func openStore() (*config.Store, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Open(path)
}

// runPick drives the interactive menu. Selecting [new dir] mutates the config
// and restarts the menu so the new entries become selectable; every other
// choice ends the session.
func runPick(store *config.Store, printOnly bool) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	for {
		projects, warns := project.Resolve(store)
		for _, warn := range warns {
			logger.Warn(warn)
		}

		choice, err := runPicker(picker.Candidates(projects))
		if err != nil {
			return err
		}
		if choice == nil {
			return errors.New(errCodeNoSelection, "no project selected")
		}

		switch choice.Kind {
		case picker.KindProject:
			return openProject(store.Config(), choice.Project.Path, printOnly)

		case picker.KindNewProject:
			proj, err := promptNewProject(store, "")
			if err != nil {
				return err
			}
			return openProject(store.Config(), proj.Path, printOnly)

		case picker.KindNewDir:
			if err := promptNewDir(store); err != nil {
				return err
			}

		case picker.KindEdit:
			return editConfig(store)
		}
	}
}

// openProject hands the chosen path off: print mode and an unset open_cmd
// write the path to stdout, otherwise the open command runs with inherited
// stdio until it exits.
func openProject(cfg *config.Config, path string, printOnly bool) error {
	if printOnly || cfg.OpenCmd == "" {
		fmt.Println(path)
		return nil
	}

	cmd := exec.Command(cfg.OpenCmd, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.CommandFailed(cfg.OpenCmd, err)
	}
	return nil
}
