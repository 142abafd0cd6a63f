package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/grovetools/core/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grovetools/pick/internal/config"
	"github.com/grovetools/pick/internal/project"
)

var newCmd = &cobra.Command{
	Use:   "new [path]",
	Short: "Add a project to the config and open it",
	Long: `Prompt for a project name (and a path, when not given as an argument),
persist the entry, then open the project like a normal selection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		proj, err := promptNewProject(store, path)
		if err != nil {
			return err
		}
		return openProject(store.Config(), proj.Path, printOnly)
	},
}

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// formError maps a form abort onto the no-selection outcome so the caller
// exits quietly.
func formError(err error) error {
	if err == huh.ErrUserAborted {
		return errors.New(errCodeNoSelection, "prompt cancelled")
	}
	return errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read prompt input")
}

func validateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

func validateDirExists(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist")
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	return nil
}

// promptNewProject collects a name (and a path when none is preset), persists
// the named entry, and returns the new project.
func promptNewProject(store *config.Store, path string) (project.Project, error) {
	var name string

	fields := []huh.Field{
		huh.NewInput().
			Title("Project name").
			Value(&name).
			Validate(validateProjectName),
	}
	if path == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Project path").
				Placeholder("/path/to/project").
				Value(&path).
				Validate(validateDirExists),
		)
	}

	if err := newForm(huh.NewGroup(fields...)).Run(); err != nil {
		return project.Project{}, formError(err)
	}

	name = strings.TrimSpace(name)
	if err := store.AddProject(name, path); err != nil {
		return project.Project{}, err
	}
	return project.Project{Name: name, Path: path}, nil
}

// promptNewDir collects a watched directory and persists it. The caller
// restarts the menu so the directory's projects show up.
func promptNewDir(store *config.Store) error {
	var dir string

	form := newForm(huh.NewGroup(
		huh.NewInput().
			Title("Directory to watch").
			Placeholder("/path/to/projects").
			Value(&dir).
			Validate(validateDirExists),
	))
	if err := form.Run(); err != nil {
		return formError(err)
	}

	return store.AddDir(dir)
}
