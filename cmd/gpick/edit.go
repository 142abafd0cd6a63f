package main

import (
	"os"
	"os/exec"

	"github.com/grovetools/core/errors"
	"github.com/spf13/cobra"

	"github.com/grovetools/pick/internal/config"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in your editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return editConfig(store)
	},
}

// editConfig spawns the configured editor on the config file and waits for it
// to exit.
func editConfig(store *config.Store) error {
	editor := store.Config().Editor
	if editor == "" {
		editor = config.DefaultEditor()
	}

	cmd := exec.Command(editor, store.Path())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.CommandFailed(editor, err)
	}
	return nil
}
