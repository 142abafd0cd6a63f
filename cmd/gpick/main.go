package main

import (
	"fmt"
	"os"

	"github.com/grovetools/core/errors"
	"github.com/grovetools/core/version"
	"github.com/spf13/cobra"
)

var printOnly bool

var rootCmd = &cobra.Command{
	Use:   "gpick [path]",
	Short: "Grove project picker",
	Long: `A terminal picker for project directories. Projects come from named entries
and watched directories in the config file; the selected path is handed to the
configured open command. With a path argument the picker is skipped and the
path is opened directly.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		// A path argument bypasses the menu entirely.
		if len(args) > 0 {
			return openProject(store.Config(), args[0], printOnly)
		}

		return runPick(store, printOnly)
	},
}

func init() {
	vInfo := version.GetInfo()
	rootCmd.Version = vInfo.Version
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().BoolVarP(&printOnly, "print", "p", false, "Print the selected path instead of running the open command")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// A cancelled picker is an ordinary outcome, not worth a message.
		if errors.Is(err, errCodeNoSelection) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
