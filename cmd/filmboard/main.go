package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

// newRootCmd builds the root command with all subcommands registered.
// Running filmboard with no subcommand opens the browse TUI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filmboard",
		Short: "Movie mood board for your terminal",
		Long: "Filmboard looks up movies on TMDB and lays them out as a mood board:\n" +
			"poster, stills, trailer, top cast, similar titles, and a favorites list\n" +
			"that lives only as long as the session.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBrowse()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/filmboard.yaml", "path to configuration file")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newBrowseCmd(),
		newLookupCmd(),
		newBotCmd(),
		newMCPCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("Filmboard v%s\n", version)
		},
	}
}
