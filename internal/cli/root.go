package cli

import (
	"github.com/marta/studiobook/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "studiobook",
	Short: "A record keeper for a small photo studio",
	Long: `Studiobook tracks clients, photographers, equipment and scheduled
photo sessions, persisting everything as a JSON snapshot on demand.

By default, running studiobook without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(photographersCmd)
	rootCmd.AddCommand(equipmentCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(tuiCmd)
}
