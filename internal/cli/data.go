package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the catalog to a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")

		savedPath, ok := appInstance.Save(path)
		if !ok {
			fmt.Printf("Could not save data to %s\n", savedPath)
			return nil
		}
		fmt.Printf("✓ Data saved to %s\n", savedPath)
		return nil
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Replace the catalog with a JSON snapshot",
	Long: `Load a snapshot, replacing all in-memory data. A missing or
unreadable file yields an empty catalog rather than an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")

		loadedPath := appInstance.Load(path)
		clients, photographers, equipment, sessions := appInstance.Catalog.Counts()
		fmt.Printf("✓ Data loaded from %s\n", loadedPath)
		fmt.Printf("  %d client(s), %d photographer(s), %d equipment item(s), %d session(s)\n",
			clients, photographers, equipment, sessions)
		return nil
	},
}

func init() {
	saveCmd.Flags().String("path", "", "Snapshot file (blank for the configured default)")
	loadCmd.Flags().String("path", "", "Snapshot file (blank for the configured default)")
}

// persist writes the catalog to the default snapshot path after a
// mutating headless command, since the process exits right away. The
// TUI saves on demand instead.
func persist() {
	if path, ok := appInstance.Save(""); !ok {
		fmt.Printf("! Could not save data to %s\n", path)
	}
}
