package cli

import "github.com/spf13/cobra"

// toolsCmd is a group command to organize manifest management subcommands.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Manage the extra tools manifest",
	Long:  "Add, remove, list and pick the extra tools devctl provisions on top of the built-in set.",
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
