package cli

import (
	"github.com/spf13/cobra"

	"devctl/internal/settings"
)

func init() {
	toolsCmd.AddCommand(toolsEditCmd)
}

var toolsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Pick manifest tools interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}
