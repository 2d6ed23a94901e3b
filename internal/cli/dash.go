package cli

import (
	"github.com/spf13/cobra"

	"devctl/internal/app"
)

func init() {
	rootCmd.AddCommand(dashCmd)
}

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the devctl dashboard (TUI)",
	Long:  "Interactive dashboard showing Homebrew and tool status, with install and refresh actions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Start()
	},
}
