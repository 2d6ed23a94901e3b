package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devctl/internal/manifest"
	"devctl/internal/provision"
	"devctl/internal/system"
	"devctl/internal/tools"
)

var rootCmd = &cobra.Command{
	Use:   "devctl",
	Short: "devctl – dev machine provisioning helper",
	Long:  "devctl checks Homebrew and a core set of developer tools, installs what is missing, and prints a version report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: run the full provisioning flow
		extras, err := manifest.Load()
		if err != nil {
			system.Logger.Warn("manifest unreadable, continuing without extras", "err", err)
		}
		p := provision.New(tools.ExecRunner{}, os.Stdout)
		_, err = p.Run(cmd.Context(), manifest.Specs(extras)...)
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
