package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devctl/internal/manifest"
)

func init() {
	toolsCmd.AddCommand(toolsAddCmd)
}

var toolsAddCmd = &cobra.Command{
	Use:   "add <tool>...",
	Short: "Add tools to the manifest",
	Long:  "Adds the given tools to the manifest so future provisioning runs install them.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := make([]string, 0, len(args))
		for _, a := range args {
			a = strings.TrimSpace(a)
			if a != "" {
				items = append(items, a)
			}
		}
		if len(items) == 0 {
			fmt.Println("no tool names given")
			return nil
		}
		added, existed, err := manifest.AddAll(items)
		if err != nil {
			return err
		}
		for _, s := range added {
			fmt.Printf("✓ added: %s\n", s)
		}
		for _, s := range existed {
			fmt.Printf("• already in manifest: %s\n", s)
		}
		if len(added) == 0 && len(existed) == 0 {
			fmt.Println("no changes")
		}
		return nil
	},
}
