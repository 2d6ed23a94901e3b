package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devctl/internal/manifest"
)

func init() {
	toolsCmd.AddCommand(toolsRemoveCmd)
}

var toolsRemoveCmd = &cobra.Command{
	Use:     "remove <tool>...",
	Aliases: []string{"rm"},
	Short:   "Remove tools from the manifest",
	Long:    "Removes the given tools from the manifest. Nothing is uninstalled; use devctl remove for that.",
	Args:    cobra.MinimumNArgs(1),
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
		removed, missing, err := manifest.RemoveAll(items)
		if err != nil {
			return err
		}
		for _, s := range removed {
			fmt.Printf("✓ removed: %s\n", s)
		}
		for _, s := range missing {
			fmt.Printf("• not in manifest: %s\n", s)
		}
		if len(removed) == 0 && len(missing) == 0 {
			fmt.Println("no changes")
		}
		return nil
	},
}
