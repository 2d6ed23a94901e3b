package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"devctl/internal/tools"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <tool>...",
	Short: "Uninstall tools via Homebrew",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := tools.ExecRunner{}
		selected := selectSpecs(args)

		failed := 0
		for i, t := range selected {
			fmt.Printf("[%d/%d] %s\n", i+1, len(selected), t.Name)
			res := tools.Check(cmd.Context(), runner, t)
			if !res.Installed {
				fmt.Println("  • not installed, skipping")
				continue
			}
			if t.Package == "" {
				fmt.Printf("  • %s is not managed via brew\n", t.Name)
				continue
			}
			if err := tools.BrewUninstall(cmd.Context(), runner, t.Package); err != nil {
				failed++
				fmt.Printf("  × uninstall failed: %v\n", err)
				continue
			}
			fmt.Println("  ✓ removed")
		}
		if failed > 0 {
			return fmt.Errorf("%d uninstall(s) failed", failed)
		}
		return nil
	},
}
