package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devctl/internal/provision"
	"devctl/internal/tools"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install [tool|all]...",
	Short: "Install tools via Homebrew",
	Long:  "Installs the selected tools (default: every managed tool), skipping anything already present. Unknown names are passed to brew as formula names.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := selectSpecs(args)
		if len(selected) == 0 {
			fmt.Println("no tools selected")
			return nil
		}
		runner := tools.ExecRunner{}
		p := provision.New(runner, os.Stdout)
		if _, err := p.EnsureManager(cmd.Context()); err != nil {
			return err
		}

		failed := 0
		for i, t := range selected {
			fmt.Printf("[%d/%d] %s\n", i+1, len(selected), t.Name)
			res := tools.Check(cmd.Context(), runner, t)
			if res.Installed {
				ver := res.Version
				if ver == "" {
					ver = "installed"
				}
				fmt.Printf("  • skipped: %s\n", ver)
				continue
			}
			if t.Package == "" {
				fmt.Printf("  • no formula, install %s manually\n", t.Name)
				continue
			}
			if err := tools.BrewInstall(cmd.Context(), runner, t.Package); err != nil {
				failed++
				fmt.Printf("  × install failed: %v\n", err)
				continue
			}
			// recheck and report
			res2 := tools.Check(cmd.Context(), runner, t)
			ver := res2.Version
			if ver == "" {
				ver = res2.Raw
			}
			if ver == "" {
				ver = "installed"
			}
			fmt.Printf("  ✓ installed → %s\n", ver)
		}
		if failed > 0 {
			return fmt.Errorf("%d install(s) failed", failed)
		}
		return nil
	},
}
