package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devctl/internal/system"
	"devctl/internal/tools"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update [tool|all]...",
	Short: "Upgrade tools to the latest Homebrew version",
	Long:  "Upgrades the selected tools (default: every managed tool) when brew knows a newer version.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := selectSpecs(args)
		if len(selected) == 0 {
			fmt.Println("no tools selected")
			return nil
		}
		runner := tools.ExecRunner{}
		ctx := cmd.Context()

		outdated, err := tools.BrewOutdated(ctx, runner)
		if err != nil {
			if errors.Is(err, tools.ErrBrewMissing) {
				return err
			}
			// keep going, brew upgrade is a no-op on current formulae
			system.Logger.Warn("brew outdated query failed", "err", err)
		}

		failed := 0
		for i, t := range selected {
			fmt.Printf("[%d/%d] %s\n", i+1, len(selected), t.Name)
			res := tools.Check(ctx, runner, t)
			if !res.Installed {
				fmt.Println("  • not installed, skipping (use install)")
				continue
			}
			if t.Package == "" {
				fmt.Printf("  • %s is not managed via brew\n", t.Name)
				continue
			}
			latest := outdated[t.Package]
			if outdated != nil && latest == "" {
				ver := res.Version
				if ver == "" {
					ver = "current"
				}
				fmt.Printf("  ✓ already latest %s\n", ver)
				continue
			}
			if latest != "" && res.Version != "" && !tools.VersionLess(res.Version, latest) {
				fmt.Printf("  ✓ already latest %s\n", res.Version)
				continue
			}
			fmt.Println("  → upgrading...")
			if err := tools.BrewUpgrade(ctx, runner, t.Package); err != nil {
				failed++
				fmt.Printf("  × upgrade failed: %v\n", err)
				continue
			}
			res2 := tools.Check(ctx, runner, t)
			newVer := strings.TrimSpace(res2.Version)
			if newVer == "" {
				newVer = "latest"
			}
			fmt.Printf("  ✓ upgraded → %s\n", newVer)
		}
		if failed > 0 {
			return fmt.Errorf("%d upgrade(s) failed", failed)
		}
		return nil
	},
}
