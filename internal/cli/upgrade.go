package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	latest "github.com/tcnksm/go-latest"

	appver "devctl/internal/version"
)

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Check whether a newer devctl release exists",
	Long:  "Compares the running version against the latest GitHub tag and prints how to upgrade.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("devctl v%s (%s/%s)\n", appver.AppVersion, runtime.GOOS, runtime.GOARCH)

		src := &latest.GithubTag{Owner: "hylarucoder", Repository: "devctl"}
		res, err := latest.Check(src, appver.AppVersion)
		if err != nil {
			return fmt.Errorf("release check: %w", err)
		}
		if res.Outdated {
			fmt.Printf("→ v%s is available, upgrade with: brew upgrade devctl\n", res.Current)
			return nil
		}
		fmt.Println("✓ up to date")
		return nil
	},
}
