package cli

import (
	"os"

	"github.com/spf13/cobra"

	"devctl/internal/ghproject"
)

var (
	repoSuggestRepo  string
	repoSuggestPlain bool
)

func init() {
	repoCmd.AddCommand(repoSuggestCmd)
	repoSuggestCmd.Flags().StringVar(&repoSuggestRepo, "repo", "", "GitHub repo in owner/repo format")
	repoSuggestCmd.Flags().BoolVar(&repoSuggestPlain, "plain", false, "print raw markdown without styling")
}

var repoSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show the suggested labels, starter issues and milestones",
	RunE: func(cmd *cobra.Command, args []string) error {
		ghproject.RenderSuggestions(os.Stdout, repoSuggestRepo, repoSuggestPlain)
		return nil
	},
}
