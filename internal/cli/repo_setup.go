package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"devctl/internal/ghproject"
	"devctl/internal/tools"
)

var repoSetupRepo string

func init() {
	repoCmd.AddCommand(repoSetupCmd)
	repoSetupCmd.Flags().StringVar(&repoSetupRepo, "repo", "", "GitHub repo in owner/repo format")
	_ = repoSetupCmd.MarkFlagRequired("repo")
}

var repoSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Apply the suggestions to a repository via gh",
	Long:  "Creates the suggested labels, milestones and starter issues on the given repository. Existing items are updated or skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := strings.TrimSpace(repoSetupRepo)
		if !strings.Contains(repo, "/") {
			return fmt.Errorf("invalid repo %q, expected owner/repo", repo)
		}
		err := ghproject.Setup(cmd.Context(), tools.ExecRunner{}, os.Stdout, repo)
		if errors.Is(err, ghproject.ErrGHMissing) {
			return fmt.Errorf("gh not installed, run: devctl install gh")
		}
		return err
	},
}
