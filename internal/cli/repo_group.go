package cli

import "github.com/spf13/cobra"

// repoCmd groups the GitHub project bootstrap commands.
var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Bootstrap GitHub repos with labels, issues and milestones",
}

func init() {
	rootCmd.AddCommand(repoCmd)
}
