package cli

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"devctl/internal/manifest"
	"devctl/internal/tools"
)

func init() {
	toolsCmd.AddCommand(toolsLsCmd)
}

var toolsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List managed tools",
	Long:  "Prints the built-in tools and the manifest extras with their install state.",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := tools.ExecRunner{}

		builtin := tools.ReportList()
		names, err := manifest.Load()
		if err != nil {
			return err
		}

		nameW := 0
		for _, t := range builtin {
			if w := runewidth.StringWidth(t.Name); w > nameW {
				nameW = w
			}
		}
		for _, n := range names {
			if w := runewidth.StringWidth(n); w > nameW {
				nameW = w
			}
		}

		fmt.Println("built-in:")
		for _, t := range builtin {
			fmt.Println(statusLine(cmd, runner, t, nameW))
		}

		fmt.Println("\nmanifest:")
		if len(names) == 0 {
			fmt.Println("  (empty)")
			return nil
		}
		for _, n := range names {
			fmt.Println(statusLine(cmd, runner, manifest.Resolve(n), nameW))
		}
		return nil
	},
}

func statusLine(cmd *cobra.Command, runner tools.CommandRunner, t tools.ToolSpec, nameW int) string {
	res := tools.Check(cmd.Context(), runner, t)
	var line strings.Builder
	line.WriteString("  - " + runewidth.FillRight(t.Name, nameW) + "  ")
	if !res.Installed {
		line.WriteString("not installed")
		if strings.TrimSpace(res.Err) != "" {
			line.WriteString(fmt.Sprintf(" (%s)", res.Err))
		}
		return line.String()
	}
	ver := strings.TrimSpace(res.Version)
	if ver == "" {
		ver = "?"
	}
	line.WriteString(ver)
	if strings.TrimSpace(res.Path) != "" {
		line.WriteString(fmt.Sprintf(" · %s", res.Path))
	}
	return line.String()
}
