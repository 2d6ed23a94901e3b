package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"devctl/internal/system"
	"devctl/internal/tools"
)

type statusItem struct {
	Name      string `json:"name"`
	Origin    string `json:"origin"` // built-in | manifest
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
	Raw       string `json:"raw,omitempty"`
	Path      string `json:"path,omitempty"`
	Latest    string `json:"latest,omitempty"`
	Err       string `json:"err,omitempty"`
}

type statusReport struct {
	Brew     string       `json:"brew,omitempty"`
	Items    []statusItem `json:"items"`
	Missing  int          `json:"missing"`
	Outdated int          `json:"outdated"`
}

var statusJSON bool

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output JSON report")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the package manager and every managed tool",
	Long:  "Shows install state, version and upgrade hints for Homebrew, the built-in tools and the manifest extras. Never changes the system.",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := tools.ExecRunner{}
		ctx := cmd.Context()

		rep := statusReport{}
		if path, err := tools.DetectBrew(runner); err == nil {
			rep.Brew = path
		}

		var outdated map[string]string
		if rep.Brew != "" {
			var err error
			outdated, err = tools.BrewOutdated(ctx, runner)
			if err != nil {
				system.Logger.Warn("brew outdated query failed", "err", err)
			}
		}

		builtin := tools.ReportList()
		specs := append(builtin, extraSpecs()...)
		for i, t := range specs {
			res := tools.Check(ctx, runner, t)
			it := statusItem{
				Name:      t.Name,
				Origin:    "built-in",
				Installed: res.Installed,
				Version:   res.Version,
				Raw:       res.Raw,
				Path:      res.Path,
				Err:       res.Err,
			}
			if i >= len(builtin) {
				it.Origin = "manifest"
			}
			if v, ok := outdated[t.Package]; ok && res.Installed {
				it.Latest = v
			}
			if !it.Installed {
				rep.Missing++
			}
			if it.Latest != "" && (it.Version == "" || tools.VersionLess(it.Version, it.Latest)) {
				rep.Outdated++
			}
			rep.Items = append(rep.Items, it)
		}

		if statusJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}

		if rep.Brew != "" {
			fmt.Printf("- brew: %s\n", rep.Brew)
		} else {
			fmt.Println("- brew: not installed")
		}
		for _, it := range rep.Items {
			var line strings.Builder
			line.WriteString(fmt.Sprintf("- %s: ", it.Name))
			if !it.Installed {
				line.WriteString("not installed")
				if strings.TrimSpace(it.Err) != "" {
					line.WriteString(fmt.Sprintf(" (%s)", it.Err))
				}
				fmt.Println(line.String())
				continue
			}
			ver := strings.TrimSpace(it.Version)
			if ver == "" {
				ver = "?"
			}
			if it.Latest != "" && tools.VersionLess(ver, it.Latest) {
				line.WriteString(fmt.Sprintf("%s → upgradable %s", ver, it.Latest))
			} else {
				line.WriteString(ver)
			}
			if it.Origin == "manifest" {
				line.WriteString(" · manifest")
			}
			if strings.TrimSpace(it.Path) != "" {
				line.WriteString(fmt.Sprintf(" · %s", it.Path))
			}
			fmt.Println(line.String())
		}
		fmt.Printf("\nSummary: %d tool(s), %d missing, %d upgradable\n", len(rep.Items), rep.Missing, rep.Outdated)
		return nil
	},
}
