package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"devctl/internal/provision"
	"devctl/internal/tools"
)

var versionsJSON bool

func init() {
	rootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().BoolVar(&versionsJSON, "json", false, "output JSON")
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Print the tool version report without installing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := provision.New(tools.ExecRunner{}, os.Stdout)
		entries := p.VersionReport(cmd.Context())
		entries = append(entries, p.ReportFor(cmd.Context(), extraSpecs())...)

		if versionsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}
		provision.PrintReport(os.Stdout, entries)
		return nil
	},
}
