package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"devctl/internal/config"
	"devctl/internal/manifest"
)

var configSchema bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configSchema, "schema", false, "print the tools.json JSON Schema")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show devctl configuration",
	Long:  "Creates the config directory, seeds an empty manifest when missing, and prints the locations. --schema prints the JSON Schema for tools.json instead.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configSchema {
			b, err := manifest.MarshalSchema(manifest.Schema())
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		dir, err := config.Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		path, err := manifest.Path()
		if err != nil {
			return err
		}
		if fileExists(path) {
			fmt.Printf("• keeping existing manifest: %s\n", path)
		} else {
			if err := manifest.Save(nil); err != nil {
				return err
			}
			fmt.Printf("✓ created manifest: %s\n", path)
		}

		names, err := manifest.Load()
		if err != nil {
			return err
		}
		fmt.Printf("\nconfig dir: %s\n", dir)
		if len(names) == 0 {
			fmt.Println("extras:     (none)")
		} else {
			fmt.Printf("extras:     %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

func fileExists(path string) bool {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return true
	}
	return false
}
