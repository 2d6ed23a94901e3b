package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the devctl config directory under the user config base.
// On Linux this typically resolves to $XDG_CONFIG_HOME/devctl; on macOS to
// ~/Library/Application Support/devctl; on Windows to %AppData%/devctl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "devctl"), nil
}

// ManifestPath returns the path of the extra-tools manifest file.
func ManifestPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tools.json"), nil
}
