package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrBrewMissing means Homebrew is not on the search path.
var ErrBrewMissing = errors.New("brew not installed")

// BootstrapCommand is the official Homebrew installer invocation.
// NONINTERACTIVE keeps the script from waiting for a confirmation prompt.
var BootstrapCommand = []string{
	"/bin/bash", "-c",
	`NONINTERACTIVE=1 /bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`,
}

// DetectBrew resolves the brew binary, returning ErrBrewMissing when it is
// not on PATH.
func DetectBrew(r CommandRunner) (string, error) {
	path, err := r.LookPath("brew")
	if err != nil {
		return "", ErrBrewMissing
	}
	return path, nil
}

// BrewBootstrap runs the Homebrew install script.
func BrewBootstrap(ctx context.Context, r CommandRunner) error {
	_, stderr, exit, err := r.Run(ctx, BootstrapCommand[0], BootstrapCommand[1:]...)
	if err != nil {
		return fmt.Errorf("homebrew bootstrap: exit %d: %s", exit, errDetail(stderr, err))
	}
	return nil
}

// BrewInstall installs a formula.
func BrewInstall(ctx context.Context, r CommandRunner, formula string) error {
	_, err := runBrew(ctx, r, "install", formula)
	return err
}

// BrewUninstall removes a formula.
func BrewUninstall(ctx context.Context, r CommandRunner, formula string) error {
	_, err := runBrew(ctx, r, "uninstall", formula)
	return err
}

// BrewUpgrade upgrades a formula to the latest version brew knows.
func BrewUpgrade(ctx context.Context, r CommandRunner, formula string) error {
	_, err := runBrew(ctx, r, "upgrade", formula)
	return err
}

type brewOutdatedPayload struct {
	Formulae []struct {
		Name              string   `json:"name"`
		InstalledVersions []string `json:"installed_versions"`
		CurrentVersion    string   `json:"current_version"`
	} `json:"formulae"`
}

// BrewOutdated asks brew for formulae with a newer version available and
// returns formula name -> newest version.
func BrewOutdated(ctx context.Context, r CommandRunner) (map[string]string, error) {
	stdout, err := runBrew(ctx, r, "outdated", "--json=v2")
	if err != nil {
		return nil, err
	}
	var payload brewOutdatedPayload
	if err := json.Unmarshal(stdout, &payload); err != nil {
		return nil, fmt.Errorf("parse brew outdated output: %w", err)
	}
	out := make(map[string]string, len(payload.Formulae))
	for _, f := range payload.Formulae {
		out[f.Name] = f.CurrentVersion
	}
	return out, nil
}

func runBrew(ctx context.Context, r CommandRunner, args ...string) ([]byte, error) {
	stdout, stderr, exit, err := r.Run(ctx, "brew", args...)
	if err != nil {
		if exit == 127 {
			return nil, ErrBrewMissing
		}
		return nil, fmt.Errorf("brew %s: exit %d: %s", strings.Join(args, " "), exit, errDetail(stderr, err))
	}
	return stdout, nil
}

func errDetail(stderr []byte, err error) string {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return msg
	}
	return err.Error()
}
