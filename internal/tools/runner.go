package tools

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// CommandRunner abstracts subprocess execution so provisioning logic can be
// tested without touching the host system.
type CommandRunner interface {
	// Run executes name with args and returns captured stdout, stderr, the
	// process exit code, and any execution error.
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, exit int, err error)
	// LookPath resolves name against the search path.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands on the host via os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exit := 0
	if err != nil {
		var exitErr *exec.ExitError
		var execErr *exec.Error
		switch {
		case errors.As(err, &exitErr):
			exit = exitErr.ExitCode()
		case errors.As(err, &execErr):
			// binary not found or not executable
			exit = 127
		default:
			exit = -1
		}
	}
	return stdout.Bytes(), stderr.Bytes(), exit, err
}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
