package system

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

type GitInfo struct {
	InRepo   bool
	Branch   string
	ShortSHA string
	Dirty    bool
}

// gitProbe runs one short-lived git query in dir and returns trimmed stdout.
func gitProbe(ctx context.Context, dir string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, 800*time.Millisecond)
	defer cancel()
	full := append([]string{"-C", dir}, args...)
	out, err := exec.CommandContext(cctx, "git", full...).CombinedOutput()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetGitInfo inspects the Git repository at dir and returns basic status
// for the dashboard status bar. Absent git or a non-repo dir is not an error.
func GetGitInfo(ctx context.Context, dir string) (GitInfo, error) {
	gi := GitInfo{}
	if _, err := exec.LookPath("git"); err != nil {
		return gi, nil
	}

	inside, err := gitProbe(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil || inside != "true" {
		return gi, nil
	}
	gi.InRepo = true

	if branch, err := gitProbe(ctx, dir, "symbolic-ref", "--quiet", "--short", "HEAD"); err == nil {
		gi.Branch = branch
	} else if branch, err := gitProbe(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		// Detached head fallback
		gi.Branch = branch
	}

	if sha, err := gitProbe(ctx, dir, "rev-parse", "--short", "HEAD"); err == nil {
		gi.ShortSHA = sha
	}

	if status, err := gitProbe(ctx, dir, "status", "--porcelain"); err == nil {
		gi.Dirty = status != ""
	}

	return gi, nil
}
