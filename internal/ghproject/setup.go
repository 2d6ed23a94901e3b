package ghproject

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"devctl/internal/tools"
)

// ErrGHMissing means the gh CLI is not on the search path.
var ErrGHMissing = errors.New("gh not installed")

// Setup applies the catalog to repo through the gh CLI: labels first, then
// milestones, then starter issues. Per-item failures are reported and the
// run keeps going.
func Setup(ctx context.Context, r tools.CommandRunner, w io.Writer, repo string) error {
	if _, err := r.LookPath("gh"); err != nil {
		return ErrGHMissing
	}
	fmt.Fprintf(w, "setting up project structure for %s\n", repo)

	fmt.Fprintln(w, "\nlabels:")
	setupLabels(ctx, r, w, repo)

	fmt.Fprintln(w, "\nmilestones:")
	setupMilestones(ctx, r, w, repo)

	fmt.Fprintln(w, "\nissues:")
	setupIssues(ctx, r, w, repo)
	return nil
}

func setupLabels(ctx context.Context, r tools.CommandRunner, w io.Writer, repo string) {
	for _, l := range Labels {
		// --force updates color and description when the label exists
		_, err := runGH(ctx, r, repo,
			"label", "create", l.Name,
			"--color", l.Color,
			"--description", l.Description,
			"--force")
		if err != nil {
			fmt.Fprintf(w, "  × %s: %v\n", l.Name, err)
			continue
		}
		fmt.Fprintf(w, "  ✓ %s\n", l.Name)
	}
}

func setupMilestones(ctx context.Context, r tools.CommandRunner, w io.Writer, repo string) {
	for _, m := range Milestones {
		// gh has no milestone subcommand, so this goes through the REST API
		_, stderr, _, err := r.Run(ctx, "gh",
			"api", fmt.Sprintf("repos/%s/milestones", repo),
			"--method", "POST",
			"-f", "title="+m.Title,
			"-f", "description="+m.Description)
		if err != nil {
			msg := strings.TrimSpace(string(stderr))
			if strings.Contains(msg, "already_exists") || strings.Contains(msg, "Validation Failed") {
				fmt.Fprintf(w, "  • %s: already exists\n", m.Title)
				continue
			}
			if msg == "" {
				msg = err.Error()
			}
			fmt.Fprintf(w, "  × %s: %s\n", m.Title, msg)
			continue
		}
		fmt.Fprintf(w, "  ✓ %s\n", m.Title)
	}
}

func setupIssues(ctx context.Context, r tools.CommandRunner, w io.Writer, repo string) {
	existing := existingIssueTitles(ctx, r, repo)
	for _, i := range Issues {
		if existing[i.Title] {
			fmt.Fprintf(w, "  • %s: already exists\n", i.Title)
			continue
		}
		out, err := runGH(ctx, r, repo,
			"issue", "create",
			"--title", i.Title,
			"--body", i.Body)
		if err != nil {
			fmt.Fprintf(w, "  × %s: %v\n", i.Title, err)
			continue
		}
		url := ""
		if lines := strings.Fields(out); len(lines) > 0 {
			url = lines[len(lines)-1]
		}
		fmt.Fprintf(w, "  ✓ %s %s\n", i.Title, url)
	}
}

// existingIssueTitles asks for every issue regardless of state so closed
// starter issues are not recreated.
func existingIssueTitles(ctx context.Context, r tools.CommandRunner, repo string) map[string]bool {
	out, err := runGH(ctx, r, repo,
		"issue", "list",
		"--state", "all",
		"--limit", "100",
		"--json", "title")
	if err != nil || out == "" {
		return nil
	}
	var items []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		return nil
	}
	titles := make(map[string]bool, len(items))
	for _, it := range items {
		titles[it.Title] = true
	}
	return titles
}

func runGH(ctx context.Context, r tools.CommandRunner, repo string, args ...string) (string, error) {
	full := append(args, "-R", repo)
	stdout, stderr, exit, err := r.Run(ctx, "gh", full...)
	if err != nil {
		if exit == 127 {
			return "", ErrGHMissing
		}
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", errors.New(msg)
		}
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
