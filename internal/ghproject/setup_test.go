package ghproject

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

type fakeRunner struct {
	paths    map[string]string
	replies  map[string]fakeResult
	commands [][]string
}

type fakeResult struct {
	stdout string
	stderr string
	exit   int
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	cmd := append([]string{name}, args...)
	f.commands = append(f.commands, cmd)
	if res, ok := f.replies[strings.Join(cmd, " ")]; ok {
		return []byte(res.stdout), []byte(res.stderr), res.exit, res.err
	}
	return nil, nil, 0, nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func ghRunner() *fakeRunner {
	return &fakeRunner{paths: map[string]string{"gh": "/opt/homebrew/bin/gh"}}
}

func TestSetupRequiresGH(t *testing.T) {
	runner := &fakeRunner{}
	var buf bytes.Buffer
	err := Setup(context.Background(), runner, &buf, "octo/demo")
	if !errors.Is(err, ErrGHMissing) {
		t.Fatalf("err = %v, want ErrGHMissing", err)
	}
	if len(runner.commands) != 0 {
		t.Fatalf("no commands expected, got %v", runner.commands)
	}
}

func TestSetupLabelCommands(t *testing.T) {
	runner := ghRunner()
	var buf bytes.Buffer
	if err := Setup(context.Background(), runner, &buf, "octo/demo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var labelCmds [][]string
	for _, cmd := range runner.commands {
		if len(cmd) > 2 && cmd[1] == "label" {
			labelCmds = append(labelCmds, cmd)
		}
	}
	if len(labelCmds) != len(Labels) {
		t.Fatalf("%d label commands, want %d", len(labelCmds), len(Labels))
	}
	want := []string{
		"gh", "label", "create", "bug",
		"--color", "d73a4a",
		"--description", "Something isn't working",
		"--force", "-R", "octo/demo",
	}
	if !reflect.DeepEqual(labelCmds[0], want) {
		t.Fatalf("first label command = %v, want %v", labelCmds[0], want)
	}
}

func TestSetupMilestoneCommands(t *testing.T) {
	runner := ghRunner()
	var buf bytes.Buffer
	if err := Setup(context.Background(), runner, &buf, "octo/demo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var apiCmds [][]string
	for _, cmd := range runner.commands {
		if len(cmd) > 1 && cmd[1] == "api" {
			apiCmds = append(apiCmds, cmd)
		}
	}
	if len(apiCmds) != len(Milestones) {
		t.Fatalf("%d api commands, want %d", len(apiCmds), len(Milestones))
	}
	want := []string{
		"gh", "api", "repos/octo/demo/milestones",
		"--method", "POST",
		"-f", "title=v0.1 - Initial Setup",
		"-f", "description=Basic project scaffolding and repository configuration.",
	}
	if !reflect.DeepEqual(apiCmds[0], want) {
		t.Fatalf("first milestone command = %v, want %v", apiCmds[0], want)
	}
	for _, cmd := range apiCmds {
		for _, arg := range cmd {
			if arg == "-R" {
				t.Fatalf("gh api takes the repo in the path, not -R: %v", cmd)
			}
		}
	}
}

func TestSetupMilestoneAlreadyExists(t *testing.T) {
	runner := ghRunner()
	key := strings.Join([]string{
		"gh", "api", "repos/octo/demo/milestones",
		"--method", "POST",
		"-f", "title=v0.1 - Initial Setup",
		"-f", "description=Basic project scaffolding and repository configuration.",
	}, " ")
	runner.replies = map[string]fakeResult{
		key: {stderr: `{"message":"Validation Failed","errors":[{"code":"already_exists"}]}`, exit: 1, err: errors.New("exit status 1")},
	}
	var buf bytes.Buffer
	if err := Setup(context.Background(), runner, &buf, "octo/demo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "• v0.1 - Initial Setup: already exists") {
		t.Fatalf("expected a skip line, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "✓ v0.2 - Core Features") {
		t.Fatalf("later milestones should still be created:\n%s", buf.String())
	}
}

func TestSetupSkipsExistingIssues(t *testing.T) {
	runner := ghRunner()
	listKey := "gh issue list --state all --limit 100 --json title -R octo/demo"
	runner.replies = map[string]fakeResult{
		listKey: {stdout: `[{"title":"README setup"},{"title":"Unrelated"}]`},
	}
	var buf bytes.Buffer
	if err := Setup(context.Background(), runner, &buf, "octo/demo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var created []string
	for _, cmd := range runner.commands {
		if len(cmd) > 2 && cmd[1] == "issue" && cmd[2] == "create" {
			created = append(created, cmd[4])
		}
	}
	want := []string{"Add LICENSE", "Set up CI/CD", "Create contributing guidelines"}
	if !reflect.DeepEqual(created, want) {
		t.Fatalf("created = %v, want %v", created, want)
	}
	if !strings.Contains(buf.String(), "• README setup: already exists") {
		t.Fatalf("expected a skip line, got:\n%s", buf.String())
	}
}

func TestSetupOrder(t *testing.T) {
	runner := ghRunner()
	var buf bytes.Buffer
	if err := Setup(context.Background(), runner, &buf, "octo/demo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstLabel, firstAPI, firstIssue := -1, -1, -1
	for i, cmd := range runner.commands {
		switch cmd[1] {
		case "label":
			if firstLabel < 0 {
				firstLabel = i
			}
		case "api":
			if firstAPI < 0 {
				firstAPI = i
			}
		case "issue":
			if firstIssue < 0 {
				firstIssue = i
			}
		}
	}
	if !(firstLabel < firstAPI && firstAPI < firstIssue) {
		t.Fatalf("order labels=%d milestones=%d issues=%d", firstLabel, firstAPI, firstIssue)
	}
}

func TestSuggestMarkdown(t *testing.T) {
	md := SuggestMarkdown("octo/demo")
	if !strings.Contains(md, "octo/demo") {
		t.Fatal("missing repo name")
	}
	for _, l := range Labels {
		if !strings.Contains(md, l.Name) || !strings.Contains(md, "#"+l.Color) {
			t.Errorf("label %s missing from markdown", l.Name)
		}
	}
	for _, i := range Issues {
		if !strings.Contains(md, i.Title) {
			t.Errorf("issue %q missing from markdown", i.Title)
		}
	}
	for _, m := range Milestones {
		if !strings.Contains(md, m.Title) {
			t.Errorf("milestone %q missing from markdown", m.Title)
		}
	}
}

func TestRenderSuggestionsPlain(t *testing.T) {
	var buf bytes.Buffer
	RenderSuggestions(&buf, "", true)
	if !strings.Contains(buf.String(), "repository suggestions") {
		t.Fatalf("plain render missing header:\n%s", buf.String())
	}
}
