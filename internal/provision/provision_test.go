package provision

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"devctl/internal/tools"
)

// fakeRunner replays canned results keyed by the joined command line and
// records every command it sees.
type fakeRunner struct {
	paths    map[string]string
	replies  map[string]fakeResult
	commands [][]string
	lookups  []string
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
	f.lookups = append(f.lookups, name)
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func allPresent() map[string]string {
	return map[string]string{
		"brew":    "/opt/homebrew/bin/brew",
		"git":     "/usr/bin/git",
		"node":    "/opt/homebrew/bin/node",
		"python3": "/opt/homebrew/bin/python3",
		"jq":      "/opt/homebrew/bin/jq",
		"wget":    "/opt/homebrew/bin/wget",
		"docker":  "/usr/local/bin/docker",
	}
}

func probeReplies() map[string]fakeResult {
	return map[string]fakeResult{
		"git --version":     {stdout: "git version 2.39.2\n"},
		"node --version":    {stdout: "v20.11.0\n"},
		"python3 --version": {stdout: "Python 3.12.1\n"},
		"jq --version":      {stdout: "jq-1.7.1\n"},
		"wget --version":    {stdout: "GNU Wget 1.21.4 built on darwin21.6.0.\nCompiled with gcc.\n"},
		"docker --version":  {stdout: "Docker version 24.0.6, build ed223bc\n"},
	}
}

func bootstrapKey() string {
	return strings.Join(tools.BootstrapCommand, " ")
}

func TestRunAllPresentInstallsNothing(t *testing.T) {
	runner := &fakeRunner{paths: allPresent(), replies: probeReplies()}
	var buf bytes.Buffer

	res, err := New(runner, &buf).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bootstrapped {
		t.Fatal("no bootstrap expected")
	}
	if len(res.Installed) != 0 {
		t.Fatalf("installed = %v, want none", res.Installed)
	}
	if len(res.Present) != 5 {
		t.Fatalf("present = %v, want all five", res.Present)
	}
	for _, cmd := range runner.commands {
		if cmd[0] == "brew" || cmd[0] == "/bin/bash" {
			t.Fatalf("unexpected install command %v", cmd)
		}
	}
	if len(res.Report) != 6 {
		t.Fatalf("report has %d entries, want 6", len(res.Report))
	}
	for _, name := range []string{"git", "node", "python", "jq", "wget"} {
		if !strings.Contains(buf.String(), name+" already installed") {
			t.Errorf("output is missing %q already installed line:\n%s", name, buf.String())
		}
	}
}

func TestRunBootstrapsOnceBeforeAnything(t *testing.T) {
	paths := allPresent()
	delete(paths, "brew")
	runner := &fakeRunner{paths: paths, replies: probeReplies()}
	var buf bytes.Buffer

	res, err := New(runner, &buf).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Bootstrapped {
		t.Fatal("expected a bootstrap")
	}
	if len(runner.commands) == 0 || strings.Join(runner.commands[0], " ") != bootstrapKey() {
		t.Fatalf("first command should be the bootstrap, got %v", runner.commands)
	}
	count := 0
	for _, cmd := range runner.commands {
		if strings.Join(cmd, " ") == bootstrapKey() {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("bootstrap ran %d times, want once", count)
	}
}

func TestRunInstallsMissingToolsInOrder(t *testing.T) {
	paths := allPresent()
	delete(paths, "node")
	delete(paths, "python3")
	delete(paths, "wget")
	runner := &fakeRunner{paths: paths, replies: probeReplies()}
	var buf bytes.Buffer

	res, err := New(runner, &buf).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var installs []string
	for _, cmd := range runner.commands {
		if len(cmd) == 3 && cmd[0] == "brew" && cmd[1] == "install" {
			installs = append(installs, cmd[2])
		}
	}
	want := []string{"node", "python", "wget"}
	if strings.Join(installs, " ") != strings.Join(want, " ") {
		t.Fatalf("installs = %v, want %v", installs, want)
	}
	if strings.Join(res.Installed, " ") != "node python wget" {
		t.Fatalf("res.Installed = %v", res.Installed)
	}
	if strings.Join(res.Present, " ") != "git jq" {
		t.Fatalf("res.Present = %v", res.Present)
	}
}

func TestRunAllMissingInstallsEachOnce(t *testing.T) {
	runner := &fakeRunner{paths: map[string]string{"brew": "/opt/homebrew/bin/brew"}}
	var buf bytes.Buffer

	res, err := New(runner, &buf).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[string]int{}
	for _, cmd := range runner.commands {
		if len(cmd) == 3 && cmd[0] == "brew" && cmd[1] == "install" {
			seen[cmd[2]]++
		}
	}
	for _, name := range []string{"git", "node", "python", "jq", "wget"} {
		if seen[name] != 1 {
			t.Errorf("%s installed %d times, want exactly once", name, seen[name])
		}
	}
	if len(seen) != 5 {
		t.Fatalf("unexpected installs: %v", seen)
	}
	for _, e := range res.Report {
		if e.Text != Placeholder {
			t.Errorf("%s report text = %q, want placeholder", e.Name, e.Text)
		}
	}
}

func TestRunBootstrapFailureStopsEverything(t *testing.T) {
	paths := allPresent()
	delete(paths, "brew")
	runner := &fakeRunner{
		paths: paths,
		replies: map[string]fakeResult{
			bootstrapKey(): {stderr: "curl: (6) Could not resolve host", exit: 6, err: errors.New("exit status 6")},
		},
	}
	var buf bytes.Buffer

	res, err := New(runner, &buf).Run(context.Background())
	if !errors.Is(err, ErrBootstrapFailed) {
		t.Fatalf("err = %v, want ErrBootstrapFailed", err)
	}
	if res != nil {
		t.Fatal("no result expected after a failed bootstrap")
	}
	if len(runner.commands) != 1 {
		t.Fatalf("nothing may run after a failed bootstrap, got %v", runner.commands)
	}
}

func TestRunInstallFailureStopsRun(t *testing.T) {
	paths := allPresent()
	delete(paths, "node")
	runner := &fakeRunner{
		paths:   paths,
		replies: probeReplies(),
	}
	runner.replies["brew install node"] = fakeResult{stderr: "Error: node: download failed", exit: 1, err: errors.New("exit status 1")}
	var buf bytes.Buffer

	_, err := New(runner, &buf).Run(context.Background())
	if !errors.Is(err, ErrInstallFailed) {
		t.Fatalf("err = %v, want ErrInstallFailed", err)
	}
	last := runner.commands[len(runner.commands)-1]
	if strings.Join(last, " ") != "brew install node" {
		t.Fatalf("last command = %v, nothing may run after a failed install", last)
	}
	for _, name := range runner.lookups {
		if name == "python3" || name == "jq" || name == "wget" {
			t.Fatalf("tool %s was still probed after the failure", name)
		}
	}
}

func TestVersionReportFirstLineVerbatim(t *testing.T) {
	paths := allPresent()
	delete(paths, "docker")
	runner := &fakeRunner{paths: paths, replies: probeReplies()}
	runner.replies["git --version"] = fakeResult{stdout: "git version 2.39.2 (Apple Git-143)\nsecond line\n"}
	var buf bytes.Buffer

	entries := New(runner, &buf).VersionReport(context.Background())
	wantOrder := []string{"git", "node", "python", "jq", "wget", "docker"}
	for i, name := range wantOrder {
		if entries[i].Name != name {
			t.Fatalf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
	if entries[0].Text != "git version 2.39.2 (Apple Git-143)" {
		t.Fatalf("git text = %q", entries[0].Text)
	}
	if entries[5].Text != Placeholder || entries[5].Installed {
		t.Fatalf("docker entry = %+v, want placeholder and not installed", entries[5])
	}
}

func TestEnsureToolInstallsFormulaNotBinary(t *testing.T) {
	runner := &fakeRunner{paths: map[string]string{"brew": "/opt/homebrew/bin/brew"}}
	var buf bytes.Buffer
	spec, _ := tools.Find("python")

	installed, err := New(runner, &buf).EnsureTool(context.Background(), spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !installed {
		t.Fatal("expected an install")
	}
	found := false
	for _, cmd := range runner.commands {
		if strings.Join(cmd, " ") == "brew install python" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected brew install python, got %v", runner.commands)
	}
}

func TestEnsureToolWithoutFormulaSkips(t *testing.T) {
	runner := &fakeRunner{}
	var buf bytes.Buffer
	spec, _ := tools.Find("docker")

	installed, err := New(runner, &buf).EnsureTool(context.Background(), spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if installed {
		t.Fatal("docker must never be installed automatically")
	}
	if len(runner.commands) != 0 {
		t.Fatalf("no commands expected, got %v", runner.commands)
	}
}

func TestRunWithExtras(t *testing.T) {
	runner := &fakeRunner{paths: allPresent(), replies: probeReplies()}
	var buf bytes.Buffer
	extra := tools.ToolSpec{Name: "ripgrep", Binary: "rg", Package: "ripgrep", VersionArgs: []string{"--version"}}

	res, err := New(runner, &buf).Run(context.Background(), extra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, cmd := range runner.commands {
		if strings.Join(cmd, " ") == "brew install ripgrep" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected brew install ripgrep, got %v", runner.commands)
	}
	last := res.Report[len(res.Report)-1]
	if last.Name != "ripgrep" {
		t.Fatalf("extras should be reported after the built-in set, got %+v", res.Report)
	}
}

func TestRunExtrasNeverDuplicateBuiltins(t *testing.T) {
	paths := allPresent()
	delete(paths, "git")
	runner := &fakeRunner{paths: paths, replies: probeReplies()}
	var buf bytes.Buffer
	spec, _ := tools.Find("git")

	res, err := New(runner, &buf).Run(context.Background(), spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count := 0
	for _, cmd := range runner.commands {
		if strings.Join(cmd, " ") == "brew install git" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("git installed %d times, want once", count)
	}
	names := map[string]int{}
	for _, e := range res.Report {
		names[e.Name]++
	}
	if names["git"] != 1 {
		t.Fatalf("git reported %d times, want once", names["git"])
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, []ReportEntry{
		{Name: "git", Text: "git version 2.39.2", Installed: true},
		{Name: "docker", Text: Placeholder, Installed: false},
	})
	out := buf.String()
	if !strings.Contains(out, "✓ git") {
		t.Errorf("missing ok line:\n%s", out)
	}
	if !strings.Contains(out, "× docker") {
		t.Errorf("missing missing-tool line:\n%s", out)
	}
	if !strings.Contains(out, Placeholder) {
		t.Errorf("missing placeholder:\n%s", out)
	}
}
