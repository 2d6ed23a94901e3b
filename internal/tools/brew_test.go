package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDetectBrewMissing(t *testing.T) {
	runner := &fakeRunner{}
	if _, err := DetectBrew(runner); !errors.Is(err, ErrBrewMissing) {
		t.Fatalf("err = %v, want ErrBrewMissing", err)
	}
}

func TestDetectBrewFound(t *testing.T) {
	runner := &fakeRunner{paths: map[string]string{"brew": "/opt/homebrew/bin/brew"}}
	path, err := DetectBrew(runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/opt/homebrew/bin/brew" {
		t.Fatalf("path = %q", path)
	}
}

func TestBrewInstall(t *testing.T) {
	runner := &fakeRunner{}
	if err := BrewInstall(context.Background(), runner, "git"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.commands) != 1 || strings.Join(runner.commands[0], " ") != "brew install git" {
		t.Fatalf("commands = %v", runner.commands)
	}
}

func TestBrewInstallFailure(t *testing.T) {
	runner := &fakeRunner{
		results: []fakeResult{{stderr: "Error: No available formula", exit: 1, err: errors.New("exit status 1")}},
	}
	err := BrewInstall(context.Background(), runner, "nope")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "No available formula") {
		t.Fatalf("error should carry stderr, got %v", err)
	}
	if !strings.Contains(err.Error(), "exit 1") {
		t.Fatalf("error should carry the exit code, got %v", err)
	}
}

func TestBrewCommandNotFound(t *testing.T) {
	runner := &fakeRunner{
		results: []fakeResult{{exit: 127, err: errors.New("exec: \"brew\": executable file not found in $PATH")}},
	}
	err := BrewUpgrade(context.Background(), runner, "git")
	if !errors.Is(err, ErrBrewMissing) {
		t.Fatalf("err = %v, want ErrBrewMissing", err)
	}
}

func TestBrewBootstrap(t *testing.T) {
	runner := &fakeRunner{}
	if err := BrewBootstrap(context.Background(), runner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.commands) != 1 {
		t.Fatalf("commands = %v", runner.commands)
	}
	got := runner.commands[0]
	if got[0] != BootstrapCommand[0] || got[len(got)-1] != BootstrapCommand[len(BootstrapCommand)-1] {
		t.Fatalf("bootstrap command = %v", got)
	}
}

func TestBrewBootstrapFailure(t *testing.T) {
	runner := &fakeRunner{
		results: []fakeResult{{stderr: "curl: (6) Could not resolve host", exit: 6, err: errors.New("exit status 6")}},
	}
	err := BrewBootstrap(context.Background(), runner)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Could not resolve host") {
		t.Fatalf("error should carry stderr, got %v", err)
	}
}

func TestBrewOutdated(t *testing.T) {
	payload := `{"formulae":[{"name":"git","installed_versions":["2.39.1"],"current_version":"2.43.0"},{"name":"jq","installed_versions":["1.6"],"current_version":"1.7.1"}],"casks":[]}`
	runner := &fakeRunner{results: []fakeResult{{stdout: payload}}}
	out, err := BrewOutdated(context.Background(), runner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(runner.commands[0], " ") != "brew outdated --json=v2" {
		t.Fatalf("commands = %v", runner.commands)
	}
	if out["git"] != "2.43.0" || out["jq"] != "1.7.1" {
		t.Fatalf("out = %v", out)
	}
}

func TestBrewOutdatedBadJSON(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: "not json"}}}
	if _, err := BrewOutdated(context.Background(), runner); err == nil {
		t.Fatal("expected a parse error")
	}
}
