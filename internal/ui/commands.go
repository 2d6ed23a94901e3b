package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"devctl/internal/manifest"
	"devctl/internal/system"
	"devctl/internal/tools"
)

var runner tools.CommandRunner = tools.ExecRunner{}

// Commands
func checkAllCmd(specs []tools.ToolSpec) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(specs)+1)
	cmds = append(cmds, brewCmd())
	for _, t := range specs {
		t := t
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return checkMsg{name: t.Name, result: tools.Check(ctx, runner, t)}
		})
	}
	return tea.Batch(cmds...)
}

func brewCmd() tea.Cmd {
	return func() tea.Msg {
		path, err := tools.DetectBrew(runner)
		return brewMsg{path: path, err: err}
	}
}

func outdatedCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		latest, err := tools.BrewOutdated(ctx, runner)
		if err != nil {
			return outdatedMsg{}
		}
		return outdatedMsg{latest: latest}
	}
}

func bootstrapCmd() tea.Cmd {
	return func() tea.Msg {
		err := tools.BrewBootstrap(context.Background(), runner)
		return bootstrapDoneMsg{err: err}
	}
}

// installOneCmd installs a single missing tool. Installs run one at a
// time; the Update loop feeds the next tool only after this reports back.
func installOneCmd(t tools.ToolSpec) tea.Cmd {
	return func() tea.Msg {
		if t.Package == "" {
			return installProgressMsg{name: t.Name, note: "no formula, skipped", ok: false}
		}
		err := tools.BrewInstall(context.Background(), runner, t.Package)
		if err != nil {
			return installProgressMsg{name: t.Name, note: fmt.Sprintf("install failed: %v", err), ok: false}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		res := tools.Check(ctx, runner, t)
		note := res.Version
		if note == "" {
			note = "installed"
		}
		return installProgressMsg{name: t.Name, note: note, ok: true}
	}
}

func manifestCmd() tea.Cmd {
	return func() tea.Msg {
		names, err := manifest.Load()
		if err != nil {
			return manifestMsg{}
		}
		return manifestMsg{extras: manifest.Specs(names)}
	}
}

// periodic tick command
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// git info command
func gitInfoCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		gi, _ := system.GetGitInfo(ctx, dir)
		return gitInfoMsg{info: gi}
	}
}
