package ui

import (
	"time"

	"github.com/fsnotify/fsnotify"

	"devctl/internal/system"
	"devctl/internal/tools"
)

// Bubble Tea messages
type checkMsg struct {
	name   string
	result tools.CheckResult
}

type brewMsg struct {
	path string
	err  error
}

type outdatedMsg struct {
	latest map[string]string
}

// sequential install flow
type startInstallMsg struct{}

type bootstrapDoneMsg struct{ err error }

type installProgressMsg struct {
	name string
	note string
	ok   bool
}

// manifest reloads
type manifestMsg struct{ extras []tools.ToolSpec }

// fsnotify integration
type watchStartedMsg struct {
	w  *fsnotify.Watcher
	ch chan struct{}
}
type manifestChangedMsg struct{}

// generic notifications and quit
type noticeMsg string
type quitMsg struct{}

// periodic tick for the status bar clock
type tickMsg time.Time

// git info updates
type gitInfoMsg struct{ info system.GitInfo }
