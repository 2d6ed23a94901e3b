package ui

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	fsnotify "github.com/fsnotify/fsnotify"

	"devctl/internal/config"
)

// startWatchCmd watches the config directory so external edits to
// tools.json refresh the dashboard.
func startWatchCmd() tea.Cmd {
	return func() tea.Msg {
		dir, err := config.Dir()
		if err != nil {
			return nil
		}
		// the dir may not exist before the first save
		_ = os.MkdirAll(dir, 0o755)
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil
		}
		_ = w.Add(dir)
		ch := make(chan struct{}, 1)
		go func() {
			for {
				select {
				case ev, ok := <-w.Events:
					if !ok {
						return
					}
					if filepath.Base(ev.Name) != "tools.json" {
						continue
					}
					if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
						continue
					}
					select {
					case ch <- struct{}{}:
					default:
					}
				case _, ok := <-w.Errors:
					if !ok {
						return
					}
				}
			}
		}()
		return watchStartedMsg{w: w, ch: ch}
	}
}

func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		<-ch
		// editors often write in bursts; let the dust settle
		time.Sleep(120 * time.Millisecond)
		return manifestChangedMsg{}
	}
}

// shortPath abbreviates the home directory prefix for display.
func shortPath(p, home string) string {
	if home != "" && strings.HasPrefix(p, home) {
		return "~" + strings.TrimPrefix(p, home)
	}
	return p
}
