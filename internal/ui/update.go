package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"devctl/internal/tools"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := m.width - 24; w > 10 && w < 48 {
			m.prog.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case manifestMsg:
		builtins := tools.InstallList()
		order := builtins
		seen := make(map[string]bool, len(order))
		for _, t := range order {
			seen[strings.ToLower(t.Name)] = true
		}
		for _, t := range msg.extras {
			if seen[strings.ToLower(t.Name)] {
				continue
			}
			seen[strings.ToLower(t.Name)] = true
			order = append(order, t)
		}
		m.order = order
		m.extraCount = len(order) - len(builtins)
		m.results = make(map[string]tools.CheckResult)
		m.checking = len(m.order)
		return m, checkAllCmd(m.order)

	case checkMsg:
		m.results[msg.name] = msg.result
		if m.checking > 0 {
			m.checking--
		}
		if m.checking == 0 && !m.installing {
			if n := m.missingCount(); n > 0 {
				m.notice = fmt.Sprintf("%d tool(s) missing · press i to install", n)
			} else {
				m.notice = "all tools installed"
			}
		}
		return m, nil

	case brewMsg:
		m.brewChecked = true
		m.brewPath = msg.path
		m.brewErr = msg.err
		return m, nil

	case outdatedMsg:
		if msg.latest != nil {
			m.outdated = msg.latest
		}
		return m, nil

	case startInstallMsg:
		return m.startInstall()

	case bootstrapDoneMsg:
		m.bootstrapping = false
		if msg.err != nil {
			m.installing = false
			m.notice = "homebrew install failed"
			return m, tea.Printf("  × homebrew: %v", msg.err)
		}
		return m, tea.Batch(
			tea.Printf("  ✓ homebrew installed"),
			brewCmd(),
			installOneCmd(m.instList[m.instIndex]),
		)

	case installProgressMsg:
		return m.advanceInstall(msg)

	case manifestChangedMsg:
		m.notice = "tools.json changed, reloading"
		cmds := []tea.Cmd{manifestCmd()}
		if m.watchCh != nil {
			cmds = append(cmds, watchSubscribeCmd(m.watchCh))
		}
		return m, tea.Batch(cmds...)

	case watchStartedMsg:
		m.watch = msg.w
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(msg.ch)

	case noticeMsg:
		m.notice = string(msg)
		return m, nil

	case quitMsg:
		return m.quit()

	case gitInfoMsg:
		m.git = msg.info
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		cmds := []tea.Cmd{tickCmd()}
		if m.now.Sub(m.lastGitCheck) > 10*time.Second {
			m.lastGitCheck = m.now
			cmds = append(cmds, gitInfoCmd(m.cwd))
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.installing && !m.bootstrapping {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		if p, ok := pm.(progress.Model); ok {
			m.prog = p
		}
		return m, cmd
	}

	if m.ti.Focused() {
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		m.refreshSlash()
		return m, cmd
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "ctrl+p":
		m.ti.Focus()
		m.ti.SetValue("/")
		m.ti.CursorEnd()
		m.refreshSlash()
		return m, nil
	case "esc":
		if m.slashVisible {
			m.ti.SetValue("")
			m.refreshSlash()
			return m, nil
		}
		if m.ti.Focused() {
			m.ti.Blur()
			return m, nil
		}
		return m, nil
	}

	if m.slashVisible {
		switch msg.String() {
		case "up", "ctrl+k":
			if m.slashIndex > 0 {
				m.slashIndex--
			}
			return m, nil
		case "down", "ctrl+j":
			if m.slashIndex < len(m.slashFiltered)-1 {
				m.slashIndex++
			}
			return m, nil
		case "tab":
			if m.slashIndex < len(m.slashFiltered) {
				m.ti.SetValue(m.slashFiltered[m.slashIndex].Name)
				m.ti.CursorEnd()
				m.refreshSlash()
			}
			return m, nil
		case "enter":
			cmd := strings.TrimSpace(m.ti.Value())
			if m.slashIndex < len(m.slashFiltered) {
				cmd = m.slashFiltered[m.slashIndex].Name
			}
			m.ti.SetValue("")
			m.slashVisible = false
			m.slashIndex = 0
			return m, m.execSlashCmd(cmd)
		}
	}

	if m.ti.Focused() {
		if msg.String() == "enter" {
			line := strings.TrimSpace(m.ti.Value())
			m.ti.SetValue("")
			m.refreshSlash()
			if strings.HasPrefix(line, "/") {
				return m, m.execSlashCmd(line)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		m.refreshSlash()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "r":
		m.checking = len(m.order)
		m.results = make(map[string]tools.CheckResult)
		m.notice = "checking tools..."
		return m, checkAllCmd(m.order)
	case "i":
		return m.startInstall()
	case "/":
		m.ti.Focus()
		m.ti.SetValue("/")
		m.ti.CursorEnd()
		m.refreshSlash()
		return m, nil
	case "up", "down", "j", "k":
		var cmd tea.Cmd
		m.ops, cmd = m.ops.Update(msg)
		return m, cmd
	case "enter":
		if op, ok := m.getSelectedOps(); ok {
			return m, m.execSlashCmd(op.cmd)
		}
		return m, nil
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch {
	case zone.Get("dash.btn.refresh").InBounds(msg):
		m.checking = len(m.order)
		m.results = make(map[string]tools.CheckResult)
		m.notice = "checking tools..."
		return m, checkAllCmd(m.order)
	case zone.Get("dash.btn.install").InBounds(msg):
		return m.startInstall()
	case zone.Get("dash.btn.quit").InBounds(msg):
		return m.quit()
	}
	return m, nil
}

func (m model) startInstall() (tea.Model, tea.Cmd) {
	if m.installing || m.bootstrapping {
		return m, nil
	}
	missing := m.missingTools()
	if len(missing) == 0 {
		m.notice = "nothing to install"
		return m, nil
	}
	m.installing = true
	m.instList = missing
	m.instIndex = 0
	m.notice = ""
	cmds := []tea.Cmd{m.spin.Tick, m.prog.SetPercent(0)}
	if m.brewErr != nil {
		// Homebrew itself first, tools follow once it reports back.
		m.bootstrapping = true
		cmds = append(cmds,
			tea.Printf("  → homebrew not found, running installer"),
			bootstrapCmd(),
		)
	} else {
		cmds = append(cmds, installOneCmd(m.instList[0]))
	}
	return m, tea.Batch(cmds...)
}

func (m model) advanceInstall(msg installProgressMsg) (tea.Model, tea.Cmd) {
	var line string
	if msg.ok {
		line = fmt.Sprintf("  ✓ %s %s", msg.name, msg.note)
	} else {
		line = fmt.Sprintf("  × %s %s", msg.name, msg.note)
	}
	m.instIndex++
	cmds := []tea.Cmd{
		tea.Printf("%s", line),
		m.prog.SetPercent(float64(m.instIndex) / float64(len(m.instList))),
	}
	if m.instIndex < len(m.instList) {
		cmds = append(cmds, installOneCmd(m.instList[m.instIndex]))
		return m, tea.Batch(cmds...)
	}
	m.installing = false
	m.notice = "install finished, rechecking"
	m.checking = len(m.order)
	m.results = make(map[string]tools.CheckResult)
	cmds = append(cmds, checkAllCmd(m.order))
	return m, tea.Batch(cmds...)
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.watch != nil {
		m.watch.Close()
	}
	return m, tea.Quit
}
