package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// opsItem represents an item in the right-side operations panel.
type opsItem struct {
	title string
	desc  string
	cmd   string // slash command to execute on Enter
}

func (i opsItem) Title() string       { return i.title }
func (i opsItem) Description() string { return i.desc }
func (i opsItem) FilterValue() string { return i.title + " " + i.desc }

// newOpsList constructs the operations list with Vitesse-adapted styles.
func newOpsList() list.Model {
	items := []list.Item{
		opsItem{title: "Refresh", desc: "Re-run all tool checks", cmd: "/refresh"},
		opsItem{title: "Install missing", desc: "Provision absent tools", cmd: "/install"},
		opsItem{title: "Outdated", desc: "Ask brew for newer versions", cmd: "/outdated"},
		opsItem{title: "Status", desc: "One-line status summary", cmd: "/status"},
		opsItem{title: "Exit", desc: "Quit devctl", cmd: "/exit"},
	}

	d := list.NewDefaultDelegate()
	s := list.NewDefaultItemStyles()
	s.NormalTitle = s.NormalTitle.Foreground(Vitesse.Text)
	s.NormalDesc = s.NormalDesc.Foreground(Vitesse.Secondary)
	s.SelectedTitle = s.SelectedTitle.
		BorderForeground(Vitesse.Primary).
		Foreground(Vitesse.Primary)
	s.SelectedDesc = s.SelectedDesc.
		Foreground(Vitesse.Primary)
	s.DimmedTitle = s.DimmedTitle.Foreground(Vitesse.Secondary)
	s.DimmedDesc = s.DimmedDesc.Foreground(Vitesse.Muted)
	s.FilterMatch = lipgloss.NewStyle().Foreground(Vitesse.Yellow).Underline(true)
	d.Styles = s

	l := list.New(items, d, 28, 12)
	ls := list.DefaultStyles()
	ls.Title = ls.Title.Foreground(Vitesse.Text)
	ls.PaginationStyle = ls.PaginationStyle.Foreground(Vitesse.Secondary)
	ls.HelpStyle = ls.HelpStyle.Foreground(Vitesse.Muted)
	ls.StatusBar = ls.StatusBar.Foreground(Vitesse.Secondary)
	l.Styles = ls
	l.Title = ""
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowPagination(false)
	l.Select(0)
	return l
}

// opsRightWidth returns the desired width for the right operations panel.
func opsRightWidth(total int) int {
	w := total / 3
	if w < 24 {
		w = 24
	}
	if w > 36 {
		w = 36
	}
	if w > total-20 {
		// leave at least 20 cols for the left content
		w = total - 20
	}
	if w < 16 {
		w = 16
	}
	return w
}

// renderOpsPanel returns the operations list view padded to width.
func (m *model) renderOpsPanel(width, height int) string {
	if height < 3 {
		height = 3
	}
	if width < 16 {
		width = 16
	}
	m.ops.SetSize(width, height)
	return padLinesToWidth(m.ops.View(), width)
}

// getSelectedOps returns the current selected actionable item, or ok=false.
func (m *model) getSelectedOps() (opsItem, bool) {
	it := m.ops.SelectedItem()
	if it == nil {
		return opsItem{}, false
	}
	oi, ok := it.(opsItem)
	if !ok || strings.TrimSpace(oi.cmd) == "" {
		return opsItem{}, false
	}
	return oi, true
}
