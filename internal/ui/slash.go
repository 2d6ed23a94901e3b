package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"devctl/internal/tools"
)

type SlashCmd struct {
	Name    string
	Aliases []string
	Desc    string
}

var slashCmds = []SlashCmd{
	{Name: "/refresh", Aliases: []string{"/check"}, Desc: "Re-run all tool checks"},
	{Name: "/install", Desc: "Install everything that is missing"},
	{Name: "/outdated", Desc: "Ask brew for newer versions"},
	{Name: "/status", Desc: "Show a one-line status summary"},
	{Name: "/exit", Aliases: []string{"/quit"}, Desc: "Quit devctl"},
}

func (m *model) refreshSlash() {
	v := m.ti.Value()
	// slash visible only when input starts with '/'
	if !strings.HasPrefix(v, "/") {
		m.slashVisible = false
		m.slashFiltered = nil
		m.slashIndex = 0
		return
	}
	m.slashVisible = true
	q := strings.TrimSpace(v)
	want := q
	// if there are spaces, only use the first token for filtering
	if sp := strings.IndexAny(q, " \t"); sp >= 0 {
		want = q[:sp]
	}
	m.slashFiltered = filterSlashCommands(want)
	if m.slashIndex >= len(m.slashFiltered) {
		m.slashIndex = 0
	}
}

// filterSlashCommands fuzzy-matches commands by name and alias.
func filterSlashCommands(query string) []SlashCmd {
	// Show all when the query is just '/'
	if query == "/" {
		return slashCmds
	}
	q := strings.TrimPrefix(strings.ToLower(query), "/")

	names := make([]string, 0, len(slashCmds)*2)
	owner := make([]int, 0, len(slashCmds)*2)
	for i, c := range slashCmds {
		names = append(names, strings.TrimPrefix(c.Name, "/"))
		owner = append(owner, i)
		for _, a := range c.Aliases {
			names = append(names, strings.TrimPrefix(a, "/"))
			owner = append(owner, i)
		}
	}

	matches := fuzzy.Find(q, names)
	res := make([]SlashCmd, 0, len(matches))
	seen := make(map[int]bool)
	for _, mt := range matches {
		idx := owner[mt.Index]
		if seen[idx] {
			continue
		}
		seen[idx] = true
		res = append(res, slashCmds[idx])
	}
	return res
}

func renderSlashHelp(width int, cmds []SlashCmd, sel int) string {
	maxItems := 10
	if len(cmds) > maxItems {
		cmds = cmds[:maxItems]
		if sel >= maxItems {
			sel = maxItems - 1
		}
	}
	nameWidth := 12
	inner := width - 2
	if inner < 20 {
		inner = 20
	}
	hl := lipgloss.NewStyle().Foreground(Vitesse.Primary).Render
	dim := lipgloss.NewStyle().Foreground(Vitesse.Muted).Render
	var b strings.Builder
	b.WriteString("╭" + strings.Repeat("─", inner) + "╮\n")
	if len(cmds) == 0 {
		b.WriteString(slashRow("  no matches", inner))
	}
	for i, c := range cmds {
		line := fmt.Sprintf("  %-*s  %s", nameWidth, c.Name, dim(c.Desc))
		if i == sel {
			line = hl(line)
		}
		b.WriteString(slashRow(line, inner))
	}
	b.WriteString("╰" + strings.Repeat("─", inner) + "╯\n")
	b.WriteString("  ↑/↓ select · Tab complete · Enter run · Esc close\n")
	return b.String()
}

func slashRow(line string, inner int) string {
	if xansi.StringWidth(line) > inner {
		line = xansi.Truncate(line, inner, "…")
	}
	var b strings.Builder
	b.WriteString("│")
	b.WriteString(line)
	if pad := inner - xansi.StringWidth(line); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString("│\n")
	return b.String()
}

// execSlashCmd executes a slash command by name.
func (m model) execSlashCmd(cmd string) tea.Cmd {
	switch canonicalSlash(cmd) {
	case "/exit", "/quit":
		return func() tea.Msg { return quitMsg{} }
	case "/refresh", "/check":
		return tea.Batch(
			func() tea.Msg { return noticeMsg("checking tools...") },
			checkAllCmd(m.order),
		)
	case "/install":
		return func() tea.Msg { return startInstallMsg{} }
	case "/outdated":
		return tea.Batch(
			func() tea.Msg { return noticeMsg("asking brew for newer versions...") },
			outdatedCmd(),
		)
	case "/status":
		return func() tea.Msg {
			parts := make([]string, 0, len(m.order))
			for _, t := range m.order {
				res, ok := m.results[t.Name]
				switch {
				case !ok:
					parts = append(parts, fmt.Sprintf("%s: checking", t.Name))
				case !res.Installed:
					parts = append(parts, fmt.Sprintf("%s: missing", t.Name))
				default:
					ver := res.Version
					if ver == "" {
						ver = "?"
					}
					if latest := m.outdated[t.Package]; latest != "" && tools.VersionLess(ver, latest) {
						parts = append(parts, fmt.Sprintf("%s: %s→%s", t.Name, ver, latest))
					} else {
						parts = append(parts, fmt.Sprintf("%s: %s", t.Name, ver))
					}
				}
			}
			if len(parts) == 0 {
				return noticeMsg("no status yet")
			}
			return noticeMsg(strings.Join(parts, " · "))
		}
	default:
		return func() tea.Msg { return noticeMsg(fmt.Sprintf("unknown command %s", cmd)) }
	}
}

// canonicalize command including aliases
func canonicalSlash(name string) string {
	n := strings.ToLower(name)
	for _, c := range slashCmds {
		if strings.ToLower(c.Name) == n {
			return c.Name
		}
		for _, a := range c.Aliases {
			if strings.ToLower(a) == n {
				return c.Name
			}
		}
	}
	return n
}
