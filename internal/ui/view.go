package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"devctl/internal/config"
	"devctl/internal/tools"
	appver "devctl/internal/version"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderBanner(m.width))
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	if m.installing || m.bootstrapping {
		b.WriteString(m.renderInstalling())
	}
	b.WriteString("\n")
	b.WriteString(m.renderWorkbar())
	b.WriteString("\n")
	b.WriteString(renderInputUI(m.ti.View(), m.width))
	if m.slashVisible {
		b.WriteString(renderSlashHelp(boxWidth(m.width), m.slashFiltered, m.slashIndex))
	}
	if m.notice != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(Vitesse.Secondary).Render("  "+m.notice) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return zone.Scan(b.String())
}

// renderBody joins the tool status card with the operations panel.
func (m model) renderBody() string {
	left := m.renderTools() + m.renderEnv()
	opsW := opsRightWidth(m.width)
	leftW := m.width - opsW - 4
	if leftW < 24 {
		leftW = 24
	}
	lines := strings.Count(left, "\n") + 1
	right := (&m).renderOpsPanel(opsW, maxInt(lines, 12))
	return lipgloss.JoinHorizontal(lipgloss.Top, padLinesToWidth(left, leftW), right) + "\n"
}

// renderEnv is the one-line environment summary under the tool card.
func (m model) renderEnv() string {
	dim := lipgloss.NewStyle().Foreground(Vitesse.Muted)
	dir, err := config.Dir()
	if err != nil {
		dir = "?"
	}
	return dim.Render(fmt.Sprintf("\n  config %s · %d manifest extra(s)", shortPath(dir, m.home), m.extraCount)) + "\n"
}

func (m model) renderTools() string {
	ok := lipgloss.NewStyle().Foreground(Vitesse.Primary)
	bad := lipgloss.NewStyle().Foreground(Vitesse.Red)
	warn := lipgloss.NewStyle().Foreground(Vitesse.Yellow)
	dim := lipgloss.NewStyle().Foreground(Vitesse.Muted)

	var b strings.Builder

	// Homebrew first, everything below installs through it.
	switch {
	case !m.brewChecked:
		b.WriteString(dim.Render("  … homebrew") + "\n")
	case m.brewErr != nil:
		b.WriteString(bad.Render("  × homebrew not installed") + "\n")
	default:
		b.WriteString(ok.Render("  ✓ homebrew") + dim.Render(" · "+m.brewPath) + "\n")
	}

	for _, t := range m.order {
		res, done := m.results[t.Name]
		switch {
		case !done:
			b.WriteString(dim.Render("  … "+t.Name) + "\n")
		case !res.Installed:
			b.WriteString(bad.Render("  × "+t.Name+" not found") + "\n")
		default:
			ver := res.Version
			if ver == "" {
				ver = "installed"
			}
			line := ok.Render("  ✓ "+t.Name) + " " + ver
			if latest := m.outdated[t.Package]; latest != "" && tools.VersionLess(res.Version, latest) {
				line += warn.Render(" → " + latest)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func (m model) renderInstalling() string {
	var label string
	switch {
	case m.bootstrapping:
		label = "installing homebrew"
	case m.instIndex < len(m.instList):
		label = fmt.Sprintf("installing %s (%d/%d)", m.instList[m.instIndex].Name, m.instIndex+1, len(m.instList))
	default:
		label = "finishing up"
	}
	return fmt.Sprintf("\n  %s %s %s\n", m.spin.View(), m.prog.View(), label)
}

func (m model) renderWorkbar() string {
	refresh := zone.Mark("dash.btn.refresh", Button(strings.TrimSpace(IconRefresh()+" refresh")))
	install := zone.Mark("dash.btn.install", Button(strings.TrimSpace(IconInstall()+" install missing")))
	quit := zone.Mark("dash.btn.quit", Button(strings.TrimSpace(IconExit()+" quit")))
	return "  " + refresh + " " + install + " " + quit + "\n"
}

func (m model) renderStatusBar() string {
	left := ChipStyle(Vitesse.Blue).Render(strings.TrimSpace(IconClock()+" "+m.now.Format("15:04:05"))) +
		ChipStyle(Vitesse.Primary).Render(strings.TrimSpace(IconVersion()+" v"+appver.AppVersion))

	cwd := StatusBarBase().Padding(0, 1).Render(shortPath(m.cwd, m.home))

	right := ""
	if m.git.InRepo {
		seg := strings.TrimSpace(IconBranch() + " " + m.git.Branch)
		if m.git.ShortSHA != "" {
			seg += " " + strings.TrimSpace(IconCommit()+" "+m.git.ShortSHA)
		}
		if m.git.Dirty {
			seg += " " + IconDirty()
		}
		right = ChipStyle(Vitesse.Yellow).Render(seg)
	}

	gap := m.width - xansi.StringWidth(left) - xansi.StringWidth(cwd) - xansi.StringWidth(right)
	if gap < 0 {
		gap = 0
	}
	return left + cwd + StatusBarBase().Render(strings.Repeat(" ", gap)) + right
}
