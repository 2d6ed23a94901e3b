package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// boxWidth returns the inner width for the welcome / input boxes.
func boxWidth(total int) int {
	w := total - 2
	if w < 24 {
		w = 24
	}
	if w > 96 {
		w = 96
	}
	return w
}

func renderBox(lines []string, inner int, borderStyle lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(borderStyle.Render("╭"+strings.Repeat("─", inner)+"╮") + "\n")
	for _, line := range lines {
		pad := inner - xansi.StringWidth(line)
		if pad < 0 {
			pad = 0
		}
		b.WriteString(borderStyle.Render("│") + line + strings.Repeat(" ", pad) + borderStyle.Render("│") + "\n")
	}
	b.WriteString(borderStyle.Render("╰"+strings.Repeat("─", inner)+"╯") + "\n")
	return b.String()
}

func renderBanner(width int) string {
	inner := boxWidth(width)
	title := lipgloss.NewStyle().Foreground(Vitesse.Primary).Bold(true).Render(" ✻ Welcome to devctl!")
	sub := lipgloss.NewStyle().Foreground(Vitesse.Muted).Render("   keep your dev machine provisioned")
	border := lipgloss.NewStyle().Foreground(Vitesse.Border)
	return renderBox([]string{"", title, sub, ""}, inner, border)
}

func renderInputUI(view string, width int) string {
	inner := boxWidth(width)
	border := lipgloss.NewStyle().Foreground(Vitesse.Border)
	return renderBox([]string{" " + view}, inner, border)
}

func padRight(s string, w int) string {
	if diff := w - xansi.StringWidth(s); diff > 0 {
		return s + strings.Repeat(" ", diff)
	}
	return s
}

// padLinesToWidth pads every line of s to the given display width so
// side-by-side columns do not bleed into each other.
func padLinesToWidth(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, width)
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
