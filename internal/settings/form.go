package settings

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"devctl/internal/manifest"
)

// catalog is the pool of formulae offered in the picker. Entries already
// in the manifest are shown on top of these.
var catalog = []string{
	"bat",
	"fd",
	"fzf",
	"gh",
	"htop",
	"ripgrep",
	"shellcheck",
	"tldr",
	"tmux",
	"tree",
	"watch",
	"yq",
}

// Run launches an interactive form to pick the manifest extras.
// It preselects the current manifest and saves the selection on submit.
func Run() error {
	current, err := manifest.Load()
	if err != nil {
		return err
	}

	// Selection bound to the MultiSelect
	selected := make([]string, len(current))
	copy(selected, current)

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(green)

	names := optionNames(current)
	opts := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		opts = append(opts, huh.NewOption(n, n))
	}

	height := 10
	switch n := len(opts); {
	case n == 0:
		height = 3
	case n < 10:
		height = n
	case n > 18:
		height = 18
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Manifest").Description("Pick the extra tools devctl should provision"),
			huh.NewMultiSelect[string]().
				Title("Tools").
				Options(opts...).
				Height(height).
				Value(&selected),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	if err := manifest.Save(selected); err != nil {
		return err
	}
	fmt.Printf("\n✓ saved tools.json (%d entries)\n\n", len(selected))
	return nil
}

// optionNames merges the manifest entries into the catalog, manifest
// entries first, without duplicates.
func optionNames(current []string) []string {
	seen := make(map[string]bool, len(current)+len(catalog))
	out := make([]string, 0, len(current)+len(catalog))
	for _, n := range current {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	for _, n := range catalog {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
