package provision

import (
	"context"
	"errors"
	"fmt"
	"io"

	"devctl/internal/tools"
)

// Provisioner drives the full setup flow: package manager first, then each
// tool in the install list, then the version report.
type Provisioner struct {
	runner tools.CommandRunner
	out    io.Writer
}

func New(r tools.CommandRunner, out io.Writer) *Provisioner {
	return &Provisioner{runner: r, out: out}
}

// Result summarizes one provisioning run.
type Result struct {
	Bootstrapped bool          `json:"bootstrapped"`
	Installed    []string      `json:"installed"`
	Present      []string      `json:"present"`
	Report       []ReportEntry `json:"report"`
}

// ReportEntry is one line of the version report.
type ReportEntry struct {
	Name      string `json:"name"`
	Text      string `json:"text"`
	Installed bool   `json:"installed"`
}

var (
	ErrBootstrapFailed = errors.New("homebrew bootstrap failed")
	ErrInstallFailed   = errors.New("tool install failed")
)

// Placeholder stands in for a version line that could not be captured.
const Placeholder = "not found"

// Run executes the whole flow: built-in tools first, then any extras, with
// the version report at the end. A bootstrap or install failure aborts the
// run; nothing past the failing step executes.
func (p *Provisioner) Run(ctx context.Context, extras ...tools.ToolSpec) (*Result, error) {
	res := &Result{}

	bootstrapped, err := p.EnsureManager(ctx)
	if err != nil {
		return nil, err
	}
	res.Bootstrapped = bootstrapped

	builtin := tools.InstallList()
	queue := append(builtin, dedupe(extras, builtin)...)
	for _, spec := range queue {
		installed, err := p.EnsureTool(ctx, spec)
		if err != nil {
			return nil, err
		}
		if installed {
			res.Installed = append(res.Installed, spec.Name)
		} else {
			res.Present = append(res.Present, spec.Name)
		}
	}

	res.Report = p.VersionReport(ctx)
	res.Report = append(res.Report, p.ReportFor(ctx, dedupe(extras, tools.ReportList()))...)
	fmt.Fprintln(p.out)
	PrintReport(p.out, res.Report)
	return res, nil
}

// dedupe drops specs whose name already appears in base.
func dedupe(specs, base []tools.ToolSpec) []tools.ToolSpec {
	known := make(map[string]bool, len(base))
	for _, s := range base {
		known[s.Name] = true
	}
	out := make([]tools.ToolSpec, 0, len(specs))
	for _, s := range specs {
		if known[s.Name] {
			continue
		}
		known[s.Name] = true
		out = append(out, s)
	}
	return out
}

// EnsureManager makes sure Homebrew is available, bootstrapping it when
// missing. It reports whether a bootstrap ran.
func (p *Provisioner) EnsureManager(ctx context.Context) (bool, error) {
	if path, err := tools.DetectBrew(p.runner); err == nil {
		fmt.Fprintf(p.out, "✓ homebrew already installed · %s\n", path)
		return false, nil
	}
	fmt.Fprintln(p.out, "→ homebrew not found, running installer")
	if err := tools.BrewBootstrap(ctx, p.runner); err != nil {
		return false, fmt.Errorf("%w: %w", ErrBootstrapFailed, err)
	}
	fmt.Fprintln(p.out, "✓ homebrew installed")
	return true, nil
}

// EnsureTool verifies one tool and installs it when missing. It reports
// whether an install ran.
func (p *Provisioner) EnsureTool(ctx context.Context, spec tools.ToolSpec) (bool, error) {
	res := tools.Check(ctx, p.runner, spec)
	if res.Installed {
		text := res.Raw
		if text == "" {
			text = Placeholder
		}
		fmt.Fprintf(p.out, "✓ %s already installed · %s\n", spec.Name, text)
		return false, nil
	}
	if spec.Package == "" {
		fmt.Fprintf(p.out, "• %s not found, no formula to install\n", spec.Name)
		return false, nil
	}
	fmt.Fprintf(p.out, "→ %s not found, installing\n", spec.Name)
	if err := tools.BrewInstall(ctx, p.runner, spec.Package); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrInstallFailed, spec.Name, err)
	}
	fmt.Fprintf(p.out, "✓ %s installed\n", spec.Name)
	return true, nil
}

// VersionReport probes every tool in the report set and captures the first
// line of its version output, falling back to the placeholder when the
// probe comes up empty.
func (p *Provisioner) VersionReport(ctx context.Context) []ReportEntry {
	return p.ReportFor(ctx, tools.ReportList())
}

// ReportFor builds report entries for an arbitrary list of tools.
func (p *Provisioner) ReportFor(ctx context.Context, specs []tools.ToolSpec) []ReportEntry {
	entries := make([]ReportEntry, 0, len(specs))
	for _, spec := range specs {
		res := tools.Check(ctx, p.runner, spec)
		text := res.Raw
		if !res.Installed || text == "" {
			text = Placeholder
		}
		entries = append(entries, ReportEntry{Name: spec.Name, Text: text, Installed: res.Installed})
	}
	return entries
}

// PrintReport writes the aligned version table.
func PrintReport(w io.Writer, entries []ReportEntry) {
	fmt.Fprintln(w, "tool versions:")
	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	for _, e := range entries {
		glyph := "✓"
		if !e.Installed || e.Text == Placeholder {
			glyph = "×"
		}
		fmt.Fprintf(w, "  %s %-*s  %s\n", glyph, width, e.Name, e.Text)
	}
}
