package cli

import (
	"strings"

	"devctl/internal/manifest"
	"devctl/internal/tools"
)

// extraSpecs returns manifest tools that are not already built in.
func extraSpecs() []tools.ToolSpec {
	names, err := manifest.Load()
	if err != nil || len(names) == 0 {
		return nil
	}
	known := make(map[string]bool)
	for _, t := range tools.ReportList() {
		known[t.Name] = true
	}
	var out []tools.ToolSpec
	for _, n := range names {
		if known[n] {
			continue
		}
		known[n] = true
		out = append(out, manifest.Resolve(n))
	}
	return out
}

// selectSpecs parses args into a list of tool specs.
// Accepts: none (defaults to the install list plus manifest extras), "all",
// any managed tool name, or an ad-hoc formula name.
func selectSpecs(args []string) []tools.ToolSpec {
	base := append(tools.InstallList(), extraSpecs()...)
	if len(args) == 0 {
		return base
	}
	m := make(map[string]bool)
	for _, a := range args {
		aa := strings.TrimSpace(strings.ToLower(a))
		if aa == "" {
			continue
		}
		m[aa] = true
	}
	if m["all"] {
		return base
	}

	var sel []tools.ToolSpec
	seen := make(map[string]bool)
	// managed tools first so "python" resolves to the registry entry
	for _, t := range append(tools.ReportList(), extraSpecs()...) {
		if m[strings.ToLower(t.Name)] && !seen[t.Name] {
			sel = append(sel, t)
			seen[t.Name] = true
			delete(m, strings.ToLower(t.Name))
		}
	}
	// anything left is treated as a formula name
	for _, a := range args {
		aa := strings.TrimSpace(strings.ToLower(a))
		if aa == "" || aa == "all" || !m[aa] || seen[aa] {
			continue
		}
		sel = append(sel, manifest.Resolve(aa))
		seen[aa] = true
	}
	return sel
}
