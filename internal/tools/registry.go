package tools

// builtins is the fixed install list, in install order.
var builtins = []ToolSpec{
	{Name: "git", Binary: "git", Package: "git", VersionArgs: []string{"--version"}},
	{Name: "node", Binary: "node", Package: "node", VersionArgs: []string{"--version"}},
	{Name: "python", Binary: "python3", Package: "python", VersionArgs: []string{"--version"}},
	{Name: "jq", Binary: "jq", Package: "jq", VersionArgs: []string{"--version"}},
	{Name: "wget", Binary: "wget", Package: "wget", VersionArgs: []string{"--version"}},
}

// reportOnly tools show up in the version report but are never installed
// automatically. Docker needs Docker Desktop on macOS, not a formula.
var reportOnly = []ToolSpec{
	{Name: "docker", Binary: "docker", VersionArgs: []string{"--version"}},
}

// InstallList returns the tools the provisioner installs when missing.
func InstallList() []ToolSpec {
	out := make([]ToolSpec, len(builtins))
	copy(out, builtins)
	return out
}

// ReportList returns every tool the version report covers: the install
// list plus the report-only tools.
func ReportList() []ToolSpec {
	out := make([]ToolSpec, 0, len(builtins)+len(reportOnly))
	out = append(out, builtins...)
	out = append(out, reportOnly...)
	return out
}

// Find returns the built-in spec for name, looking at both the install
// list and the report-only tools.
func Find(name string) (ToolSpec, bool) {
	for _, t := range builtins {
		if t.Name == name {
			return t, true
		}
	}
	for _, t := range reportOnly {
		if t.Name == name {
			return t, true
		}
	}
	return ToolSpec{}, false
}
