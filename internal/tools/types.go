package tools

// ToolSpec describes one tool the provisioner knows how to detect and
// install.
type ToolSpec struct {
	Name        string   // display name, e.g. "git"
	Binary      string   // executable looked up on PATH
	Package     string   // homebrew formula; empty means not installable
	VersionArgs []string // arguments for the version probe
}

// FromName builds a spec for a tool that follows the common convention:
// binary, formula and name are all the same word and the tool answers
// --version.
func FromName(name string) ToolSpec {
	return ToolSpec{
		Name:        name,
		Binary:      name,
		Package:     name,
		VersionArgs: []string{"--version"},
	}
}

// CheckResult is the outcome of probing a single tool.
type CheckResult struct {
	Installed bool
	Path      string // resolved binary path when installed
	Raw       string // first line of the version probe output, untouched
	Version   string // parsed semver-ish version, may be empty
	Latest    string // newer version known to the package manager, may be empty
	Err       string
}
