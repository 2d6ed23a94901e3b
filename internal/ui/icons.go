package ui

import "os"

// nfEnabled returns true when Nerd Font icons should be rendered.
// Default to enabled; allow disabling via NERDFONT=0.
func nfEnabled() bool {
	return os.Getenv("NERDFONT") != "0"
}

func nf(icon, fallback string) string {
	if nfEnabled() {
		return icon
	}
	return fallback
}

// Status bar icons
func IconClock() string   { return nf("", "") }
func IconVersion() string { return nf("", "") }
func IconGit() string     { return nf("", "git") } // nf-dev-git
func IconBranch() string  { return nf("", "br") }  // nf-oct-git_branch
func IconCommit() string  { return nf("", "sha") } // nf-oct-git_commit
func IconDirty() string   { return nf("", "*") }   // fa-exclamation-circle

// Workbar helpers
func IconRefresh() string { return nf("", "") } // fa-refresh
func IconInstall() string { return nf("", "") } // fa-download
func IconExit() string    { return nf("", "") } // fa-sign-out
