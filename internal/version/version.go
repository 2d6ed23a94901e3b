package version

// AppVersion is the devctl release version, without the "v" prefix.
// It is overridden at build time via -ldflags "-X devctl/internal/version.AppVersion=…".
var AppVersion = "0.3.0"
