package embed

import "embed"

// DistFS contains the built status page assets.
//
//go:embed all:dist
var DistFS embed.FS
