package appfs

import "embed"

// FS holds the page templates and the static assets served under /static.
//
//go:embed templates static
var FS embed.FS
