package web

import "embed"

// Static embeds the front-end build served by the SPA fallback.
//
//go:embed static
var Static embed.FS
