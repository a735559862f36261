// Package assets embeds the stylesheet, script and images served under
// /assets.
package assets

import "embed"

//go:embed css/* js/* static/*
var Assets embed.FS
