// Package web holds the embedded single-page UI served at the site root.
package web

import "embed"

// Static is the embedded UI filesystem.
//
//go:embed index.html
var Static embed.FS
