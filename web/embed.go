// Package web embeds the static map frontend.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// FS returns the frontend filesystem rooted at the static directory.
func FS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
