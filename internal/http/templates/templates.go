// Package templates holds the screen pages rendered by the integration
// endpoints.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every page. Pages are looked up by file name, e.g. "athan.html".
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}

// MustLoad is Load for use at startup and in tests.
func MustLoad() *template.Template {
	return template.Must(Load())
}
