// Package web embeds the single-page UI served by the API.
package web

import (
	"embed"
	"html/template"
)

// IndexTemplate is the name of the single-page UI template.
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
