// Package templates embeds the HTML pages so the binary (and the httptest
// suites, which run from other package directories) need no template dir on
// disk.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.tmpl"))
}
