package templates

import (
	"embed"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Megallm/megallm-docs/internal/domain/catalog"
)

//go:embed *.tmpl
var files embed.FS

const CatalogPage = "catalog.tmpl"

// Funcs are the helpers available to every page.
var Funcs = template.FuncMap{
	"ago": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}
		return humanize.Time(t)
	},
	"clock": func(t time.Time) string {
		return t.UTC().Format("15:04:05 MST")
	},
	"comma": humanize.Comma,
	"seconds": func(d time.Duration) int {
		return int(d / time.Second)
	},
	"shows": func(v catalog.TabView, c string) bool {
		return v.Shows(catalog.Column(c))
	},
}

// Load parses the embedded page templates.
func Load() (*template.Template, error) {
	return template.New("pages").Funcs(Funcs).ParseFS(files, "*.tmpl")
}
