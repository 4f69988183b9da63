package templates

import (
	"embed"
	"html/template"

	"github.com/jon4hz/cookbook/web/templates/components"
)

//go:embed pages/*.html
var pagesFS embed.FS

// Funcs are the helpers available to every page.
var Funcs = template.FuncMap{
	"relativeTime": components.FormatRelativeTime,
	"timestamp":    components.FormatTimestamp,
	"count":        components.FormatCount,
	"dashboardURL": components.DashboardURL,
}

// New parses all embedded pages. Pages are looked up by file name, e.g. "read.html".
func New() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(pagesFS, "pages/*.html")
}

// Must is like New but panics on a parse error.
func Must() *template.Template {
	return template.Must(New())
}
