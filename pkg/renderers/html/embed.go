package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// TemplatesFS exposes the built-in preview templates so callers can reuse or
// extend them.
func TemplatesFS() fs.FS {
	return templateFiles
}
