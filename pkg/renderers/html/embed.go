package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in templates so callers can extend them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
