package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request data renderers use to customise output
// without touching the build.
type RenderOptions struct {
	// Theme resolves asset URLs, partial overrides and CSS variables. Nil
	// renders with the embedded defaults.
	Theme *theme.RendererConfig
	// Libraries lists asset libraries to link alongside the markup, such as
	// layout.LibraryBase.
	Libraries []string
	// Locale and Translator localise labels emitted by renderers.
	Locale     string
	Translator Translator
}
