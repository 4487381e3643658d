package html

import (
	"maps"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// PartialSection is the theme partial key overriding the section template.
const PartialSection = "layout.section"

// ThemeConfig derives renderer configuration from a go-theme manifest,
// layering variant tokens, templates and assets over the base manifest.
func ThemeConfig(manifest *theme.Manifest, variant string) *theme.RendererConfig {
	if manifest == nil {
		return nil
	}

	tokens := maps.Clone(manifest.Tokens)
	partials := maps.Clone(manifest.Templates)
	files := maps.Clone(manifest.Assets.Files)
	prefix := manifest.Assets.Prefix

	if v, ok := manifest.Variants[variant]; ok {
		tokens = overlay(tokens, v.Tokens)
		partials = overlay(partials, v.Templates)
		files = overlay(files, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	} else {
		variant = ""
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:    manifest.Name,
		Variant:  variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
				return file
			}
			return path.Join(prefix, file)
		},
	}
}

func overlay(base, extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(extra))
	}
	for key, value := range extra {
		base[key] = value
	}
	return base
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key]+";")
	}
	return strings.Join(parts, " ")
}
