// Package settings holds the site-wide layout builder settings and the admin
// form that edits them.
package settings

import (
	"context"
	"fmt"

	"github.com/goliatone/go-bootstrap-layout/pkg/config"
)

// Namespace is the config store namespace the settings live under.
const Namespace = "bootstrap_layout_builder.settings"

const (
	KeyHideSectionSettings = "hide_section_settings"
	KeyBackgroundColors    = "background_colors"
)

// DefaultBackgroundColors seeds the colour list when the store has none.
const DefaultBackgroundColors = `bg-primary|Primary
bg-secondary|Secondary
bg-success|Success
bg-danger|Danger
bg-warning|Warning
bg-info|Info
bg-light|Light
bg-dark|Dark
bg-white|White`

// Settings is the site-wide record read by every layout configuration form.
type Settings struct {
	HideSectionSettings bool   `json:"hide_section_settings" yaml:"hide_section_settings"`
	BackgroundColors    string `json:"background_colors" yaml:"background_colors"`
}

// Default returns the settings used before anything is saved.
func Default() Settings {
	return Settings{BackgroundColors: DefaultBackgroundColors}
}

// Load reads Settings from store. Missing keys fall back to Default.
func Load(ctx context.Context, store config.Store) (Settings, error) {
	cfg, err := store.Get(ctx, Namespace)
	if err != nil {
		return Settings{}, fmt.Errorf("settings: load: %w", err)
	}
	return fromConfig(cfg), nil
}

// Save writes s to store.
func Save(ctx context.Context, store config.Store, s Settings) error {
	cfg, err := store.Get(ctx, Namespace)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	err = cfg.Set(KeyHideSectionSettings, s.HideSectionSettings).
		Set(KeyBackgroundColors, s.BackgroundColors).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

func fromConfig(cfg *config.Config) Settings {
	out := Default()
	out.HideSectionSettings = cfg.Bool(KeyHideSectionSettings)
	if cfg.Get(KeyBackgroundColors) != nil {
		out.BackgroundColors = cfg.String(KeyBackgroundColors)
	}
	return out
}
