package settings

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/goliatone/go-bootstrap-layout/pkg/config"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/styles"
)

// FormID identifies the admin settings form.
const FormID = "bootstrap_layout_builder_admin_settings"

const toggleImage = "images/drupal-ui/toggle-advanced-settings.png"

// FormOption customises a Form.
type FormOption func(*Form)

// WithAssetBase sets the public path prefix of the module's static files,
// used to reference the explanatory toggle image.
func WithAssetBase(base string) FormOption {
	return func(f *Form) {
		f.assetBase = strings.TrimSpace(base)
	}
}

// WithLogger sets the logger used to report saves.
func WithLogger(logger *slog.Logger) FormOption {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Form builds and submits the settings form against a config store.
type Form struct {
	store     config.Store
	assetBase string
	logger    *slog.Logger
}

// NewForm returns a settings form bound to store.
func NewForm(store config.Store, options ...FormOption) *Form {
	f := &Form{
		store:     store,
		assetBase: "/modules/bootstrap_layout_builder",
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Build returns the form descriptor populated with the stored values.
func (f *Form) Build(ctx context.Context) (model.FormModel, error) {
	current, err := Load(ctx, f.store)
	if err != nil {
		return model.FormModel{}, err
	}

	src := path.Join(f.assetBase, toggleImage)
	return model.FormModel{
		ID:    FormID,
		Title: "Bootstrap Layout Builder settings",
		Fields: []model.Field{
			{
				Name:        KeyHideSectionSettings,
				Type:        model.FieldTypeCheckbox,
				Label:       `Hide "Advanced Settings"`,
				Description: fmt.Sprintf(`<img src="%s" alt="Toggle Advanced Settings Tab Visibility" title="Toggle Advanced Settings Tab Visibility">`, src),
				Default:     current.HideSectionSettings,
			},
			{
				Name:        KeyBackgroundColors,
				Type:        model.FieldTypeTextarea,
				Label:       "Background colors",
				Description: "One option per line in the form key|label. Ex: bg-warning|Warning.",
				Default:     current.BackgroundColors,
			},
		},
	}, nil
}

// Submit persists the submitted values. The colour list is validated before
// anything is written, so a malformed line leaves the stored settings
// untouched.
func (f *Form) Submit(ctx context.Context, values model.Values) error {
	cfg, err := f.store.Get(ctx, Namespace)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	hide := values.Bool(KeyHideSectionSettings)
	cfg.Set(KeyHideSectionSettings, hide)

	if values.Has(KeyBackgroundColors) {
		colors := values.String(KeyBackgroundColors)
		if err := styles.Validate(colors); err != nil {
			return fmt.Errorf("settings: %s: %w", KeyBackgroundColors, err)
		}
		cfg.Set(KeyBackgroundColors, colors)
	}

	if err := cfg.Save(ctx); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	f.logger.Info("settings saved", "namespace", Namespace, KeyHideSectionSettings, hide)
	return nil
}
