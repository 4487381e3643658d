package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-bootstrap-layout/pkg/model"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message for locale. Keys are the source (English)
// strings, so untranslated labels fall back to themselves.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls the underlying function.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides the text shown when a key cannot be
// translated.
type MissingTranslationHandler func(locale, key string, err error) string

func missingTranslationDefault(_ string, key string, _ error) string {
	return key
}

// Localizer is a model.Decorator translating form titles, field labels,
// descriptions and option labels.
type Localizer struct {
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

var _ model.Decorator = Localizer{}

// Decorate implements model.Decorator.
func (l Localizer) Decorate(form *model.FormModel) error {
	LocalizeFormModel(form, l.Locale, l.Translator, l.OnMissing)
	return nil
}

// LocalizeFormModel translates form in place. Failures never abort: missing
// messages are routed through onMissing, which defaults to the source text.
func LocalizeFormModel(form *model.FormModel, locale string, t Translator, onMissing MissingTranslationHandler) {
	if form == nil {
		return
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	form.Title = translate(locale, form.Title, t, onMissing)
	form.Description = translate(locale, form.Description, t, onMissing)
	for i := range form.Fields {
		localizeField(&form.Fields[i], locale, t, onMissing)
	}
}

func localizeField(field *model.Field, locale string, t Translator, onMissing MissingTranslationHandler) {
	field.Label = translate(locale, field.Label, t, onMissing)
	field.Description = translate(locale, field.Description, t, onMissing)
	for i := range field.Options {
		field.Options[i].Label = translate(locale, field.Options[i].Label, t, onMissing)
	}
	for i := range field.Nested {
		localizeField(&field.Nested[i], locale, t, onMissing)
	}
}

func translate(locale, key string, t Translator, onMissing MissingTranslationHandler) string {
	if strings.TrimSpace(key) == "" {
		return key
	}
	if t == nil {
		return onMissing(locale, key, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, err)
}

// Translate resolves a single message using opts, falling back to key.
func (o RenderOptions) Translate(key string) string {
	return translate(o.Locale, key, o.Translator, missingTranslationDefault)
}
