package layout

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-bootstrap-layout/pkg/media"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/settings"
	"github.com/goliatone/go-bootstrap-layout/pkg/styles"
)

// FormID identifies the layout configuration form.
const FormID = "layout_settings"

// LibraryBase is the client-side asset library attached to the form.
const LibraryBase = "bootstrap_layout_builder/base"

// Form field paths.
const (
	FieldHasContainer            = "has_container"
	FieldContainerType           = "container_type"
	FieldBackground              = "background"
	FieldBgColorClass            = "container_wrapper_bg_color_class"
	FieldBgMedia                 = "container_wrapper_bg_media"
	FieldContainerWrapperClasses = "container_wrapper_classes"
	FieldSectionClasses          = "section_classes"
	FieldRegions                 = "regions"

	PathBgColorClass = FieldBackground + "." + FieldBgColorClass
	PathBgMedia      = FieldBackground + "." + FieldBgMedia

	bgColorWidgetClass = "bootstrap_layout_builder_bg_color"
	containerRule      = FieldHasContainer + " == true"
)

// RegionField returns the field name holding region's classes.
func RegionField(region string) string {
	return region + "_classes"
}

// RegionPath returns the dotted path of region's class field.
func RegionPath(region string) string {
	return FieldRegions + "." + RegionField(region)
}

// BuildConfigurationForm describes the configuration form for this instance.
// When s hides the section settings the form only carries the asset
// attachment. A malformed background colour list is returned as an error.
func (p *Plugin) BuildConfigurationForm(s settings.Settings) (model.FormModel, error) {
	form := model.FormModel{
		ID:    FormID,
		Title: p.definition.Label,
		Metadata: map[string]string{
			"layout": p.definition.ID,
		},
	}

	if !s.HideSectionSettings {
		fields, err := p.advancedFields(s)
		if err != nil {
			return model.FormModel{}, err
		}
		form.Fields = fields
	}

	form.Attach(LibraryBase)

	if err := model.ApplyDecorators(&form, p.decorators...); err != nil {
		return model.FormModel{}, fmt.Errorf("layout: decorate form: %w", err)
	}
	return form, nil
}

func (p *Plugin) advancedFields(s settings.Settings) ([]model.Field, error) {
	cfg := p.configuration

	colors, err := styles.WithNone(s.BackgroundColors)
	if err != nil {
		return nil, fmt.Errorf("layout: background colors: %w", err)
	}

	containerType := ContainerFixed
	if cfg.Container != ContainerNone {
		containerType = cfg.Container
	}

	containerOptions := make([]model.Option, 0, 2)
	for _, c := range ContainerTypes() {
		containerOptions = append(containerOptions, model.Option{Value: string(c), Label: c.Label()})
	}

	bundles := make([]string, 0, 2)
	for _, b := range media.AllowedBundles() {
		bundles = append(bundles, string(b))
	}

	regionFields := make([]model.Field, 0, len(p.definition.Regions))
	for _, name := range p.definition.RegionNames() {
		regionFields = append(regionFields, model.Field{
			Name:    RegionField(name),
			Type:    model.FieldTypeText,
			Label:   p.definition.RegionLabel(name) + " classes",
			Default: cfg.RegionClasses(name),
		})
	}

	return []model.Field{
		{
			Name:    FieldHasContainer,
			Type:    model.FieldTypeCheckbox,
			Label:   "Add Container",
			Default: cfg.Container != ContainerNone,
		},
		{
			Name:        FieldContainerType,
			Type:        model.FieldTypeSelect,
			Label:       "Container type",
			Options:     containerOptions,
			Default:     string(containerType),
			VisibleWhen: containerRule,
		},
		{
			Name:        FieldBackground,
			Type:        model.FieldTypeDetails,
			Label:       "Background",
			VisibleWhen: containerRule,
			Nested: []model.Field{
				{
					Name:    FieldBgColorClass,
					Type:    model.FieldTypeRadios,
					Label:   "Background color",
					Options: colors,
					Default: styles.Denormalize(cfg.ContainerWrapperBgColorClass),
					Classes: []string{bgColorWidgetClass},
				},
				{
					Name:        FieldBgMedia,
					Type:        model.FieldTypeMedia,
					Label:       "Background media",
					Description: "Background media",
					Default:     cfg.ContainerWrapperBgMedia.String(),
					Metadata: map[string]string{
						"allowedBundles": strings.Join(bundles, ","),
					},
				},
			},
		},
		{
			Name:        FieldContainerWrapperClasses,
			Type:        model.FieldTypeText,
			Label:       "Container wrapper classes",
			Description: "Add classes separated by space. Ex: bg-warning py-5.",
			Default:     cfg.ContainerWrapperClasses,
		},
		{
			Name:        FieldSectionClasses,
			Type:        model.FieldTypeText,
			Label:       "Row classes",
			Description: `Row has "row" class, you can add more classes separated by space. Ex: no-gutters py-3.`,
			Default:     cfg.SectionClasses,
		},
		{
			Name:        FieldRegions,
			Type:        model.FieldTypeDetails,
			Label:       "Columns Settings",
			Description: "Add classes separated by space. Ex: col mb-5 py-3.",
			Open:        true,
			Nested:      regionFields,
		},
	}, nil
}
