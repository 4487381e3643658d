package layout

import (
	"fmt"

	"github.com/goliatone/go-bootstrap-layout/pkg/media"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/schema"
	"github.com/goliatone/go-bootstrap-layout/pkg/settings"
	"github.com/goliatone/go-bootstrap-layout/pkg/styles"
	"github.com/goliatone/go-bootstrap-layout/pkg/visibility"
)

// SubmitConfigurationForm validates values against the configuration form
// and applies them. It is a no-op while s hides the section settings.
//
// Fields hidden by their visibility rule are not validated. An unchecked
// has_container clears Container only; the background and wrapper fields
// keep their stored values. Section and region classes are always
// replaced, missing regions becoming "".
func (p *Plugin) SubmitConfigurationForm(s settings.Settings, values model.Values) error {
	if s.HideSectionSettings {
		return nil
	}

	form, err := p.BuildConfigurationForm(s)
	if err != nil {
		return err
	}
	visible, err := visibility.Resolve(form, p.evaluator, visibility.Context{Values: values})
	if err != nil {
		return fmt.Errorf("layout: submit: %w", err)
	}
	submitted := make(model.Values, len(values))
	for _, path := range form.Paths() {
		if !visible[path] {
			continue
		}
		if value, ok := values.Lookup(path); ok {
			submitted[path] = value
		}
	}
	if err := schema.Validate(form, submitted); err != nil {
		return fmt.Errorf("layout: submit: %w", err)
	}

	next := p.configuration.Clone()
	next.Container = ContainerNone
	if values.Bool(FieldHasContainer) {
		containerType := Container(values.String(FieldContainerType))
		if containerType == ContainerNone {
			containerType = ContainerFixed
		}
		next.Container = containerType
		next.ContainerWrapperBgColorClass = styles.Normalize(values.String(PathBgColorClass))
		next.ContainerWrapperBgMedia = media.Reference(values.String(PathBgMedia))
		next.ContainerWrapperClasses = values.String(FieldContainerWrapperClasses)
	}

	next.SectionClasses = values.String(FieldSectionClasses)
	for _, name := range p.definition.RegionNames() {
		next.RegionsClasses[name] = values.String(RegionPath(name))
	}

	if err := next.Validate(); err != nil {
		return err
	}
	p.configuration = next.Normalize(p.definition)
	return nil
}
