package layout

import (
	"fmt"
	"maps"
	"strings"

	"github.com/goliatone/go-bootstrap-layout/pkg/media"
)

// Container is the grid container wrapping a section. The empty value means
// the section is not wrapped.
type Container string

const (
	ContainerNone  Container = ""
	ContainerFixed Container = "container"
	ContainerFluid Container = "container-fluid"
)

// ContainerTypes lists the selectable container types in display order.
func ContainerTypes() []Container {
	return []Container{ContainerFixed, ContainerFluid}
}

// Label returns the human readable name of c.
func (c Container) Label() string {
	switch c {
	case ContainerFixed:
		return "Container"
	case ContainerFluid:
		return "Container fluid"
	case ContainerNone:
		return "None"
	}
	return string(c)
}

// Valid reports whether c is one of the known container values.
func (c Container) Valid() bool {
	switch c {
	case ContainerNone, ContainerFixed, ContainerFluid:
		return true
	}
	return false
}

// Configuration holds one layout instance's presentation options.
type Configuration struct {
	Container                    Container         `json:"container" yaml:"container"`
	ContainerWrapperClasses      string            `json:"container_wrapper_classes" yaml:"container_wrapper_classes"`
	ContainerWrapperBgColorClass string            `json:"container_wrapper_bg_color_class" yaml:"container_wrapper_bg_color_class"`
	ContainerWrapperBgMedia      media.Reference   `json:"container_wrapper_bg_media" yaml:"container_wrapper_bg_media"`
	SectionClasses               string            `json:"section_classes" yaml:"section_classes"`
	RegionsClasses               map[string]string `json:"regions_classes" yaml:"regions_classes"`
}

// DefaultConfiguration returns an empty configuration with one blank class
// entry per region of def.
func DefaultConfiguration(def Definition) Configuration {
	return Configuration{}.Normalize(def)
}

// Normalize returns a copy whose RegionsClasses holds exactly one entry per
// region of def: missing regions get "", regions the definition no longer
// declares are dropped.
func (c Configuration) Normalize(def Definition) Configuration {
	out := c
	out.Container = Container(strings.TrimSpace(string(c.Container)))
	out.RegionsClasses = make(map[string]string, len(def.Regions))
	for _, name := range def.RegionNames() {
		out.RegionsClasses[name] = c.RegionsClasses[name]
	}
	return out
}

// RegionClasses returns the class string for region, "" when absent.
func (c Configuration) RegionClasses(region string) string {
	return c.RegionsClasses[region]
}

// Clone returns a deep copy.
func (c Configuration) Clone() Configuration {
	out := c
	out.RegionsClasses = maps.Clone(c.RegionsClasses)
	return out
}

// Validate rejects unknown container values.
func (c Configuration) Validate() error {
	if !c.Container.Valid() {
		return fmt.Errorf("layout: invalid container %q", c.Container)
	}
	return nil
}
