package layout

import "strings"

// Attributes are the HTML attributes the decorator attaches to an element.
type Attributes struct {
	Classes []string `json:"class,omitempty"`
	Style   string   `json:"style,omitempty"`
}

// Class joins Classes with single spaces.
func (a Attributes) Class() string {
	return strings.Join(a.Classes, " ")
}

// IsZero reports whether no attribute is set.
func (a Attributes) IsZero() bool {
	return len(a.Classes) == 0 && a.Style == ""
}

// ContainerWrapper is the element around the container carrying background
// options.
type ContainerWrapper struct {
	Attributes          Attributes `json:"attributes"`
	HasLocalVideo       bool       `json:"has_local_video,omitempty"`
	VideoWrapperClasses string     `json:"video_wrapper_classes,omitempty"`
	VideoBackgroundURL  string     `json:"video_background_url,omitempty"`
}

// RegionBuild is one host region with the attributes added to it.
type RegionBuild struct {
	Name       string     `json:"name"`
	Label      string     `json:"label,omitempty"`
	Content    string     `json:"content"`
	Attributes Attributes `json:"attributes"`
}

// Build is the decorated render structure handed back to the host renderer.
type Build struct {
	LayoutID         string           `json:"layout_id"`
	Attributes       Attributes       `json:"attributes"`
	Container        Attributes       `json:"container"`
	ContainerWrapper ContainerWrapper `json:"container_wrapper"`
	Regions          []RegionBuild    `json:"regions"`
}

// Wrapped reports whether the section sits inside a grid container.
func (b Build) Wrapped() bool {
	return len(b.Container.Classes) > 0
}

// Region returns the named region.
func (b Build) Region(name string) (RegionBuild, bool) {
	for _, region := range b.Regions {
		if region.Name == name {
			return region, true
		}
	}
	return RegionBuild{}, false
}

// RegionContents returns the host-supplied content keyed by region name.
func (b Build) RegionContents() map[string]string {
	out := make(map[string]string, len(b.Regions))
	for _, region := range b.Regions {
		out[region.Name] = region.Content
	}
	return out
}

func splitClasses(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
