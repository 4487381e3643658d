package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Region is a named slot of a layout template.
type Region struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
}

// Definition describes a layout: its identifier and ordered regions.
type Definition struct {
	ID      string   `json:"id" yaml:"id"`
	Label   string   `json:"label" yaml:"label"`
	Regions []Region `json:"regions" yaml:"regions"`
}

// RegionNames returns region names in declaration order.
func (d Definition) RegionNames() []string {
	names := make([]string, 0, len(d.Regions))
	for _, region := range d.Regions {
		names = append(names, region.Name)
	}
	return names
}

// RegionLabel returns the display label of name, falling back to the name.
func (d Definition) RegionLabel(name string) string {
	for _, region := range d.Regions {
		if region.Name == name {
			if strings.TrimSpace(region.Label) != "" {
				return region.Label
			}
			return region.Name
		}
	}
	return name
}

// HasRegion reports whether name is one of the definition's regions.
func (d Definition) HasRegion(name string) bool {
	for _, region := range d.Regions {
		if region.Name == name {
			return true
		}
	}
	return false
}

// Validate checks the definition has an id and unique, non-empty, dot-free
// region names (region names become form field paths).
func (d Definition) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("layout: definition id is required")
	}
	if len(d.Regions) == 0 {
		return fmt.Errorf("layout: definition %q has no regions", d.ID)
	}
	seen := make(map[string]struct{}, len(d.Regions))
	for i, region := range d.Regions {
		name := region.Name
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, ". \t") {
			return fmt.Errorf("layout: definition %q region %d: invalid name %q", d.ID, i, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("layout: definition %q: duplicate region %q", d.ID, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
