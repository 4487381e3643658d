package layout

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefinitionRef names a preset or carries an inline definition. In YAML it
// is either a scalar preset id or a mapping.
type DefinitionRef struct {
	Preset     string
	Definition Definition
}

// UnmarshalYAML accepts a preset id or an inline definition.
func (r *DefinitionRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		r.Preset = strings.TrimSpace(node.Value)
		r.Definition = Definition{}
		return nil
	}
	r.Preset = ""
	return node.Decode(&r.Definition)
}

// MarshalYAML writes presets back as their id.
func (r DefinitionRef) MarshalYAML() (any, error) {
	if r.Preset != "" {
		return r.Preset, nil
	}
	return r.Definition, nil
}

// Resolve returns the referenced definition.
func (r DefinitionRef) Resolve() (Definition, error) {
	def := r.Definition
	if r.Preset != "" {
		var err error
		if def, err = Preset(r.Preset); err != nil {
			return Definition{}, err
		}
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// File is a layout instance on disk: its definition, stored configuration
// and, optionally, the host content of each region.
type File struct {
	Definition    DefinitionRef     `yaml:"definition"`
	Configuration Configuration     `yaml:"configuration"`
	Regions       map[string]string `yaml:"regions,omitempty"`
}

// LoadFile reads and validates a layout file. The configuration is
// normalised against the resolved definition.
func LoadFile(path string) (File, Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, Definition{}, fmt.Errorf("layout: read %s: %w", path, err)
	}
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return File{}, Definition{}, fmt.Errorf("layout: decode %s: %w", path, err)
	}
	def, err := file.Definition.Resolve()
	if err != nil {
		return File{}, Definition{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	if err := file.Configuration.Validate(); err != nil {
		return File{}, Definition{}, fmt.Errorf("layout: %s: %w", path, err)
	}
	file.Configuration = file.Configuration.Normalize(def)
	return file, def, nil
}

// SaveFile writes file to path, replacing it atomically.
func SaveFile(path string, file File) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("layout: encode %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".layout-*.yaml")
	if err != nil {
		return fmt.Errorf("layout: write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("layout: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("layout: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("layout: write %s: %w", path, err)
	}
	return nil
}
