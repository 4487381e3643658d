package main

import (
	"bytes"
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type themeAssets struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type themeVariant struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    themeAssets       `yaml:"assets"`
}

type themeFile struct {
	Name      string                  `yaml:"name"`
	Version   string                  `yaml:"version"`
	Tokens    map[string]string       `yaml:"tokens"`
	Templates map[string]string       `yaml:"templates"`
	Assets    themeAssets             `yaml:"assets"`
	Variants  map[string]themeVariant `yaml:"variants"`
}

// loadManifest reads a go-theme manifest written as YAML.
func loadManifest(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	var file themeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode theme %s: %w", path, err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("theme %s: name is required", path)
	}

	manifest := &theme.Manifest{
		Name:      file.Name,
		Version:   file.Version,
		Tokens:    file.Tokens,
		Templates: file.Templates,
		Assets: theme.Assets{
			Prefix: file.Assets.Prefix,
			Files:  file.Assets.Files,
		},
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
		for name, variant := range file.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    variant.Tokens,
				Templates: variant.Templates,
				Assets: theme.Assets{
					Prefix: variant.Assets.Prefix,
					Files:  variant.Assets.Files,
				},
			}
		}
	}
	return manifest, nil
}
