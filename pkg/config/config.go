// Package config models the host configuration store: named namespaces
// (such as "bootstrap_layout_builder.settings") holding flat key/value data
// with get/set/save semantics. Writes are staged on a Config and only reach
// the backing Store on Save.
package config

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
)

// ErrInvalidName is returned for empty namespace names or names containing
// path separators.
var ErrInvalidName = errors.New("config: invalid namespace name")

// Store hands out editable Config snapshots for a namespace.
type Store interface {
	Get(ctx context.Context, name string) (*Config, error)
}

type persister interface {
	persist(ctx context.Context, name string, data map[string]any) error
}

// Config is an editable snapshot of one namespace.
type Config struct {
	name  string
	data  map[string]any
	store persister
}

func newConfig(name string, data map[string]any, store persister) *Config {
	if data == nil {
		data = make(map[string]any)
	}
	return &Config{name: name, data: data, store: store}
}

// Name returns the namespace.
func (c *Config) Name() string { return c.name }

// Get returns the raw value stored under key, or nil.
func (c *Config) Get(key string) any {
	return c.data[key]
}

// Bool returns the value under key coerced to a boolean.
func (c *Config) Bool(key string) bool {
	switch typed := c.data[key].(type) {
	case bool:
		return typed
	case int:
		return typed != 0
	case float64:
		return typed != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "1", "true", "on", "yes":
			return true
		}
	}
	return false
}

// String returns the value under key as a string.
func (c *Config) String(key string) string {
	switch typed := c.data[key].(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}

// Set stages value under key and returns the Config for chaining.
func (c *Config) Set(key string, value any) *Config {
	c.data[key] = value
	return c
}

// Clear removes key.
func (c *Config) Clear(key string) *Config {
	delete(c.data, key)
	return c
}

// Data returns a copy of the staged values.
func (c *Config) Data() map[string]any {
	return maps.Clone(c.data)
}

// Save writes the staged values to the backing store.
func (c *Config) Save(ctx context.Context) error {
	if c.store == nil {
		return fmt.Errorf("config: %q has no backing store", c.name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.store.persist(ctx, c.name, maps.Clone(c.data))
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed != name || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
