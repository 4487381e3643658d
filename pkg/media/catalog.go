package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog is an in-memory Resolver, usually loaded from a YAML document:
//
//	media:
//	  - id: "12"
//	    bundle: image
//	    url: /files/hero.jpg
type Catalog struct {
	mu    sync.RWMutex
	items map[Reference]Media
}

type catalogFile struct {
	Media []Media `yaml:"media"`
}

// NewCatalog returns a catalog seeded with items.
func NewCatalog(items ...Media) *Catalog {
	c := &Catalog{items: make(map[Reference]Media, len(items))}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// LoadCatalog decodes a YAML catalog from r.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc catalogFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("media: decode catalog: %w", err)
	}
	for i, item := range doc.Media {
		if item.ID.IsZero() {
			return nil, fmt.Errorf("media: catalog entry %d: id is required", i)
		}
	}
	return NewCatalog(doc.Media...), nil
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("media: open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// Add inserts or replaces an entry.
func (c *Catalog) Add(item Media) {
	item.ID = Reference(strings.TrimSpace(string(item.ID)))
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[item.ID] = item
}

// List returns entries sorted by id.
func (c *Catalog) List() []Media {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Media, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve implements Resolver. Entries with a bundle other than image or
// video_file resolve with ErrUnsupportedBundle.
func (c *Catalog) Resolve(ctx context.Context, ref Reference) (Media, error) {
	if err := ctx.Err(); err != nil {
		return Media{}, err
	}
	key := Reference(strings.TrimSpace(string(ref)))
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return Media{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	if !item.Bundle.Supported() {
		return item, fmt.Errorf("%w: %q is %q", ErrUnsupportedBundle, ref, item.Bundle)
	}
	if strings.TrimSpace(item.URL) == "" {
		return item, fmt.Errorf("%w: %q has no file url", ErrNotFound, ref)
	}
	return item, nil
}
