package orchestrator

import (
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// ErrThemeNotFound is returned by StaticSelector for unknown theme names.
var ErrThemeNotFound = errors.New("orchestrator: theme not found")

// StaticSelector selects among a fixed set of manifests. The first manifest
// is used when a request names no theme.
type StaticSelector struct {
	manifests []*theme.Manifest
}

var _ theme.ThemeSelector = (*StaticSelector)(nil)

// NewStaticSelector returns a selector over manifests, skipping nil entries.
func NewStaticSelector(manifests ...*theme.Manifest) *StaticSelector {
	s := &StaticSelector{}
	for _, manifest := range manifests {
		if manifest != nil {
			s.manifests = append(s.manifests, manifest)
		}
	}
	return s
}

// Select implements theme.ThemeSelector.
func (s *StaticSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if len(s.manifests) == 0 {
		return nil, fmt.Errorf("%w: no manifests registered", ErrThemeNotFound)
	}
	manifest := s.manifests[0]
	if name != "" {
		manifest = nil
		for _, candidate := range s.manifests {
			if candidate.Name == name {
				manifest = candidate
				break
			}
		}
		if manifest == nil {
			return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
		}
	}
	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
