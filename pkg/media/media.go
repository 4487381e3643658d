// Package media resolves background media references to a bundle and a
// public file URL. Resolution is a read-only lookup against whatever stores
// the host's media entities.
package media

import (
	"context"
	"errors"
	"strings"
)

// Reference identifies a media entity. The empty reference means "unset".
type Reference string

// IsZero reports whether the reference is unset.
func (r Reference) IsZero() bool { return strings.TrimSpace(string(r)) == "" }

func (r Reference) String() string { return string(r) }

// Bundle classifies a media entity.
type Bundle string

const (
	BundleImage     Bundle = "image"
	BundleVideoFile Bundle = "video_file"
)

// AllowedBundles lists the bundles accepted as container backgrounds.
func AllowedBundles() []Bundle {
	return []Bundle{BundleImage, BundleVideoFile}
}

// Supported reports whether b can be used as a container background.
func (b Bundle) Supported() bool {
	return b == BundleImage || b == BundleVideoFile
}

// Media is a resolved entity.
type Media struct {
	ID     Reference `json:"id" yaml:"id"`
	Bundle Bundle    `json:"bundle" yaml:"bundle"`
	URL    string    `json:"url" yaml:"url"`
}

var (
	// ErrNotFound is returned when a reference does not resolve.
	ErrNotFound = errors.New("media: not found")
	// ErrUnsupportedBundle is returned for entities outside AllowedBundles.
	ErrUnsupportedBundle = errors.New("media: unsupported bundle")
)

// Resolver maps references to media entities.
type Resolver interface {
	Resolve(ctx context.Context, ref Reference) (Media, error)
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(ctx context.Context, ref Reference) (Media, error)

// Resolve delegates to the underlying function.
func (fn ResolverFunc) Resolve(ctx context.Context, ref Reference) (Media, error) {
	return fn(ctx, ref)
}

// NopResolver resolves nothing.
var NopResolver Resolver = ResolverFunc(func(context.Context, Reference) (Media, error) {
	return Media{}, ErrNotFound
})
