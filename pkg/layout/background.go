package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-bootstrap-layout/pkg/media"
)

// ErrUnsafeURL is reported when a resolved file URL uses a scheme other than
// http or https.
var ErrUnsafeURL = errors.New("layout: unsafe media url")

// BackgroundImageStyle returns the inline style for an image background.
func BackgroundImageStyle(fileURL string) string {
	return "background-image: url(" + fileURL + "); background-repeat: no-repeat; background-size: cover;"
}

func (p *Plugin) applyBackground(ctx context.Context, cfg Configuration, wrapper *ContainerWrapper) {
	ref := cfg.ContainerWrapperBgMedia
	item, err := p.resolver.Resolve(ctx, ref)
	if err == nil {
		item.URL, err = mediaURL(item.URL)
	}
	if err != nil {
		p.logger.Warn("background media unavailable",
			"layout", p.definition.ID,
			"media_id", ref.String(),
			"bundle", string(item.Bundle),
			"error", err,
		)
		return
	}

	switch item.Bundle {
	case media.BundleImage:
		wrapper.Attributes.Style = BackgroundImageStyle(item.URL)
	case media.BundleVideoFile:
		wrapper.HasLocalVideo = true
		wrapper.VideoWrapperClasses = cfg.ContainerWrapperBgColorClass
		wrapper.VideoBackgroundURL = item.URL
	default:
		p.logger.Warn("background media unavailable",
			"layout", p.definition.ID,
			"media_id", ref.String(),
			"bundle", string(item.Bundle),
			"error", media.ErrUnsupportedBundle,
		)
	}
}

// mediaURL returns raw with the characters an unquoted CSS url() token
// cannot hold percent-encoded. Only relative, http and https URLs are
// accepted.
func mediaURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrUnsafeURL)
	}
	switch scheme := urlScheme(raw); scheme {
	case "", "http", "https":
	default:
		return "", fmt.Errorf("%w: scheme %q", ErrUnsafeURL, scheme)
	}

	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c <= ' ' || c == 0x7f || strings.IndexByte(`"'()\`, c) >= 0 {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// urlScheme returns the lower-cased scheme of raw, or "" for relative URLs.
func urlScheme(raw string) string {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		case c == ':' && i > 0:
			return strings.ToLower(raw[:i])
		default:
			return ""
		}
	}
	return ""
}
