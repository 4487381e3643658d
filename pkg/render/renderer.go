package render

import (
	"context"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
)

// Renderer turns a decorated layout build into markup.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, build layout.Build, options RenderOptions) ([]byte, error)
}
