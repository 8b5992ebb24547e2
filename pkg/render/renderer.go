package render

import (
	"context"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
)

// Renderer converts a manifest into a byte representation of its
// configuration form (HTML preview, interactive session output, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, m manifest.Manifest, options RenderOptions) ([]byte, error)
}

// RenderOptions describe per-request data renderers can use to customise
// their output without mutating the manifest.
type RenderOptions struct {
	// Values pre-populates rendered controls keyed by param name.
	Values map[string]any

	// Errors surfaces server-side validation feedback keyed by param name.
	// The empty key carries form-level messages.
	Errors map[string][]string

	// Theme optionally names a go-theme theme/variant pair resolved by the
	// renderer. Renderers without theme support ignore it.
	Theme        string
	ThemeVariant string
}
