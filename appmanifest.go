// Package appmanifest loads, validates, and renders declarative webapp panel
// manifests. The root package is a thin facade over pkg/manifest (data model,
// codec, validation), pkg/render (renderer plumbing), and the concrete
// renderers under pkg/renderers.
package appmanifest

import (
	"context"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-appmanifest/internal/manifest/loader"
	"github.com/goliatone/go-appmanifest/pkg/manifest"
	"github.com/goliatone/go-appmanifest/pkg/render"
	"github.com/goliatone/go-appmanifest/pkg/renderers/html"
	"github.com/goliatone/go-appmanifest/pkg/renderers/tui"
)

// Manifest aliases the core document type for callers that only import the
// root package.
type Manifest = manifest.Manifest

// Param is one form field declaration.
type Param = manifest.Param

// Meta carries the catalog-facing metadata block.
type Meta = manifest.Meta

// ParamKind enumerates the supported field types.
type ParamKind = manifest.ParamKind

// Source identifies where a manifest document lives.
type Source = manifest.Source

// RenderOptions carries per-render overrides (prefilled values, server-side
// errors, theme selection).
type RenderOptions = render.RenderOptions

// Finding is a non-fatal lint observation.
type Finding = manifest.Finding

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options manifest.LoaderOptions) manifest.Loader {
	return internalLoader.New(options)
}

// Load fetches and decodes the manifest at src. Decoding already validates,
// so a nil error means the manifest honors every structural rule.
func Load(ctx context.Context, src manifest.Source, options manifest.LoaderOptions) (Manifest, error) {
	return NewLoader(options).Load(ctx, src)
}

// LoadFile reads a manifest from a path on disk.
func LoadFile(ctx context.Context, path string) (Manifest, error) {
	return Load(ctx, manifest.SourceFromFile(path), manifest.LoaderOptions{})
}

// Decode parses a JSON or YAML manifest document.
func Decode(data []byte) (Manifest, error) {
	return manifest.Decode(data)
}

// Validate re-checks an assembled manifest against the structural rules.
func Validate(m *Manifest) error {
	return manifest.Validate(m)
}

// Lint reports non-fatal observations about a valid manifest.
func Lint(m *Manifest) []Finding {
	return manifest.Lint(m)
}

// NewRegistry builds a renderer registry with the built-in HTML and TUI
// renderers registered under their default names.
func NewRegistry(htmlOptions ...html.Option) (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}

	tuiRenderer, err := tui.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(tuiRenderer); err != nil {
		return nil, err
	}

	return registry, nil
}

// RenderHTML renders a static form preview for the manifest. It is the
// simplest entry point for callers that just want HTML output.
func RenderHTML(ctx context.Context, m Manifest, options RenderOptions, htmlOptions ...html.Option) ([]byte, error) {
	renderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, m, options)
}

// WithThemeSelector forwards a go-theme selector to the HTML renderer so
// theme/variant choices in RenderOptions resolve to token sets.
func WithThemeSelector(selector theme.ThemeSelector) html.Option {
	return html.WithThemeSelector(selector)
}
