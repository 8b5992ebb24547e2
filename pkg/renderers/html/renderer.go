// Package html renders a static preview of the configuration form a host
// platform would build from a webapp manifest.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
	"github.com/goliatone/go-appmanifest/pkg/render"
	rendertemplate "github.com/goliatone/go-appmanifest/pkg/render/template"
	"github.com/goliatone/go-appmanifest/pkg/render/template/pongo"
)

const templateName = "templates/form"

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS fs.FS
	engine     rendertemplate.Renderer
	themes     theme.ThemeSelector
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithEngine injects a custom template engine implementation.
func WithEngine(engine rendertemplate.Renderer) Option {
	return func(cfg *config) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// WithThemeSelector resolves RenderOptions theme names into token sets that
// the preview emits as CSS custom properties.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		cfg.themes = selector
	}
}

// Renderer turns a manifest into a standalone HTML document.
type Renderer struct {
	templates rendertemplate.Renderer
	themes    theme.ThemeSelector
}

// New constructs an HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.engine
	if engine == nil {
		built, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template engine: %w", err)
		}
		engine = built
	}

	return &Renderer{templates: engine, themes: cfg.themes}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the preview document, honoring prefilled values and
// server-side errors from the render options.
func (r *Renderer) Render(ctx context.Context, m manifest.Manifest, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template engine is nil")
	}

	themeCSS, err := r.themeCSS(options)
	if err != nil {
		return nil, err
	}

	fields := make([]map[string]any, 0, len(m.Params))
	for _, p := range m.Params {
		fields = append(fields, fieldView(p, options))
	}

	data := map[string]any{
		"meta": map[string]any{
			"label":       m.Meta.Label,
			"description": m.Meta.Description,
		},
		"base_type":   m.BaseType,
		"fields":      fields,
		"form_errors": options.Errors[""],
		"theme_css":   themeCSS,
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

// themeCSS resolves the requested theme into a :root CSS block mapping tokens
// to custom properties. Variant tokens override base tokens.
func (r *Renderer) themeCSS(options render.RenderOptions) (string, error) {
	if r.themes == nil || options.Theme == "" {
		return "", nil
	}

	selection, err := r.themes.Select(options.Theme, options.ThemeVariant)
	if err != nil {
		return "", fmt.Errorf("html renderer: select theme %q: %w", options.Theme, err)
	}
	if selection == nil || selection.Manifest == nil {
		return "", nil
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for name, value := range selection.Manifest.Tokens {
		tokens[name] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for name, value := range variant.Tokens {
			tokens[name] = value
		}
	}
	if len(tokens) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root {")
	for _, name := range names {
		fmt.Fprintf(&b, " --%s: %s;", name, tokens[name])
	}
	b.WriteString(" }")
	return b.String(), nil
}

func fieldView(p manifest.Param, options render.RenderOptions) map[string]any {
	view := map[string]any{
		"name":      p.Name,
		"label":     p.DisplayLabel(),
		"separator": p.Kind == manifest.KindSeparator,
	}
	if p.Kind == manifest.KindSeparator {
		return view
	}

	view["mandatory"] = p.Mandatory
	view["description"] = p.Description
	view["errors"] = options.Errors[p.Name]

	value, bound := options.Values[p.Name]
	if !bound && p.Default != nil {
		value = p.Default
	}

	switch p.Kind {
	case manifest.KindBoolean:
		view["control"] = "checkbox"
		checked, _ := value.(bool)
		view["checked"] = checked
	case manifest.KindSelect:
		view["control"] = "select"
		selected, _ := value.(string)
		choices := make([]map[string]any, 0, len(p.Choices))
		for _, c := range p.Choices {
			label := c.Label
			if label == "" {
				label = c.Value
			}
			choices = append(choices, map[string]any{
				"value":    c.Value,
				"label":    label,
				"selected": c.Value == selected,
			})
		}
		view["choices"] = choices
	case manifest.KindTextarea:
		view["control"] = "textarea"
		view["value"] = stringValue(value)
	case manifest.KindKeyValueList:
		view["control"] = "keyvalue"
		view["entries"] = keyValueEntries(value)
	case manifest.KindInt:
		view["control"] = "input"
		view["input_type"] = "number"
		view["value"] = stringValue(value)
	case manifest.KindFolder:
		view["control"] = "input"
		view["input_type"] = "text"
		view["value"] = stringValue(value)
		view["picker"] = "folder"
		view["can_select_foreign"] = p.CanSelectForeign
	case manifest.KindDataset:
		view["control"] = "input"
		view["input_type"] = "text"
		view["value"] = stringValue(value)
		view["picker"] = "dataset"
		view["can_select_foreign"] = p.CanSelectForeign
		view["can_create_dataset"] = p.CanCreateDataset
	case manifest.KindColumn:
		view["control"] = "input"
		view["input_type"] = "text"
		view["value"] = stringValue(value)
		view["picker"] = "column"
		view["dataset_param"] = p.DatasetParamName
	default:
		view["control"] = "input"
		view["input_type"] = "text"
		view["value"] = stringValue(value)
	}

	return view
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// keyValueEntries flattens the supported map shapes into ordered rows so the
// preview is deterministic.
func keyValueEntries(value any) []map[string]string {
	pairs := map[string]string{}
	switch entries := value.(type) {
	case map[string]string:
		for k, v := range entries {
			pairs[k] = v
		}
	case map[string]any:
		for k, v := range entries {
			pairs[k] = stringValue(v)
		}
	default:
		return nil
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]map[string]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, map[string]string{"key": k, "value": pairs[k]})
	}
	return out
}
