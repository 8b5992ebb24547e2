package pongo

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestNewRequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected an error when no template source is configured")
	}
}

func TestRenderTemplateAppendsExtension(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
	}

	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "Hello Ada!" {
		t.Fatalf("rendered = %q", out)
	}
}

func TestRenderTemplateCachesParsedTemplates(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
	}

	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("greeting", map[string]any{"name": "Ada"}); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if _, ok := engine.templates["greeting.tmpl"]; !ok {
		t.Fatal("expected the parsed template to be cached")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ count }} items", map[string]any{"count": 3})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "3 items" {
		t.Fatalf("rendered = %q", out)
	}
}

func TestGlobalsAvailableToTemplates(t *testing.T) {
	engine, err := New(
		WithFS(fstest.MapFS{}),
		WithGlobals(map[string]any{"product": "appmanifest"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ product }}", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if !strings.Contains(out, "appmanifest") {
		t.Fatalf("rendered = %q", out)
	}
}
