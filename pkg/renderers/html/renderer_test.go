package html

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-appmanifest/pkg/render"
	"github.com/goliatone/go-appmanifest/pkg/testsupport"
)

type stubThemeSelector struct {
	selection *theme.Selection
	calls     int
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls++
	return s.selection, nil
}

func TestRenderLabelingManifest(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	m := testsupport.LabelingManifest(t)
	out, err := renderer.Render(context.Background(), m, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := string(out)
	for _, fragment := range []string{
		"Labeling interface",
		`data-base-type="STANDARD"`,
		`class="form-separator"`,
		`name="unlabeled"`,
		`data-picker="folder"`,
		`data-picker="dataset"`,
		`data-can-create-dataset`,
		`data-name="categories"`,
		`value="label"`,
	} {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("rendered document missing %q:\n%s", fragment, doc)
		}
	}

	sepIdx := strings.Index(doc, "Input")
	fieldIdx := strings.Index(doc, `name="unlabeled"`)
	if sepIdx < 0 || fieldIdx < 0 || sepIdx > fieldIdx {
		t.Fatal("separator should precede its fields")
	}
}

func TestRenderPrefillsValuesAndErrors(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	m := testsupport.LabelingManifest(t)
	out, err := renderer.Render(context.Background(), m, render.RenderOptions{
		Values: map[string]any{
			"labels_col": "annotation",
			"categories": map[string]string{"cat": "Cat"},
		},
		Errors: map[string][]string{
			"":          {"submission rejected"},
			"unlabeled": {"folder not found"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := string(out)
	for _, fragment := range []string{
		`value="annotation"`,
		"submission rejected",
		"folder not found",
		"Cat",
	} {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("rendered document missing %q", fragment)
		}
	}
}

func TestRenderEmitsThemeTokens(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens: map[string]string{
				"brand":   "#123456",
				"surface": "#ffffff",
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{
						"surface": "#101010",
					},
				},
			},
		},
	}}

	renderer, err := New(WithThemeSelector(selector))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	m := testsupport.LabelingManifest(t)
	out, err := renderer.Render(context.Background(), m, render.RenderOptions{
		Theme:        "acme",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := string(out)
	if selector.calls != 1 {
		t.Fatalf("expected one selector call, got %d", selector.calls)
	}
	if !strings.Contains(doc, "--brand: #123456;") {
		t.Fatalf("base token missing from theme css:\n%s", doc)
	}
	if !strings.Contains(doc, "--surface: #101010;") {
		t.Fatal("variant token should override the base token")
	}
	if strings.Contains(doc, "--surface: #ffffff;") {
		t.Fatal("overridden base token should not appear")
	}
}

func TestRenderSkipsThemeWithoutSelection(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	m := testsupport.LabelingManifest(t)
	out, err := renderer.Render(context.Background(), m, render.RenderOptions{Theme: "acme"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<style>") {
		t.Fatal("no selector configured, no style block expected")
	}
}

func TestRendererIdentity(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("name = %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("content type = %q", renderer.ContentType())
	}
}
