package manifest_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
	"github.com/goliatone/go-appmanifest/pkg/testsupport"
)

func TestBuilderMatchesDecodedFixture(t *testing.T) {
	decoded := testsupport.LabelingManifest(t)

	built, err := testsupport.BuildLabelingManifest()
	if err != nil {
		t.Fatalf("build labeling manifest: %v", err)
	}

	if diff := cmp.Diff(decoded, built); diff != "" {
		t.Fatalf("built manifest diverges from the decoded fixture (-decoded +built):\n%s", diff)
	}
}

func TestBuilderDefaultsBaseType(t *testing.T) {
	m, err := manifest.NewBuilder(manifest.Meta{Label: "Probe"}).
		Add(manifest.NewStringParam("note", "Note", false)).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if m.BaseType != "STANDARD" {
		t.Fatalf("baseType = %q, want STANDARD", m.BaseType)
	}
}

func TestBuilderReportsFirstViolation(t *testing.T) {
	_, err := manifest.NewBuilder(manifest.Meta{Label: "Probe"}).
		Add(
			manifest.NewStringParam("x", "First", false),
			manifest.NewStringParam("x", "Second", false),
		).
		Build()
	if err == nil {
		t.Fatal("expected a duplicate-name error")
	}
	if !strings.Contains(err.Error(), "manifest builder:") {
		t.Fatalf("error %q should carry the builder prefix", err)
	}
}

func TestMustBuildPanicsOnInvalidManifest(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustBuild to panic")
		}
	}()
	manifest.NewBuilder(manifest.Meta{}).MustBuild()
}

func TestBuilderJavascriptModules(t *testing.T) {
	m, err := manifest.NewBuilder(manifest.Meta{Label: "Probe"}).
		JavascriptModules().
		BaseType("BOKEH").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !m.EnableJavascriptModules {
		t.Fatal("expected enableJavascriptModules to be set")
	}
	if m.BaseType != "BOKEH" {
		t.Fatalf("baseType = %q", m.BaseType)
	}
}
