package catalog_test

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-appmanifest/pkg/catalog"
	"github.com/goliatone/go-appmanifest/pkg/testsupport"
)

func TestLoadFSIndexesPluginDirectories(t *testing.T) {
	store, err := catalog.LoadFS(os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	entries := store.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "forecast" || entries[1].ID != "labeling" {
		t.Fatalf("unexpected entry order: %q, %q", entries[0].ID, entries[1].ID)
	}

	labeling, ok := store.Entry("labeling")
	if !ok {
		t.Fatal("labeling entry missing")
	}
	if labeling.Manifest.Meta.Label != "Labeling interface" {
		t.Fatalf("meta.label = %q", labeling.Manifest.Meta.Label)
	}
	if labeling.Icon != "icon-tags" {
		t.Fatalf("icon = %q", labeling.Icon)
	}
	if labeling.Source != "plugins/labeling/webapp.json" {
		t.Fatalf("source = %q", labeling.Source)
	}

	forecast, _ := store.Entry("forecast")
	if got := len(forecast.Manifest.ValueParams()); got != 4 {
		t.Fatalf("expected 4 value-carrying params, got %d", got)
	}
}

func TestLoadFSSanitizesInlineSVG(t *testing.T) {
	store, err := catalog.LoadFS(os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	forecast, ok := store.Entry("forecast")
	if !ok {
		t.Fatal("forecast entry missing")
	}
	if strings.Contains(forecast.Icon, "<script") {
		t.Fatalf("script element survived sanitization: %q", forecast.Icon)
	}
	if !strings.Contains(forecast.Icon, "<svg") || !strings.Contains(forecast.Icon, "path") {
		t.Fatalf("expected sanitized svg markup, got %q", forecast.Icon)
	}
}

func TestLoadFSRejectsDuplicatePluginIDs(t *testing.T) {
	files := fstest.MapFS{
		"a/labeling/webapp.json": &fstest.MapFile{Data: []byte(testsupport.LabelingManifestJSON)},
		"b/labeling/webapp.json": &fstest.MapFile{Data: []byte(testsupport.LabelingManifestJSON)},
	}

	if _, err := catalog.LoadFS(files); err == nil || !strings.Contains(err.Error(), "duplicate plugin id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestLoadFSSurfacesInvalidManifests(t *testing.T) {
	files := fstest.MapFS{
		"plugins/broken/webapp.json": &fstest.MapFile{Data: []byte(`{"meta": {}, "params": []}`)},
	}

	if _, err := catalog.LoadFS(files); err == nil {
		t.Fatal("expected an error for an invalid manifest")
	}
}

func TestLoadFSNilFilesystem(t *testing.T) {
	store, err := catalog.LoadFS(nil)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if !store.Empty() {
		t.Fatal("expected an empty store")
	}
}

func TestEntryIDFallsBackToFileStem(t *testing.T) {
	files := fstest.MapFS{
		"webapp.json": &fstest.MapFile{Data: []byte(testsupport.LabelingManifestJSON)},
	}

	store, err := catalog.LoadFS(files)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if _, ok := store.Entry("webapp"); !ok {
		t.Fatalf("expected entry id %q, got %v", "webapp", store.Entries())
	}
}

func TestSanitizeIconPassthrough(t *testing.T) {
	if got := catalog.SanitizeIcon("  icon-rocket  "); got != "icon-rocket" {
		t.Fatalf("SanitizeIcon = %q", got)
	}
	if got := catalog.SanitizeIcon(""); got != "" {
		t.Fatalf("SanitizeIcon(\"\") = %q", got)
	}
}
