package manifest_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
	"github.com/goliatone/go-appmanifest/pkg/testsupport"
)

func TestDecodeJSONLabelingManifest(t *testing.T) {
	m := testsupport.LabelingManifest(t)

	if m.Meta.Label != "Labeling interface" {
		t.Fatalf("meta.label = %q", m.Meta.Label)
	}
	if m.BaseType != "STANDARD" {
		t.Fatalf("baseType = %q", m.BaseType)
	}
	if !m.HasBackend {
		t.Fatal("expected hasBackend to be true")
	}
	if diff := cmp.Diff([]string{"jquery", "dataiku"}, m.Libraries); diff != "" {
		t.Fatalf("libraries mismatch (-want +got):\n%s", diff)
	}

	if got := len(m.ValueParams()); got != 7 {
		t.Fatalf("expected 7 value-carrying params, got %d", got)
	}

	wantOrder := []string{
		"separator_input", "unlabeled", "categories", "separator_output",
		"labels_ds", "labels_col", "comments_col", "metadata_ds", "queries_ds",
	}
	gotOrder := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		gotOrder = append(gotOrder, p.Name)
	}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Fatalf("param order mismatch (-want +got):\n%s", diff)
	}

	for name, mandatory := range map[string]bool{
		"categories":  true,
		"metadata_ds": true,
		"queries_ds":  false,
		"labels_ds":   false,
	} {
		p, ok := m.Param(name)
		if !ok {
			t.Fatalf("param %q missing", name)
		}
		if p.Mandatory != mandatory {
			t.Fatalf("param %q mandatory = %v, want %v", name, p.Mandatory, mandatory)
		}
	}

	labels, _ := m.Param("labels_col")
	if labels.Default != "label" {
		t.Fatalf("labels_col default = %v", labels.Default)
	}
}

func TestDecodeYAMLFallback(t *testing.T) {
	doc := `
meta:
    label: Probe
baseType: STANDARD
params:
    - name: threshold
      type: INT
      label: Threshold
      mandatory: false
      defaultValue: 5
`
	m, err := manifest.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode yaml document: %v", err)
	}

	p, ok := m.Param("threshold")
	if !ok {
		t.Fatal("param threshold missing")
	}
	if got, ok := p.Default.(int64); !ok || got != 5 {
		t.Fatalf("default = %v (%T), want int64(5)", p.Default, p.Default)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	if _, err := manifest.Decode([]byte("   \n")); err == nil {
		t.Fatal("expected an error for an empty document")
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	doc := `{
        "meta": {"label": "Bad"},
        "baseType": "STANDARD",
        "params": [{"name": "x", "type": "MULTISELECT", "label": "X", "mandatory": true}]
    }`
	_, err := manifest.DecodeJSON([]byte(doc))
	if !errors.Is(err, manifest.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDecodeRequiresMandatoryDeclaration(t *testing.T) {
	doc := `{
        "meta": {"label": "Bad"},
        "baseType": "STANDARD",
        "params": [{"name": "x", "type": "STRING", "label": "X"}]
    }`
	_, err := manifest.DecodeJSON([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "mandatory") {
		t.Fatalf("expected a mandatory-declaration error, got %v", err)
	}
}

func TestDecodeRejectsMandatorySeparator(t *testing.T) {
	doc := `{
        "meta": {"label": "Bad"},
        "baseType": "STANDARD",
        "params": [{"name": "sep", "type": "SEPARATOR", "label": "Sep", "mandatory": true}]
    }`
	if _, err := manifest.DecodeJSON([]byte(doc)); err == nil {
		t.Fatal("expected an error for a mandatory separator")
	}
}

func TestDecodeRejectsFractionalIntDefault(t *testing.T) {
	doc := `{
        "meta": {"label": "Bad"},
        "baseType": "STANDARD",
        "params": [{"name": "n", "type": "INT", "label": "N", "mandatory": false, "defaultValue": 1.5}]
    }`
	if _, err := manifest.DecodeJSON([]byte(doc)); err == nil {
		t.Fatal("expected an error for a fractional INT default")
	}
}
