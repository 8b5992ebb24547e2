package render_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
	"github.com/goliatone/go-appmanifest/pkg/render"
	"github.com/goliatone/go-appmanifest/pkg/testsupport"
)

func completeBindings() map[string]any {
	return map[string]any{
		"unlabeled":    "samples_folder",
		"categories":   map[string]string{"cat": "Cat", "dog": "Dog"},
		"labels_ds":    "labels",
		"labels_col":   "label",
		"comments_col": "comments",
		"metadata_ds":  "labeling_metadata",
		"queries_ds":   "queries",
	}
}

func TestCheckBindingsAcceptsCompleteSubmission(t *testing.T) {
	m := testsupport.LabelingManifest(t)

	mapping := render.CheckBindings(m, completeBindings())
	if !mapping.Valid() {
		t.Fatalf("expected a valid mapping, got fields=%v form=%v", mapping.Fields, mapping.Form)
	}
}

func TestCheckBindingsAllowsUnboundOptionalParams(t *testing.T) {
	m := testsupport.LabelingManifest(t)

	values := completeBindings()
	delete(values, "labels_ds")
	delete(values, "queries_ds")

	if mapping := render.CheckBindings(m, values); !mapping.Valid() {
		t.Fatalf("optional params should not be required, got %v", mapping.Fields)
	}
}

func TestCheckBindingsRequiresMandatoryParams(t *testing.T) {
	m := testsupport.LabelingManifest(t)

	values := completeBindings()
	delete(values, "categories")
	values["metadata_ds"] = "   "

	mapping := render.CheckBindings(m, values)
	if mapping.Valid() {
		t.Fatal("expected missing mandatory params to be reported")
	}
	for _, name := range []string{"categories", "metadata_ds"} {
		msgs := mapping.Fields[name]
		if len(msgs) != 1 || msgs[0] != "required" {
			t.Fatalf("field %q messages = %v", name, msgs)
		}
	}
}

func TestCheckBindingsRejectsUnknownBindings(t *testing.T) {
	m := testsupport.LabelingManifest(t)

	values := completeBindings()
	values["mystery"] = "x"

	mapping := render.CheckBindings(m, values)
	if len(mapping.Form) != 1 || !strings.Contains(mapping.Form[0], "mystery") {
		t.Fatalf("form errors = %v", mapping.Form)
	}
}

func TestCheckBindingsRejectsSeparatorBindings(t *testing.T) {
	m := testsupport.LabelingManifest(t)

	values := completeBindings()
	values["separator_input"] = "x"

	mapping := render.CheckBindings(m, values)
	if len(mapping.Fields["separator_input"]) == 0 {
		t.Fatal("expected a separator binding error")
	}
}

func TestCheckBindingsKindMismatches(t *testing.T) {
	m, err := manifest.NewBuilder(manifest.Meta{Label: "Probe"}).
		Add(
			manifest.NewStringParam("name", "Name", false),
			manifest.NewIntParam("count", "Count", false),
			manifest.NewBooleanParam("flag", "Flag", false),
			manifest.NewSelectParam("mode", "Mode", false, []manifest.Choice{{Value: "fast"}, {Value: "slow"}}),
			manifest.NewKeyValueListParam("tags", "Tags", false),
			manifest.NewDatasetParam("ds", "Dataset", false),
		).
		Build()
	if err != nil {
		t.Fatalf("build manifest: %v", err)
	}

	cases := []struct {
		name   string
		values map[string]any
		field  string
	}{
		{"string gets int", map[string]any{"name": 3}, "name"},
		{"int gets string", map[string]any{"count": "three"}, "count"},
		{"int gets fraction", map[string]any{"count": 1.5}, "count"},
		{"bool gets string", map[string]any{"flag": "yes"}, "flag"},
		{"select outside choices", map[string]any{"mode": "warp"}, "mode"},
		{"keyvalue gets list", map[string]any{"tags": []string{"a"}}, "tags"},
		{"keyvalue non-string value", map[string]any{"tags": map[string]any{"k": 3}}, "tags"},
		{"dataset gets int", map[string]any{"ds": 7}, "ds"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapping := render.CheckBindings(m, tc.values)
			if len(mapping.Fields[tc.field]) == 0 {
				t.Fatalf("expected a message on %q, got %v", tc.field, mapping.Fields)
			}
		})
	}
}

func TestCheckBindingsAcceptsIntegralFloat(t *testing.T) {
	m, err := manifest.NewBuilder(manifest.Meta{Label: "Probe"}).
		Add(manifest.NewIntParam("count", "Count", true)).
		Build()
	if err != nil {
		t.Fatalf("build manifest: %v", err)
	}

	if mapping := render.CheckBindings(m, map[string]any{"count": float64(4)}); !mapping.Valid() {
		t.Fatalf("integral float should pass, got %v", mapping.Fields)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors(
		[]string{"first", "  second  "},
		"second", "", "third",
	)
	want := []string{"first", "second", "third"}
	if len(merged) != len(want) {
		t.Fatalf("merged = %v", merged)
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Fatalf("merged[%d] = %q, want %q", i, merged[i], want[i])
		}
	}
}
