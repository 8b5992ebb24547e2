// Package testsupport carries fixtures shared by the package test suites.
package testsupport

import (
	"testing"

	pkgmanifest "github.com/goliatone/go-appmanifest/pkg/manifest"
)

// LabelingManifestJSON is the canonical labeling-webapp manifest used across
// the test suites: seven value-carrying params split by two separators.
const LabelingManifestJSON = `{
    "meta": {
        "label": "Labeling interface",
        "description": "Annotate samples and collect labels for active learning",
        "icon": "icon-tags"
    },
    "baseType": "STANDARD",
    "hasBackend": true,
    "standardWebAppLibraries": ["jquery", "dataiku"],
    "params": [
        {"name": "separator_input", "type": "SEPARATOR", "label": "Input"},
        {"name": "unlabeled", "type": "FOLDER", "label": "Unlabeled samples", "description": "Folder containing the samples to annotate", "mandatory": true, "canSelectForeign": true},
        {"name": "categories", "type": "KEY_VALUE_LIST", "label": "Categories", "description": "Mapping of category identifier to display name", "mandatory": true},
        {"name": "separator_output", "type": "SEPARATOR", "label": "Output"},
        {"name": "labels_ds", "type": "DATASET", "label": "Labels dataset", "description": "Dataset storing the collected labels", "mandatory": false, "canSelectForeign": true, "canCreateDataset": true},
        {"name": "labels_col", "type": "STRING", "label": "Labels column", "mandatory": false, "defaultValue": "label"},
        {"name": "comments_col", "type": "STRING", "label": "Comments column", "mandatory": false, "defaultValue": "comments"},
        {"name": "metadata_ds", "type": "DATASET", "label": "Labeling metadata", "description": "Dataset tracking per-sample annotation state", "mandatory": true, "canCreateDataset": true},
        {"name": "queries_ds", "type": "DATASET", "label": "Queries dataset", "description": "Dataset of samples queried by the active learning recipe", "mandatory": false, "canSelectForeign": true}
    ]
}`

// LabelingManifest decodes the canonical fixture, failing the test on error.
func LabelingManifest(t *testing.T) pkgmanifest.Manifest {
	t.Helper()

	m, err := pkgmanifest.DecodeJSON([]byte(LabelingManifestJSON))
	if err != nil {
		t.Fatalf("decode labeling manifest fixture: %v", err)
	}
	return m
}

// BuildLabelingManifest assembles the same manifest through the typed builder
// so construction and decoding can be compared structurally.
func BuildLabelingManifest() (pkgmanifest.Manifest, error) {
	return pkgmanifest.NewBuilder(pkgmanifest.Meta{
		Label:       "Labeling interface",
		Description: "Annotate samples and collect labels for active learning",
		Icon:        "icon-tags",
	}).
		Backend().
		Libraries("jquery", "dataiku").
		Add(
			pkgmanifest.NewSeparator("separator_input", "Input"),
			pkgmanifest.NewFolderParam("unlabeled", "Unlabeled samples", true,
				pkgmanifest.WithDescription("Folder containing the samples to annotate"),
				pkgmanifest.WithForeignSelection()),
			pkgmanifest.NewKeyValueListParam("categories", "Categories", true,
				pkgmanifest.WithDescription("Mapping of category identifier to display name")),
			pkgmanifest.NewSeparator("separator_output", "Output"),
			pkgmanifest.NewDatasetParam("labels_ds", "Labels dataset", false,
				pkgmanifest.WithDescription("Dataset storing the collected labels"),
				pkgmanifest.WithForeignSelection(),
				pkgmanifest.WithDatasetCreation()),
			pkgmanifest.NewStringParam("labels_col", "Labels column", false,
				pkgmanifest.WithDefault("label")),
			pkgmanifest.NewStringParam("comments_col", "Comments column", false,
				pkgmanifest.WithDefault("comments")),
			pkgmanifest.NewDatasetParam("metadata_ds", "Labeling metadata", true,
				pkgmanifest.WithDescription("Dataset tracking per-sample annotation state"),
				pkgmanifest.WithDatasetCreation()),
			pkgmanifest.NewDatasetParam("queries_ds", "Queries dataset", false,
				pkgmanifest.WithDescription("Dataset of samples queried by the active learning recipe"),
				pkgmanifest.WithForeignSelection()),
		).
		Build()
}
