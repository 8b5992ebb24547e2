// Package openapi derives machine-readable submission schemas from webapp
// manifests so hosts can validate collected bindings with standard tooling.
package openapi

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
)

// SubmissionSchema builds an object schema describing the key→value bindings
// a valid submission of the manifest's form produces. Separators contribute
// nothing; mandatory params land in the required list in declaration order.
func SubmissionSchema(m manifest.Manifest) (*openapi3.Schema, error) {
	if err := manifest.Validate(&m); err != nil {
		return nil, fmt.Errorf("openapi export: %w", err)
	}

	schema := openapi3.NewObjectSchema()
	schema.Title = m.Meta.Label
	schema.Description = m.Meta.Description
	schema.Properties = openapi3.Schemas{}

	for _, p := range m.Params {
		if !p.Kind.HasValue() {
			continue
		}
		prop, err := paramSchema(p)
		if err != nil {
			return nil, fmt.Errorf("openapi export: param %q: %w", p.Name, err)
		}
		schema.Properties[p.Name] = openapi3.NewSchemaRef("", prop)
		if p.Mandatory {
			schema.Required = append(schema.Required, p.Name)
		}
	}

	return schema, nil
}

func paramSchema(p manifest.Param) (*openapi3.Schema, error) {
	var prop *openapi3.Schema

	switch p.Kind {
	case manifest.KindString, manifest.KindTextarea:
		prop = openapi3.NewStringSchema()
	case manifest.KindFolder, manifest.KindDataset, manifest.KindColumn:
		prop = openapi3.NewStringSchema().WithMinLength(1)
	case manifest.KindInt:
		prop = openapi3.NewInt64Schema()
	case manifest.KindBoolean:
		prop = openapi3.NewBoolSchema()
	case manifest.KindSelect:
		values := make([]any, 0, len(p.Choices))
		for _, c := range p.Choices {
			values = append(values, c.Value)
		}
		prop = openapi3.NewStringSchema().WithEnum(values...)
	case manifest.KindKeyValueList:
		prop = openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema())
	default:
		return nil, errors.New("kind has no schema mapping")
	}

	prop.Title = p.DisplayLabel()
	prop.Description = p.Description
	if p.Default != nil {
		prop.Default = p.Default
	}
	return prop, nil
}
