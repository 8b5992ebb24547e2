package manifest

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeJSON serializes the manifest as indented JSON. Params keep their
// declared order and only emit attributes meaningful for their kind;
// mandatory is always emitted for non-separator params so the document stays
// explicit under round trips.
func EncodeJSON(m Manifest) ([]byte, error) {
	data, err := json.MarshalIndent(toDoc(m), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("manifest: encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// EncodeYAML serializes the manifest as YAML.
func EncodeYAML(m Manifest) ([]byte, error) {
	data, err := yaml.Marshal(toDoc(m))
	if err != nil {
		return nil, fmt.Errorf("manifest: encode yaml: %w", err)
	}
	return data, nil
}

func toDoc(m Manifest) manifestDoc {
	doc := manifestDoc{
		Meta:                    m.Meta,
		BaseType:                m.BaseType,
		HasBackend:              m.HasBackend,
		EnableJavascriptModules: m.EnableJavascriptModules,
		Libraries:               append([]string(nil), m.Libraries...),
		Params:                  make([]paramDoc, 0, len(m.Params)),
	}
	for _, p := range m.Params {
		doc.Params = append(doc.Params, paramToDoc(p))
	}
	return doc
}

func paramToDoc(p Param) paramDoc {
	doc := paramDoc{
		Name:        p.Name,
		Type:        string(p.Kind),
		Label:       p.Label,
		Description: p.Description,
	}

	if p.Kind.HasValue() {
		mandatory := p.Mandatory
		doc.Mandatory = &mandatory
	}

	switch p.Kind {
	case KindFolder:
		doc.CanSelectForeign = p.CanSelectForeign
	case KindDataset:
		doc.CanSelectForeign = p.CanSelectForeign
		doc.CanCreateDataset = p.CanCreateDataset
	case KindSelect:
		doc.SelectChoices = append([]Choice(nil), p.Choices...)
		doc.DefaultValue = p.Default
	case KindString, KindTextarea, KindInt, KindBoolean:
		doc.DefaultValue = p.Default
	case KindColumn:
		doc.DatasetParamName = p.DatasetParamName
	}

	return doc
}
