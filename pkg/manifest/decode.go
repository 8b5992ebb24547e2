package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// manifestDoc mirrors the serialized document shape. Params decode into an
// ordered slice so rendering order survives the round trip.
type manifestDoc struct {
	Meta                    Meta       `json:"meta" yaml:"meta"`
	BaseType                string     `json:"baseType" yaml:"baseType"`
	HasBackend              bool       `json:"hasBackend,omitempty" yaml:"hasBackend,omitempty"`
	EnableJavascriptModules bool       `json:"enableJavascriptModules,omitempty" yaml:"enableJavascriptModules,omitempty"`
	Libraries               []string   `json:"standardWebAppLibraries,omitempty" yaml:"standardWebAppLibraries,omitempty"`
	Params                  []paramDoc `json:"params" yaml:"params"`
}

type paramDoc struct {
	Name             string   `json:"name" yaml:"name"`
	Type             string   `json:"type" yaml:"type"`
	Label            string   `json:"label,omitempty" yaml:"label,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Mandatory        *bool    `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	DefaultValue     any      `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	CanSelectForeign bool     `json:"canSelectForeign,omitempty" yaml:"canSelectForeign,omitempty"`
	CanCreateDataset bool     `json:"canCreateDataset,omitempty" yaml:"canCreateDataset,omitempty"`
	SelectChoices    []Choice `json:"selectChoices,omitempty" yaml:"selectChoices,omitempty"`
	DatasetParamName string   `json:"datasetParamName,omitempty" yaml:"datasetParamName,omitempty"`
}

// Decode parses a manifest document, accepting JSON first and falling back to
// YAML, then checks the structural invariants via Validate.
func Decode(data []byte) (Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Manifest{}, fmt.Errorf("manifest: document is empty")
	}

	var doc manifestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return Manifest{}, fmt.Errorf("manifest: document is neither valid JSON nor YAML")
		}
	}
	return fromDoc(doc)
}

// DecodeJSON parses a JSON manifest document.
func DecodeJSON(data []byte) (Manifest, error) {
	var doc manifestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Manifest{}, fmt.Errorf("manifest: parse json: %w", err)
	}
	return fromDoc(doc)
}

// DecodeYAML parses a YAML manifest document.
func DecodeYAML(data []byte) (Manifest, error) {
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Manifest{}, fmt.Errorf("manifest: parse yaml: %w", err)
	}
	return fromDoc(doc)
}

func fromDoc(doc manifestDoc) (Manifest, error) {
	m := Manifest{
		Meta:                    doc.Meta,
		BaseType:                doc.BaseType,
		HasBackend:              doc.HasBackend,
		EnableJavascriptModules: doc.EnableJavascriptModules,
		Libraries:               append([]string(nil), doc.Libraries...),
		Params:                  make([]Param, 0, len(doc.Params)),
	}

	for i, raw := range doc.Params {
		p, err := paramFromDoc(raw, i)
		if err != nil {
			return Manifest{}, err
		}
		m.Params = append(m.Params, p)
	}

	if err := Validate(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func paramFromDoc(raw paramDoc, index int) (Param, error) {
	kind := ParamKind(raw.Type)
	if !kind.Known() {
		name := raw.Name
		if name == "" {
			name = fmt.Sprintf("#%d", index)
		}
		return Param{}, fmt.Errorf("manifest: param %q: %w: %q", name, ErrUnknownKind, raw.Type)
	}

	p := Param{
		Name:             raw.Name,
		Kind:             kind,
		Label:            raw.Label,
		Description:      raw.Description,
		CanSelectForeign: raw.CanSelectForeign,
		CanCreateDataset: raw.CanCreateDataset,
		Choices:          append([]Choice(nil), raw.SelectChoices...),
		DatasetParamName: raw.DatasetParamName,
	}

	if kind.HasValue() {
		if raw.Mandatory == nil {
			return Param{}, fmt.Errorf("manifest: param %q: %s params must declare a mandatory boolean", raw.Name, kind)
		}
		p.Mandatory = *raw.Mandatory
	} else if raw.Mandatory != nil && *raw.Mandatory {
		return Param{}, fmt.Errorf("manifest: param %q: separators carry no value slot and cannot be mandatory", raw.Name)
	}

	def, err := coerceDefault(kind, raw.DefaultValue)
	if err != nil {
		return Param{}, fmt.Errorf("manifest: param %q: %w", raw.Name, err)
	}
	p.Default = def

	return p, nil
}

// coerceDefault normalizes decoder-specific scalar types (JSON float64, YAML
// int) into the canonical representation Validate expects.
func coerceDefault(kind ParamKind, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	switch kind {
	case KindInt:
		switch v := raw.(type) {
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("default for INT params must be an integer, got %v", v)
			}
			return int64(v), nil
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		}
	case KindString, KindTextarea, KindSelect, KindBoolean:
		return raw, nil
	}
	return raw, nil
}
