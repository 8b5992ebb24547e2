package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateParam signals two params sharing a name. The platform
	// behavior for duplicates is unspecified, so the library refuses them
	// outright instead of guessing an overwrite order.
	ErrDuplicateParam = errors.New("duplicate param name")

	// ErrUnknownKind signals a param type outside the closed enumeration.
	ErrUnknownKind = errors.New("unknown param type")
)

// Validate checks the manifest against the structural invariants the host
// platform relies on: unique names, recognized kinds, and per-kind attribute
// validity. It returns the first violation found, in param order.
func Validate(m *Manifest) error {
	if m == nil {
		return errors.New("manifest: document is nil")
	}
	if m.Meta.Label == "" {
		return errors.New("manifest: meta.label is required")
	}
	if m.BaseType == "" {
		return errors.New("manifest: baseType is required")
	}

	seen := make(map[string]struct{}, len(m.Params))
	datasets := make(map[string]int, 2)

	for i, p := range m.Params {
		if p.Name == "" {
			return fmt.Errorf("manifest: param at index %d: name is required", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("manifest: param %q: %w", p.Name, ErrDuplicateParam)
		}
		seen[p.Name] = struct{}{}

		if !p.Kind.Known() {
			return fmt.Errorf("manifest: param %q: %w: %q", p.Name, ErrUnknownKind, p.Kind)
		}
		if p.Label == "" {
			return fmt.Errorf("manifest: param %q: label is required", p.Name)
		}

		if err := validateAttributes(p, datasets); err != nil {
			return fmt.Errorf("manifest: param %q: %w", p.Name, err)
		}

		if p.Kind == KindDataset {
			datasets[p.Name] = i
		}
	}
	return nil
}

func validateAttributes(p Param, earlierDatasets map[string]int) error {
	if p.CanSelectForeign && p.Kind != KindFolder && p.Kind != KindDataset {
		return fmt.Errorf("canSelectForeign is not valid on %s params", p.Kind)
	}
	if p.CanCreateDataset && p.Kind != KindDataset {
		return fmt.Errorf("canCreateDataset is not valid on %s params", p.Kind)
	}
	if len(p.Choices) > 0 && p.Kind != KindSelect {
		return fmt.Errorf("selectChoices are not valid on %s params", p.Kind)
	}
	if p.DatasetParamName != "" && p.Kind != KindColumn {
		return fmt.Errorf("datasetParamName is not valid on %s params", p.Kind)
	}

	switch p.Kind {
	case KindSeparator:
		if p.Mandatory {
			return errors.New("separators carry no value slot and cannot be mandatory")
		}
		if p.Default != nil {
			return errors.New("separators cannot declare a default value")
		}
	case KindSelect:
		if len(p.Choices) == 0 {
			return errors.New("select params need at least one choice")
		}
		values := make(map[string]struct{}, len(p.Choices))
		for _, c := range p.Choices {
			if c.Value == "" {
				return errors.New("select choices need a value")
			}
			if _, dup := values[c.Value]; dup {
				return fmt.Errorf("duplicate select choice %q", c.Value)
			}
			values[c.Value] = struct{}{}
		}
		if p.Default != nil {
			def, ok := p.Default.(string)
			if !ok {
				return fmt.Errorf("select default must be a string, got %T", p.Default)
			}
			if _, known := values[def]; !known {
				return fmt.Errorf("select default %q is not among the declared choices", def)
			}
		}
	case KindColumn:
		if p.DatasetParamName == "" {
			return errors.New("column params need datasetParamName")
		}
		if _, ok := earlierDatasets[p.DatasetParamName]; !ok {
			return fmt.Errorf("datasetParamName %q does not reference an earlier DATASET param", p.DatasetParamName)
		}
	}

	return validateDefault(p)
}

func validateDefault(p Param) error {
	if p.Default == nil {
		return nil
	}
	switch p.Kind {
	case KindString, KindTextarea, KindSelect:
		if _, ok := p.Default.(string); !ok {
			return fmt.Errorf("default for %s params must be a string, got %T", p.Kind, p.Default)
		}
	case KindInt:
		switch p.Default.(type) {
		case int, int64:
		default:
			return fmt.Errorf("default for INT params must be an integer, got %T", p.Default)
		}
	case KindBoolean:
		if _, ok := p.Default.(bool); !ok {
			return fmt.Errorf("default for BOOLEAN params must be a bool, got %T", p.Default)
		}
	default:
		return fmt.Errorf("%s params cannot declare a default value", p.Kind)
	}
	return nil
}

// Finding is a non-fatal observation reported by Lint.
type Finding struct {
	Param   string
	Message string
}

func (f Finding) String() string {
	if f.Param == "" {
		return f.Message
	}
	return fmt.Sprintf("param %q: %s", f.Param, f.Message)
}

// Lint reports structural oddities that a host would tolerate but a plugin
// author probably wants to know about. It assumes the manifest already passed
// Validate.
func Lint(m *Manifest) []Finding {
	var findings []Finding

	if m.Meta.Description == "" {
		findings = append(findings, Finding{Message: "meta.description is empty; the catalog listing will show only the label"})
	}

	for _, p := range m.Params {
		switch p.Kind {
		case KindSeparator:
			if p.Description != "" {
				findings = append(findings, Finding{Param: p.Name, Message: "separators do not display a description"})
			}
		case KindDataset:
			// A mandatory selector that admits foreign datasets while also
			// advertising inline creation is ambiguous: hosts that restrict
			// such selectors to existing foreign datasets make creation
			// unreachable.
			if p.CanCreateDataset && p.CanSelectForeign && p.Mandatory {
				findings = append(findings, Finding{Param: p.Name, Message: "canCreateDataset combined with mandatory foreign selection may make creation unreachable"})
			}
		case KindSelect:
			for _, c := range p.Choices {
				if c.Label == "" {
					findings = append(findings, Finding{Param: p.Name, Message: fmt.Sprintf("choice %q has no label; the raw value will be displayed", c.Value)})
					break
				}
			}
		}
	}
	return findings
}
