package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
)

// ErrorMapping splits submission feedback into field-level messages keyed by
// param name and form-level messages that do not belong to a single control.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// Valid reports whether the mapping carries no messages.
func (m ErrorMapping) Valid() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// CheckBindings validates the key→value bindings a consumer collected against
// the manifest: mandatory params must be bound and every bound value must
// match its param kind. Bindings without a matching param surface as
// form-level errors so messages are not lost.
func CheckBindings(m manifest.Manifest, values map[string]any) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}

	known := make(map[string]manifest.Param, len(m.Params))
	for _, p := range m.Params {
		known[p.Name] = p
	}

	for name := range values {
		if _, ok := known[name]; !ok {
			mapping.Form = append(mapping.Form, fmt.Sprintf("binding %q does not match any declared param", name))
		}
	}

	for _, p := range m.Params {
		value, bound := values[p.Name]

		if p.Kind == manifest.KindSeparator {
			if bound {
				mapping.Fields[p.Name] = append(mapping.Fields[p.Name], "separators accept no value")
			}
			continue
		}

		if !bound || isEmptyValue(value) {
			if p.Mandatory {
				mapping.Fields[p.Name] = append(mapping.Fields[p.Name], "required")
			}
			continue
		}

		if msg := checkValueKind(p, value); msg != "" {
			mapping.Fields[p.Name] = append(mapping.Fields[p.Name], msg)
		}
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func checkValueKind(p manifest.Param, value any) string {
	switch p.Kind {
	case manifest.KindString, manifest.KindTextarea:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("expected a string, got %T", value)
		}
	case manifest.KindFolder, manifest.KindDataset, manifest.KindColumn:
		ref, ok := value.(string)
		if !ok {
			return fmt.Sprintf("expected an object reference, got %T", value)
		}
		if strings.TrimSpace(ref) == "" {
			return "reference must not be blank"
		}
	case manifest.KindInt:
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != float64(int64(v)) {
				return fmt.Sprintf("expected an integer, got %v", v)
			}
		default:
			return fmt.Sprintf("expected an integer, got %T", value)
		}
	case manifest.KindBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("expected a boolean, got %T", value)
		}
	case manifest.KindSelect:
		selected, ok := value.(string)
		if !ok {
			return fmt.Sprintf("expected a choice value, got %T", value)
		}
		for _, c := range p.Choices {
			if c.Value == selected {
				return ""
			}
		}
		return fmt.Sprintf("%q is not among the declared choices", selected)
	case manifest.KindKeyValueList:
		return checkKeyValueList(value)
	}
	return ""
}

// checkKeyValueList accepts string→string maps; values may be empty or nil
// since the key→value list allows keys without values.
func checkKeyValueList(value any) string {
	switch entries := value.(type) {
	case map[string]string:
		for key := range entries {
			if strings.TrimSpace(key) == "" {
				return "keys must not be blank"
			}
		}
	case map[string]any:
		for key, raw := range entries {
			if strings.TrimSpace(key) == "" {
				return "keys must not be blank"
			}
			if raw == nil {
				continue
			}
			if _, ok := raw.(string); !ok {
				return fmt.Sprintf("value for key %q must be a string, got %T", key, raw)
			}
		}
	default:
		return fmt.Sprintf("expected a key/value map, got %T", value)
	}
	return ""
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case map[string]string:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
