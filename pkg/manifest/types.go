package manifest

// ParamKind enumerates the recognized field descriptor types. The host
// platform renders each kind with a dedicated control, so unknown values are
// rejected at decode time rather than passed through.
type ParamKind string

const (
	KindSeparator    ParamKind = "SEPARATOR"
	KindFolder       ParamKind = "FOLDER"
	KindKeyValueList ParamKind = "KEY_VALUE_LIST"
	KindDataset      ParamKind = "DATASET"
	KindString       ParamKind = "STRING"
	KindInt          ParamKind = "INT"
	KindBoolean      ParamKind = "BOOLEAN"
	KindSelect       ParamKind = "SELECT"
	KindTextarea     ParamKind = "TEXTAREA"
	KindColumn       ParamKind = "COLUMN"
)

// Known reports whether the kind belongs to the closed enumeration.
func (k ParamKind) Known() bool {
	switch k {
	case KindSeparator, KindFolder, KindKeyValueList, KindDataset, KindString,
		KindInt, KindBoolean, KindSelect, KindTextarea, KindColumn:
		return true
	default:
		return false
	}
}

// HasValue reports whether params of this kind carry a value slot. Separators
// are purely visual grouping markers.
func (k ParamKind) HasValue() bool {
	return k != KindSeparator
}

// Meta is the display metadata shown in a plugin catalog listing. Icon holds
// either an icon class name (e.g. "icon-tags") or inline SVG markup; the
// catalog sanitizes the latter before display.
type Meta struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Choice is one selectable option of a SELECT param.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Param is a single field descriptor within a manifest. Which attributes are
// meaningful depends on Kind; Validate enforces the pairing so a manifest
// cannot, say, allow dataset creation on a folder selector.
type Param struct {
	Name        string
	Kind        ParamKind
	Label       string
	Description string

	// Mandatory must be declared by every non-separator param. Decode fails
	// when the attribute is absent from the document.
	Mandatory bool

	// Default seeds the rendered control. String for STRING/TEXTAREA/SELECT,
	// int64 for INT, bool for BOOLEAN.
	Default any

	// CanSelectForeign allows FOLDER and DATASET params to reference objects
	// owned by other projects on the host.
	CanSelectForeign bool

	// CanCreateDataset lets the user create the output dataset inline instead
	// of picking an existing one. DATASET only.
	CanCreateDataset bool

	// Choices lists the options of a SELECT param.
	Choices []Choice

	// DatasetParamName ties a COLUMN param to the DATASET param whose columns
	// it offers. The referenced param must appear earlier in the manifest.
	DatasetParamName string
}

// DisplayLabel returns the label shown next to the rendered control, falling
// back to the param name.
func (p Param) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}

// Manifest is the top-level configuration document a webapp plugin registers
// with the host platform. Param order is meaningful (rendering order) and is
// preserved through decode/encode.
type Manifest struct {
	Meta     Meta
	BaseType string

	HasBackend              bool
	EnableJavascriptModules bool

	// Libraries names the front-end bundles the host must inject before the
	// webapp boots.
	Libraries []string

	Params []Param
}

// Param returns the descriptor with the given name.
func (m *Manifest) Param(name string) (Param, bool) {
	for _, p := range m.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// ValueParams returns the params that carry a value slot, preserving order.
func (m *Manifest) ValueParams() []Param {
	out := make([]Param, 0, len(m.Params))
	for _, p := range m.Params {
		if p.Kind.HasValue() {
			out = append(out, p)
		}
	}
	return out
}
