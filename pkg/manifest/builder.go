package manifest

import "fmt"

// ParamOption customises attributes shared by several param kinds.
type ParamOption func(*Param)

// WithDescription attaches help text rendered under the control.
func WithDescription(text string) ParamOption {
	return func(p *Param) {
		p.Description = text
	}
}

// WithForeignSelection allows the selector to reference objects owned by
// other projects. FOLDER and DATASET params only.
func WithForeignSelection() ParamOption {
	return func(p *Param) {
		p.CanSelectForeign = true
	}
}

// WithDatasetCreation lets the user create the dataset inline. DATASET only.
func WithDatasetCreation() ParamOption {
	return func(p *Param) {
		p.CanCreateDataset = true
	}
}

// NewSeparator declares a visual grouping marker. Separators carry no value
// slot, so there is no mandatory flag to set.
func NewSeparator(name, label string) Param {
	return Param{Name: name, Kind: KindSeparator, Label: label}
}

// NewStringParam declares a free-text scalar field.
func NewStringParam(name, label string, mandatory bool, options ...ParamOption) Param {
	return applyOptions(Param{Name: name, Kind: KindString, Label: label, Mandatory: mandatory}, options)
}

// NewTextareaParam declares a multi-line free-text field.
func NewTextareaParam(name, label string, mandatory bool, options ...ParamOption) Param {
	return applyOptions(Param{Name: name, Kind: KindTextarea, Label: label, Mandatory: mandatory}, options)
}

// NewIntParam declares an integer field.
func NewIntParam(name, label string, mandatory bool, options ...ParamOption) Param {
	return applyOptions(Param{Name: name, Kind: KindInt, Label: label, Mandatory: mandatory}, options)
}

// NewBooleanParam declares an on/off toggle.
func NewBooleanParam(name, label string, mandatory bool, options ...ParamOption) Param {
	return applyOptions(Param{Name: name, Kind: KindBoolean, Label: label, Mandatory: mandatory}, options)
}

// NewFolderParam declares a reference to a managed folder of files.
func NewFolderParam(name, label string, mandatory bool, options ...ParamOption) Param {
	return applyOptions(Param{Name: name, Kind: KindFolder, Label: label, Mandatory: mandatory}, options)
}

// NewDatasetParam declares a reference to a tabular dataset.
func NewDatasetParam(name, label string, mandatory bool, options ...ParamOption) Param {
	return applyOptions(Param{Name: name, Kind: KindDataset, Label: label, Mandatory: mandatory}, options)
}

// NewKeyValueListParam declares a mapping of string keys to optional string
// values.
func NewKeyValueListParam(name, label string, mandatory bool, options ...ParamOption) Param {
	return applyOptions(Param{Name: name, Kind: KindKeyValueList, Label: label, Mandatory: mandatory}, options)
}

// NewSelectParam declares a single-choice field over a fixed option list.
func NewSelectParam(name, label string, mandatory bool, choices []Choice, options ...ParamOption) Param {
	p := Param{Name: name, Kind: KindSelect, Label: label, Mandatory: mandatory}
	p.Choices = append(p.Choices, choices...)
	return applyOptions(p, options)
}

// NewColumnParam declares a field selecting a column of the dataset bound to
// datasetParam, which must name an earlier DATASET param.
func NewColumnParam(name, label string, mandatory bool, datasetParam string, options ...ParamOption) Param {
	p := Param{Name: name, Kind: KindColumn, Label: label, Mandatory: mandatory, DatasetParamName: datasetParam}
	return applyOptions(p, options)
}

// WithDefault seeds the rendered control. The value must match the param
// kind; Validate reports mismatches.
func WithDefault(value any) ParamOption {
	return func(p *Param) {
		p.Default = value
	}
}

func applyOptions(p Param, options []ParamOption) Param {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&p)
	}
	return p
}

// Builder assembles a manifest incrementally. Build validates the result, so
// a builder chain either yields a well-formed manifest or an error naming the
// first offending param.
type Builder struct {
	manifest Manifest
}

// NewBuilder starts a manifest with the given catalog metadata.
func NewBuilder(meta Meta) *Builder {
	return &Builder{manifest: Manifest{Meta: meta, BaseType: "STANDARD"}}
}

// BaseType overrides the webapp category tag.
func (b *Builder) BaseType(baseType string) *Builder {
	b.manifest.BaseType = baseType
	return b
}

// Backend marks the webapp as carrying a server-side component.
func (b *Builder) Backend() *Builder {
	b.manifest.HasBackend = true
	return b
}

// JavascriptModules enables ES module loading for the webapp front end.
func (b *Builder) JavascriptModules() *Builder {
	b.manifest.EnableJavascriptModules = true
	return b
}

// Libraries appends required front-end library names.
func (b *Builder) Libraries(names ...string) *Builder {
	b.manifest.Libraries = append(b.manifest.Libraries, names...)
	return b
}

// Add appends a param; order of Add calls is the rendering order.
func (b *Builder) Add(params ...Param) *Builder {
	b.manifest.Params = append(b.manifest.Params, params...)
	return b
}

// Build validates and returns the assembled manifest.
func (b *Builder) Build() (Manifest, error) {
	if err := Validate(&b.manifest); err != nil {
		return Manifest{}, fmt.Errorf("manifest builder: %w", err)
	}
	return b.manifest, nil
}

// MustBuild panics on validation failure. Useful for fixtures and init-time
// declarations.
func (b *Builder) MustBuild() Manifest {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
