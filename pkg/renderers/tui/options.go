package tui

// OutputFormat selects how collected bindings are serialized.
type OutputFormat string

const (
	OutputFormatJSON       OutputFormat = "json"
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Option customises the renderer.
type Option func(*Renderer)

// WithDriver swaps the prompt driver. Tests inject fakes through this.
func WithDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the serialization used by Render.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		r.outputFormat = format
	}
}
