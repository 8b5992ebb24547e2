// Package template defines the seam between renderers and the template
// engine, mirroring the github.com/goliatone/go-template engine contract.
package template

import "io"

// Renderer is the engine contract HTML renderers rely on.
type Renderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(content string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
