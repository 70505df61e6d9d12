package template

import (
	"io"
)

// TemplateRenderer is the seam between the assembler and a concrete template
// engine. Output is also copied to every writer in out.
type TemplateRenderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
