package gotemplate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-luatable/pkg/render/template"
)

// Option configures the adapter before construction.
type Option func(*config)

type config struct {
	autoescape bool
}

// WithAutoescape toggles HTML escaping of substituted values. Generated Lua
// needs it off, which is the default.
func WithAutoescape(enabled bool) Option {
	return func(cfg *config) {
		cfg.autoescape = enabled
	}
}

// Engine satisfies template.TemplateRenderer using a pongo2 template set.
type Engine struct {
	templateSet *pongo2.TemplateSet
	autoescape  bool
}

// Ensure Engine implements the TemplateRenderer interface.
var _ template.TemplateRenderer = (*Engine)(nil)

// New constructs an Engine. Escaping is decided per engine: values handed
// to an engine without autoescape are marked safe, so pongo2's package-level
// switch is never touched.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	return &Engine{
		// Templates are always inline; the loader only satisfies NewSet.
		templateSet: pongo2.NewSet("luatable", pongo2.NewFSLoader(emptyFS{})),
		autoescape:  cfg.autoescape,
	}, nil
}

// RenderString parses and renders templateContent.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("gotemplate: engine is nil")
	}

	tmpl, err := e.templateSet.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse template string: %w", err)
	}

	viewContext, err := e.convertToContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: convert data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return "", fmt.Errorf("gotemplate: execute template: %w", err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

func (e *Engine) convertToContext(data any) (pongo2.Context, error) {
	out := pongo2.Context{}
	add := func(key string, value any) {
		if key = strings.TrimSpace(key); key == "" {
			return
		}
		if !e.autoescape {
			value = pongo2.AsSafeValue(value)
		}
		out[key] = value
	}

	switch v := data.(type) {
	case nil:
	case pongo2.Context:
		for key, value := range v {
			add(key, value)
		}
	case map[string]any:
		for key, value := range v {
			add(key, value)
		}
	case map[string]string:
		for key, value := range v {
			add(key, value)
		}
	default:
		return nil, fmt.Errorf("unsupported template data %T", data)
	}
	return out, nil
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
