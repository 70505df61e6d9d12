// Package assemble splices groups of rendered lines into a fixed template.
//
// Templates carry one `{{ name }}` placeholder per line group. The set of
// placeholders is checked against the supplied groups before anything is
// rendered: a mismatch is a configuration mistake in the template or the job,
// never a property of the row data.
package assemble

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/goliatone/go-luatable/pkg/render/template"
	"github.com/goliatone/go-luatable/pkg/render/template/gotemplate"
)

// ErrTemplateConfig matches every template/group mismatch.
var ErrTemplateConfig = errors.New("assemble: template configuration error")

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Template is a static document with named placeholder regions.
type Template struct {
	Name string
	Body string
}

// Placeholders lists placeholder names in order of first appearance.
func (t Template) Placeholders() []string {
	var names []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(t.Body, -1) {
		if !slices.Contains(names, match[1]) {
			names = append(names, match[1])
		}
	}
	return names
}

// Validate checks that every placeholder appears exactly once and that the
// body holds no other engine syntax.
func (t Template) Validate() error {
	counts := make(map[string]int)
	for _, match := range placeholderPattern.FindAllStringSubmatch(t.Body, -1) {
		counts[match[1]]++
	}
	for _, name := range t.Placeholders() {
		if counts[name] > 1 {
			return fmt.Errorf("%w: template %q uses placeholder %q %d times", ErrTemplateConfig, t.Name, name, counts[name])
		}
	}

	rest := placeholderPattern.ReplaceAllString(t.Body, "")
	for _, marker := range []string{"{{", "{%", "{#"} {
		if strings.Contains(rest, marker) {
			return fmt.Errorf("%w: template %q contains unsupported marker %q", ErrTemplateConfig, t.Name, marker)
		}
	}
	return nil
}

// Option customises an Assembler.
type Option func(*Assembler)

// WithEngine injects the template engine used for substitution.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(a *Assembler) {
		a.engine = engine
	}
}

// WithSeparator overrides the line separator. Defaults to "\n".
func WithSeparator(sep string) Option {
	return func(a *Assembler) {
		a.separator = sep
	}
}

// Assembler fills one template.
type Assembler struct {
	template     Template
	placeholders []string
	engine       template.TemplateRenderer
	separator    string
}

// New validates tpl and returns an assembler for it.
func New(tpl Template, options ...Option) (*Assembler, error) {
	if err := tpl.Validate(); err != nil {
		return nil, err
	}

	a := &Assembler{
		template:     tpl,
		placeholders: tpl.Placeholders(),
		separator:    "\n",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	if a.engine == nil {
		engine, err := gotemplate.New()
		if err != nil {
			return nil, fmt.Errorf("assemble: create engine: %w", err)
		}
		a.engine = engine
	}
	return a, nil
}

// Placeholders returns the placeholder names of the template.
func (a *Assembler) Placeholders() []string {
	return slices.Clone(a.placeholders)
}

// Check reports a configuration error unless group names match the
// template's placeholders exactly.
func (a *Assembler) Check(groups []string) error {
	expected := make(map[string]struct{}, len(a.placeholders))
	for _, name := range a.placeholders {
		expected[name] = struct{}{}
	}

	var unknown []string
	provided := make(map[string]struct{}, len(groups))
	for _, name := range groups {
		provided[name] = struct{}{}
		if _, ok := expected[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	var unfilled []string
	for _, name := range a.placeholders {
		if _, ok := provided[name]; !ok {
			unfilled = append(unfilled, name)
		}
	}

	switch {
	case len(unfilled) > 0:
		return fmt.Errorf("%w: template %q has no group for placeholder(s) %s", ErrTemplateConfig, a.template.Name, strings.Join(unfilled, ", "))
	case len(unknown) > 0:
		return fmt.Errorf("%w: template %q has no placeholder for group(s) %s", ErrTemplateConfig, a.template.Name, strings.Join(unknown, ", "))
	}
	return nil
}

// Assemble joins each group's lines and substitutes them into the template.
// A group with no lines produces an empty region.
func (a *Assembler) Assemble(groups map[string][]string) (string, error) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	if err := a.Check(names); err != nil {
		return "", err
	}

	data := make(map[string]any, len(groups))
	for name, lines := range groups {
		data[name] = Join(lines, a.separator)
	}

	out, err := a.engine.RenderString(a.template.Body, data)
	if err != nil {
		return "", fmt.Errorf("assemble: render %q: %w", a.template.Name, err)
	}
	return out, nil
}

// Join concatenates lines, each followed by sep, then trims a single trailing
// sep.
func Join(lines []string, sep string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(sep)
	}
	return strings.TrimSuffix(b.String(), sep)
}
