package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	internalLoader "github.com/goliatone/go-luatable/internal/source/loader"
	"github.com/goliatone/go-luatable/pkg/assemble"
	"github.com/goliatone/go-luatable/pkg/filter"
	"github.com/goliatone/go-luatable/pkg/luacheck"
	"github.com/goliatone/go-luatable/pkg/notify"
	"github.com/goliatone/go-luatable/pkg/render"
	"github.com/goliatone/go-luatable/pkg/render/template"
	"github.com/goliatone/go-luatable/pkg/render/template/gotemplate"
	"github.com/goliatone/go-luatable/pkg/sink"
	"github.com/goliatone/go-luatable/pkg/source"
	"github.com/goliatone/go-luatable/pkg/table"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom row loader.
func WithLoader(loader source.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithEngine injects the template engine handed to assemblers.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(o *Orchestrator) {
		o.engine = engine
	}
}

// WithWarningWriter sets where skipped-row warnings are printed. Defaults to
// stderr; pass io.Discard to silence them.
func WithWarningWriter(w io.Writer) Option {
	return func(o *Orchestrator) {
		o.warnings = w
	}
}

// Orchestrator runs generation jobs. It holds no state between jobs.
type Orchestrator struct {
	loader        source.Loader
	engine        template.TemplateRenderer
	warnings      io.Writer
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Group describes one placeholder's rows: where they come from, how they are
// filtered and how each line is rendered.
type Group struct {
	// Name matches a placeholder in the job template.
	Name   string
	Source source.Source
	Schema table.Schema
	Filter filter.Spec
	Format render.LineFormat
	Value  render.ValueSource
}

// Job is a complete generation run.
type Job struct {
	Name     string
	Template assemble.Template
	Groups   []Group
	// Check compiles the assembled text before delivery. Empty skips it.
	Check luacheck.Mode
	// Sinks receive the text in order. Console output belongs first so it
	// survives a later file failure.
	Sinks []sink.Sink
}

// Result is the outcome of one job.
type Result struct {
	Job  string
	Text string
	// Sinks lists the sinks that accepted the text.
	Sinks []string
	// Warnings lists the rows skipped while loading.
	Warnings []*table.MalformedRowError
	// Rows counts rendered lines per group.
	Rows map[string]int
	// Skipped counts rows dropped for lacking a value to render.
	Skipped int
}

// Generate loads, filters and renders every group, assembles the template
// and delivers the text to the job's sinks. A *table.SchemaError or a
// template configuration error aborts before any sink is written; a
// *sink.SinkError is returned alongside the partial Result. Generated text
// that fails the job's Lua check is never delivered.
func (o *Orchestrator) Generate(ctx context.Context, job Job) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if job.Name == "" {
		return Result{}, errors.New("orchestrator: job name is required")
	}

	assembler, err := assemble.New(job.Template, assemble.WithEngine(o.engine))
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: job %q: %w", job.Name, err)
	}
	names := make([]string, 0, len(job.Groups))
	for _, group := range job.Groups {
		names = append(names, group.Name)
	}
	if err := assembler.Check(names); err != nil {
		return Result{}, fmt.Errorf("orchestrator: job %q: %w", job.Name, err)
	}

	result := Result{
		Job:  job.Name,
		Rows: make(map[string]int, len(job.Groups)),
	}
	lines := make(map[string][]string, len(job.Groups))
	for _, group := range job.Groups {
		if _, dup := lines[group.Name]; dup {
			return Result{}, fmt.Errorf("orchestrator: job %q: %w: group %q declared twice", job.Name, assemble.ErrTemplateConfig, group.Name)
		}

		loaded, err := o.loader.Load(ctx, group.Source, group.Schema)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: job %q group %q: %w", job.Name, group.Name, err)
		}
		for _, warning := range loaded.Warnings {
			notify.Warningf(o.warnings, "skipping row: %v", warning)
		}
		result.Warnings = append(result.Warnings, loaded.Warnings...)

		rows := group.Filter.Run(loaded.Rows)
		rendered, skipped := render.Lines(rows, group.Format, group.Value)
		lines[group.Name] = rendered
		result.Rows[group.Name] = len(rendered)
		result.Skipped += skipped
	}

	text, err := assembler.Assemble(lines)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: job %q: %w", job.Name, err)
	}
	result.Text = text

	if job.Check != "" {
		if err := luacheck.Check(job.Name, text, job.Check); err != nil {
			return Result{}, fmt.Errorf("orchestrator: job %q: %w", job.Name, err)
		}
	}

	delivered, err := sink.Deliver(ctx, text, job.Sinks...)
	result.Sinks = delivered
	if err != nil {
		return result, fmt.Errorf("orchestrator: job %q: %w", job.Name, err)
	}
	return result, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(source.NewLoaderOptions())
	}
	if o.engine == nil {
		engine, err := gotemplate.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default engine: %w", err)
		} else {
			o.engine = engine
		}
	}
	if o.warnings == nil {
		o.warnings = os.Stderr
	}
}
