package jobs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-luatable/pkg/assemble"
	"github.com/goliatone/go-luatable/pkg/filter"
	"github.com/goliatone/go-luatable/pkg/luacheck"
	"github.com/goliatone/go-luatable/pkg/orchestrator"
	"github.com/goliatone/go-luatable/pkg/render"
	"github.com/goliatone/go-luatable/pkg/sink"
	"github.com/goliatone/go-luatable/pkg/source"
	"github.com/goliatone/go-luatable/pkg/table"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	root      string
	stdout    io.Writer
	clipboard []sink.ClipboardOption
	formats   *render.Registry
}

// WithRoot sets the directory manifest paths are relative to. Defaults to
// the working directory.
func WithRoot(root string) BuildOption {
	return func(cfg *buildConfig) {
		cfg.root = root
	}
}

// WithStdout sets the writer used by console sinks and file confirmations.
func WithStdout(w io.Writer) BuildOption {
	return func(cfg *buildConfig) {
		cfg.stdout = w
	}
}

// WithClipboardOptions forwards options to every clipboard sink.
func WithClipboardOptions(options ...sink.ClipboardOption) BuildOption {
	return func(cfg *buildConfig) {
		cfg.clipboard = append(cfg.clipboard, options...)
	}
}

// WithFormats replaces the registry used to resolve group formats.
func WithFormats(registry *render.Registry) BuildOption {
	return func(cfg *buildConfig) {
		cfg.formats = registry
	}
}

// Build converts the named jobs into orchestrator jobs, in the order given.
// With no names every job in the manifest is built.
func (m *Manifest) Build(names []string, options ...BuildOption) ([]orchestrator.Job, error) {
	cfg := buildConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("jobs: resolve working directory: %w", err)
		}
		cfg.root = wd
	}
	if cfg.stdout == nil {
		cfg.stdout = os.Stdout
	}
	if cfg.formats == nil {
		cfg.formats = render.DefaultRegistry()
	}

	if len(names) == 0 {
		names = m.Names()
	}

	out := make([]orchestrator.Job, 0, len(names))
	for _, name := range names {
		config, ok := m.Job(name)
		if !ok {
			return nil, fmt.Errorf("jobs: unknown job %q", name)
		}
		job, err := m.build(config, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, nil
}

func (m *Manifest) build(config JobConfig, cfg buildConfig) (orchestrator.Job, error) {
	body, err := fs.ReadFile(m.templates, config.Template)
	if err != nil {
		return orchestrator.Job{}, fmt.Errorf("jobs: job %q template: %w", config.Name, err)
	}

	check, err := luacheck.ParseMode(config.Check)
	if err != nil {
		return orchestrator.Job{}, fmt.Errorf("jobs: job %q: %w", config.Name, err)
	}

	job := orchestrator.Job{
		Name:     config.Name,
		Template: assemble.Template{Name: config.Template, Body: string(body)},
		Check:    check,
	}

	for _, group := range config.Groups {
		built, err := buildGroup(group, cfg)
		if err != nil {
			return orchestrator.Job{}, fmt.Errorf("jobs: job %q: %w", config.Name, err)
		}
		job.Groups = append(job.Groups, built)
	}

	for _, name := range orderSinks(config.Sinks) {
		switch name {
		case SinkConsole:
			job.Sinks = append(job.Sinks, sink.NewConsole(cfg.stdout, config.Highlight))
		case SinkClipboard:
			job.Sinks = append(job.Sinks, sink.NewClipboard(cfg.clipboard...))
		case SinkFile:
			job.Sinks = append(job.Sinks, sink.NewFile(resolve(cfg.root, config.Output), cfg.stdout, config.Highlight))
		}
	}
	return job, nil
}

func buildGroup(group GroupConfig, cfg buildConfig) (orchestrator.Group, error) {
	formatName := group.Format
	if formatName == "" {
		formatName = "lua"
	}
	format, err := cfg.formats.Get(formatName)
	if err != nil {
		return orchestrator.Group{}, fmt.Errorf("group %q: %w", group.Name, err)
	}
	format.Depth = group.Depth
	if group.UnsetAs != nil {
		format = format.WithUnsetAs(*group.UnsetAs)
	}

	value := render.FromFlag()
	if group.Value != nil {
		value = render.Constant(*group.Value)
	}

	return orchestrator.Group{
		Name:   group.Name,
		Source: source.SourceFromFile(resolve(cfg.root, group.Source)),
		Schema: table.NewSchema(group.Identifier, group.Flag),
		Filter: filter.Spec{
			Contains:   group.Contains,
			StrictTrue: group.StrictTrue,
			Sort:       group.Sort,
		},
		Format: format,
		Value:  value,
	}, nil
}

// orderSinks always includes the console and keeps it ahead of every other
// sink so the text is visible even when a later destination fails.
func orderSinks(names []string) []string {
	ordered := []string{SinkConsole}
	seen := map[string]struct{}{SinkConsole: {}}
	for _, want := range []string{SinkClipboard, SinkFile} {
		for _, name := range names {
			if name != want {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			ordered = append(ordered, name)
		}
	}
	return ordered
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, filepath.FromSlash(p))
}
