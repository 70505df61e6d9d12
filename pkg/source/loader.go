package source

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-luatable/pkg/table"
)

// Loader reads every row of a tabular document into memory, validating the
// header against schema. A *table.SchemaError aborts the load; malformed
// records are skipped and reported in Result.Warnings.
type Loader interface {
	Load(ctx context.Context, src Source, schema table.Schema) (Result, error)
}

// Result is the outcome of a successful load.
type Result struct {
	Rows     []table.Row
	Warnings []*table.MalformedRowError
}

// LoaderOptions configures how a Loader resolves and parses sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources. FS sources fail when nil.
	FileSystem fs.FS

	// Warn is invoked for each skipped record as soon as it is found, in
	// addition to the record being listed in Result.Warnings.
	Warn func(*table.MalformedRowError)

	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS for SourceFromFS documents.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithWarningHandler registers a callback for skipped records.
func WithWarningHandler(fn func(*table.MalformedRowError)) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Warn = fn
	}
}

// WithComma overrides the field delimiter.
func WithComma(comma rune) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Comma = comma
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{Comma: ','}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.Comma == 0 {
		cfg.Comma = ','
	}
	return cfg
}
