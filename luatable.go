// Package luatable generates Lua configuration tables from CSV files.
//
// The pipeline reads rows from a delimited file, optionally filters and sorts
// them, renders each row as one `["key"] = bool,` line and splices the lines
// into a fixed template before writing the result to the console, the
// clipboard and/or a file. The sub-packages expose each stage; this package
// offers the shortcuts most callers need.
package luatable

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-luatable/pkg/jobs"
	"github.com/goliatone/go-luatable/pkg/orchestrator"
	"github.com/goliatone/go-luatable/pkg/sink"
)

// Job aliases orchestrator.Job for callers assembling jobs in code.
type Job = orchestrator.Job

// Group aliases orchestrator.Group.
type Group = orchestrator.Group

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// EmbeddedJobs exposes the bundled job manifest and templates.
func EmbeddedJobs() fs.FS {
	return jobs.EmbeddedFS()
}

// Run builds the named jobs from manifest and generates them in order. With
// no names every job runs. Results of jobs that completed are returned even
// when a later job fails; a job stopped by a *sink.SinkError contributes its
// partial result, listing the sinks that did receive the text.
func Run(ctx context.Context, manifest *jobs.Manifest, names []string, build []jobs.BuildOption, options ...orchestrator.Option) ([]Result, error) {
	if manifest == nil {
		return nil, errors.New("luatable: manifest is required")
	}
	built, err := manifest.Build(names, build...)
	if err != nil {
		return nil, err
	}

	gen := orchestrator.New(options...)
	results := make([]Result, 0, len(built))
	for _, job := range built {
		result, err := gen.Generate(ctx, job)
		if err != nil {
			var sinkErr *sink.SinkError
			if errors.As(err, &sinkErr) {
				results = append(results, result)
			}
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
