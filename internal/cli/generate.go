package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-luatable"
	"github.com/goliatone/go-luatable/internal/config"
	"github.com/goliatone/go-luatable/pkg/jobs"
	"github.com/goliatone/go-luatable/pkg/notify"
	"github.com/goliatone/go-luatable/pkg/orchestrator"
	"github.com/goliatone/go-luatable/pkg/sink"
)

// NewGenerateCmd runs built-in generation jobs. Job names are optional
// positional arguments; without them every job runs.
func NewGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [job...]",
		Short: "Generate Lua tables from the project's CSV files",
		Long: "Generate Lua tables from the project's CSV files.\n\n" +
			"Paths are resolved against the current directory, which should be the mod repository root,\n" +
			"or against $LUATABLE_ROOT when set. $LUATABLE_MANIFEST replaces the bundled job file.",
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	manifest, err := cfg.Jobs()
	if err != nil {
		return err
	}
	root, err := cfg.ProjectRoot()
	if err != nil {
		return err
	}

	results, err := luatable.Run(
		cmd.Context(),
		manifest,
		args,
		[]jobs.BuildOption{
			jobs.WithRoot(root),
			jobs.WithStdout(cmd.OutOrStdout()),
		},
		orchestrator.WithWarningWriter(cmd.ErrOrStderr()),
	)
	var sinkErr *sink.SinkError
	failedSink := errors.As(err, &sinkErr)
	for i, result := range results {
		if len(result.Warnings) > 0 {
			notify.Warningf(cmd.ErrOrStderr(), "%s: skipped %d malformed row(s)", result.Job, len(result.Warnings))
		}
		if failedSink && i == len(results)-1 {
			notify.Warningf(cmd.ErrOrStderr(), "%s delivered to %v before %s failed", result.Job, result.Sinks, sinkErr.Sink)
			continue
		}
		notify.Successf(cmd.ErrOrStderr(), "%s delivered to %v", result.Job, result.Sinks)
	}
	return err
}
