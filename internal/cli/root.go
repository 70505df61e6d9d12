// Package cli builds the luatable command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command with every subcommand attached. Running
// the root command without a subcommand generates all built-in jobs.
func NewRootCmd(version string) *cobra.Command {
	generate := NewGenerateCmd()

	cmd := &cobra.Command{
		Use:           "luatable",
		Short:         "Generate Lua configuration tables for the horse mod from CSV data",
		Args:          cobra.ArbitraryArgs,
		RunE:          generate.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	cmd.AddCommand(generate)
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewStripCmd())

	return cmd
}

// Execute runs cmd and wraps its error.
func Execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}
	return nil
}
