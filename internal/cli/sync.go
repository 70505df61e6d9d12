package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-luatable/internal/config"
	"github.com/goliatone/go-luatable/pkg/enumsync"
	"github.com/goliatone/go-luatable/pkg/notify"
	"github.com/goliatone/go-luatable/pkg/prompt"
)

const (
	bodyLocationEnumFile = "Scripts/bodyLocationEnum.java"
	bodyLocationTable    = "Scripts/bodyLocations.csv"
	bodyLocationColumn   = "bodyLocation"
)

// NewSyncCmd appends body locations registered in the game's Java enum but
// missing from the body-location table.
func NewSyncCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "sync-body-locations",
		Short: "Add body locations from the Java enum that are missing in the CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			root, err := cfg.ProjectRoot()
			if err != nil {
				return err
			}

			var driver prompt.Driver = prompt.NewSurveyDriver()
			if yes {
				driver = prompt.Static(true)
			}

			result, err := enumsync.Sync(cmd.Context(), enumsync.Options{
				EnumPath: filepath.Join(root, filepath.FromSlash(bodyLocationEnumFile)),
				CSVPath:  filepath.Join(root, filepath.FromSlash(bodyLocationTable)),
				Column:   bodyLocationColumn,
				Prompt:   driver,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Added) == 0 {
				notify.Infof(out, "%d enum entries scanned, table already complete", result.Scanned)
				return nil
			}
			notify.Generatef(out, "Added %d missing entries to CSV", len(result.Added))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "write without asking for confirmation")
	return cmd
}
