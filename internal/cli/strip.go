package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-luatable/internal/config"
	"github.com/goliatone/go-luatable/pkg/imageprep"
	"github.com/goliatone/go-luatable/pkg/notify"
)

const screenshotRoot = "Trailer/attachments"

// NewStripCmd removes the green-screen background from item screenshots.
// Each argument is an item type; screenshots are read from
// Trailer/attachments/screenshots/<type> and written to
// Trailer/attachments/output/<type>.
func NewStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip-images <item-type>...",
		Short: "Make screenshot backgrounds transparent and trim them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			projectRoot, err := cfg.ProjectRoot()
			if err != nil {
				return err
			}
			opts := imageprep.DefaultOptions()
			opts.Workers = cfg.ImageWorkers

			root := filepath.Join(projectRoot, filepath.FromSlash(screenshotRoot))
			for _, itemType := range args {
				written, err := imageprep.ProcessDir(
					cmd.Context(),
					filepath.Join(root, "screenshots", itemType),
					filepath.Join(root, "output", itemType),
					opts,
				)
				if err != nil {
					return err
				}
				notify.Generatef(cmd.OutOrStdout(), "%s: wrote %d image(s)", itemType, len(written))
			}
			return nil
		},
	}
}
