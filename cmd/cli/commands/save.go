package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SaveCmd creates the save command
func SaveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write the current gig list to the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gigs := app.Catalog.Gigs()
			if err := app.Gigs.SaveGigs(app.Ctx, gigs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %d gigs\n", len(gigs))
			return nil
		},
	}
}
