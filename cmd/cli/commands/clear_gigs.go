package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/model"
)

// ClearGigsCmd creates the clearGigs command
func ClearGigsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clearGigs",
		Short: "Delete every gig and the saved gig list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count := len(app.Catalog.Gigs())
			if err := app.Gigs.ClearGigs(app.Ctx); err != nil {
				return err
			}
			app.Catalog.ReplaceGigs([]model.Gig{})

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared %d gigs\n", count)
			return nil
		},
	}
}
