package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/catalog"
	"github.com/jakechorley/gig-matcher/pkg/core/matching"
	"github.com/jakechorley/gig-matcher/pkg/core/services"
)

// ToggleBandCmd creates the toggleBand command
func ToggleBandCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggleBand <gig_id> <band_id>",
		Short: "Select a band for a gig, or deselect it if already selected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			gigID, bandID := args[0], args[1]

			gig, err := services.ToggleBandSelection(app.Catalog, gigID, bandID, app.Logger)
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintf(out, "%v\n", err)
				return nil
			}
			if err != nil {
				return err
			}
			app.saveGigs()

			if matching.IsSelected(gig, bandID) {
				fmt.Fprintf(out, "✓ Band %s selected for %s\n", bandID, gig.Title)
			} else {
				fmt.Fprintf(out, "✓ Band %s deselected from %s\n", bandID, gig.Title)
			}
			fmt.Fprintf(out, "%d selected, %d still available\n", len(gig.SelectedBands), len(matching.Available(gig)))
			return nil
		},
	}
}
