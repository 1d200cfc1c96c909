package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/catalog"
	"github.com/jakechorley/gig-matcher/pkg/core/services"
)

// DeleteGigCmd creates the deleteGig command
func DeleteGigCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteGig <gig_id>",
		Short: "Delete a gig",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := services.DeleteGig(app.Catalog, args[0], app.Logger)
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintf(out, "Gig %s not found\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			app.saveGigs()

			fmt.Fprintf(out, "✓ Gig %s deleted\n", args[0])
			return nil
		},
	}
}
