package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/services"
)

// EditGigCmd creates the editGig command
func EditGigCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editGig <gig_id>",
		Short: "Change a gig's details and recompute its matching bands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			existing, ok := app.Catalog.FindGig(args[0])
			if !ok {
				fmt.Fprintf(out, "Gig %s not found\n", args[0])
				return nil
			}

			input, err := gigInputFromFlags(cmd, services.GigInput{
				Title:        existing.Title,
				PromoterName: existing.PromoterName,
				Genres:       existing.Genres,
				City:         existing.City,
				Country:      existing.Country,
			})
			if err != nil {
				return err
			}

			gig, err := services.EditGig(app.Catalog, existing.ID, input, app.Logger)
			if err != nil {
				return err
			}
			app.saveGigs()

			fmt.Fprintf(out, "\n✓ Gig updated successfully!\n")
			printGigHeader(out, gig)
			printBandList(out, "Matching bands", gig.MatchingBands)
			printBandList(out, "Selected bands", gig.SelectedBands)
			fmt.Fprintln(out)
			return nil
		},
	}

	addGigFlags(cmd)
	return cmd
}
