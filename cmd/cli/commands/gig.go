package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/matching"
)

// GigCmd creates the gig command
func GigCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "gig <gig_id>",
		Short: "Show a gig with its selected and still-available bands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			gig, ok := app.Catalog.FindGig(args[0])
			if !ok {
				fmt.Fprintf(out, "Gig %s not found\n", args[0])
				return nil
			}

			printGigHeader(out, gig)
			printBandList(out, "Selected bands", gig.SelectedBands)
			printBandList(out, "Available bands", matching.Available(gig))
			fmt.Fprintln(out)
			return nil
		},
	}
}
