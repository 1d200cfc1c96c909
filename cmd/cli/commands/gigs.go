package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GigsCmd creates the gigs command
func GigsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "gigs",
		Short: "List all gigs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			gigs := app.Catalog.Gigs()

			if len(gigs) == 0 {
				fmt.Fprintln(out, "No gigs yet - create one with createGig.")
				return nil
			}

			fmt.Fprintf(out, "\nFound %d gigs:\n\n", len(gigs))
			for _, g := range gigs {
				fmt.Fprintf(out, "- %s (%s) - %s, %s - %d matching, %d selected\n",
					g.Title,
					g.ID,
					g.City,
					g.Country,
					len(g.MatchingBands),
					len(g.SelectedBands),
				)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
