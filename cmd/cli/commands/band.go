package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BandCmd creates the band command
func BandCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "band <band_id>",
		Short: "Show a band's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			band, ok := app.Catalog.FindBand(args[0])
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Band %s not found\n", args[0])
				return nil
			}
			printBandDetail(cmd.OutOrStdout(), band)
			return nil
		},
	}
}
