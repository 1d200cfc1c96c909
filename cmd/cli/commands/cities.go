package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/matching"
)

// CitiesCmd creates the cities command
func CitiesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List the cities worth offering for a gig with the given genres and country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			genreNames, _ := cmd.Flags().GetStringSlice("genres")
			countryFlag, _ := cmd.Flags().GetString("country")

			country, err := parseCountry(countryFlag)
			if err != nil {
				return err
			}

			cities := matching.AvailableCities(app.Catalog.Bands(), trimAll(genreNames), country)
			printOptions(cmd.OutOrStdout(), "Cities", cities)
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringSlice("genres", nil, "Only cities with a band playing one of these genres")
	cmd.Flags().String("country", "", "Only cities in this country")

	return cmd
}
