package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/services"
)

// CreateBandCmd creates the createBand command
func CreateBandCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createBand",
		Short: "Add a band to the roster for this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			genreNames, _ := cmd.Flags().GetStringSlice("genres")
			location, _ := cmd.Flags().GetString("location")
			countryFlag, _ := cmd.Flags().GetString("country")
			status, _ := cmd.Flags().GetString("status")
			url, _ := cmd.Flags().GetString("url")
			contact, _ := cmd.Flags().GetString("contact")
			bio, _ := cmd.Flags().GetString("bio")

			country, err := parseCountry(countryFlag)
			if err != nil {
				return err
			}

			band, err := services.CreateBand(app.Catalog, services.BandInput{
				Name:     name,
				Genres:   genreNames,
				Location: location,
				Country:  country,
				Status:   status,
				URL:      url,
				Contact:  contact,
				Bio:      bio,
			}, app.Logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Band created successfully!\n")
			printBandDetail(cmd.OutOrStdout(), band)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Band name (required)")
	cmd.Flags().StringSlice("genres", nil, "Genres, comma separated (required)")
	cmd.Flags().String("location", "", "Location, e.g. \"London, England\" (required)")
	cmd.Flags().String("country", "", "Country (derived from location when omitted)")
	cmd.Flags().String("status", "", "Status (default Active)")
	cmd.Flags().String("url", "", "Website")
	cmd.Flags().String("contact", "", "Contact details")
	cmd.Flags().String("bio", "", "Short biography")

	return cmd
}
