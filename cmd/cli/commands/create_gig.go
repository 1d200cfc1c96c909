package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/services"
)

// CreateGigCmd creates the createGig command
func CreateGigCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createGig",
		Short: "Create a gig and list the bands that match it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := gigInputFromFlags(cmd, services.GigInput{})
			if err != nil {
				return err
			}

			gig, err := services.CreateGig(app.Catalog, input, app.Logger)
			if err != nil {
				return err
			}
			app.saveGigs()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ Gig created successfully!\n")
			printGigHeader(out, gig)
			printBandList(out, "Matching bands", gig.MatchingBands)
			fmt.Fprintln(out)
			return nil
		},
	}

	addGigFlags(cmd)
	return cmd
}

func addGigFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Gig title")
	cmd.Flags().String("promoter", "", "Promoter name")
	cmd.Flags().StringSlice("genres", nil, "Desired genres, comma separated")
	cmd.Flags().String("city", "", "City the gig is in")
	cmd.Flags().String("country", "", "Country the gig is in")
}

// gigInputFromFlags overlays the flags the user set onto base
func gigInputFromFlags(cmd *cobra.Command, base services.GigInput) (services.GigInput, error) {
	flags := cmd.Flags()
	input := base

	if flags.Changed("title") {
		input.Title, _ = flags.GetString("title")
	}
	if flags.Changed("promoter") {
		input.PromoterName, _ = flags.GetString("promoter")
	}
	if flags.Changed("genres") {
		genreNames, _ := flags.GetStringSlice("genres")
		input.Genres = trimAll(genreNames)
	}
	if flags.Changed("city") {
		input.City, _ = flags.GetString("city")
	}
	if flags.Changed("country") {
		countryFlag, _ := flags.GetString("country")
		country, err := parseCountry(countryFlag)
		if err != nil {
			return services.GigInput{}, err
		}
		input.Country = country
	}

	return input, nil
}
