package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/filter"
)

// BandsCmd creates the bands command
func BandsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "List bands, optionally filtered by country, city, genre, category and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			countries, _ := cmd.Flags().GetStringSlice("country")
			cities, _ := cmd.Flags().GetStringSlice("city")
			genreNames, _ := cmd.Flags().GetStringSlice("genre")
			categories, _ := cmd.Flags().GetStringSlice("category")
			statuses, _ := cmd.Flags().GetStringSlice("status")
			group, _ := cmd.Flags().GetBool("group")

			filters := filter.BandFilters{
				Countries:       filter.NewSet(trimAll(countries)...),
				Cities:          filter.NewSet(trimAll(cities)...),
				Genres:          filter.NewSet(trimAll(genreNames)...),
				GenreCategories: filter.NewSet(trimAll(categories)...),
				Statuses:        filter.NewSet(trimAll(statuses)...),
			}

			all := app.Catalog.Bands()
			bands := filter.SortByName(filter.Apply(all, filters))

			if filters.HasActiveFilters() {
				fmt.Fprintf(out, "\n%d of %d bands match %d filter(s):\n", len(bands), len(all), filters.ActiveFilterCount())
			} else {
				fmt.Fprintf(out, "\nFound %d bands:\n", len(bands))
			}

			if len(bands) == 0 {
				fmt.Fprintln(out, "  (none)")
				return nil
			}

			if !group {
				fmt.Fprintln(out)
				for _, b := range bands {
					printBandLine(out, b)
				}
				return nil
			}

			letters, groups := filter.GroupByInitial(bands)
			for _, letter := range letters {
				fmt.Fprintf(out, "\n%s\n", letter)
				for _, b := range groups[letter] {
					printBandLine(out, b)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("country", nil, "Only bands from these countries")
	cmd.Flags().StringSlice("city", nil, "Only bands whose location contains one of these cities")
	cmd.Flags().StringSlice("genre", nil, "Only bands with one of these exact genres")
	cmd.Flags().StringSlice("category", nil, "Only bands with a genre in one of these categories")
	cmd.Flags().StringSlice("status", nil, "Only bands with one of these statuses")
	cmd.Flags().Bool("group", false, "Group bands by initial letter")

	return cmd
}
