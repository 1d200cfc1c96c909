package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/filter"
)

// FilterOptionsCmd creates the filterOptions command
func FilterOptionsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filterOptions",
		Short: "Show the values each band filter can take, narrowed by selected countries and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, _ := cmd.Flags().GetStringSlice("country")
			categories, _ := cmd.Flags().GetStringSlice("category")

			filters := filter.BandFilters{}.
				WithCountries(trimAll(countries)...).
				WithGenreCategories(trimAll(categories)...)

			opts := filter.AvailableOptions(app.Catalog.Bands(), filters)

			out := cmd.OutOrStdout()
			printOptions(out, "Countries", opts.Countries)
			printOptions(out, "Cities", opts.Cities)
			printOptions(out, "Genre categories", opts.GenreCategories)
			printOptions(out, "Genres", opts.Genres)
			printOptions(out, "Statuses", opts.Statuses)
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringSlice("country", nil, "Selected countries (narrows cities)")
	cmd.Flags().StringSlice("category", nil, "Selected genre categories (narrows genres)")

	return cmd
}

func printOptions(w io.Writer, title string, values []string) {
	fmt.Fprintf(w, "\n%s (%d):\n", title, len(values))
	if len(values) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(values, ", "))
}
