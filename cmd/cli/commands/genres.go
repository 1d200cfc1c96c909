package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/genres"
	"github.com/jakechorley/gig-matcher/pkg/core/matching"
)

// CategoriesCmd creates the categories command
func CategoriesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List genre categories with the number of roster genres in each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bands := app.Catalog.Bands()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "\nGenre categories:")
			for _, name := range genres.CategoryNames() {
				count := len(matching.AvailableGenres(bands, name, nil))
				fmt.Fprintf(out, "  %-30s %d genres\n", name, count)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

// GenresCmd creates the genres command
func GenresCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genres <category>",
		Short: "List the roster's genres in a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := strings.Join(args, " ")
			exclude, _ := cmd.Flags().GetStringSlice("exclude")
			out := cmd.OutOrStdout()

			if !genres.IsCategory(category) {
				fmt.Fprintf(out, "Unknown category %q (expected one of: %s)\n",
					category, strings.Join(genres.CategoryNames(), ", "))
				return nil
			}

			found := matching.AvailableGenres(app.Catalog.Bands(), category, trimAll(exclude))
			printOptions(out, category, found)
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringSlice("exclude", nil, "Genres already chosen, left out of the list")

	return cmd
}

// CategorizeCmd creates the categorize command
func CategorizeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <genre>",
		Short: "Show which category a genre falls into",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genre := strings.Join(args, " ")
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", genre, genres.Categorize(genre))
			return nil
		},
	}
}
