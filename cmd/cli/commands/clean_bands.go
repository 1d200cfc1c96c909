package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/services"
)

// CleanBandsCmd creates the cleanBands command
func CleanBandsCmd(app *AppContext) *cobra.Command {
	var showChanges bool

	cmd := &cobra.Command{
		Use:   "cleanBands <input_csv> <output_csv>",
		Short: "Split, tidy and complete the genre column of a raw bands CSV",
		Long: `Reads a raw roster export and writes a copy whose genre column is ready to load.
Genres are split on "/", "," and ";", notes like "(early)" are removed,
duplicates are dropped and shorthand names such as "Atmospheric Black" are
completed to "Atmospheric Black Metal".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.CleanBandsFile(app.Ctx, args[0], args[1], app.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ Cleaned %d rows into %s (%d genre fields changed)\n", result.Rows, args[1], result.Changed)

			if showChanges && len(result.Changes) > 0 {
				originals := make([]string, 0, len(result.Changes))
				for original := range result.Changes {
					originals = append(originals, original)
				}
				sort.Strings(originals)

				fmt.Fprintln(out, "\nChanges:")
				for _, original := range originals {
					fmt.Fprintf(out, "  %q -> %q\n", original, result.Changes[original])
				}
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showChanges, "show-changes", false, "List every genre field that was rewritten")

	return cmd
}
