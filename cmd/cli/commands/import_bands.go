package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/gig-matcher/pkg/core/services"
)

// ImportBandsCmd creates the importBands command
func ImportBandsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importBands <csv_path>",
		Short: "Merge bands from a CSV file into the roster for this session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := services.ImportBands(app.Ctx, app.Catalog, args[0], app.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ Imported %d bands from %s\n", len(added), args[0])
			for _, b := range added {
				printBandLine(out, b)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
