package cli

import (
	"fmt"

	"github.com/alexanderramin/capgrid/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newViewsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List planning views with row counts and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			views := app.Planning.Views(cmd.Context())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatViews(views))
			return nil
		},
	}
}
