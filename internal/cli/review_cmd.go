package cli

import (
	"fmt"

	"github.com/alexanderramin/capgrid/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReviewCmd(app *App) *cobra.Command {
	var viewFlag string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "List week cells above the overallocation threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := parseView(viewFlag)
			if err != nil {
				return err
			}
			found, err := app.Planning.Review(cmd.Context(), view)
			if err != nil {
				return err
			}
			snap, err := app.Planning.Grid(cmd.Context(), view)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReview(view, found, snap.Labels, snap.Threshold))
			return nil
		},
	}

	addViewFlag(cmd.Flags(), &viewFlag)
	return cmd
}
