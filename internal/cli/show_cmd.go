package cli

import (
	"fmt"

	"github.com/alexanderramin/capgrid/internal/cli/formatter"
	"github.com/alexanderramin/capgrid/internal/service"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var viewFlag string
	var from, weeks int
	var tree bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render a planning view as a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := parseView(viewFlag)
			if err != nil {
				return err
			}
			snap, err := app.Planning.Grid(cmd.Context(), view)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tree {
				fmt.Fprintln(out, formatter.Header(view.Title()))
				fmt.Fprint(out, formatter.RenderTree(formatter.TreeItems(snap.Rows)))
				return nil
			}
			fmt.Fprint(out, renderWindow(app, snap, from, weeks))
			return nil
		},
	}

	addViewFlag(cmd.Flags(), &viewFlag)
	addWindowFlags(cmd.Flags(), &from, &weeks)
	cmd.Flags().BoolVar(&tree, "tree", false, "Show the hierarchy with capacities instead of the grid")

	return cmd
}

// renderWindow renders snap with a week window; weeks <= 0 uses the app default.
func renderWindow(app *App, snap *service.GridSnapshot, from, weeks int) string {
	if weeks <= 0 {
		weeks = app.weeksShown()
	}
	from, weeks = clampWindow(from, weeks)
	opts := formatter.DefaultGridOptions(weeks)
	opts.FromWeek = from
	return formatter.RenderGrid(snap, opts)
}
