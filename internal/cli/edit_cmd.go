package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/capgrid/internal/cli/formatter"
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/sheet"
	"github.com/spf13/cobra"
)

// editInput collects the parts of one edit from flags or the wizard.
type editInput struct {
	view  domain.ViewKind
	row   int
	field string
	value string
}

func (in editInput) request() sheet.EditRequest {
	return sheet.EditRequest{RowIndex: in.row, FieldID: in.field, RawValue: in.value}
}

func newEditCmd(app *App) *cobra.Command {
	var viewFlag, field, value string
	var row, week int

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit one cell and print the updated grid",
		Long: `Edit one cell of a planning view.

Hours go on detail rows only. Summary rows are recalculated from their
children. Blank or non-numeric hours are stored as 0.`,
		Example: `  capgrid edit --view projects --row 4 --week 3 --value 32
  capgrid edit --view admin --row 0 --field skill --value Optics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := parseView(viewFlag)
			if err != nil {
				return err
			}
			in := editInput{view: view, row: row, field: field, value: value}
			if in.field == "" && week > 0 {
				in.field = sheet.WeekField(week)
			}

			flags := cmd.Flags()
			missing := !flags.Changed("row") || in.field == "" || !flags.Changed("value")
			if missing {
				if !app.interactive() {
					return fmt.Errorf("edit needs --row, --week or --field, and --value")
				}
				snap, err := app.Planning.Grid(cmd.Context(), view)
				if err != nil {
					return err
				}
				if err := editWizard(&in, snap.Rows, snap.Labels).Run(); err != nil {
					return fmt.Errorf("edit wizard: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			app.Notices.Use(writerNotifier(cmd.ErrOrStderr()))
			defer app.Notices.Use(nil)

			req := in.request()
			res, err := app.Planning.ApplyEdit(cmd.Context(), in.view, req)
			var rej *sheet.Rejection
			if err != nil && !errors.As(err, &rej) {
				return err
			}

			fmt.Fprintln(out, formatter.FormatEditOutcome(req, res.Outcome))
			fmt.Fprint(out, renderWindow(app, res.Snapshot, windowStart(in.field, app.weeksShown()), 0))
			return nil
		},
	}

	addViewFlag(cmd.Flags(), &viewFlag)
	cmd.Flags().IntVar(&row, "row", 0, "Row index in display order (0-based)")
	cmd.Flags().IntVar(&week, "week", 0, "Week column (1-52)")
	cmd.Flags().StringVar(&field, "field", "", "Field id (name, info, skill, w1..w52); overrides --week")
	cmd.Flags().StringVar(&value, "value", "", "New cell value")

	return cmd
}

// windowStart returns the first week of a window of n weeks that shows
// the edited week field.
func windowStart(field string, n int) int {
	if w, ok := sheet.ParseWeekField(field); ok && w > n {
		return w - n + 1
	}
	return 1
}
