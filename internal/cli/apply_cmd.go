package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/capgrid/internal/cli/formatter"
	"github.com/alexanderramin/capgrid/internal/gridevent"
	"github.com/alexanderramin/capgrid/internal/sheet"
	"github.com/spf13/cobra"
)

func newApplyCmd(app *App) *cobra.Command {
	var viewFlag, file string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply newline-delimited grid edit events",
		Long: `Apply a stream of grid "cell edited" events, one JSON object per line.

Each event names a row (row, rowIndex or rowIdx), a field (prop, or
column.prop / column.name) and a value (val, or model[field]). Events may be
wrapped in a "detail" object. Malformed events are counted and skipped.`,
		Example: `  echo '{"row": 4, "prop": "w3", "val": "32"}' | capgrid apply --view projects`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := parseView(viewFlag)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening events: %w", err)
				}
				defer f.Close()
				in = f
			}

			app.Notices.Use(writerNotifier(cmd.ErrOrStderr()))
			defer app.Notices.Use(nil)

			summary := formatter.ApplySummary{Outcomes: make(map[sheet.Outcome]int)}
			scanner := bufio.NewScanner(in)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				summary.Events++
				req, ok := gridevent.Decode([]byte(line))
				if !ok {
					summary.Malformed++
					continue
				}
				res, err := app.Planning.ApplyEdit(cmd.Context(), view, req)
				var rej *sheet.Rejection
				if err != nil && !errors.As(err, &rej) {
					return err
				}
				summary.Outcomes[res.Outcome]++
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading events: %w", err)
			}

			snap, err := app.Planning.Grid(cmd.Context(), view)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatApplySummary(summary))
			fmt.Fprint(out, renderWindow(app, snap, 1, 0))
			return nil
		},
	}

	addViewFlag(cmd.Flags(), &viewFlag)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Events file (default stdin)")

	return cmd
}
