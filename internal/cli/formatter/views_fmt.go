package formatter

import (
	"strconv"

	"github.com/alexanderramin/capgrid/internal/service"
)

// FormatViews renders the view list.
func FormatViews(views []service.ViewInfo) string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			string(v.Kind),
			v.Title,
			strconv.Itoa(v.Rows),
			Hours(v.Total),
			TruncID(v.SheetID),
		})
	}
	return RenderAlignedTable(
		[]string{"VIEW", "TITLE", "ROWS", "TOTAL", "SHEET"},
		[]Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft},
		rows,
	)
}
