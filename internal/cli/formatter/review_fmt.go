package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/grid"
)

// FormatReview lists overallocated week cells of a view.
func FormatReview(view domain.ViewKind, found []grid.Overallocation, labels []domain.WeekLabel, threshold float64) string {
	title := fmt.Sprintf("%s overallocation", view.Title())
	if len(found) == 0 {
		return RenderBox(title, StyleGreen.Render("✔ ")+fmt.Sprintf("No week above %s.", Hours(threshold)))
	}

	rows := make([][]string, 0, len(found))
	for _, o := range found {
		week := "W" + strconv.Itoa(o.Week)
		if o.Week <= len(labels) {
			week = labels[o.Week-1].Label()
		}
		rows = append(rows, []string{
			strconv.Itoa(o.RowIndex),
			grid.Indent(o.Depth) + o.Name,
			week,
			StyleRed.Render(Hours(o.Hours)),
			StyleDim.Render("+" + Hours(o.Hours-threshold)),
		})
	}

	var b strings.Builder
	b.WriteString(StyleYellowBold.Render(fmt.Sprintf("%d week cell(s) above %s", len(found), Hours(threshold))))
	b.WriteString("\n\n")
	b.WriteString(RenderAlignedTable(
		[]string{"ROW", "NAME", "WEEK", "HOURS", "OVER"},
		[]Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight},
		rows,
	))
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}
