package domain

import (
	"fmt"
	"time"
)

// DefaultAnchor is the Monday that starts ISO week 1 of 2025.
var DefaultAnchor = time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC)

// WeekLabel describes one week column header.
type WeekLabel struct {
	Start time.Time
	Week  int // ISO week number
	Year  int // ISO year
}

// Label renders the column header, e.g. "12-30 (W1)".
func (l WeekLabel) Label() string {
	return fmt.Sprintf("%s (W%d)", l.Start.Format("1-2"), l.Week)
}

// WeekLabels returns n consecutive weekly labels starting at anchor.
func WeekLabels(anchor time.Time, n int) []WeekLabel {
	if n <= 0 {
		return nil
	}
	labels := make([]WeekLabel, n)
	for i := range labels {
		start := anchor.AddDate(0, 0, 7*i)
		year, week := start.ISOWeek()
		labels[i] = WeekLabel{Start: start, Week: week, Year: year}
	}
	return labels
}

// YearSpan is a run of consecutive week columns sharing one ISO year.
type YearSpan struct {
	Year  int
	Count int
}

// YearSpans groups consecutive labels by year, preserving order.
func YearSpans(labels []WeekLabel) []YearSpan {
	var spans []YearSpan
	for _, l := range labels {
		if n := len(spans); n > 0 && spans[n-1].Year == l.Year {
			spans[n-1].Count++
			continue
		}
		spans = append(spans, YearSpan{Year: l.Year, Count: 1})
	}
	return spans
}
