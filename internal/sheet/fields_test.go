package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekField(t *testing.T) {
	tests := []struct {
		id   string
		week int
		ok   bool
	}{
		{"w1", 1, true},
		{"w52", 52, true},
		{"w0", 0, false},
		{"w53", 0, false},
		{"w01", 0, false},
		{"w", 0, false},
		{"w-1", 0, false},
		{"w+1", 0, false},
		{"W1", 0, false},
		{"week1", 0, false},
		{"name", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			week, ok := ParseWeekField(tt.id)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.week, week)
		})
	}
}

func TestWeekField_RoundTrip(t *testing.T) {
	for week := 1; week <= 52; week++ {
		got, ok := ParseWeekField(WeekField(week))
		assert.True(t, ok)
		assert.Equal(t, week, got)
	}
}
