package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-age/internal/config"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func TestCalendarExporter_Export(t *testing.T) {
	exp := &CalendarExporter{
		Clock: fixedClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
		FormatSummary: func(name string, age int, yearKnown bool) string {
			return fmt.Sprintf("%s turns %d", name, age)
		},
	}

	entries := []BirthdayEntry{
		{Name: "Alice", Birth: CalendarDate{1990, time.July, 14}, YearKnown: true},
		{Name: "Baby", Birth: CalendarDate{2025, time.March, 2}, YearKnown: true},
	}

	data, err := exp.Export(context.Background(), entries)
	require.NoError(t, err)
	ics := string(data)

	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "PRODID:"+config.ICalProdid)
	assert.Contains(t, ics, "SUMMARY:Alice turns 34")
	assert.Contains(t, ics, "SUMMARY:Alice turns 35")
	assert.Contains(t, ics, "SUMMARY:Alice turns 36")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250714")

	// Born in 2025: no event for 2024.
	assert.Contains(t, ics, "SUMMARY:Baby turns 0")
	assert.Contains(t, ics, "SUMMARY:Baby turns 1")
	assert.NotContains(t, ics, "SUMMARY:Baby turns -1")
	assert.Equal(t, 5, strings.Count(ics, "BEGIN:VEVENT"))
}

func TestCalendarExporter_Export_LeapDay(t *testing.T) {
	exp := &CalendarExporter{Clock: fixedClock(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))}

	data, err := exp.Export(context.Background(), []BirthdayEntry{
		{Name: "Leap", Birth: CalendarDate{2000, time.February, 29}, YearKnown: true},
	})
	require.NoError(t, err)
	ics := string(data)

	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250301", "Feb 29 falls on Mar 1 in common years")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240229")
	assert.Contains(t, ics, "SUMMARY:Birthday: Leap", "Fallback summary without formatter")
}

func TestCalendarExporter_Export_Empty(t *testing.T) {
	exp := &CalendarExporter{Clock: fixedClock(time.Now())}

	data, err := exp.Export(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestEntryUID_Stable(t *testing.T) {
	e := BirthdayEntry{Name: "Alice", Birth: CalendarDate{1990, time.July, 14}, YearKnown: true}
	assert.Equal(t, entryUID(e), entryUID(e))
	assert.Len(t, entryUID(e), config.UIDHashLength*2)

	other := e
	other.Name = "Bob"
	assert.NotEqual(t, entryUID(e), entryUID(other))
}

func TestNextBirthday(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birth    CalendarDate
		wantDate CalendarDate
		wantAge  int
	}{
		{"Already passed", CalendarDate{1990, time.January, 1}, CalendarDate{2026, time.January, 1}, 36},
		{"Later this year", CalendarDate{1990, time.December, 31}, CalendarDate{2025, time.December, 31}, 35},
		{"Today", CalendarDate{1990, time.June, 15}, CalendarDate{2025, time.June, 15}, 35},
		{"Leapling in common year", CalendarDate{2000, time.February, 29}, CalendarDate{2026, time.March, 1}, 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, age := NextBirthday(tt.birth, now)
			assert.Equal(t, tt.wantDate, next)
			assert.Equal(t, tt.wantAge, age)
		})
	}
}
