package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-age/internal/engine"
)

func date(y int, m time.Month, d int) engine.CalendarDate {
	return engine.CalendarDate{Year: y, Month: m, Day: d}
}

func TestCalculateAge(t *testing.T) {
	tests := []struct {
		name  string
		birth engine.CalendarDate
		today engine.CalendarDate
		want  engine.AgeResult
	}{
		{
			name:  "Exact birthday",
			birth: date(2000, time.June, 15),
			today: date(2024, time.June, 15),
			want:  engine.AgeResult{Years: 24, Months: 0, Days: 0},
		},
		{
			name:  "Borrow uses the birth month length",
			birth: date(2000, time.June, 15),
			today: date(2024, time.June, 10),
			want:  engine.AgeResult{Years: 23, Months: 11, Days: 25},
		},
		{
			name:  "Later in the year",
			birth: date(1990, time.March, 3),
			today: date(2024, time.August, 20),
			want:  engine.AgeResult{Years: 34, Months: 5, Days: 17},
		},
		{
			name:  "Earlier month",
			birth: date(1990, time.October, 1),
			today: date(2024, time.February, 1),
			want:  engine.AgeResult{Years: 33, Months: 4, Days: 0},
		},
		{
			name:  "Born today",
			birth: date(2024, time.June, 15),
			today: date(2024, time.June, 15),
			want:  engine.AgeResult{},
		},
		{
			name:  "February borrow counts 28 days in a leap year",
			birth: date(2024, time.February, 20),
			today: date(2024, time.March, 10),
			want:  engine.AgeResult{Years: 0, Months: 0, Days: 18},
		},
		{
			name:  "Leapling before the 29th",
			birth: date(2000, time.February, 29),
			today: date(2023, time.March, 1),
			want:  engine.AgeResult{Years: 23, Months: 0, Days: 0},
		},
		{
			name:  "Thirty-first borrow",
			birth: date(2000, time.January, 31),
			today: date(2024, time.March, 1),
			want:  engine.AgeResult{Years: 24, Months: 1, Days: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CalculateAge(tt.birth, tt.today))
		})
	}
}

// TestCalculateAge_Normalised sweeps birth dates before a set of reference
// days and checks the component ranges.
func TestCalculateAge_Normalised(t *testing.T) {
	todays := []engine.CalendarDate{
		date(2024, time.January, 1),
		date(2024, time.February, 29),
		date(2025, time.March, 1),
		date(2025, time.December, 31),
	}

	for _, today := range todays {
		todayTime := today.Time(time.UTC)
		for b := time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC); !b.After(todayTime); b = b.AddDate(0, 0, 3) {
			birth := engine.DateOf(b)
			age := engine.CalculateAge(birth, today)

			assert.GreaterOrEqual(t, age.Years, 0, "birth %s today %s", birth, today)
			assert.GreaterOrEqual(t, age.Months, 0, "birth %s today %s", birth, today)
			assert.LessOrEqual(t, age.Months, 11, "birth %s today %s", birth, today)
			assert.GreaterOrEqual(t, age.Days, 0, "birth %s today %s", birth, today)
		}
	}
}
