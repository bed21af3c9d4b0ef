package engine

import (
	"github.com/tartampluch/go-age/internal/config"
)

// AgeResult is an elapsed age split into calendar components.
// Months is always in [0, 11].
type AgeResult struct {
	Years  int
	Months int
	Days   int
}

// CalculateAge returns the age at today of someone born on birth.
//
// When today's day of month is before the birth day, one month is borrowed and
// the length of the birth month is added to the day difference. The length
// comes from config.MonthDays, so February always counts 28 days, even in leap
// years. birth is expected to be a valid date not after today.
func CalculateAge(birth, today CalendarDate) AgeResult {
	dayReached := today.Day >= birth.Day

	years := today.Year - birth.Year
	if today.Month < birth.Month || (today.Month == birth.Month && !dayReached) {
		years--
	}

	months := int(today.Month) - int(birth.Month)
	if !dayReached {
		months--
	}
	if months < 0 {
		months += config.MonthsPerYear
	}

	days := today.Day - birth.Day
	if !dayReached {
		days += config.MonthDays[birth.Month-1]
	}

	return AgeResult{Years: years, Months: months, Days: days}
}
