package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// ErrInvalidDate is returned when form values do not name a real calendar date.
var ErrInvalidDate = errors.New(config.ErrInvalidDate)

// CalendarDate is a Gregorian calendar date without time of day.
// Values built by BuildDate always name a real date.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Time returns midnight of the date in loc.
func (d CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d CalendarDate) String() string {
	return d.Time(time.UTC).Format(config.DateFormatDisplay)
}

// BuildDate validates day, month and year and returns the matching date.
//
// The date is constructed with time.Date and the components are read back:
// time.Date normalises impossible dates (31 April becomes 1 May), so any
// difference means the input does not exist in the calendar.
func BuildDate(day, month, year int) (CalendarDate, error) {
	if day < config.MinDay || day > config.MaxDay {
		return CalendarDate{}, fmt.Errorf("%w: %s: %d", ErrInvalidDate, config.ErrDayRange, day)
	}
	if month < config.MinMonth || month > config.MaxMonth {
		return CalendarDate{}, fmt.Errorf("%w: %s: %d", ErrInvalidDate, config.ErrMonthRange, month)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	built := DateOf(t)
	if built.Day != day || int(built.Month) != month || built.Year != year {
		return CalendarDate{}, fmt.Errorf("%w: %s: %04d-%02d-%02d", ErrInvalidDate, config.ErrDateMismatch, year, month, day)
	}
	return built, nil
}

// BuildDateFromValues is BuildDate for raw numeric form values.
// NaN, infinite and fractional values are rejected.
func BuildDateFromValues(day, month, year float64) (CalendarDate, error) {
	for _, v := range []float64{day, month, year} {
		if !isInteger(v) {
			return CalendarDate{}, fmt.Errorf("%w: %s: %v", ErrInvalidDate, config.ErrNotInteger, v)
		}
	}
	return BuildDate(int(day), int(month), int(year))
}

// ParseComponent converts form text into a number: surrounding whitespace is
// ignored, empty text is 0 and anything unparsable is NaN.
func ParseComponent(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func isInteger(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32
}
