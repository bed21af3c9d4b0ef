package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-age/internal/config"
)

// ErrBirthInFuture is returned when the birth date is after today.
var ErrBirthInFuture = errors.New(config.ErrBirthInFuture)

// DateInput holds the raw numeric values of the birth date form.
type DateInput struct {
	Day   float64
	Month float64
	Year  float64
}

// ParseDateInput converts the text of the day, month and year fields.
func ParseDateInput(day, month, year string) DateInput {
	return DateInput{
		Day:   ParseComponent(day),
		Month: ParseComponent(month),
		Year:  ParseComponent(year),
	}
}

// Calculator turns a submitted birth date into an age relative to its Clock.
type Calculator struct {
	Clock Clock
}

// NewCalculator returns a Calculator reading the host clock.
func NewCalculator() *Calculator {
	return &Calculator{Clock: RealClock{}}
}

// Evaluate validates in and computes the age at the clock's current date.
// An invalid date yields ErrInvalidDate and a birth date after today yields
// ErrBirthInFuture; in both cases no age is computed.
func (c *Calculator) Evaluate(ctx context.Context, in DateInput) (CalendarDate, AgeResult, error) {
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	birth, err := BuildDateFromValues(in.Day, in.Month, in.Year)
	if err != nil {
		log.InfoContext(ctx, config.MsgDateRejected, config.LogKeyError, err)
		return CalendarDate{}, AgeResult{}, err
	}

	today := Today(c.Clock)
	if today.Before(birth) {
		log.InfoContext(ctx, config.MsgDateRejected,
			config.LogKeyDOB, birth.String(),
			config.LogKeyToday, today.String())
		return CalendarDate{}, AgeResult{}, fmt.Errorf("%w: %s", ErrBirthInFuture, birth)
	}

	age := CalculateAge(birth, today)
	log.DebugContext(ctx, config.MsgAgeComputed,
		config.LogKeyDOB, birth.String(),
		config.LogKeyToday, today.String(),
		config.LogKeyYears, age.Years,
		config.LogKeyMonths, age.Months,
		config.LogKeyDays, age.Days)
	return birth, age, nil
}
