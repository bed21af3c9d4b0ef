package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-age/internal/config"
)

// ImportBirthdays decodes a vCard stream and returns every contact that has a
// parsable BDAY. Malformed cards and dates are skipped.
func ImportBirthdays(ctx context.Context, r io.Reader) ([]BirthdayEntry, error) {
	log := slog.With(config.LogKeyComponent, config.CompImport)

	decoder := vcard.NewDecoder(r)
	processed := 0
	var entries []BirthdayEntry

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A broken stream cannot be resynchronised; keep what was read.
			if processed == 0 {
				return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			break
		}
		processed++

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			log.Debug(config.MsgSkippedDate, config.LogKeyValue, bday.Value)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}

		entries = append(entries, BirthdayEntry{
			Name:      name,
			Birth:     birth,
			YearKnown: yearKnown,
		})
	}

	log.Info(config.MsgImportDone,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, processed),
			slog.Int(config.LogKeyFound, len(entries)),
		),
	)
	return entries, nil
}

// parseDate handles the vCard BDAY formats.
func parseDate(value string) (CalendarDate, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return DateOf(t), true, nil
		}
	}

	// Truncated dates (Year unknown) keep Feb 29 through a leap placeholder year.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return CalendarDate{Year: config.DefaultLeapYear, Month: t.Month(), Day: t.Day()}, false, nil
		}
	}

	return CalendarDate{}, false, errors.New(config.ErrDateParse)
}
