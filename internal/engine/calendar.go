package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-age/internal/config"
)

// SummaryFormatter builds the localised title of a birthday event.
type SummaryFormatter func(name string, age int, yearKnown bool) string

// CalendarExporter renders birthdays as an iCalendar feed.
type CalendarExporter struct {
	Clock Clock

	// FormatSummary allows the UI to inject localized strings into the logic layer.
	FormatSummary SummaryFormatter
}

// Export returns an iCalendar document with one all-day event per entry for
// the previous, current and next year.
func (e *CalendarExporter) Export(ctx context.Context, entries []BirthdayEntry) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Local time drives the calendar logic; only the stamp is UTC.
	now := e.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, ev := range e.createEvents(entry, now) {
			ev.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, ev.Component)
		}
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyCount, len(cal.Children),
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// createEvents generates events for CurrentYear-1, CurrentYear and CurrentYear+1,
// skipping years before the person was born.
func (e *CalendarExporter) createEvents(entry BirthdayEntry, now time.Time) []*ical.Event {
	currentYear := now.Year()
	loc := now.Location()
	uidBase := entryUID(entry)

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if entry.YearKnown && y < entry.Birth.Year {
			continue
		}

		age := 0
		if entry.YearKnown {
			age = y - entry.Birth.Year
		}

		summary := fmt.Sprintf(config.FallbackSummary, entry.Name)
		if e.FormatSummary != nil {
			summary = e.FormatSummary(entry.Name, age, entry.YearKnown)
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 falls on Mar 1 in common years through time.Date normalisation.
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, entry.Birth.Month, entry.Birth.Day, 0, 0, 0, 0, loc))
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

// entryUID is stable across exports of the same person.
func entryUID(entry BirthdayEntry) string {
	input := fmt.Sprintf(config.FormatHashInput, entry.Name, entry.Birth.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// NextBirthday returns the next occurrence of birth on or after the date of
// now, and the age turned on that day.
func NextBirthday(birth CalendarDate, now time.Time) (CalendarDate, int) {
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	candidate := time.Date(now.Year(), birth.Month, birth.Day, 0, 0, 0, 0, loc)
	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, birth.Month, birth.Day, 0, 0, 0, 0, loc)
	}
	return DateOf(candidate), candidate.Year() - birth.Year
}
