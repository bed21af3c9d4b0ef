package engine

// BirthdayEntry is a named birth date read from a contact file or the form.
type BirthdayEntry struct {
	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// Birth is the parsed date. When YearKnown is false the year is
	// config.DefaultLeapYear and must not be used for age arithmetic.
	Birth CalendarDate

	// YearKnown indicates if the vCard contained a year or just --MM-DD.
	YearKnown bool
}
