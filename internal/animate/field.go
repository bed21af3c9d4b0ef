// Package animate renders age results as counters that ease from their
// current value to the new one.
package animate

// Field is a display element whose text can be read and replaced.
type Field interface {
	Text() string
	SetText(text string)
}

// Fields groups the three result elements: yearValue, monthValue and dayValue.
type Fields struct {
	Years  Field
	Months Field
	Days   Field
}
