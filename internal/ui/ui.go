package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/animate"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// AgeApp encapsulates the UI state, preferences, and the calculation pipeline.
type AgeApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Clock      engine.Clock // Injected clock for testability
	Calculator *engine.Calculator
	Display    *animate.Display

	SupportedLanguages []string
	settingsWindow     fyne.Window

	form    formWidgets
	results resultWidgets
}

// formWidgets holds the input side of the main window.
type formWidgets struct {
	dayLabel, monthLabel, yearLabel *widget.Label
	dayEntry, monthEntry, yearEntry *NumericalEntry
	errorLabel                      *widget.Label
	btnCalculate                    *widget.Button
	btnImport                       *widget.Button
	btnExport                       *widget.Button
	btnSettings                     *widget.Button
}

// resultWidgets holds the animated counters and their unit captions.
type resultWidgets struct {
	yearValue, monthValue, dayValue *canvas.Text
	yearUnit, monthUnit, dayUnit    *widget.Label
	nextBirthday                    *widget.Label
}

// NewAgeApp constructs the application and wires dependencies.
func NewAgeApp(a fyne.App, ctx context.Context, clock engine.Clock) *AgeApp {
	a.Settings().SetTheme(newAgeTheme())

	return &AgeApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              clock,
		Calculator:         &engine.Calculator{Clock: clock},
		Display:            animate.NewDisplay(),
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run builds the main window and blocks in the UI loop.
func (app *AgeApp) Run() {
	app.SetupI18n()
	app.buildMainWindow()
	app.Window.Show()
	app.App.Run()

	// Let running counters finish their last write before exit.
	app.Display.Stop()
}

// buildMainWindow creates the form and result area.
func (app *AgeApp) buildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	f := &app.form
	f.dayEntry = newDateEntry(config.MaxDigitsDay)
	f.monthEntry = newDateEntry(config.MaxDigitsMonth)
	f.yearEntry = newDateEntry(config.MaxDigitsYear)
	for _, e := range []*NumericalEntry{f.dayEntry, f.monthEntry, f.yearEntry} {
		e.OnSubmitted = func(string) { app.submit() }
	}

	f.dayLabel = widget.NewLabel("")
	f.monthLabel = widget.NewLabel("")
	f.yearLabel = widget.NewLabel("")
	for _, l := range []*widget.Label{f.dayLabel, f.monthLabel, f.yearLabel} {
		l.TextStyle = fyne.TextStyle{Bold: true}
	}

	f.errorLabel = widget.NewLabel("")
	f.errorLabel.Importance = widget.DangerImportance
	f.errorLabel.Hide()

	f.btnCalculate = widget.NewButtonWithIcon("", theme.ConfirmIcon(), app.submit)
	f.btnCalculate.Importance = widget.HighImportance
	f.btnImport = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), app.showImportDialog)
	f.btnExport = widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), app.showExportDialog)
	f.btnSettings = widget.NewButtonWithIcon("", theme.SettingsIcon(), app.ShowSettingsWindow)

	inputs := container.NewGridWithColumns(config.LayoutColumnsTriple,
		container.NewVBox(f.dayLabel, f.dayEntry),
		container.NewVBox(f.monthLabel, f.monthEntry),
		container.NewVBox(f.yearLabel, f.yearEntry),
	)

	r := &app.results
	accent := app.App.Settings().Theme().Color(theme.ColorNamePrimary, app.App.Settings().ThemeVariant())
	r.yearValue = newCounterText(accent)
	r.monthValue = newCounterText(accent)
	r.dayValue = newCounterText(accent)
	r.yearUnit = widget.NewLabel("")
	r.monthUnit = widget.NewLabel("")
	r.dayUnit = widget.NewLabel("")
	r.nextBirthday = widget.NewLabel("")
	r.nextBirthday.TextStyle = fyne.TextStyle{Italic: true}
	r.nextBirthday.Hide()

	results := container.NewVBox(
		container.NewHBox(r.yearValue, r.yearUnit),
		container.NewHBox(r.monthValue, r.monthUnit),
		container.NewHBox(r.dayValue, r.dayUnit),
		r.nextBirthday,
	)

	content := container.NewPadded(container.NewVBox(
		inputs,
		f.errorLabel,
		f.btnCalculate,
		widget.NewSeparator(),
		results,
		widget.NewSeparator(),
		container.NewGridWithColumns(config.LayoutColumnsDouble, f.btnImport, f.btnExport),
		f.btnSettings,
	))

	app.refreshTexts()
	w.SetContent(content)
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
}

func newDateEntry(maxDigits int) *NumericalEntry {
	e := NewNumericalEntry()
	e.MaxLength = maxDigits
	return e
}

func newCounterText(c color.Color) *canvas.Text {
	t := canvas.NewText(config.ValuePlaceholder, c)
	t.TextSize = config.ResultTextSize
	t.TextStyle = fyne.TextStyle{Bold: true, Italic: true}
	return t
}

// refreshTexts applies the current locale to every static label.
func (app *AgeApp) refreshTexts() {
	f, r := &app.form, &app.results
	if f.dayEntry == nil {
		return
	}
	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	}

	f.dayLabel.SetText(app.GetMsg(config.TKeyLblDay))
	f.monthLabel.SetText(app.GetMsg(config.TKeyLblMonth))
	f.yearLabel.SetText(app.GetMsg(config.TKeyLblYear))
	f.dayEntry.SetPlaceHolder(app.GetMsg(config.TKeyPhDay))
	f.monthEntry.SetPlaceHolder(app.GetMsg(config.TKeyPhMonth))
	f.yearEntry.SetPlaceHolder(app.GetMsg(config.TKeyPhYear))
	f.btnCalculate.SetText(app.GetMsg(config.TKeyBtnCalculate))
	f.btnImport.SetText(app.GetMsg(config.TKeyBtnImport))
	f.btnExport.SetText(app.GetMsg(config.TKeyBtnExport))
	f.btnSettings.SetText(app.GetMsg(config.TKeyBtnSettings))

	r.yearUnit.SetText(app.GetMsg(config.TKeyUnitYears))
	r.monthUnit.SetText(app.GetMsg(config.TKeyUnitMonths))
	r.dayUnit.SetText(app.GetMsg(config.TKeyUnitDays))
}

// resultFields exposes the counters to the animator.
func (app *AgeApp) resultFields() animate.Fields {
	return animate.Fields{
		Years:  newTextField(app.results.yearValue),
		Months: newTextField(app.results.monthValue),
		Days:   newTextField(app.results.dayValue),
	}
}

// submit runs the form pipeline: build date -> compute age -> animate.
func (app *AgeApp) submit() {
	f := &app.form
	slog.Info(config.MsgFormSubmitted, config.LogKeyComponent, config.CompUI)

	in := engine.ParseDateInput(f.dayEntry.Text, f.monthEntry.Text, f.yearEntry.Text)
	birth, age, err := app.Calculator.Evaluate(app.Ctx, in)
	if err != nil {
		app.showInputError(err)
		return
	}
	app.clearInputError()

	if err := app.Display.Render(app.Ctx, app.resultFields(), &age); err != nil {
		slog.Error(config.ErrAnimationAborted,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}
	app.updateNextBirthday(birth)
}

// showInputError displays the localized reason a date was rejected.
func (app *AgeApp) showInputError(err error) {
	key := config.TKeyErrInvalidDate
	if errors.Is(err, engine.ErrBirthInFuture) {
		key = config.TKeyErrFutureDate
	}
	app.form.errorLabel.SetText(app.GetMsg(key))
	app.form.errorLabel.Show()
	app.results.nextBirthday.Hide()
}

func (app *AgeApp) clearInputError() {
	app.form.errorLabel.SetText("")
	app.form.errorLabel.Hide()
}

// updateNextBirthday shows when the person turns one year older.
func (app *AgeApp) updateNextBirthday(birth engine.CalendarDate) {
	app.results.nextBirthday.SetText(app.nextBirthdayText(birth))
	app.results.nextBirthday.Show()
}

func (app *AgeApp) nextBirthdayText(birth engine.CalendarDate) string {
	now := app.Clock.Now()
	next, age := engine.NextBirthday(birth, now)

	if next == engine.DateOf(now) {
		return app.localize(config.TKeyNextBirthdayNow,
			map[string]interface{}{"Age": age},
			fmt.Sprintf("%d", age))
	}

	format := app.GetMsg(config.TKeyFormatDate)
	if format == config.TKeyFormatDate {
		format = config.DateFormatDisplay
	}
	dateText := next.Time(now.Location()).Format(format)
	return app.localize(config.TKeyNextBirthday,
		map[string]interface{}{"Age": age, "Date": dateText},
		fmt.Sprintf("%d (%s)", age, dateText))
}

// buildSummaryFormatter returns a closure that localizes the event summary.
func (app *AgeApp) buildSummaryFormatter() engine.SummaryFormatter {
	return func(name string, age int, yearKnown bool) string {
		var msg string
		var err error

		if app.Localizer != nil {
			switch {
			case yearKnown && age == 0:
				msg, err = app.Localizer.Localize(&i18n.LocalizeConfig{
					MessageID:    config.TKeyEvtSummaryBirth,
					TemplateData: map[string]interface{}{"Name": name},
				})
			case yearKnown:
				msg, err = app.Localizer.Localize(&i18n.LocalizeConfig{
					MessageID:    config.TKeyEvtSummaryAge,
					TemplateData: map[string]interface{}{"Name": name, "Age": age},
				})
			default:
				msg, err = app.Localizer.Localize(&i18n.LocalizeConfig{
					MessageID:    config.TKeyEvtSummary,
					TemplateData: map[string]interface{}{"Name": name},
				})
			}
		} else {
			err = errors.New(config.ErrLocNotInit)
		}

		if err != nil || msg == "" {
			if yearKnown {
				if age == 0 {
					return fmt.Sprintf(config.FallbackSummaryBirth, name)
				}
				return fmt.Sprintf(config.FallbackSummaryAge, name, age)
			}
			return fmt.Sprintf(config.FallbackSummary, name)
		}
		return msg
	}
}
