package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// showImportDialog lets the user pick a vCard file and fills the form from it.
func (app *AgeApp) showImportDialog() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		entries, err := app.loadContacts(r)
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		app.chooseContact(entries)
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

// loadContacts decodes a vCard stream and keeps entries with a full birth date.
func (app *AgeApp) loadContacts(r io.Reader) ([]engine.BirthdayEntry, error) {
	all, err := engine.ImportBirthdays(app.Ctx, io.LimitReader(r, config.MaxImportBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrImportRead, err)
	}

	var usable []engine.BirthdayEntry
	for _, e := range all {
		if e.YearKnown {
			usable = append(usable, e)
		}
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompImport,
		config.LogKeyTotal, len(all),
		config.LogKeyFound, len(usable),
	)
	return usable, nil
}

// chooseContact fills the form directly for a single entry, or asks which one to use.
func (app *AgeApp) chooseContact(entries []engine.BirthdayEntry) {
	switch len(entries) {
	case 0:
		dialog.ShowInformation(app.GetMsg(config.TKeyBtnImport), app.GetMsg(config.TKeyErrNoBirthdays), app.Window)
		return
	case 1:
		app.fillForm(entries[0])
		return
	}

	names := make([]string, len(entries))
	byName := make(map[string]engine.BirthdayEntry, len(entries))
	for i, e := range entries {
		label := fmt.Sprintf("%s (%s)", e.Name, e.Birth)
		names[i] = label
		byName[label] = e
	}

	sel := widget.NewSelect(names, nil)
	sel.SetSelectedIndex(0)
	dialog.ShowCustomConfirm(app.GetMsg(config.TKeyLblChooseEntry),
		app.GetMsg(config.TKeyBtnCalculate), app.GetMsg(config.TKeyBtnCancel),
		sel, func(ok bool) {
			if !ok {
				return
			}
			if e, found := byName[sel.Selected]; found {
				app.fillForm(e)
			}
		}, app.Window)
}

// fillForm writes an imported birth date into the form and submits it.
func (app *AgeApp) fillForm(entry engine.BirthdayEntry) {
	slog.Info(config.MsgImportSelected,
		config.LogKeyComponent, config.CompImport,
		config.LogKeyName, entry.Name,
	)

	f := &app.form
	f.dayEntry.SetText(strconv.Itoa(entry.Birth.Day))
	f.monthEntry.SetText(strconv.Itoa(int(entry.Birth.Month)))
	f.yearEntry.SetText(strconv.Itoa(entry.Birth.Year))
	app.submit()
}

// showExportDialog saves the birthday calendar for the date currently in the form.
func (app *AgeApp) showExportDialog() {
	data, err := app.exportCalendar()
	if err != nil {
		app.showInputError(err)
		return
	}

	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()

		if _, err := w.Write(data); err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", config.ErrExportWrite, err), app.Window)
			return
		}
		slog.Info(config.MsgExportDone,
			config.LogKeyComponent, config.CompExport,
			config.LogKeyFile, w.URI().Name(),
			config.LogKeySizeBytes, len(data),
		)
	}, app.Window)
	d.SetFileName(config.ExportFile)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}

// exportCalendar validates the form and renders its birth date as iCalendar.
func (app *AgeApp) exportCalendar() ([]byte, error) {
	f := &app.form
	in := engine.ParseDateInput(f.dayEntry.Text, f.monthEntry.Text, f.yearEntry.Text)
	birth, _, err := app.Calculator.Evaluate(app.Ctx, in)
	if err != nil {
		return nil, err
	}

	exporter := &engine.CalendarExporter{
		Clock:         app.Clock,
		FormatSummary: app.buildSummaryFormatter(),
	}
	entry := engine.BirthdayEntry{
		Name:      app.localize(config.TKeyEvtSelfName, nil, config.FallbackSelfName),
		Birth:     birth,
		YearKnown: true,
	}
	data, err := exporter.Export(app.Ctx, []engine.BirthdayEntry{entry})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return data, nil
}
