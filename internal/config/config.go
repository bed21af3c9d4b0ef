package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Age"
	AppID       = "com.github.tartampluch.go-age"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

const (
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"

	DefaultLanguage = "en"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Form & Display Constants
// -----------------------------------------------------------------------------

const (
	// Field identifiers of the input form.
	FieldDay   = "day"
	FieldMonth = "month"
	FieldYear  = "year"

	// Field identifiers of the result display.
	FieldYearValue  = "yearValue"
	FieldMonthValue = "monthValue"
	FieldDayValue   = "dayValue"

	// Placeholder shown before the first result; read back as 0.
	ValuePlaceholder = "--"

	// Maximum digits accepted by the numeric entries.
	MaxDigitsDay   = 2
	MaxDigitsMonth = 2
	MaxDigitsYear  = 4

	MainWindowWidth     = 430 // Small-screen card width
	MainWindowHeight    = 520
	SettingsWindowWidth = 360
	ResultTextSize      = 48
	LayoutColumnsTriple = 3
	LayoutColumnsDouble = 2

	DateFormatDisplay = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Animation
// -----------------------------------------------------------------------------

const (
	// AnimationDuration is the wall-clock length of one counter animation.
	AnimationDuration = 1 * time.Second

	// AnimationFPS is the number of ticks per second.
	AnimationFPS = 60
)

// -----------------------------------------------------------------------------
// Calendar Arithmetic
// -----------------------------------------------------------------------------

// MonthDays is the non-leap month length table used when borrowing days.
// February is always 28.
var MonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const (
	MinDay   = 1
	MaxDay   = 31
	MinMonth = 1
	MaxMonth = 12

	MonthsPerYear   = 12
	DefaultLeapYear = 2000 // Leap year fallback for dates like --02-29
	UIDSalt         = "go-age-v1-"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyWinSettings     = "win_settings_title"
	TKeyLblDay          = "lbl_day"
	TKeyLblMonth        = "lbl_month"
	TKeyLblYear         = "lbl_year"
	TKeyPhDay           = "placeholder_day"
	TKeyPhMonth         = "placeholder_month"
	TKeyPhYear          = "placeholder_year"
	TKeyBtnCalculate    = "btn_calculate"
	TKeyBtnImport       = "btn_import"
	TKeyBtnExport       = "btn_export"
	TKeyBtnSettings     = "btn_settings"
	TKeyBtnSave         = "btn_save"
	TKeyBtnCancel       = "btn_cancel"
	TKeyUnitYears       = "unit_years"
	TKeyUnitMonths      = "unit_months"
	TKeyUnitDays        = "unit_days"
	TKeyErrInvalidDate  = "err_invalid_date"
	TKeyErrFutureDate   = "err_future_date"
	TKeyErrNoBirthdays  = "err_no_birthdays"
	TKeyNextBirthday    = "next_birthday"      // Requires Age, Date
	TKeyNextBirthdayNow = "next_birthday_today" // Requires Age
	TKeyLblLanguage     = "lbl_language"
	TKeyHelpLanguage    = "help_language"
	TKeyLblChooseEntry  = "lbl_choose_contact"
	TKeyLblFooter       = "lbl_footer"
	TKeyEvtSummary      = "event_summary"       // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)
	TKeyEvtSelfName     = "event_self_name"
	TKeyFormatDate      = "format_date_short" // Date format pattern (e.g., "2006-01-02")
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Age//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goage"

	// iCal/vCard Fields
	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions
	ExtVCF         = ".vcf"
	ExtVCard       = ".vcard"
	ExtICS         = ".ics"
	ExportFile     = "birthday.ics"
	MaxImportBytes = 16 * 1024 * 1024 // 16MB
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidDate      = "invalid calendar date"
	ErrNotInteger       = "value is not an integer"
	ErrDayRange         = "day out of range"
	ErrMonthRange       = "month out of range"
	ErrDateMismatch     = "date does not exist in the calendar"
	ErrBirthInFuture    = "birth date is in the future"
	ErrInvalidField     = "invalid display field"
	ErrTargetNotNumeric = "target value must be a number"
	ErrDurationNotPos   = "duration must be a positive number"
	ErrInvalidStart     = "invalid start value: must be a number or the placeholder"
	ErrMalformedResult  = "invalid age result provided"
	ErrMissingFields    = "display fields yearValue, monthValue and dayValue not found"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrExportWrite      = "failed to write calendar file"
	ErrImportRead       = "failed to read contact file"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrLocNotInit       = "localizer not initialized"
	ErrAnimationAborted = "animation aborted"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"
	FallbackName         = "Unknown"
	FallbackSelfName     = "Me"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgFormSubmitted  = "Form submitted"
	MsgAgeComputed    = "Age computed"
	MsgDateRejected   = "Birth date rejected"
	MsgRenderStarted  = "Rendering age result"
	MsgAnimCancelled  = "Replacing running animation"
	MsgAnimFinished   = "Animation finished"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgImportDone     = "Contacts imported"
	MsgExportDone     = "Calendar exported"
	MsgGenSuccess     = "Calendar generation successful"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgSettingsOpen   = "Opening settings window"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
	MsgSettingsSaved  = "Saving preferences"
	MsgImportSelected = "Contact selected for import"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyToday     = "today"
	LogKeyYears     = "years"
	LogKeyMonths    = "months"
	LogKeyDays      = "days"
	LogKeyField     = "field"
	LogKeyTarget    = "target"
	LogKeySteps     = "steps"
	LogKeyCount     = "count"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompUISet    = "ui_settings"
	CompEngine   = "engine"
	CompAnimator = "animator"
	CompImport   = "import"
	CompExport   = "export"
	CompMain     = "main"
	CompI18n     = "i18n"
)
