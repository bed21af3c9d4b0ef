package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the age card.
var (
	colorPurple    = color.NRGBA{R: 133, G: 77, B: 255, A: 255}
	colorLightRed  = color.NRGBA{R: 255, G: 87, B: 87, A: 255}
	colorOffWhite  = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	colorLightGrey = color.NRGBA{R: 219, G: 219, B: 219, A: 255}
	colorSmokeGrey = color.NRGBA{R: 113, G: 111, B: 111, A: 255}
	colorOffBlack  = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	colorWhite     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// ageTheme applies the card palette on top of the default Fyne theme.
// The palette is light only; the variant is ignored for the colors it defines.
type ageTheme struct {
	base fyne.Theme
}

var _ fyne.Theme = (*ageTheme)(nil)

func newAgeTheme() fyne.Theme {
	return &ageTheme{base: theme.DefaultTheme()}
}

func (t *ageTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorPurple
	case theme.ColorNameError:
		return colorLightRed
	case theme.ColorNameBackground:
		return colorOffWhite
	case theme.ColorNameInputBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return colorWhite
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return colorLightGrey
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return colorSmokeGrey
	case theme.ColorNameForeground:
		return colorOffBlack
	case theme.ColorNameForegroundOnPrimary:
		return colorWhite
	}
	return t.base.Color(name, theme.VariantLight)
}

func (t *ageTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *ageTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *ageTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
