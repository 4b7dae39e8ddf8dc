package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the dark application theme
var (
	ColorBackground = color.NRGBA{R: 0x14, G: 0x14, B: 0x14, A: 0xff} // screen
	ColorToolbar    = color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff} // bottom toolbar
	ColorInput      = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff} // text entry
	ColorCodeCard   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} // behind the QR code
)

// AppTheme is a compact dark theme; the variant requested by the OS is ignored
type AppTheme struct{}

// NewAppTheme creates the application theme
func NewAppTheme() fyne.Theme {
	return &AppTheme{}
}

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameInputBackground:
		return ColorInput
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePlaceHolder:
		return color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	case theme.ColorNameButton:
		return ColorToolbar
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 24 // export header
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
