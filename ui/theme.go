package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// UI constants
const (
	FontSizeTotal float32 = 56.0
	FontSizeRow   float32 = 18.0

	// Dimensions
	ControlSize  = 96
	RowSpacing   = 1
	SectionSpace = 24
)

var (
	BackgroundColor = color.Black
	TextColor       = color.White
	FastestColor    = color.NRGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}
	SlowestColor    = color.NRGBA{R: 0xf8, G: 0x71, B: 0x71, A: 0xff}
	DividerColor    = color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
)

// CustomTheme is the dark stopwatch look: black background and monospace
// text everywhere so digits do not jitter while running.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color forces the dark variant and a pure black background.
func (t *CustomTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return BackgroundColor
	}
	return t.Theme.Color(name, theme.VariantDark)
}

// Font returns the monospace face for regular text.
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Bold || style.Italic || style.Symbol {
		return t.Theme.Font(style)
	}
	return t.Theme.Font(fyne.TextStyle{Monospace: true})
}

func highlightColor(h Highlight) color.Color {
	switch h {
	case HighlightFastest:
		return FastestColor
	case HighlightSlowest:
		return SlowestColor
	}
	return TextColor
}
