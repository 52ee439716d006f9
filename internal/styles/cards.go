package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// CardColors maps note color names to card backgrounds.
var CardColors = map[string]string{
	"white":    "#FFFFFF",
	"red":      "#F28B82",
	"orange":   "#FBBC04",
	"yellow":   "#FFF475",
	"green":    "#CCFF90",
	"teal":     "#A7FFEB",
	"blue":     "#CBF0F8",
	"darkblue": "#AECBFA",
	"purple":   "#D7AEFB",
	"pink":     "#FDCFE8",
	"brown":    "#E6C9A8",
	"gray":     "#E8EAED",
}

const fallbackCardColor = "white"

// minCardContrast is the WCAG AA ratio for normal text.
const minCardContrast = 4.5

// RGB is a color with float channels in the 0-255 range.
type RGB struct {
	R, G, B float64
}

// HexToRGB parses #RRGGBB (an alpha suffix is ignored). Invalid input
// yields black.
func HexToRGB(hex string) RGB {
	if !IsValidHexColor(hex) {
		return RGB{}
	}
	v, _ := strconv.ParseUint(hex[1:7], 16, 32)
	return RGB{
		R: float64(v >> 16 & 0xFF),
		G: float64(v >> 8 & 0xFF),
		B: float64(v & 0xFF),
	}
}

// CardBackground returns the hex background for a note color. Unknown
// colors render as white.
func CardBackground(color string) string {
	if hex, ok := CardColors[color]; ok {
		return hex
	}
	return CardColors[fallbackCardColor]
}

// CardForeground picks the theme's card text color, or black/white when
// the theme color is unreadable on bg.
func CardForeground(bg string) lipgloss.Color {
	bgRGB := HexToRGB(bg)
	if contrastRatio(HexToRGB(string(CardText)), bgRGB) >= minCardContrast {
		return CardText
	}
	black, white := RGB{}, RGB{255, 255, 255}
	if contrastRatio(black, bgRGB) >= contrastRatio(white, bgRGB) {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

// CardStyle returns the style for a note card of the given color.
func CardStyle(color string, width int) lipgloss.Style {
	bg := CardBackground(color)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(lipgloss.Color(bg)).
		Foreground(CardForeground(bg))
}

// CardTitleStyle is the bold title line of a card of the given color.
func CardTitleStyle(color string) lipgloss.Style {
	bg := CardBackground(color)
	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Foreground(CardForeground(bg))
}

// SwatchStyle renders a single palette swatch.
func SwatchStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(CardBackground(color)))
}
