package notes

// Palette lists the card colors offered by the color tooltip, in swatch order.
var Palette = []string{
	"white",
	"red",
	"orange",
	"yellow",
	"green",
	"teal",
	"blue",
	"darkblue",
	"purple",
	"pink",
	"brown",
	"gray",
}

// IsPaletteColor reports whether color is one of the Palette entries.
func IsPaletteColor(color string) bool {
	for _, c := range Palette {
		if c == color {
			return true
		}
	}
	return false
}
