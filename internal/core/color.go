package core

// Color is the foreground color of a screen cell. The platform layer maps it
// to a terminal color; games only pick from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorDim
)

// Palette lists every color in declaration order.
func Palette() []Color {
	return []Color{
		ColorDefault, ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta,
		ColorCyan, ColorWhite, ColorOrange, ColorGray, ColorDim,
	}
}
