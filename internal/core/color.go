package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorMagenta
	ColorOrange
	ColorBrightRed
	ColorBrightGreen
)

// ParseColor maps a config color name to a Color. Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "white":
		return ColorWhite
	case "gray":
		return ColorGray
	case "darkgray":
		return ColorDarkGray
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "cyan":
		return ColorCyan
	case "magenta":
		return ColorMagenta
	case "orange":
		return ColorOrange
	case "brightred":
		return ColorBrightRed
	case "brightgreen":
		return ColorBrightGreen
	default:
		return ColorDefault
	}
}
