package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// TileColor maps a 2048 tile value to a display color, roughly tracking
// the classic palette from dim low tiles to bright high ones.
func TileColor(value int) Color {
	switch value {
	case 2:
		return ColorGray
	case 4:
		return ColorWhite
	case 8:
		return ColorYellow
	case 16:
		return ColorOrange
	case 32:
		return ColorBrightRed
	case 64:
		return ColorRed
	case 128, 256:
		return ColorBrightYellow
	case 512, 1024:
		return ColorBrightCyan
	case 2048:
		return ColorBrightGreen
	default:
		if value > 2048 {
			return ColorBrightMagenta
		}
		return ColorDefault
	}
}
