package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a foreground color for a screen cell.
// Holds either an ANSI 256-color code ("9") or a hex triplet ("#ff0000"),
// both of which lipgloss understands directly.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault       Color = ""
	ColorRed           Color = "1"
	ColorGreen         Color = "2"
	ColorYellow        Color = "3"
	ColorBlue          Color = "4"
	ColorMagenta       Color = "5"
	ColorCyan          Color = "6"
	ColorWhite         Color = "7"
	ColorBrightRed     Color = "9"
	ColorBrightGreen   Color = "10"
	ColorBrightYellow  Color = "11"
	ColorBrightBlue    Color = "12"
	ColorBrightMagenta Color = "13"
	ColorBrightCyan    Color = "14"
	ColorBrightWhite   Color = "15"
	ColorOrange        Color = "208"
	ColorGray          Color = "245"
	ColorDim           Color = "240"
)

// RGB builds a Color from linear channel values in [0, 1].
func RGB(r, g, b float64) Color {
	return FromColorful(colorful.Color{R: r, G: g, B: b}.Clamped())
}

// FromColorful converts a go-colorful color to a hex Color.
func FromColorful(c colorful.Color) Color {
	return Color(c.Hex())
}

// Hue returns a fully saturated color at the given hue (degrees).
func Hue(deg float64) Color {
	return FromColorful(colorful.Hsv(deg, 1, 1))
}

// ParseColor accepts a hex triplet or an ANSI code and returns it as a Color.
// Invalid hex input yields ColorDefault.
func ParseColor(s string) Color {
	if s == "" {
		return ColorDefault
	}
	if s[0] == '#' {
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorDefault
		}
		return FromColorful(c)
	}
	return Color(s)
}
