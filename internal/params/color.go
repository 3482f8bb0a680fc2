package params

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA color. It stays free of renderer types so the panel can be used headless.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex returns the color as #rrggbb (alpha is dropped).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses #RGB, #RRGGBB, 0xRRGGBB or a CSS color name ("white", "blue").
// Alpha is always 255. Returns false on parse error.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	var hex string
	switch {
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	default:
		if named, ok := colornames.Map[strings.ToLower(s)]; ok {
			return Color{R: named.R, G: named.G, B: named.B, A: 255}, true
		}
		return Color{}, false
	}
	for i := 0; i < len(hex); i++ {
		if _, ok := hexDigit(hex[i]); !ok {
			return Color{}, false
		}
	}
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		r, _ := hexDigit(hex[0])
		g, _ := hexDigit(hex[1])
		b, _ := hexDigit(hex[2])
		return RGB(r*17, g*17, b*17), true
	case 6:
		return RGB(hexPair(hex[0:2]), hexPair(hex[2:4]), hexPair(hex[4:6])), true
	}
	return Color{}, false
}

func hexPair(s string) uint8 {
	hi, _ := hexDigit(s[0])
	lo, _ := hexDigit(s[1])
	return hi<<4 + lo
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
