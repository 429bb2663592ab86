package ada

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Color is a non-premultiplied 8-bit RGBA pixel value.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates a color from RGBA components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// String returns the color in #rrggbbaa notation.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = NewColor(0, 0, 0, 0)
)

// Named returns the SVG 1.1 color with the given name, e.g. "CornflowerBlue".
// Names are matched caselessly. The second result is false for unknown names.
func Named(name string) (Color, bool) {
	// A Caser carries state, so each lookup gets its own.
	c, ok := colornames.Map[cases.Fold().String(name)]
	if !ok {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input returns opaque black and false.
func Hex(hex string) (Color, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [4]uint8
	v[3] = 255

	switch len(hex) {
	case 3, 4: // RGB, RGBA
		for i := 0; i < len(hex); i++ {
			d, ok := hexDigit(hex[i])
			if !ok {
				return Black, false
			}
			v[i] = d * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return Black, false
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Black, false
	}

	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ColorMode selects the byte layout of a canvas pixel.
type ColorMode uint8

const (
	// ColorModeRGBA stores 4 bytes per pixel: R, G, B, A.
	ColorModeRGBA ColorMode = iota
	// ColorModeRGB stores 3 bytes per pixel: R, G, B. Alpha is dropped.
	ColorModeRGB
)

// BytesPerPixel returns the number of bytes one pixel occupies, or 0 for an
// unknown mode.
func (m ColorMode) BytesPerPixel() int {
	switch m {
	case ColorModeRGBA:
		return 4
	case ColorModeRGB:
		return 3
	}
	return 0
}

// String returns the mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorModeRGBA:
		return "RGBA"
	case ColorModeRGB:
		return "RGB"
	}
	return fmt.Sprintf("ColorMode(%d)", uint8(m))
}
