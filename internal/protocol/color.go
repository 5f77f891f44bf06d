package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed ARGB color carried in sensor payloads.
type Color struct {
	Alpha uint8
	Red   uint8
	Green uint8
	Blue  uint8
}

// ARGB builds a color from explicit channels.
func ARGB(a, r, g, b uint8) Color {
	return Color{Alpha: a, Red: r, Green: g, Blue: b}
}

// RGB builds a color with a zero alpha channel. Companion-side renderers
// treat zero alpha as fully opaque for legacy payloads.
func RGB(r, g, b uint8) Color {
	return Color{Red: r, Green: g, Blue: b}
}

// ColorFromUint32 unpacks 0xAARRGGBB.
func ColorFromUint32(v uint32) Color {
	return Color{
		Alpha: uint8(v >> 24),
		Red:   uint8(v >> 16),
		Green: uint8(v >> 8),
		Blue:  uint8(v),
	}
}

// ParseColor reads AARRGGBB or RRGGBB hex digits with an optional leading
// '#'. Six-digit input leaves alpha zero.
func ParseColor(s string) (Color, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if t == "" {
		return Color{}, fmt.Errorf("%w: %q", ErrColorSyntax, s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrColorSyntax, s)
	}
	return ColorFromUint32(uint32(v)), nil
}

// Uint32 packs the color as 0xAARRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.Alpha)<<24 | uint32(c.Red)<<16 | uint32(c.Green)<<8 | uint32(c.Blue)
}

// Hex renders eight uppercase hex digits, AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.Alpha, c.Red, c.Green, c.Blue)
}
