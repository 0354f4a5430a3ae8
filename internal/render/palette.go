package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor converts "#RRGGBB" (or the short "#RGB" form) to an opaque
// RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

// shade shifts every channel by delta, clamped to 0..255. Positive deltas
// make the highlight edge, negative the shadow edge.
func shade(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: clamp8(int(c.R) + delta),
		G: clamp8(int(c.G) + delta),
		B: clamp8(int(c.B) + delta),
		A: c.A,
	}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// labelColor picks a readable text color for a block face: white on dark
// fills, near-black on light ones.
func labelColor(c color.RGBA) color.RGBA {
	if int(c.R)+int(c.G)+int(c.B) < 400 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: 30, G: 30, B: 30, A: 255}
}
