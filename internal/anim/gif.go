package anim

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// WriteGIF encodes frames as a looping animated GIF at the given frame rate.
// Frames are quantized to the standard 256-color palette with dithering.
func WriteGIF(w io.Writer, frames []image.Image, fps int) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	delay := 100 / fps // GIF delays are hundredths of a second
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, frame, bounds.Min)
		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}
