package anim

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Encoder writes rendered frames to disk as an animated GIF or an H.264 MP4.
type Encoder struct {
	FPS    int
	Format string // "gif" or "mp4"
}

// FFmpegAvailable reports whether the external ffmpeg binary needed for MP4
// output is on PATH.
func FFmpegAvailable() bool {
	_, err := exec.LookPath("ffmpeg")
	return err == nil
}

// Available reports whether this encoder can run on the current system. GIF
// encoding is built in; MP4 needs ffmpeg.
func (e Encoder) Available() bool {
	return e.Format != "mp4" || FFmpegAvailable()
}

func (e Encoder) Encode(ctx context.Context, frames []image.Image, path string) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	switch e.Format {
	case "gif":
		return e.encodeGIF(frames, path)
	case "mp4":
		return e.encodeMP4(ctx, frames, path)
	default:
		return fmt.Errorf("unsupported video format %q", e.Format)
	}
}

func (e Encoder) encodeGIF(frames []image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGIF(f, frames, e.FPS); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// encodeMP4 pipes frames as PNGs into ffmpeg. yuv420p keeps the output
// playable in browsers and most players.
func (e Encoder) encodeMP4(ctx context.Context, frames []image.Image, path string) error {
	if !FFmpegAvailable() {
		return fmt.Errorf("ffmpeg not found in PATH")
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-framerate", strconv.Itoa(e.FPS),
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		path,
	)
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("opening ffmpeg stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting ffmpeg: %w", err)
	}

	pipeErr := func() error {
		defer stdin.Close()
		for i, frame := range frames {
			if err := png.Encode(stdin, frame); err != nil {
				return fmt.Errorf("piping frame %d: %w", i, err)
			}
		}
		return nil
	}()

	waitErr := cmd.Wait()
	if pipeErr != nil {
		return pipeErr
	}
	if waitErr != nil {
		return fmt.Errorf("ffmpeg: %w: %s", waitErr, lastLine(stderr.String()))
	}
	return nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
