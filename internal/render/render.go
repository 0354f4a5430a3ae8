// Package render rasters block-stacking puzzle states into frames. The
// current state fills the left panel and the target the right; blocks are
// drawn as shaded, lettered tiles resting on stack platforms.
package render

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/blocksworld/stackgen/internal/blocks"
	"github.com/blocksworld/stackgen/internal/config"
)

var (
	background   = color.RGBA{R: 245, G: 245, B: 250, A: 255}
	dividerColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	textColor    = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	platformFill = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	outlineColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	solvedColor  = color.RGBA{R: 34, G: 139, B: 34, A: 255}
)

// fontPaths is tried in order; the first face that loads is used for every
// text size. When none load we fall back to a bitmap face so rendering still
// works on bare systems.
var fontPaths = []string{
	"arial.ttf",
	"Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"DejaVuSans.ttf",
}

func loadFace(points float64) font.Face {
	for _, path := range fontPaths {
		if face, err := gg.LoadFontFace(path, points); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// CarriedBlock is a block drawn mid-flight at an arbitrary position instead
// of resting on a stack. Coordinates are absolute frame coordinates.
type CarriedBlock struct {
	Block blocks.Block
	X     float64
	Y     float64
}

// FrameOpts control the annotations drawn over a frame.
type FrameOpts struct {
	MoveCount    int
	OptimalMoves int
	// Solved switches the footer to the green summary line.
	Solved  bool
	Carried *CarriedBlock
}

// Renderer rasters puzzle states with a fixed layout and palette. Frame may
// be called from several goroutines at once.
type Renderer struct {
	layout  Layout
	palette []color.RGBA
	names   []string

	// Truetype faces keep an internal glyph cache that is not safe for
	// concurrent use; every text draw goes through fontMu.
	fontMu      sync.Mutex
	labelFace   font.Face // panel headers and the solved line
	letterFace  font.Face // block face letters
	counterFace font.Face // move counter
}

// New builds a Renderer for puzzles with numStacks stacks of at most
// maxBlocks blocks. The palette in cfg maps block identities to colors.
func New(cfg config.RenderConfig, numStacks, maxBlocks int) (*Renderer, error) {
	palette := make([]color.RGBA, len(cfg.Colors))
	for i, hex := range cfg.Colors {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		palette[i] = c
	}
	return &Renderer{
		layout: NewLayout(
			cfg.ImageWidth, cfg.ImageHeight,
			cfg.BlockWidth, cfg.BlockHeight,
			numStacks, maxBlocks,
		),
		palette:     palette,
		names:       cfg.ColorNames,
		labelFace:   loadFace(24),
		letterFace:  loadFace(18),
		counterFace: loadFace(16),
	}, nil
}

// Layout exposes the frame geometry, which animation planning needs to place
// carried blocks.
func (r *Renderer) Layout() Layout { return r.layout }

func (r *Renderer) colorFor(b blocks.Block) color.RGBA {
	return r.palette[int(b)%len(r.palette)]
}

func (r *Renderer) nameFor(b blocks.Block) string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[int(b)%len(r.names)]
}

// Frame renders current and target side by side and returns the finished
// image.
func (r *Renderer) Frame(current, target blocks.State, opts FrameOpts) image.Image {
	l := r.layout
	dc := gg.NewContext(l.Width, l.Height)

	dc.SetColor(background)
	dc.Clear()

	mid := float64(l.SectionWidth)
	dc.SetColor(dividerColor)
	dc.SetLineWidth(2)
	dc.DrawLine(mid, 50, mid, float64(l.Height-50))
	dc.Stroke()

	r.drawText(dc, r.labelFace, textColor, "CURRENT", mid/2, 30)
	r.drawText(dc, r.labelFace, textColor, "TARGET", mid+mid/2, 30)

	r.drawPlatforms(dc, 0, len(current))
	r.drawPlatforms(dc, l.SectionWidth, len(target))
	r.drawStacks(dc, current, 0)
	r.drawStacks(dc, target, l.SectionWidth)

	if opts.Carried != nil {
		r.drawBlock(dc, opts.Carried.Block, opts.Carried.X, opts.Carried.Y)
	}

	if opts.Solved {
		line := fmt.Sprintf("Solved in %d moves (Optimal: %d)", opts.MoveCount, opts.OptimalMoves)
		r.drawText(dc, r.labelFace, solvedColor, line, float64(l.Width)/2, float64(l.Height-30))
	} else {
		line := fmt.Sprintf("Moves: %d", opts.MoveCount)
		r.drawText(dc, r.counterFace, textColor, line, float64(l.Width)/2, float64(l.Height-30))
	}

	return dc.Image()
}

func (r *Renderer) drawText(dc *gg.Context, face font.Face, c color.Color, s string, x, y float64) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

func (r *Renderer) drawPlatforms(dc *gg.Context, xOffset, numStacks int) {
	l := r.layout
	halfWidth := float64(l.BlockWidth)/2 + 10
	dc.SetColor(platformFill)
	for i := 0; i < numStacks; i++ {
		x := l.StackX(xOffset, i)
		dc.DrawRectangle(x-halfWidth, float64(l.GroundY+5), 2*halfWidth, 8)
		dc.Fill()
	}
}

func (r *Renderer) drawStacks(dc *gg.Context, state blocks.State, xOffset int) {
	for stackIdx, stack := range state {
		x := r.layout.StackX(xOffset, stackIdx)
		for pos, block := range stack {
			r.drawBlock(dc, block, x, r.layout.BlockTopY(pos))
		}
	}
}

// drawBlock paints one block with its top edge at yTop, centered on x:
// filled face with a dark outline, a lighter line along the top edge and a
// darker one along the bottom for depth, and the first letter of the color
// name in the middle.
func (r *Renderer) drawBlock(dc *gg.Context, b blocks.Block, x, yTop float64) {
	l := r.layout
	w := float64(l.BlockWidth)
	h := float64(l.BlockHeight)
	x0 := x - w/2

	fill := r.colorFor(b)
	dc.DrawRectangle(x0, yTop, w, h)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(outlineColor)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetColor(shade(fill, 40))
	dc.DrawLine(x0+2, yTop+2, x0+w-2, yTop+2)
	dc.Stroke()
	dc.SetColor(shade(fill, -40))
	dc.DrawLine(x0+2, yTop+h-2, x0+w-2, yTop+h-2)
	dc.Stroke()

	if name := r.nameFor(b); name != "" {
		r.drawText(dc, r.letterFace, labelColor(fill), name[:1], x, yTop+h/2)
	}
}
