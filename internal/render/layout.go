package render

// Layout fixes the geometry of a two-panel frame: the current state on the
// left, the target on the right, stacks evenly spaced within each panel.
type Layout struct {
	Width  int
	Height int

	BlockWidth  int
	BlockHeight int

	// SectionWidth is the width of one panel; the divider runs at x = SectionWidth.
	SectionWidth int
	// StackSpacing is the horizontal distance between stack centers.
	StackSpacing int
	// GroundY is the y coordinate blocks rest on.
	GroundY int
	// LiftY is the height a block is carried at while moving between stacks.
	LiftY int
}

// NewLayout derives panel geometry from the frame size and the puzzle shape.
// maxBlocks bounds the tallest possible stack so that a lifted block always
// clears it.
func NewLayout(width, height, blockWidth, blockHeight, numStacks, maxBlocks int) Layout {
	sectionWidth := width / 2
	groundY := height - 80
	return Layout{
		Width:        width,
		Height:       height,
		BlockWidth:   blockWidth,
		BlockHeight:  blockHeight,
		SectionWidth: sectionWidth,
		StackSpacing: sectionWidth / (numStacks + 1),
		GroundY:      groundY,
		LiftY:        groundY - maxBlocks*blockHeight - 60,
	}
}

// StackX returns the center x of stack idx within the panel starting at
// xOffset (0 for the current panel, SectionWidth for the target panel).
func (l Layout) StackX(xOffset, idx int) float64 {
	return float64(xOffset + l.StackSpacing*(idx+1))
}

// BlockTopY returns the top y of the block sitting at height pos (0 = bottom)
// of a stack.
func (l Layout) BlockTopY(pos int) float64 {
	return float64(l.GroundY - (pos+1)*l.BlockHeight)
}
