// Package anim turns a solved puzzle into an animation: the solution is
// played move by move, each move decomposed into lift, horizontal carry and
// lower phases with the block drawn in flight.
package anim

import (
	"fmt"
	"image"

	"github.com/blocksworld/stackgen/internal/blocks"
	"github.com/blocksworld/stackgen/internal/config"
	"github.com/blocksworld/stackgen/internal/render"
)

// Animator renders solution playback frames through a shared Renderer.
type Animator struct {
	renderer *render.Renderer
	cfg      config.VideoConfig
}

func New(renderer *render.Renderer, cfg config.VideoConfig) *Animator {
	return &Animator{renderer: renderer, cfg: cfg}
}

// FrameCount returns the number of frames Frames will produce for a solution
// of numMoves moves.
func (a *Animator) FrameCount(numMoves int) int {
	perMove := a.cfg.LiftFrames + a.cfg.MoveFrames + a.cfg.LowerFrames + a.cfg.PauseFrames
	return a.cfg.HoldFrames + numMoves*perMove + a.cfg.HoldFrames*2
}

// Frames renders the full playback of p.Solution: the initial state held
// still, every move animated in three phases with a settle pause after it,
// and the solved state held at the end. It fails if the solution does not
// replay cleanly from the initial state.
func (a *Animator) Frames(p *blocks.Puzzle) ([]image.Image, error) {
	l := a.renderer.Layout()
	frames := make([]image.Image, 0, a.FrameCount(len(p.Solution)))

	current := p.Initial
	moveCount := 0

	initial := a.renderer.Frame(current, p.Target, render.FrameOpts{
		MoveCount:    0,
		OptimalMoves: p.OptimalMoves,
	})
	for i := 0; i < a.cfg.HoldFrames; i++ {
		frames = append(frames, initial)
	}

	for i, move := range p.Solution {
		after, err := current.Apply(move)
		if err != nil {
			return nil, fmt.Errorf("animating move %d: %w", i, err)
		}
		carried, _ := current[move.From].Top()

		fromX := l.StackX(0, move.From)
		toX := l.StackX(0, move.To)
		// Resting top edge of the carried block before and after the move.
		fromY := l.BlockTopY(len(current[move.From]) - 1)
		toY := l.BlockTopY(len(current[move.To]))
		liftY := float64(l.LiftY)

		// The carried block leaves its stack before the lift starts.
		grounded := current.Clone()
		src := grounded[move.From]
		grounded[move.From] = src[:len(src)-1]

		opts := render.FrameOpts{MoveCount: moveCount, OptimalMoves: p.OptimalMoves}

		for j := 0; j < a.cfg.LiftFrames; j++ {
			progress := float64(j) / float64(max(1, a.cfg.LiftFrames-1))
			opts.Carried = &render.CarriedBlock{
				Block: carried,
				X:     fromX,
				Y:     fromY + (liftY-fromY)*progress,
			}
			frames = append(frames, a.renderer.Frame(grounded, p.Target, opts))
		}

		for j := 0; j < a.cfg.MoveFrames; j++ {
			progress := float64(j) / float64(max(1, a.cfg.MoveFrames-1))
			opts.Carried = &render.CarriedBlock{
				Block: carried,
				X:     fromX + (toX-fromX)*progress,
				Y:     liftY,
			}
			frames = append(frames, a.renderer.Frame(grounded, p.Target, opts))
		}

		for j := 0; j < a.cfg.LowerFrames; j++ {
			progress := float64(j) / float64(max(1, a.cfg.LowerFrames-1))
			opts.Carried = &render.CarriedBlock{
				Block: carried,
				X:     toX,
				Y:     liftY + (toY-liftY)*progress,
			}
			frames = append(frames, a.renderer.Frame(grounded, p.Target, opts))
		}

		current = after
		moveCount++

		settled := a.renderer.Frame(current, p.Target, render.FrameOpts{
			MoveCount:    moveCount,
			OptimalMoves: p.OptimalMoves,
		})
		for j := 0; j < a.cfg.PauseFrames; j++ {
			frames = append(frames, settled)
		}
	}

	final := a.renderer.Frame(current, p.Target, render.FrameOpts{
		MoveCount:    moveCount,
		OptimalMoves: p.OptimalMoves,
		Solved:       true,
	})
	for i := 0; i < a.cfg.HoldFrames*2; i++ {
		frames = append(frames, final)
	}

	return frames, nil
}
