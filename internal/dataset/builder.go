package dataset

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blocksworld/stackgen/internal/anim"
	"github.com/blocksworld/stackgen/internal/blocks"
	"github.com/blocksworld/stackgen/internal/config"
	"github.com/blocksworld/stackgen/internal/prompts"
	"github.com/blocksworld/stackgen/internal/render"
)

// Builder produces complete samples: it generates a puzzle, renders its
// first/final frames, optionally encodes the solution video, and fills in
// the metadata record. One Builder serves a whole run; Build itself is
// stateless, so it can be called from several goroutines as long as each
// call gets its own *rand.Rand.
type Builder struct {
	cfg      config.Config
	params   blocks.Params
	renderer *render.Renderer
	animator *anim.Animator
	encoder  anim.Encoder
	runID    string
	videos   bool
}

func NewBuilder(cfg config.Config) (*Builder, error) {
	renderer, err := render.New(cfg.Render, cfg.Puzzle.NumStacks, cfg.Puzzle.MaxBlocks)
	if err != nil {
		return nil, fmt.Errorf("building renderer: %w", err)
	}

	encoder := anim.Encoder{FPS: cfg.Video.FPS, Format: cfg.Video.Format}
	videos := cfg.Video.Enabled
	if videos && !encoder.Available() {
		Log.WithField("format", cfg.Video.Format).
			Warn("video encoder unavailable on this system, skipping videos")
		videos = false
	}

	return &Builder{
		cfg: cfg,
		params: blocks.Params{
			NumStacks:   cfg.Puzzle.NumStacks,
			MinBlocks:   cfg.Puzzle.MinBlocks,
			MaxBlocks:   cfg.Puzzle.MaxBlocks,
			PaletteSize: len(cfg.Render.Colors),
			MaxMoves:    cfg.Puzzle.MaxMoves,
			MaxAttempts: cfg.Puzzle.MaxAttempts,
		},
		renderer: renderer,
		animator: anim.New(renderer, cfg.Video),
		encoder:  encoder,
		runID:    uuid.NewString(),
		videos:   videos,
	}, nil
}

// RunID identifies this generation run; every sample of the run carries it.
func (b *Builder) RunID() string { return b.runID }

// VideosEnabled reports whether samples will get solution videos.
func (b *Builder) VideosEnabled() bool { return b.videos }

// Build generates the sample at index, writes its artifacts through w and
// returns the metadata record. A failed video is logged and skipped rather
// than failing the sample; image write failures are fatal.
func (b *Builder) Build(ctx context.Context, index int, rnd *rand.Rand, w *Writer) (Sample, error) {
	taskID := TaskID(b.cfg.Dataset.Domain, index)

	p := blocks.Generate(b.params, rnd)
	prompt := prompts.ForDifficulty(p.Difficulty, rnd)

	first := b.renderer.Frame(p.Initial, p.Target, render.FrameOpts{
		OptimalMoves: p.OptimalMoves,
	})
	final := b.renderer.Frame(p.Target, p.Target, render.FrameOpts{
		MoveCount:    p.OptimalMoves,
		OptimalMoves: p.OptimalMoves,
		Solved:       true,
	})

	firstPath := w.ImagePath(taskID, "first")
	finalPath := w.ImagePath(taskID, "final")
	if err := w.SaveImage(firstPath, first); err != nil {
		return Sample{}, fmt.Errorf("%s: %w", taskID, err)
	}
	if err := w.SaveImage(finalPath, final); err != nil {
		return Sample{}, fmt.Errorf("%s: %w", taskID, err)
	}

	s := Sample{
		TaskID:       taskID,
		RunID:        b.runID,
		Domain:       b.cfg.Dataset.Domain,
		Prompt:       prompt,
		Difficulty:   p.Difficulty.String(),
		OptimalMoves: p.OptimalMoves,
		NumStacks:    p.NumStacks,
		NumBlocks:    len(p.Blocks),
		InitialState: p.Initial.Key(),
		TargetState:  p.Target.Key(),
		Solution:     p.Solution,
		FirstImage:   w.Rel(firstPath),
		FinalImage:   w.Rel(finalPath),
	}

	if b.videos {
		videoPath := w.VideoPath(taskID, b.encoder.Format)
		if err := b.renderVideo(ctx, p, videoPath); err != nil {
			if ctx.Err() != nil {
				return Sample{}, ctx.Err()
			}
			Log.WithFields(logrus.Fields{
				"task_id": taskID,
				"error":   err,
			}).Warn("video generation failed, sample kept without video")
		} else {
			s.Video = w.Rel(videoPath)
		}
	}

	Log.WithFields(logrus.Fields{
		"task_id":       taskID,
		"difficulty":    s.Difficulty,
		"optimal_moves": s.OptimalMoves,
	}).Debug("sample built")

	return s, nil
}

func (b *Builder) renderVideo(ctx context.Context, p *blocks.Puzzle, path string) error {
	frames, err := b.animator.Frames(p)
	if err != nil {
		return err
	}
	return b.encoder.Encode(ctx, frames, path)
}
