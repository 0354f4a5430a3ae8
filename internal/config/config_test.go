package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocksworld/stackgen/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stackgen.yaml")
	data := []byte(`
dataset:
  num_samples: 50
puzzle:
  num_stacks: 2
video:
  enabled: false
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.Dataset.NumSamples)
	assert.Equal(t, 2, cfg.Puzzle.NumStacks)
	assert.False(t, cfg.Video.Enabled)

	// untouched keys stay at their defaults
	assert.Equal(t, "construction_stack", cfg.Dataset.Domain)
	assert.Equal(t, 3, cfg.Puzzle.MinBlocks)
	assert.Equal(t, 15, cfg.Video.FPS)
	assert.Len(t, cfg.Render.Colors, 6)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nowhere.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"too many stacks", func(c *config.Config) { c.Puzzle.NumStacks = 4 }},
		{"one stack", func(c *config.Config) { c.Puzzle.NumStacks = 1 }},
		{"min above max", func(c *config.Config) { c.Puzzle.MinBlocks = 5; c.Puzzle.MaxBlocks = 3 }},
		{"zero samples", func(c *config.Config) { c.Dataset.NumSamples = 0 }},
		{"empty output dir", func(c *config.Config) { c.Dataset.OutputDir = "" }},
		{"bad video format", func(c *config.Config) { c.Video.Format = "webm" }},
		{"bad hex color", func(c *config.Config) { c.Render.Colors[0] = "red" }},
		{"palette name mismatch", func(c *config.Config) {
			c.Render.ColorNames = c.Render.ColorNames[:4]
		}},
		{"palette smaller than max blocks", func(c *config.Config) {
			c.Render.Colors = c.Render.Colors[:3]
			c.Render.ColorNames = c.Render.ColorNames[:3]
			c.Puzzle.MaxBlocks = 5
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := config.Default()
			test.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSeedOptional(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, cfg.Dataset.Seed)

	seed := int64(42)
	cfg.Dataset.Seed = &seed
	assert.NoError(t, cfg.Validate())
}
