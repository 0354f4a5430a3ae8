package blocks

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackPuzzleTwoStacks(t *testing.T) {
	p := fallbackPuzzle(4, 2, DefaultMaxMoves)

	assert.Equal(t, "0123|", p.Initial.Key())
	assert.Equal(t, "|3210", p.Target.Key())
	assert.Equal(t, 4, p.OptimalMoves)
	assert.Equal(t, Medium, p.Difficulty)

	states, err := p.States()
	require.NoError(t, err)
	assert.True(t, states[len(states)-1].Equal(p.Target))
}

func TestFallbackPuzzleThreeStacks(t *testing.T) {
	p := fallbackPuzzle(3, 3, DefaultMaxMoves)

	assert.Equal(t, "012||", p.Initial.Key())
	assert.Equal(t, "||210", p.Target.Key())
	assert.Equal(t, 3, p.OptimalMoves)
	assert.Equal(t, Easy, p.Difficulty)
}

func TestFallbackPuzzleTinyCeiling(t *testing.T) {
	// A ceiling below the block count defeats the solver but not the
	// construction itself; the relocation solution gets built directly.
	p := fallbackPuzzle(5, 2, 2)

	require.Len(t, p.Solution, 5)
	for _, m := range p.Solution {
		assert.Equal(t, Move{From: 0, To: 1}, m)
	}

	states, err := p.States()
	require.NoError(t, err)
	assert.True(t, states[len(states)-1].Equal(p.Target))
}

func TestRandomStateConservesBlocks(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	bs := []Block{0, 2, 4, 5}

	for range 50 {
		s := randomState(bs, 3, r)
		assert.Len(t, s, 3)
		assert.Equal(t, []Block{0, 2, 4, 5}, s.Blocks())
	}
}

func TestSampleBlocksDistinct(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 17))

	for range 50 {
		bs := sampleBlocks(6, 4, r)
		require.Len(t, bs, 4)
		seen := map[Block]bool{}
		for _, b := range bs {
			assert.False(t, seen[b])
			assert.Less(t, int(b), 6)
			seen[b] = true
		}
	}
}

func TestParamsWithDefaults(t *testing.T) {
	p := Params{}.withDefaults()

	assert.Equal(t, 3, p.NumStacks)
	assert.Equal(t, 3, p.MinBlocks)
	assert.Equal(t, 5, p.MaxBlocks)
	assert.Equal(t, 6, p.PaletteSize)
	assert.Equal(t, DefaultMaxMoves, p.MaxMoves)
	assert.Equal(t, 100, p.MaxAttempts)

	squeezed := Params{MinBlocks: 4, MaxBlocks: 2, PaletteSize: 3}.withDefaults()
	assert.Equal(t, 4, squeezed.MaxBlocks, "max clamps up to min")
	assert.Equal(t, 4, squeezed.PaletteSize, "palette grows to cover the largest deal")
}
