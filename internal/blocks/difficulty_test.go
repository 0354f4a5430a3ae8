package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blocksworld/stackgen/internal/blocks"
)

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		moves int
		want  blocks.Difficulty
	}{
		{1, blocks.Easy},
		{2, blocks.Easy},
		{3, blocks.Easy},
		{4, blocks.Medium},
		{5, blocks.Medium},
		{6, blocks.Medium},
		{7, blocks.Hard},
		{12, blocks.Hard},
		{20, blocks.Hard},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, blocks.Classify(test.moves), "moves=%d", test.moves)
	}
}

func TestDifficultyString(t *testing.T) {
	assert.Equal(t, "easy", blocks.Easy.String())
	assert.Equal(t, "medium", blocks.Medium.String())
	assert.Equal(t, "hard", blocks.Hard.String())
}

func TestDifficultyMarshalText(t *testing.T) {
	b, err := blocks.Medium.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "medium", string(b))
}
