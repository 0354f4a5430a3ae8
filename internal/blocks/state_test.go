package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocksworld/stackgen/internal/blocks"
)

func mustParse(t *testing.T, text string) blocks.State {
	t.Helper()
	s, err := blocks.ParseState(text)
	require.NoError(t, err)
	return s
}

func TestKeyRoundTrip(t *testing.T) {
	keys := []string{
		"",
		"|",
		"||",
		"012||",
		"01|2|",
		"0|1|2",
		"|3210",
		"543210||",
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			s, err := blocks.ParseState(key)
			require.NoError(t, err)
			assert.Equal(t, key, s.Key())
		})
	}
}

func TestParseStateRejectsNonDigits(t *testing.T) {
	for _, text := range []string{"ab|", "0 1|", "01|-"} {
		_, err := blocks.ParseState(text)
		assert.Error(t, err, text)
	}
}

func TestEqualStackOrderMatters(t *testing.T) {
	a := mustParse(t, "01|2|")
	b := mustParse(t, "2|01|")
	c := mustParse(t, "01|2|")

	assert.False(t, a.Equal(b), "stack 0 and stack 1 are not interchangeable")
	assert.True(t, a.Equal(c))
	assert.False(t, a.Equal(mustParse(t, "01|2")), "stack counts differ")
}

func TestCloneIsIndependent(t *testing.T) {
	a := mustParse(t, "01|2|")
	b := a.Clone()
	b[0][0] = 9

	assert.Equal(t, "01|2|", a.Key())
	assert.Equal(t, "91|2|", b.Key())
}

func TestBlocksMultiset(t *testing.T) {
	s := mustParse(t, "31|0|2")
	assert.Equal(t, []blocks.Block{0, 1, 2, 3}, s.Blocks())
	assert.Equal(t, 4, s.NumBlocks())

	empty := blocks.NewState(3)
	assert.Empty(t, empty.Blocks())
	assert.Equal(t, 0, empty.NumBlocks())
}

func TestStackTop(t *testing.T) {
	s := mustParse(t, "01|")

	top, ok := s[0].Top()
	require.True(t, ok)
	assert.Equal(t, blocks.Block(1), top)

	_, ok = s[1].Top()
	assert.False(t, ok)
	assert.True(t, s[1].Empty())
}
