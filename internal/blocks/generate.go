package blocks

import (
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

// Params bounds puzzle generation. The zero value of any field falls back
// to the defaults below, which match the shipped task configuration.
type Params struct {
	NumStacks   int // stacks per state, 2-3
	MinBlocks   int // fewest blocks per puzzle
	MaxBlocks   int // most blocks per puzzle
	PaletteSize int // colors available to draw block identities from
	MaxMoves    int // solver depth ceiling
	MaxAttempts int // random deals before the deterministic fallback
}

const (
	defaultNumStacks   = 3
	defaultMinBlocks   = 3
	defaultMaxBlocks   = 5
	defaultPaletteSize = 6
	defaultMaxAttempts = 100
)

func (p Params) withDefaults() Params {
	if p.NumStacks == 0 {
		p.NumStacks = defaultNumStacks
	}
	if p.MinBlocks == 0 {
		p.MinBlocks = defaultMinBlocks
	}
	if p.MaxBlocks == 0 {
		p.MaxBlocks = defaultMaxBlocks
	}
	if p.MaxBlocks < p.MinBlocks {
		p.MaxBlocks = p.MinBlocks
	}
	if p.PaletteSize == 0 {
		p.PaletteSize = defaultPaletteSize
	}
	if p.PaletteSize < p.MaxBlocks {
		p.PaletteSize = p.MaxBlocks
	}
	if p.MaxMoves == 0 {
		p.MaxMoves = DefaultMaxMoves
	}
	if p.MaxAttempts == 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	return p
}

// Generate produces a solvable, non-trivial puzzle. It deals random initial
// and target states and asks the solver for a shortest solution, re-dealing
// on equal pairs and on pairs the solver cannot connect within the move
// ceiling. When all MaxAttempts deals fail it degrades to a deterministic
// relocation puzzle instead of erroring: Generate is total, callers never
// see a failure.
func Generate(p Params, r *rand.Rand) *Puzzle {
	p = p.withDefaults()

	numBlocks := p.MinBlocks + r.IntN(p.MaxBlocks-p.MinBlocks+1)
	bs := sampleBlocks(p.PaletteSize, numBlocks, r)

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		initial := randomState(bs, p.NumStacks, r)
		target := randomState(bs, p.NumStacks, r)

		if initial.Equal(target) {
			continue
		}

		solution, ok := Solve(initial, target, p.MaxMoves)
		if !ok {
			continue
		}

		return &Puzzle{
			Initial:      initial,
			Target:       target,
			Solution:     solution,
			OptimalMoves: len(solution),
			Difficulty:   Classify(len(solution)),
			Blocks:       bs,
			NumStacks:    p.NumStacks,
		}
	}

	Log.WithFields(logrus.Fields{
		"attempts":   p.MaxAttempts,
		"num_blocks": numBlocks,
		"num_stacks": p.NumStacks,
	}).Debug("random deals exhausted, using fallback puzzle")

	return fallbackPuzzle(numBlocks, p.NumStacks, p.MaxMoves)
}

// sampleBlocks picks numBlocks distinct palette indices in random order.
func sampleBlocks(paletteSize, numBlocks int, r *rand.Rand) []Block {
	perm := r.Perm(paletteSize)
	bs := make([]Block, numBlocks)
	for i := range bs {
		bs[i] = Block(perm[i])
	}
	return bs
}

// randomState shuffles the blocks and then drops each one onto a uniformly
// random stack, appending on top.
func randomState(bs []Block, numStacks int, r *rand.Rand) State {
	shuffled := slices.Clone(bs)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	s := NewState(numStacks)
	for _, b := range shuffled {
		i := r.IntN(numStacks)
		s[i] = append(s[i], b)
	}
	return s
}

// fallbackPuzzle is the guaranteed-solvable construction used when random
// dealing keeps missing: blocks 0..n-1 piled on the first stack, target is
// the reverse order on the last stack. Relocating one block at a time
// reverses the pile, so the optimal solution is exactly n moves.
func fallbackPuzzle(numBlocks, numStacks, maxMoves int) *Puzzle {
	bs := make([]Block, numBlocks)
	initial := NewState(numStacks)
	target := NewState(numStacks)

	initial[0] = make(Stack, numBlocks)
	target[numStacks-1] = make(Stack, numBlocks)
	for i := range numBlocks {
		bs[i] = Block(i)
		initial[0][i] = Block(i)
		target[numStacks-1][numBlocks-1-i] = Block(i)
	}

	solution, ok := Solve(initial, target, maxMoves)
	if !ok {
		// Only reachable when maxMoves < numBlocks; the relocation
		// solution is still valid, so construct it directly.
		solution = make([]Move, numBlocks)
		for i := range solution {
			solution[i] = Move{From: 0, To: numStacks - 1}
		}
	}

	return &Puzzle{
		Initial:      initial,
		Target:       target,
		Solution:     solution,
		OptimalMoves: len(solution),
		Difficulty:   Classify(len(solution)),
		Blocks:       bs,
		NumStacks:    numStacks,
	}
}
