package blocks

// Puzzle is one generated restacking task: rearrange Initial into Target.
// Solution is a shortest legal move sequence between the two (OptimalMoves
// is its length). Puzzles are immutable once generated; rendering and
// animation only read them.
type Puzzle struct {
	Initial      State
	Target       State
	Solution     []Move
	OptimalMoves int
	Difficulty   Difficulty
	Blocks       []Block
	NumStacks    int
}

// States replays the solution and returns every intermediate state, one per
// move. The last entry equals Target.
func (p *Puzzle) States() ([]State, error) {
	return Replay(p.Initial, p.Solution)
}
