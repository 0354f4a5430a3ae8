package blocks

// DefaultMaxMoves bounds the search depth. Within the configured puzzle
// sizes (up to 6 blocks over 3 stacks) every solvable pair resolves well
// under this ceiling.
const DefaultMaxMoves = 20

type searchNode struct {
	state State
	moves []Move
}

// Solve finds a shortest sequence of legal moves transforming initial into
// target by breadth-first search. It expands children in [State.LegalMoves]
// order, which fixes the tie-break between equally short solutions. Nodes
// already maxMoves deep are not expanded, so the longest solution Solve can
// return has exactly maxMoves moves.
//
// Equal states yield an empty sequence and found == true. A pair with no
// solution inside the ceiling yields nil, false: absence, not an error. The
// generator treats it as a cue to re-deal.
func Solve(initial, target State, maxMoves int) (solution []Move, found bool) {
	if initial.Equal(target) {
		return []Move{}, true
	}

	var (
		queue   = []searchNode{{state: initial}}
		visited = map[string]struct{}{initial.Key(): {}}
	)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.moves) >= maxMoves {
			continue
		}

		for _, m := range cur.state.LegalMoves() {
			next := cur.state.mustApply(m)

			if next.Equal(target) {
				// BFS explores strictly increasing depth, so the first
				// hit is a shortest solution.
				return appendMove(cur.moves, m), true
			}

			key := next.Key()
			if _, seen := visited[key]; seen {
				continue
			}
			visited[key] = struct{}{}
			queue = append(queue, searchNode{state: next, moves: appendMove(cur.moves, m)})
		}
	}

	return nil, false
}

// appendMove copies before appending; sibling nodes share the parent's move
// slice and a bare append would let one branch scribble over another.
func appendMove(moves []Move, m Move) []Move {
	out := make([]Move, len(moves)+1)
	copy(out, moves)
	out[len(moves)] = m
	return out
}
