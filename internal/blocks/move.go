package blocks

import "fmt"

// Move transfers the top block of stack From onto stack To.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}

// InvalidMoveError reports a move that violates the stacking rules. The
// solver and generator only ever produce moves from [State.LegalMoves], so
// seeing one of these outside hand-built input is a programming defect.
type InvalidMoveError struct {
	Move   Move
	Reason string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %s: %s", e.Move, e.Reason)
}

// Apply returns a new state with the move played, leaving the receiver
// untouched.
func (s State) Apply(m Move) (State, error) {
	if m.From == m.To {
		return nil, &InvalidMoveError{m, "source and destination are the same stack"}
	}
	if m.From < 0 || m.From >= len(s) || m.To < 0 || m.To >= len(s) {
		return nil, &InvalidMoveError{m, fmt.Sprintf("stack index out of range 0..%d", len(s)-1)}
	}
	if s[m.From].Empty() {
		return nil, &InvalidMoveError{m, "source stack is empty"}
	}
	next := s.Clone()
	from := next[m.From]
	block := from[len(from)-1]
	next[m.From] = from[:len(from)-1]
	next[m.To] = append(next[m.To], block)
	return next, nil
}

// LegalMoves enumerates every playable move in canonical order: ascending
// From, then ascending To. BFS expands children in this order, so it decides
// which of several equally short solutions Solve returns.
func (s State) LegalMoves() []Move {
	moves := make([]Move, 0, len(s)*(len(s)-1))
	for from := range s {
		if s[from].Empty() {
			continue
		}
		for to := range s {
			if to == from {
				continue
			}
			moves = append(moves, Move{from, to})
		}
	}
	return moves
}

// Replay applies moves in order and returns the state after each one. The
// returned slice has len(moves) entries; Replay(initial, nil) is empty, not
// an error.
func Replay(initial State, moves []Move) ([]State, error) {
	states := make([]State, 0, len(moves))
	cur := initial
	for i, m := range moves {
		next, err := cur.Apply(m)
		if err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i, err)
		}
		states = append(states, next)
		cur = next
	}
	return states, nil
}

// mustApply is Apply for moves that came out of LegalMoves; a failure here
// cannot happen in a correct program.
func (s State) mustApply(m Move) State {
	next, err := s.Apply(m)
	if err != nil {
		Log.WithField("move", m.String()).Panic(err)
	}
	return next
}
