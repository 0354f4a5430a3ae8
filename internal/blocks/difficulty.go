package blocks

import "fmt"

// Difficulty grades a puzzle by its optimal move count. Downstream prompt
// selection keys off the lowercase names, so they are part of the contract.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// MarshalText makes metadata rows carry "easy"/"medium"/"hard" rather than
// bare ints.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Classify maps an optimal move count to a difficulty: 1-3 easy, 4-6
// medium, 7+ hard.
func Classify(optimalMoves int) Difficulty {
	switch {
	case optimalMoves <= 3:
		return Easy
	case optimalMoves <= 6:
		return Medium
	default:
		return Hard
	}
}
