// Package dataset assembles generated puzzles into task samples and writes
// them to disk: first/final frame PNGs, an optional solution video, and one
// metadata line per sample in a JSONL file.
package dataset

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blocksworld/stackgen/internal/blocks"
)

var Log = logrus.New()

// Sample is one generated task: the puzzle in text form, its prompt, and the
// artifact paths relative to the dataset root.
type Sample struct {
	TaskID       string        `json:"task_id"`
	RunID        string        `json:"run_id"`
	Domain       string        `json:"domain"`
	Prompt       string        `json:"prompt"`
	Difficulty   string        `json:"difficulty"`
	OptimalMoves int           `json:"optimal_moves"`
	NumStacks    int           `json:"num_stacks"`
	NumBlocks    int           `json:"num_blocks"`
	InitialState string        `json:"initial_state"`
	TargetState  string        `json:"target_state"`
	Solution     []blocks.Move `json:"solution"`
	FirstImage   string        `json:"first_image"`
	FinalImage   string        `json:"final_image"`
	Video        string        `json:"video,omitempty"`
}

// TaskID names the sample at the given index, e.g. "construction_stack_000042".
// IDs depend only on domain and index so reruns with the same seed produce
// identical datasets.
func TaskID(domain string, index int) string {
	return fmt.Sprintf("%s_%06d", domain, index)
}
