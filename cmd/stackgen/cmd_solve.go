package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/blocksworld/stackgen/internal/blocks"
)

func runSolve(cmd *cobra.Command, args []string) error {
	initial, err := blocks.ParseState(args[0])
	if err != nil {
		return fmt.Errorf("initial state: %w", err)
	}
	target, err := blocks.ParseState(args[1])
	if err != nil {
		return fmt.Errorf("target state: %w", err)
	}

	if len(initial) != len(target) {
		return fmt.Errorf("states have %d and %d stacks, want the same number", len(initial), len(target))
	}
	if !slices.Equal(initial.Blocks(), target.Blocks()) {
		return fmt.Errorf("states do not contain the same blocks")
	}

	out := cmd.OutOrStdout()

	moves, ok := blocks.Solve(initial, target, maxMoves)
	if !ok {
		fmt.Fprintf(out, "no solution within %d moves\n", maxMoves)
		return nil
	}
	if len(moves) == 0 {
		fmt.Fprintln(out, "already solved")
		return nil
	}

	fmt.Fprintf(out, "optimal: %d moves\n", len(moves))
	state := initial
	for i, m := range moves {
		if state, err = state.Apply(m); err != nil {
			return err
		}
		fmt.Fprintf(out, "%2d. %s  %s\n", i+1, m, state.Key())
	}
	return nil
}
