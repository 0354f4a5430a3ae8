// Package blocks implements the block-restacking puzzle: colored blocks
// distributed over a small number of stacks, rearranged one top block at a
// time (Tower of Hanoi rules), with a BFS solver that guarantees optimal
// solutions.
package blocks

import (
	"fmt"
	"slices"
	"strings"
)

// Block identifies one block by its palette index. Values stay in 0..9 so
// that states have a compact single-digit text form.
type Block int

// Stack holds blocks bottom to top. Only the top block is accessible.
type Stack []Block

func (s Stack) Empty() bool {
	return len(s) == 0
}

// Top returns the topmost block, ok reports whether the stack is non-empty.
func (s Stack) Top() (Block, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// State is a snapshot of every stack at one instant. Stack order matters:
// two states are equal only if every corresponding stack matches. All
// mutation happens copy-on-write via [State.Apply], so a State can sit in a
// visited set or a queue without being changed behind its back.
type State []Stack

// NewState returns a state of numStacks empty stacks.
func NewState(numStacks int) State {
	return make(State, numStacks)
}

func (s State) Clone() State {
	c := make(State, len(s))
	for i, st := range s {
		c[i] = slices.Clone(st)
	}
	return c
}

func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !slices.Equal(s[i], other[i]) {
			return false
		}
	}
	return true
}

// NumBlocks counts blocks across all stacks.
func (s State) NumBlocks() (n int) {
	for _, st := range s {
		n += len(st)
	}
	return n
}

// Blocks returns every block in the state in ascending order, duplicates
// included. Two states hold the same block multiset iff their Blocks are
// equal.
func (s State) Blocks() []Block {
	bs := make([]Block, 0, s.NumBlocks())
	for _, st := range s {
		bs = append(bs, st...)
	}
	slices.Sort(bs)
	return bs
}

// Key renders the state in its canonical text form: one digit per block,
// bottom to top, stacks separated by '|'. "01|2|" is three stacks, the first
// holding blocks 0 and 1 (1 on top), the second holding 2, the third empty.
// The key doubles as the visited-set hash during search.
func (s State) Key() string {
	var b strings.Builder
	b.Grow(s.NumBlocks() + len(s))
	for i, st := range s {
		if i > 0 {
			b.WriteByte('|')
		}
		for _, bl := range st {
			b.WriteByte(byte('0') + byte(bl))
		}
	}
	return b.String()
}

func (s State) String() string {
	return s.Key()
}

// ParseState is the inverse of [State.Key]. Blocks must be single digits;
// anything else is rejected.
func ParseState(text string) (State, error) {
	parts := strings.Split(text, "|")
	s := make(State, len(parts))
	for i, part := range parts {
		st := make(Stack, 0, len(part))
		for _, r := range part {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("bad block %q in state %q", r, text)
			}
			st = append(st, Block(r-'0'))
		}
		s[i] = st
	}
	return s, nil
}
