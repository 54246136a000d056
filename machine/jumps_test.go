package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveJumps(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program Program
		jumps   Jumps
	}){
		{"empty", Program{}, Jumps{}},
		{"no_loops", Program{OP_INCR, OP_PUT}, Jumps{}},
		{"pair", Program{OP_LOOP, OP_DECR, OP_END}, Jumps{0: 2, 2: 0}},
		{"adjacent_markers", Program{OP_LOOP, OP_END}, Jumps{0: 1, 1: 0}},
		{"adjacent_loops", Program{OP_LOOP, OP_END, OP_LOOP, OP_END},
			Jumps{0: 1, 1: 0, 2: 3, 3: 2}},
		{"nested", Program{OP_LOOP, OP_LOOP, OP_DECR, OP_END, OP_END},
			Jumps{1: 3, 3: 1, 0: 4, 4: 0}},
		{"nested_adjacent", Program{OP_LOOP, OP_LOOP, OP_END, OP_END},
			Jumps{1: 2, 2: 1, 0: 3, 3: 0}},
	}

	for _, entry := range table {
		jumps, err := ResolveJumps(entry.program)
		assert.NoError(err, entry.name)
		assert.Equal(entry.jumps, jumps, entry.name)

		// Every pair is symmetric, and every entry sits on a loop marker.
		for start, end := range jumps {
			assert.Equal(start, jumps[end], entry.name)
			ins := entry.program[start]
			assert.True(ins == OP_LOOP || ins == OP_END, entry.name)
		}

		// Resolution is idempotent.
		again, err := ResolveJumps(entry.program)
		assert.NoError(err, entry.name)
		assert.Equal(jumps, again, entry.name)
	}
}

func TestResolveJumps_Unmatched(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program Program
		err     error
	}){
		{"lone_end", Program{OP_END}, ErrUnmatchedEnd(0)},
		{"end_after_pair", Program{OP_LOOP, OP_END, OP_END}, ErrUnmatchedEnd(2)},
		{"lone_start", Program{OP_LOOP}, ErrUnmatchedLoop(0)},
		{"nested_missing_end", Program{OP_LOOP, OP_LOOP, OP_END}, ErrUnmatchedLoop(0)},
		{"trailing_start", Program{OP_LOOP, OP_END, OP_INCR, OP_LOOP}, ErrUnmatchedLoop(3)},
	}

	for _, entry := range table {
		jumps, err := ResolveJumps(entry.program)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Nil(jumps, entry.name)
	}
}
