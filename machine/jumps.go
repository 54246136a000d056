package machine

// Jumps maps a loop marker offset to its partner's offset. Entries exist
// only at OP_LOOP and OP_END offsets and always come in symmetric pairs.
type Jumps map[int]int

// ResolveJumps scans the program and pairs every OP_LOOP with its matching
// OP_END. Matching follows stack discipline, so nesting is proper by
// construction. Unmatched markers reject the whole program; a program that
// resolves can never miss a jump lookup at runtime.
func ResolveJumps(prog Program) (jumps Jumps, err error) {
	jumps = Jumps{}

	var starts []int
	for offset, ins := range prog {
		switch ins {
		case OP_LOOP:
			starts = append(starts, offset)
		case OP_END:
			if len(starts) == 0 {
				err = ErrUnmatchedEnd(offset)
				jumps = nil
				return
			}
			start := starts[len(starts)-1]
			starts = starts[:len(starts)-1]
			jumps[start] = offset
			jumps[offset] = start
		}
	}

	if len(starts) != 0 {
		err = ErrUnmatchedLoop(starts[len(starts)-1])
		jumps = nil
		return
	}

	return
}
