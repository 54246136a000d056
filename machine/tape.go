package machine

// Tape is the machine memory: 8-bit cells, starting as a single zero cell.
// The tape grows to the right on demand and never grows to the left.
type Tape struct {
	Cell []byte
}

// Reset restores the tape to a single zero cell.
func (t *Tape) Reset() {
	t.Cell = append(t.Cell[:0], 0)
}

// Len returns the current cell count.
func (t *Tape) Len() int {
	return len(t.Cell)
}

// Get returns the value of the cell at the cursor.
func (t *Tape) Get(cursor int) byte {
	return t.Cell[cursor]
}

// Incr increments the cell at the cursor, wrapping 255 to 0.
func (t *Tape) Incr(cursor int) {
	t.Cell[cursor]++
}

// Decr decrements the cell at the cursor, wrapping 0 to 255.
func (t *Tape) Decr(cursor int) {
	t.Cell[cursor]--
}

// Grow appends zero cells until cursor is a valid index.
func (t *Tape) Grow(cursor int) {
	for cursor >= len(t.Cell) {
		t.Cell = append(t.Cell, 0)
	}
}
