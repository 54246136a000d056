package machine

// Instruction is one of the seven Hand operations. Instructions carry no
// operands.
type Instruction int

const (
	OP_RIGHT = Instruction(0) // right: move the cursor to the next cell
	OP_LEFT  = Instruction(1) // left: move the cursor to the previous cell
	OP_INCR  = Instruction(2) // incr: increment the current cell, mod 256
	OP_DECR  = Instruction(3) // decr: decrement the current cell, mod 256
	OP_LOOP  = Instruction(4) // loop: if the current cell is 0, jump past the matching end
	OP_END   = Instruction(5) // end: if the current cell is not 0, jump past the matching loop
	OP_PUT   = Instruction(6) // put: emit the current cell to the output sink
)

var _instruction_names = map[Instruction]string{
	OP_RIGHT: "right",
	OP_LEFT:  "left",
	OP_INCR:  "incr",
	OP_DECR:  "decr",
	OP_LOOP:  "loop",
	OP_END:   "end",
	OP_PUT:   "put",
}

// String returns the mnemonic for the instruction.
func (ins Instruction) String() (name string) {
	name, ok := _instruction_names[ins]
	if !ok {
		name = "invalid"
	}

	return
}

// Program is an ordered, indexable instruction sequence. It is produced
// once by the lexer and read-only afterward.
type Program []Instruction
