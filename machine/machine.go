package machine

import (
	"io"
	"log"
)

// Machine is the execution state for one run. Program and Jumps are fixed
// for the machine's lifetime; Tape, Cursor, and Pc mutate as it steps.
// Machines share nothing, so independent runs can coexist.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Program Program   // Instruction sequence under execution.
	Jumps   Jumps     // Loop marker partner offsets.
	Output  io.Writer // Sink for OP_PUT bytes.

	Tape   Tape // Machine memory.
	Cursor int  // Current tape position.
	Pc     int  // Current program offset.

	Steps int // Instructions retired since Reset.

	// StepLimit aborts the run with ErrStepLimit after this many steps.
	// Zero means unlimited; non-termination is a property of the language,
	// so a cap is only ever caller-supplied.
	StepLimit int
}

// New creates a machine for a program, resolving its jump table. The
// program must have matched loop markers or New fails.
func New(prog Program, output io.Writer) (m *Machine, err error) {
	jumps, err := ResolveJumps(prog)
	if err != nil {
		return
	}

	m = &Machine{
		Program: prog,
		Jumps:   jumps,
		Output:  output,
	}
	m.Reset()

	return
}

// Reset restores the tape to a single zero cell and rewinds the cursor,
// program counter, and step counter. Output already written stays written.
func (m *Machine) Reset() {
	m.Tape.Reset()
	m.Cursor = 0
	m.Pc = 0
	m.Steps = 0
}

// Step executes the instruction at Pc. It reports done when Pc is outside
// the program, the sole terminal condition. A failed step leaves Pc on the
// offending instruction.
func (m *Machine) Step() (done bool, err error) {
	if m.Pc < 0 || m.Pc >= len(m.Program) {
		done = true
		return
	}

	if m.StepLimit > 0 && m.Steps >= m.StepLimit {
		err = ErrStepLimit
		return
	}

	ins := m.Program[m.Pc]

	if m.Verbose {
		log.Printf("%04d: %v cursor=%d cell=%d", m.Pc, ins, m.Cursor, m.Tape.Get(m.Cursor))
	}

	// A taken jump lands one past the partner marker.
	next := m.Pc + 1

	switch ins {
	case OP_RIGHT:
		m.Cursor++
		m.Tape.Grow(m.Cursor)
	case OP_LEFT:
		if m.Cursor == 0 {
			err = ErrTapeUnderflow
			return
		}
		m.Cursor--
	case OP_INCR:
		m.Tape.Incr(m.Cursor)
	case OP_DECR:
		m.Tape.Decr(m.Cursor)
	case OP_LOOP:
		if m.Tape.Get(m.Cursor) == 0 {
			var target int
			target, err = m.jump()
			if err != nil {
				return
			}
			next = target + 1
		}
	case OP_END:
		if m.Tape.Get(m.Cursor) != 0 {
			var target int
			target, err = m.jump()
			if err != nil {
				return
			}
			next = target + 1
		}
	case OP_PUT:
		_, err = m.Output.Write([]byte{m.Tape.Get(m.Cursor)})
		if err != nil {
			return
		}
	default:
		err = ErrInstruction(ins)
		return
	}

	m.Pc = next
	m.Steps++

	return
}

// Run steps the machine until it halts or fails.
func (m *Machine) Run() (err error) {
	for done := false; !done; {
		done, err = m.Step()
		if err != nil {
			return
		}
	}

	return
}

// jump looks up the partner offset for the loop marker at Pc.
func (m *Machine) jump() (target int, err error) {
	target, ok := m.Jumps[m.Pc]
	if !ok {
		err = ErrJumpMiss(m.Pc)
	}

	return
}
