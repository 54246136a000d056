// Package interp ties the lexer and the machine into a one-call interpreter.
package interp

import (
	"io"
	"os"
	"strings"

	"github.com/handlang/hand/lexer"
	"github.com/handlang/hand/machine"
)

// Interp runs Hand programs. Configure fields before Load; each Load builds
// a fresh machine, so one Interp can run programs back to back.
type Interp struct {
	Verbose bool          // If set, enables verbose logging.
	Dialect lexer.Dialect // Alphabet used to lex source text.
	Output  io.Writer     // Output sink. Defaults to os.Stdout.

	// StepLimit caps the run, for callers that want a bound on
	// non-terminating programs. Zero means unlimited.
	StepLimit int

	Machine *machine.Machine // Machine for the loaded program. Set by Load.
}

// New creates an interpreter for the stock Hand dialect.
func New() (in *Interp) {
	return &Interp{
		Dialect: lexer.Hand,
	}
}

// Load lexes source text and builds the machine for it. A malformed
// program (bad symbol, unmatched loop marker) fails here and is never
// partially executed.
func (in *Interp) Load(r io.Reader) (err error) {
	prog, err := in.Dialect.Lex(r)
	if err != nil {
		return
	}

	output := in.Output
	if output == nil {
		output = os.Stdout
	}

	m, err := machine.New(prog, output)
	if err != nil {
		return
	}

	m.Verbose = in.Verbose
	m.StepLimit = in.StepLimit
	in.Machine = m

	return
}

// LoadString lexes an in-memory source string.
func (in *Interp) LoadString(source string) (err error) {
	return in.Load(strings.NewReader(source))
}

// Run steps the loaded machine to completion. On failure the error carries
// the offset of the offending instruction; output already written to the
// sink stays written.
func (in *Interp) Run() (err error) {
	m := in.Machine

	for done := false; !done; {
		done, err = m.Step()
		if err != nil {
			err = &ErrRuntime{Offset: m.Pc, Err: err}
			return
		}
	}

	return
}

// RunString loads and runs an in-memory source string.
func (in *Interp) RunString(source string) (err error) {
	err = in.LoadString(source)
	if err != nil {
		return
	}

	return in.Run()
}

// Steps returns the instructions retired by the last run.
func (in *Interp) Steps() int {
	if in.Machine == nil {
		return 0
	}

	return in.Machine.Steps
}
