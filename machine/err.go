package machine

import (
	"errors"

	"github.com/handlang/hand/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrTapeUnderflow = errors.New(f("tape underflow"))
	ErrStepLimit     = errors.New(f("step limit reached"))
)

// ErrUnmatchedLoop is the offset of a loop start with no matching end.
type ErrUnmatchedLoop int

func (err ErrUnmatchedLoop) Error() string {
	return f("loop start at offset %d has no matching end", int(err))
}

// ErrUnmatchedEnd is the offset of a loop end with no pending start.
type ErrUnmatchedEnd int

func (err ErrUnmatchedEnd) Error() string {
	return f("loop end at offset %d has no matching start", int(err))
}

// ErrJumpMiss is a loop marker offset absent from the jump table. It cannot
// occur for a program that passed ResolveJumps; it indicates the machine
// was handed an inconsistent program/jumps pair.
type ErrJumpMiss int

func (err ErrJumpMiss) Error() string {
	return f("no jump target for loop marker at offset %d", int(err))
}

// ErrInstruction is an instruction outside the seven known operations.
type ErrInstruction Instruction

func (err ErrInstruction) Error() string {
	return f("bad instruction %d", int(err))
}
