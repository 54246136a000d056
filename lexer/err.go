package lexer

import (
	"errors"

	"github.com/handlang/hand/translate"
)

var f = translate.From

var (
	// Dialect file errors
	ErrDialectIncomplete = errors.New(f("dialect does not assign all seven symbols"))
)

// ErrSymbol is a rune in the source that is neither a dialect symbol nor
// whitespace.
type ErrSymbol struct {
	Offset int
	Symbol rune
}

func (err ErrSymbol) Error() string {
	return f("offset %d: unrecognized symbol %q", err.Offset, err.Symbol)
}

// ErrDialectInstruction is an unknown instruction name in a dialect file.
type ErrDialectInstruction string

func (err ErrDialectInstruction) Error() string {
	return f("'%v' is not an instruction", string(err))
}

// ErrDialectSymbol is a dialect file symbol that is not one non-whitespace rune.
type ErrDialectSymbol string

func (err ErrDialectSymbol) Error() string {
	return f("'%v' is not a usable symbol", string(err))
}

// ErrDialectDuplicate is a symbol assigned to more than one instruction.
type ErrDialectDuplicate string

func (err ErrDialectDuplicate) Error() string {
	return f("symbol '%v' assigned twice", string(err))
}
