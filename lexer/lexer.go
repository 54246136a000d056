package lexer

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/handlang/hand/machine"
)

// Lex scans source text into a program. Unicode whitespace between symbols
// is skipped; any other rune outside the dialect rejects the whole program.
// Offsets in errors count runes, not bytes.
func (d Dialect) Lex(r io.Reader) (prog machine.Program, err error) {
	br := bufio.NewReader(r)

	for offset := 0; ; offset++ {
		var symbol rune
		symbol, _, err = br.ReadRune()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		if unicode.IsSpace(symbol) {
			continue
		}

		ins, ok := d.Symbols[symbol]
		if !ok {
			err = ErrSymbol{Offset: offset, Symbol: symbol}
			prog = nil
			return
		}

		prog = append(prog, ins)
	}
}

// LexString scans an in-memory source string.
func (d Dialect) LexString(source string) (machine.Program, error) {
	return d.Lex(strings.NewReader(source))
}
