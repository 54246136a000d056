// Package lexer recognizes Hand source text and produces machine programs.
//
// A Dialect is a seven-symbol alphabet. The stock alphabet is the emoji
// Hand dialect; Classic uses the traditional ASCII symbols. Custom
// alphabets load from YAML.
package lexer

import (
	"io"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/handlang/hand/machine"
)

// Dialect names an alphabet and maps each symbol rune to its instruction.
type Dialect struct {
	Name    string
	Symbols map[rune]machine.Instruction
}

// Hand is the stock emoji alphabet.
var Hand = Dialect{
	Name: "hand",
	Symbols: map[rune]machine.Instruction{
		'👉': machine.OP_RIGHT,
		'👈': machine.OP_LEFT,
		'👆': machine.OP_INCR,
		'👇': machine.OP_DECR,
		'🤜': machine.OP_LOOP,
		'🤛': machine.OP_END,
		'👊': machine.OP_PUT,
	},
}

// Classic is the traditional ASCII alphabet.
var Classic = Dialect{
	Name: "classic",
	Symbols: map[rune]machine.Instruction{
		'>': machine.OP_RIGHT,
		'<': machine.OP_LEFT,
		'+': machine.OP_INCR,
		'-': machine.OP_DECR,
		'[': machine.OP_LOOP,
		']': machine.OP_END,
		'.': machine.OP_PUT,
	},
}

// The instruction names accepted in dialect files.
var insMap = map[string]machine.Instruction{
	"right": machine.OP_RIGHT,
	"left":  machine.OP_LEFT,
	"incr":  machine.OP_INCR,
	"decr":  machine.OP_DECR,
	"loop":  machine.OP_LOOP,
	"end":   machine.OP_END,
	"put":   machine.OP_PUT,
}

// dialectFile is the YAML shape of a custom dialect:
//
//	name: classic
//	symbols:
//	  right: ">"
//	  left: "<"
//	  incr: "+"
//	  decr: "-"
//	  loop: "["
//	  end: "]"
//	  put: "."
type dialectFile struct {
	Name    string            `yaml:"name"`
	Symbols map[string]string `yaml:"symbols"`
}

// LoadDialect reads a custom dialect from YAML. Every instruction must be
// assigned exactly one distinct, non-whitespace symbol rune.
func LoadDialect(r io.Reader) (d Dialect, err error) {
	var file dialectFile
	err = yaml.NewDecoder(r).Decode(&file)
	if err != nil {
		return
	}

	d.Name = file.Name
	d.Symbols = map[rune]machine.Instruction{}

	for name, symbol := range file.Symbols {
		ins, ok := insMap[name]
		if !ok {
			err = ErrDialectInstruction(name)
			return
		}

		runes := []rune(symbol)
		if len(runes) != 1 {
			err = ErrDialectSymbol(symbol)
			return
		}
		if unicode.IsSpace(runes[0]) {
			err = ErrDialectSymbol(symbol)
			return
		}
		if _, ok := d.Symbols[runes[0]]; ok {
			err = ErrDialectDuplicate(symbol)
			return
		}

		d.Symbols[runes[0]] = ins
	}

	if len(d.Symbols) != len(insMap) {
		err = ErrDialectIncomplete
		return
	}

	return
}

// symbolOf returns the dialect's rune for an instruction.
func (d Dialect) symbolOf(ins machine.Instruction) (symbol rune) {
	for r, i := range d.Symbols {
		if i == ins {
			return r
		}
	}

	return unicode.ReplacementChar
}

// Format renders a program back into the dialect's symbols.
func (d Dialect) Format(prog machine.Program) (text string) {
	runes := make([]rune, 0, len(prog))
	for _, ins := range prog {
		runes = append(runes, d.symbolOf(ins))
	}

	return string(runes)
}
