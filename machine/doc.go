// Package machine implements the Hand virtual machine.
//
// A Machine steps an immutable Program against a forward-growing byte Tape.
// Control flow is the two loop markers, resolved ahead of execution into a
// bidirectional Jumps table by ResolveJumps. The machine halts when the
// program counter leaves the program; there is no halt instruction.
package machine
