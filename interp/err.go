package interp

import (
	"github.com/handlang/hand/translate"
)

var f = translate.From

// ErrRuntime indicates the program offset of a runtime error.
type ErrRuntime struct {
	Offset int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("offset %d %v", err.Offset, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
