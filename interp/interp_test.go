package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handlang/hand/lexer"
	"github.com/handlang/hand/machine"
)

const (
	helloHand = "👇🤜👇👇👇👇👇👇👇👉👆👈🤛👉👇👊👇🤜👇👉👆👆👆👆👆👈🤛👉👆👆👊👆👆👆👆👆👆👆👊👊👆👆👆👊"

	helloClassic = "-[------->+<]>-.-[->+++++<]>++.+++++++..+++."

	helloWorldHand = "👉👆👆👆👆👆👆👆👆🤜👇👈👆👆👆👆👆👆👆👆👆👉🤛👈👊👉👉👆👉👇🤜👆🤛👆👆👉👆👆👉👆👆👆🤜👉🤜👇👉👆👆👆👈👈👆👆👆👉🤛👈👈🤛👉👇👇👇👇👇👊👉👇👉👆👆👆👊👊👆👆👆👊👉👇👊👈👈👆🤜👉🤜👆👉👆🤛👉👉🤛👈👇👇👇👇👇👇👇👇👇👇👇👇👇👇👊👉👉👊👆👆👆👊👇👇👇👇👇👇👊👇👇👇👇👇👇👇👇👊👉👆👊👉👆👊"
)

func doRunString(t *testing.T, in *Interp, source string) (output []byte) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	in.Output = buffer

	err := in.RunString(source)
	assert.NoError(err)

	output = buffer.Bytes()
	return
}

func TestRun_Hello(t *testing.T) {
	assert := assert.New(t)

	output := doRunString(t, New(), helloHand)
	assert.Equal("Hello", string(output))
}

func TestRun_HelloWorld(t *testing.T) {
	assert := assert.New(t)

	output := doRunString(t, New(), helloWorldHand)
	assert.Equal("Hello World!\n", string(output))
}

func TestRun_Classic(t *testing.T) {
	assert := assert.New(t)

	in := New()
	in.Dialect = lexer.Classic

	output := doRunString(t, in, helloClassic)
	assert.Equal("Hello", string(output))
}

func TestRun_Reader(t *testing.T) {
	assert := assert.New(t)

	in := New()
	buffer := &bytes.Buffer{}
	in.Output = buffer

	err := in.Load(strings.NewReader(helloHand))
	assert.NoError(err)

	err = in.Run()
	assert.NoError(err)
	assert.Equal("Hello", buffer.String())
	assert.NotEqual(0, in.Steps())
}

func TestLoad_BadSymbol(t *testing.T) {
	assert := assert.New(t)

	in := New()
	err := in.LoadString("👆 nope")
	var bad lexer.ErrSymbol
	assert.ErrorAs(err, &bad)
	assert.Nil(in.Machine)
}

func TestLoad_Unmatched(t *testing.T) {
	assert := assert.New(t)

	in := New()

	// An unmatched loop end is rejected at load, never executed.
	err := in.LoadString("🤛")
	assert.ErrorIs(err, machine.ErrUnmatchedEnd(0))
	assert.Nil(in.Machine)

	err = in.LoadString("🤜👇")
	assert.ErrorIs(err, machine.ErrUnmatchedLoop(0))
	assert.Nil(in.Machine)
}

func TestRun_Underflow(t *testing.T) {
	assert := assert.New(t)

	in := New()
	buffer := &bytes.Buffer{}
	in.Output = buffer

	// The prefix emitted before the failure stays written.
	err := in.RunString("👆👊👈")
	assert.ErrorIs(err, machine.ErrTapeUnderflow)

	var at *ErrRuntime
	assert.ErrorAs(err, &at)
	assert.Equal(2, at.Offset)

	assert.Equal([]byte{1}, buffer.Bytes())
}

func TestRun_StepLimit(t *testing.T) {
	assert := assert.New(t)

	in := New()
	in.Output = &bytes.Buffer{}
	in.StepLimit = 1000

	err := in.RunString("👆🤜🤛")
	assert.ErrorIs(err, machine.ErrStepLimit)
	assert.Equal(1000, in.Steps())
}

func TestRun_Independent(t *testing.T) {
	assert := assert.New(t)

	// Runs share nothing; a fresh load starts from a zero tape.
	in := New()

	first := doRunString(t, in, "👆👆👊")
	assert.Equal([]byte{2}, first)

	second := doRunString(t, in, "👊")
	assert.Equal([]byte{0}, second)
}
