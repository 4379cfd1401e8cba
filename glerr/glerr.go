// Package glerr checks the OpenGL error queue around driver calls.
//
// OpenGL records errors in a queue that must be drained with glGetError. Errors
// are therefore attributed by clearing the queue, issuing the call, then reading
// the queue again. This is what Call does, and Must additionally asserts, which
// makes a failing call stop right where it happened in debug builds.
package glerr

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bloeys/glsteps/assert"
	"github.com/bloeys/glsteps/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// maxDrain bounds how many codes are read per check. Without a current
// context some drivers keep returning an error forever.
const maxDrain = 32

type Code uint32

const (
	NoError                     Code = 0
	InvalidEnum                 Code = 0x0500
	InvalidValue                Code = 0x0501
	InvalidOperation            Code = 0x0502
	StackOverflow               Code = 0x0503
	StackUnderflow              Code = 0x0504
	OutOfMemory                 Code = 0x0505
	InvalidFramebufferOperation Code = 0x0506
	ContextLost                 Code = 0x0507
)

func (c Code) String() string {

	switch c {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case ContextLost:
		return "GL_CONTEXT_LOST"
	default:
		return fmt.Sprintf("GL_UNKNOWN_ERROR(0x%04X)", uint32(c))
	}
}

type Error struct {
	Op    string
	Codes []Code
	File  string
	Line  int
}

func (e *Error) Error() string {

	codes := make([]string, len(e.Codes))
	for i := 0; i < len(e.Codes); i++ {
		codes[i] = fmt.Sprintf("%s (%d)", e.Codes[i], uint32(e.Codes[i]))
	}

	return fmt.Sprintf("[OpenGL error]: %s on line: %d in file: %s (op: %s)", strings.Join(codes, ", "), e.Line, filepath.Base(e.File), e.Op)
}

// Has reports whether code is among the codes of this error
func (e *Error) Has(code Code) bool {

	for i := 0; i < len(e.Codes); i++ {
		if e.Codes[i] == code {
			return true
		}
	}

	return false
}

var (
	// Enabled turns error checking on or off. glGetError forces a sync with the
	// driver, so release runs may want it off.
	Enabled = true

	// getError is swapped in tests so the queue logic runs without a GL context
	getError = func() uint32 { return gl.GetError() }
)

// Clear drains any errors left in the queue by earlier calls
func Clear() {

	if !Enabled {
		return
	}

	for i := 0; i < maxDrain && Code(getError()) != NoError; i++ {
	}
}

// Check drains the error queue and returns an *Error if it held anything.
// The returned error points at the caller of Check.
func Check(op string) error {
	return check(op, 2)
}

// Call clears the error queue, runs fn, then checks the queue, attributing any
// error to op and to the caller of Call.
func Call(op string, fn func()) error {

	if !Enabled {
		fn()
		return nil
	}

	Clear()
	fn()
	return check(op, 2)
}

// Must is Call followed by an assert that no error happened
func Must(op string, fn func()) {

	if !Enabled {
		fn()
		return
	}

	Clear()
	fn()
	err := check(op, 2)
	if err != nil {
		assert.T(false, err.Error())
	}
}

func check(op string, callerSkip int) error {

	if !Enabled {
		return nil
	}

	var codes []Code
	for i := 0; i < maxDrain; i++ {

		c := Code(getError())
		if c == NoError {
			break
		}

		codes = append(codes, c)
	}

	if len(codes) == 0 {
		return nil
	}

	_, file, line, _ := runtime.Caller(callerSkip)
	err := &Error{
		Op:    op,
		Codes: codes,
		File:  file,
		Line:  line,
	}

	logging.ErrLog.Println(err.Error())
	return err
}
