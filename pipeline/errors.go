package pipeline

import (
	"fmt"
	"strings"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v shader failed to compile: %s", e.Stage, cleanLog(e.Log))
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", cleanLog(e.Log))
}

// LoaderError is returned when the driver entry points cannot be resolved.
type LoaderError struct {
	Err error
}

func (e *LoaderError) Error() string {
	return fmt.Sprintf("failed to load graphics entry points: %v", e.Err)
}

func (e *LoaderError) Unwrap() error {
	return e.Err
}

// LayoutError is returned when a linked program's input does not sit at the
// location the vertex layout feeds.
type LayoutError struct {
	Attrib string
	Want   uint32
	Got    int32
}

func (e *LayoutError) Error() string {
	if e.Got < 0 {
		return fmt.Sprintf("program has no active input %q", e.Attrib)
	}
	return fmt.Sprintf("input %q is at location %d, layout feeds location %d", e.Attrib, e.Got, e.Want)
}

// DriverError carries a non-zero code reported by the driver's error query.
type DriverError struct {
	Code uint32
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("driver error %s", ErrorCodeString(e.Code))
}

// Error codes as reported by glGetError.
const (
	NoError                     = 0
	InvalidEnum                 = 0x0500
	InvalidValue                = 0x0501
	InvalidOperation            = 0x0502
	OutOfMemory                 = 0x0505
	InvalidFramebufferOperation = 0x0506
)

func ErrorCodeString(code uint32) string {
	switch code {
	case NoError:
		return "noError"
	case InvalidEnum:
		return "invalidEnum"
	case InvalidValue:
		return "invalidValue"
	case InvalidOperation:
		return "invalidOperation"
	case OutOfMemory:
		return "outOfMemory"
	case InvalidFramebufferOperation:
		return "invalidFramebufferOperation"
	}
	return fmt.Sprintf("0x%04x", code)
}

// checkError drains the driver's error flags and reports the first one.
func checkError(gl GL) error {
	var first uint32
	for i := 0; i < 8; i++ {
		code := gl.GetError()
		if code == NoError {
			break
		}
		if first == NoError {
			first = code
		}
	}
	if first != NoError {
		return &DriverError{Code: first}
	}
	return nil
}

func cleanLog(log string) string {
	log = strings.TrimRight(log, "\x00 \n\r\t")
	if log == "" {
		return "no info log"
	}
	return log
}
