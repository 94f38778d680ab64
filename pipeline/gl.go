// Package pipeline builds and drives a minimal GPU pipeline: one linked
// shader program and one vertex array drawn as a triangle list.
//
// The package talks to the graphics API only through GL, so the ordering
// protocol can be exercised without a context. The cgo implementation lives
// in pipeline/glcore.
package pipeline

import "fmt"

type ShaderStage uint8

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("ShaderStage(%d)", uint8(s))
}

type DataType uint8

const (
	Float DataType = iota
)

// Size returns the size in bytes of one element.
func (t DataType) Size() int32 {
	switch t {
	case Float:
		return 4
	}
	return 0
}

func (t DataType) String() string {
	switch t {
	case Float:
		return "float"
	}
	return fmt.Sprintf("DataType(%d)", uint8(t))
}

type Primitive uint8

const (
	Triangles Primitive = iota
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	}
	return fmt.Sprintf("Primitive(%d)", uint8(p))
}

// GL is the subset of the graphics API the pipeline consumes. Handles are the
// driver's opaque object names; zero is never a valid object.
//
// Every method requires the context to be current on the calling thread,
// except Init, which must be called once right after the context is made
// current and before any other method.
type GL interface {
	Init() error
	Version() string
	GetError() uint32

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearColorBuffer()

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderStatus reports the compile status and the shader's info log.
	ShaderStatus(shader uint32) (ok bool, log string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramStatus reports the link status and the program's info log.
	ProgramStatus(program uint32) (ok bool, log string)
	// AttribLocation returns -1 when the program has no active input named name.
	AttribLocation(program uint32, name string) int32
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	// StaticArrayBufferData uploads data once to the bound array buffer.
	StaticArrayBufferData(data []float32)
	DeleteBuffer(vbo uint32)

	VertexAttribPointer(index uint32, size int32, xtype DataType, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)

	DrawArrays(mode Primitive, first, count int32)
}
