// Package glcore implements pipeline.GL on an OpenGL 3.3 core context.
package glcore

import (
	"runtime"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stewi1014/gltriangle/pipeline"
)

var _ pipeline.GL = Driver{}

// Driver forwards to the OpenGL functions of the context current on the
// calling thread.
type Driver struct{}

func New() Driver {
	return Driver{}
}

// Init resolves the OpenGL entry points. The context must already be current.
func (Driver) Init() error {
	if err := gl.Init(); err != nil {
		return &pipeline.LoaderError{Err: err}
	}
	return nil
}

func (Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (Driver) GetError() uint32 {
	return gl.GetError()
}

func (Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Driver) ClearColorBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func shaderType(stage pipeline.ShaderStage) uint32 {
	switch stage {
	case pipeline.VertexStage:
		return gl.VERTEX_SHADER
	case pipeline.FragmentStage:
		return gl.FRAGMENT_SHADER
	}
	panic("unknown shader stage " + stage.String())
}

func (Driver) CreateShader(stage pipeline.ShaderStage) uint32 {
	return gl.CreateShader(shaderType(stage))
}

func (Driver) ShaderSource(shader uint32, source string) {
	source += "\x00"
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	gl.ShaderSource(shader, 1, cstring, nil)
}

func (Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Driver) ShaderStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var l int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

	log := strings.Repeat("\x00", int(l+1))
	gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
	return false, log
}

func (Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) ProgramStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}

	var l int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &l)

	log := strings.Repeat("\x00", int(l+1))
	gl.GetProgramInfoLog(program, l, nil, gl.Str(log))
	return false, log
}

func (Driver) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Driver) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (Driver) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (Driver) BindArrayBuffer(vbo uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
}

func (Driver) StaticArrayBufferData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (Driver) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

func dataType(t pipeline.DataType) uint32 {
	switch t {
	case pipeline.Float:
		return gl.FLOAT
	}
	panic("unknown data type " + t.String())
}

func (Driver) VertexAttribPointer(index uint32, size int32, xtype pipeline.DataType, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, dataType(xtype), normalized, stride, offset)
}

func (Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func mode(p pipeline.Primitive) uint32 {
	switch p {
	case pipeline.Triangles:
		return gl.TRIANGLES
	}
	panic("unknown primitive " + p.String())
}

func (Driver) DrawArrays(p pipeline.Primitive, first, count int32) {
	gl.DrawArrays(mode(p), first, count)
}
