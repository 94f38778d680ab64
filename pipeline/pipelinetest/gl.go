// Package pipelinetest provides a recording pipeline.GL for tests.
package pipelinetest

import (
	"fmt"
	"slices"

	"github.com/stewi1014/gltriangle/pipeline"
)

var _ pipeline.GL = (*GL)(nil)

// GL records every call made to it as a formatted string and tracks enough
// bind state to catch protocol violations. The zero value is ready to use and
// behaves like a driver on which everything succeeds.
type GL struct {
	// InitErr is returned from Init.
	InitErr error
	// CompileLogs fails compilation of the given stages with the log.
	CompileLogs map[pipeline.ShaderStage]string
	// LinkLog, when non-empty, fails linking with the log.
	LinkLog string
	// Attribs overrides AttribLocation results. Names not present are at 0.
	Attribs map[string]int32
	// Errors is drained one code per GetError call.
	Errors []uint32

	Calls      []string
	Uploads    [][]float32
	Violations []string

	initialised bool
	next        uint32
	shaders     map[uint32]pipeline.ShaderStage
	live        map[uint32]string

	BoundVertexArray uint32
	BoundBuffer      uint32
	CurrentProgram   uint32
	ViewportSize     [2]int32
}

func (g *GL) record(format string, args ...any) {
	g.Calls = append(g.Calls, fmt.Sprintf(format, args...))
}

func (g *GL) violate(format string, args ...any) {
	g.Violations = append(g.Violations, fmt.Sprintf(format, args...))
}

func (g *GL) gen(kind string) uint32 {
	if g.live == nil {
		g.live = make(map[uint32]string)
	}
	g.next++
	g.live[g.next] = kind
	return g.next
}

func (g *GL) free(kind string, id uint32) {
	if g.live[id] != kind {
		g.violate("delete of %s %d which is not a live %s", kind, id, kind)
		return
	}
	delete(g.live, id)
}

func (g *GL) ready(call string) {
	if !g.initialised {
		g.violate("%s before Init", call)
	}
}

// Live returns the number of objects created and not yet deleted.
func (g *GL) Live() int {
	return len(g.live)
}

// CallsSince returns the calls recorded after the first n.
func (g *GL) CallsSince(n int) []string {
	return slices.Clone(g.Calls[n:])
}

// Index returns the position of the first call equal to call, or -1.
func (g *GL) Index(call string) int {
	return slices.Index(g.Calls, call)
}

func (g *GL) Init() error {
	g.record("Init()")
	if g.InitErr != nil {
		return g.InitErr
	}
	g.initialised = true
	return nil
}

func (g *GL) Version() string {
	return "3.3.0 pipelinetest"
}

func (g *GL) GetError() uint32 {
	if len(g.Errors) == 0 {
		return pipeline.NoError
	}
	code := g.Errors[0]
	g.Errors = g.Errors[1:]
	return code
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.ready("Viewport")
	g.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	g.ViewportSize = [2]int32{width, height}
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.ready("ClearColor")
	g.record("ClearColor(%g, %g, %g, %g)", r, gr, b, a)
}

func (g *GL) ClearColorBuffer() {
	g.ready("ClearColorBuffer")
	g.record("ClearColorBuffer()")
}

func (g *GL) CreateShader(stage pipeline.ShaderStage) uint32 {
	g.ready("CreateShader")
	id := g.gen("shader")
	if g.shaders == nil {
		g.shaders = make(map[uint32]pipeline.ShaderStage)
	}
	g.shaders[id] = stage
	g.record("CreateShader(%v) = %d", stage, id)
	return id
}

func (g *GL) ShaderSource(shader uint32, source string) {
	g.record("ShaderSource(%d)", shader)
}

func (g *GL) CompileShader(shader uint32) {
	g.record("CompileShader(%d)", shader)
}

func (g *GL) ShaderStatus(shader uint32) (bool, string) {
	if log, ok := g.CompileLogs[g.shaders[shader]]; ok {
		return false, log
	}
	return true, ""
}

func (g *GL) DeleteShader(shader uint32) {
	g.record("DeleteShader(%d)", shader)
	g.free("shader", shader)
}

func (g *GL) CreateProgram() uint32 {
	g.ready("CreateProgram")
	id := g.gen("program")
	g.record("CreateProgram() = %d", id)
	return id
}

func (g *GL) AttachShader(program, shader uint32) {
	if g.live[shader] != "shader" {
		g.violate("attach of dead shader %d", shader)
	}
	g.record("AttachShader(%d, %d)", program, shader)
}

func (g *GL) LinkProgram(program uint32) {
	g.record("LinkProgram(%d)", program)
}

func (g *GL) ProgramStatus(program uint32) (bool, string) {
	if g.LinkLog != "" {
		return false, g.LinkLog
	}
	return true, ""
}

func (g *GL) AttribLocation(program uint32, name string) int32 {
	g.record("AttribLocation(%d, %s)", program, name)
	if loc, ok := g.Attribs[name]; ok {
		return loc
	}
	return 0
}

func (g *GL) UseProgram(program uint32) {
	g.ready("UseProgram")
	g.record("UseProgram(%d)", program)
	g.CurrentProgram = program
}

func (g *GL) DeleteProgram(program uint32) {
	g.record("DeleteProgram(%d)", program)
	g.free("program", program)
	if g.CurrentProgram == program {
		g.CurrentProgram = 0
	}
}

func (g *GL) GenVertexArray() uint32 {
	g.ready("GenVertexArray")
	id := g.gen("vertexArray")
	g.record("GenVertexArray() = %d", id)
	return id
}

func (g *GL) BindVertexArray(vao uint32) {
	g.ready("BindVertexArray")
	g.record("BindVertexArray(%d)", vao)
	g.BoundVertexArray = vao
}

func (g *GL) DeleteVertexArray(vao uint32) {
	g.record("DeleteVertexArray(%d)", vao)
	g.free("vertexArray", vao)
	if g.BoundVertexArray == vao {
		g.BoundVertexArray = 0
	}
}

func (g *GL) GenBuffer() uint32 {
	g.ready("GenBuffer")
	id := g.gen("buffer")
	g.record("GenBuffer() = %d", id)
	return id
}

func (g *GL) BindArrayBuffer(vbo uint32) {
	g.record("BindArrayBuffer(%d)", vbo)
	g.BoundBuffer = vbo
}

func (g *GL) StaticArrayBufferData(data []float32) {
	g.record("StaticArrayBufferData(%d)", len(data))
	if g.BoundBuffer == 0 {
		g.violate("buffer data with no array buffer bound")
	}
	g.Uploads = append(g.Uploads, slices.Clone(data))
}

func (g *GL) DeleteBuffer(vbo uint32) {
	g.record("DeleteBuffer(%d)", vbo)
	g.free("buffer", vbo)
	if g.BoundBuffer == vbo {
		g.BoundBuffer = 0
	}
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype pipeline.DataType, normalized bool, stride int32, offset uintptr) {
	g.record("VertexAttribPointer(%d, %d, %v, %t, %d, %d)", index, size, xtype, normalized, stride, offset)
	if g.BoundVertexArray == 0 {
		g.violate("attribute pointer with no vertex array bound")
	}
	if g.BoundBuffer == 0 {
		g.violate("attribute pointer with no array buffer bound")
	}
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.record("EnableVertexAttribArray(%d)", index)
	if g.BoundVertexArray == 0 {
		g.violate("enable attribute with no vertex array bound")
	}
}

func (g *GL) DrawArrays(mode pipeline.Primitive, first, count int32) {
	g.ready("DrawArrays")
	g.record("DrawArrays(%v, %d, %d)", mode, first, count)
	if g.BoundVertexArray == 0 {
		g.violate("draw with no vertex array bound")
	}
	if g.CurrentProgram == 0 {
		g.violate("draw with no program in use")
	}
}
