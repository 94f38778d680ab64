package pipeline

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/gltriangle/programs"
)

// Pipeline holds everything one frame binds: the program, the vertex array
// and the background colour. Draw binds all of it explicitly every frame, so
// nothing depends on bind state left behind by earlier calls.
type Pipeline struct {
	gl         GL
	program    *Program
	vertices   *VertexArray
	clearColor mgl32.Vec4
}

// Assemble builds the program from src, checks its position input sits at
// location 0 and uploads data behind a position layout at that location.
func Assemble(gl GL, src programs.Program, data []float32, clearColor mgl32.Vec4) (*Pipeline, error) {
	program, err := BuildProgram(gl, src.VertexShader, src.FragmentShader)
	if err != nil {
		return nil, errors.Wrapf(err, "program %q", src.Name)
	}

	layout := PositionLayout(0)
	if src.PositionAttrib != "" {
		if err := program.RequireInput(src.PositionAttrib, layout.Index); err != nil {
			program.Release()
			return nil, errors.Wrapf(err, "program %q", src.Name)
		}
	}

	vertices, err := UploadVertices(gl, data, layout)
	if err != nil {
		program.Release()
		return nil, err
	}

	return New(gl, program, vertices, clearColor), nil
}

func New(gl GL, program *Program, vertices *VertexArray, clearColor mgl32.Vec4) *Pipeline {
	return &Pipeline{
		gl:         gl,
		program:    program,
		vertices:   vertices,
		clearColor: clearColor,
	}
}

func (p *Pipeline) Program() *Program {
	return p.program
}

func (p *Pipeline) Vertices() *VertexArray {
	return p.vertices
}

// Draw issues one frame: clear, use the program, bind the vertex array and
// draw every vertex as a triangle list.
func (p *Pipeline) Draw() {
	c := p.clearColor
	p.gl.ClearColor(c[0], c[1], c[2], c[3])
	p.gl.ClearColorBuffer()
	p.program.Use()
	p.vertices.Bind()
	p.gl.DrawArrays(Triangles, 0, p.vertices.Count())
}

// Release deletes the vertex array, its buffer and the program. The context
// must still be current.
func (p *Pipeline) Release() {
	p.vertices.Release()
	p.program.Release()
}
