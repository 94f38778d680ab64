package pipeline

import (
	"github.com/cockroachdb/errors"
)

// Program is a linked shader program.
type Program struct {
	gl GL
	id uint32
}

// LinkProgram attaches shaders to a new program object and links it. The
// shaders are left for the caller to delete; they must stay alive until
// LinkProgram returns.
func LinkProgram(gl GL, shaders ...*Shader) (*Program, error) {
	id := gl.CreateProgram()
	if id == 0 {
		return nil, errors.New("gl.CreateProgram returned no object")
	}

	for _, s := range shaders {
		gl.AttachShader(id, s.ID())
	}
	gl.LinkProgram(id)

	ok, log := gl.ProgramStatus(id)
	if !ok {
		gl.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	logger().Debug("linked program", "id", id)
	return &Program{gl: gl, id: id}, nil
}

// BuildProgram compiles a vertex and a fragment stage and links them. Both
// shader objects are deleted before BuildProgram returns, whether or not
// linking succeeded.
func BuildProgram(gl GL, vertexSource, fragmentSource string) (*Program, error) {
	vertexShader, err := CompileShader(gl, VertexStage, vertexSource)
	if err != nil {
		return nil, err
	}

	fragmentShader, err := CompileShader(gl, FragmentStage, fragmentSource)
	if err != nil {
		vertexShader.Delete()
		return nil, err
	}

	program, err := LinkProgram(gl, vertexShader, fragmentShader)

	vertexShader.Delete()
	fragmentShader.Delete()

	return program, err
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Use() {
	p.gl.UseProgram(p.id)
}

// RequireInput checks that the program has an active input named attrib at
// location index.
func (p *Program) RequireInput(attrib string, index uint32) error {
	loc := p.gl.AttribLocation(p.id, attrib)
	if loc < 0 || uint32(loc) != index {
		return &LayoutError{Attrib: attrib, Want: index, Got: loc}
	}
	return nil
}

// Release deletes the program. It is safe to call more than once.
func (p *Program) Release() {
	if p == nil || p.id == 0 {
		return
	}
	p.gl.DeleteProgram(p.id)
	logger().Debug("released program", "id", p.id)
	p.id = 0
}
