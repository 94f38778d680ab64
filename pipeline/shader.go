package pipeline

import (
	"github.com/cockroachdb/errors"
)

// Shader is a compiled single-stage shader object. It is only needed until
// the program it is attached to has been linked.
type Shader struct {
	gl    GL
	id    uint32
	stage ShaderStage
}

// CompileShader creates a shader object for stage and compiles source into
// it. On failure the object is deleted and a *CompileError carrying the
// driver's info log is returned.
func CompileShader(gl GL, stage ShaderStage, source string) (*Shader, error) {
	id := gl.CreateShader(stage)
	if id == 0 {
		return nil, errors.Newf("gl.CreateShader(%v) returned no object", stage)
	}

	gl.ShaderSource(id, source)
	gl.CompileShader(id)

	ok, log := gl.ShaderStatus(id)
	if !ok {
		gl.DeleteShader(id)
		return nil, &CompileError{Stage: stage, Log: log}
	}

	logger().Debug("compiled shader", "stage", stage, "id", id)
	return &Shader{gl: gl, id: id, stage: stage}, nil
}

func (s *Shader) ID() uint32 {
	return s.id
}

func (s *Shader) Stage() ShaderStage {
	return s.stage
}

// Delete marks the shader object for deletion. It is safe to call more than
// once.
func (s *Shader) Delete() {
	if s == nil || s.id == 0 {
		return
	}
	s.gl.DeleteShader(s.id)
	s.id = 0
}
