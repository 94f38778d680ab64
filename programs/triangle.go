package programs

import (
	_ "embed"
)

//go:embed shaders/triangle.vert
var triangleVertex string

//go:embed shaders/triangle.frag
var triangleFragment string

const Triangle = "triangle"

func init() {
	err := NewProgram(Program{
		Name:           Triangle,
		VertexShader:   triangleVertex,
		FragmentShader: triangleFragment,
		PositionAttrib: "aPos",
	})
	if err != nil {
		panic(err)
	}
}
