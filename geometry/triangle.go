// Package geometry holds the static vertex data uploaded to the GPU.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ComponentsPerVertex is the number of floats describing one position.
const ComponentsPerVertex = 3

var sqrt3 = float32(math.Sqrt(3))

// Triangle returns the vertices of an equilateral triangle with unit side
// length, centred on the origin.
func Triangle() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{-0.5, -0.5 * sqrt3 / 3, 0},
		{0.5, -0.5 * sqrt3 / 3, 0},
		{0, 0.5 * sqrt3 * 2 / 3, 0},
	}
}

// Flatten packs vertices into the tightly packed form uploaded to a vertex
// buffer.
func Flatten(vertices []mgl32.Vec3) []float32 {
	data := make([]float32, 0, len(vertices)*ComponentsPerVertex)
	for _, v := range vertices {
		data = append(data, v[0], v[1], v[2])
	}
	return data
}
