package pipeline

import (
	"github.com/cockroachdb/errors"
)

// AttribLayout describes how buffer bytes map onto one shader input.
type AttribLayout struct {
	Index      uint32
	Components int32
	Type       DataType
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// PositionLayout is a tightly packed 3 component float position at index.
func PositionLayout(index uint32) AttribLayout {
	return AttribLayout{
		Index:      index,
		Components: 3,
		Type:       Float,
		Normalized: false,
		Stride:     3 * Float.Size(),
		Offset:     0,
	}
}

func (l AttribLayout) vertexCount(data []float32) (int32, error) {
	if l.Components < 1 || l.Components > 4 {
		return 0, errors.Newf("attribute %d has %d components, want 1 to 4", l.Index, l.Components)
	}
	size := l.Type.Size()
	if size == 0 {
		return 0, errors.Newf("attribute %d has unknown type %v", l.Index, l.Type)
	}
	if l.Stride < l.Components*size {
		return 0, errors.Newf("attribute %d stride %d is smaller than one element of %d bytes", l.Index, l.Stride, l.Components*size)
	}
	if len(data) == 0 {
		return 0, errors.New("no vertex data")
	}

	bytes := int32(len(data)) * Float.Size()
	if bytes%l.Stride != 0 {
		return 0, errors.Newf("%d bytes of vertex data is not a multiple of stride %d", bytes, l.Stride)
	}
	return bytes / l.Stride, nil
}

// VertexArray owns a vertex array object and the buffer backing it.
type VertexArray struct {
	gl    GL
	vao   uint32
	vbo   uint32
	count int32
}

// UploadVertices creates a vertex array and a buffer, uploads data once as
// static data and describes it with layout. The array object is generated
// before the buffer, and both are unbound again (buffer first) before
// returning, so no bind state leaks to the caller.
func UploadVertices(gl GL, data []float32, layout AttribLayout) (*VertexArray, error) {
	count, err := layout.vertexCount(data)
	if err != nil {
		return nil, err
	}

	v := &VertexArray{gl: gl, count: count}
	v.vao = gl.GenVertexArray()
	v.vbo = gl.GenBuffer()

	gl.BindVertexArray(v.vao)

	gl.BindArrayBuffer(v.vbo)
	gl.StaticArrayBufferData(data)

	gl.VertexAttribPointer(layout.Index, layout.Components, layout.Type, layout.Normalized, layout.Stride, layout.Offset)
	gl.EnableVertexAttribArray(layout.Index)

	gl.BindArrayBuffer(0)
	gl.BindVertexArray(0)

	if err := checkError(gl); err != nil {
		v.Release()
		return nil, errors.Wrap(err, "uploading vertices")
	}

	logger().Debug("uploaded vertices", "vao", v.vao, "vbo", v.vbo, "vertices", count, "bytes", len(data)*int(Float.Size()))
	return v, nil
}

func (v *VertexArray) Bind() {
	v.gl.BindVertexArray(v.vao)
}

// Count is the number of vertices in the buffer.
func (v *VertexArray) Count() int32 {
	return v.count
}

// Release deletes the array object, then its buffer. It is safe to call more
// than once.
func (v *VertexArray) Release() {
	if v == nil {
		return
	}
	if v.vao != 0 {
		v.gl.DeleteVertexArray(v.vao)
		v.vao = 0
	}
	if v.vbo != 0 {
		v.gl.DeleteBuffer(v.vbo)
		v.vbo = 0
	}
}
