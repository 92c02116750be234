package gpu

import "github.com/go-gl/gl/v3.3-core/gl"

// AttribType is the scalar type backing a vertex attribute.
type AttribType uint32

const (
	AttribFloat AttribType = gl.FLOAT
	AttribInt   AttribType = gl.INT
	AttribUint  AttribType = gl.UNSIGNED_INT
)

// AttribDef describes a single vertex attribute binding, matching the
// capability-set contract in the engine's GPU boundary: location, stride,
// offset, scalar type and vector length.
type AttribDef struct {
	Location uint32
	Stride   int32
	Offset   int
	Type     AttribType
	VecLen   int32
}

// VertexArray is a GL vertex array object bound to a single vertex buffer
// with a fixed attribute layout (the engine's vertex layout never varies
// between batch calls of the same primitive kind).
type VertexArray struct {
	id uint32
}

// NewVertexArray creates a VAO and binds vbo's attributes according to
// defs. The VAO, once built, never needs its attribute pointers touched
// again — only bound before a draw.
func NewVertexArray(vbo *Buffer, defs []AttribDef) *VertexArray {
	AssertMainThread()

	var id uint32
	gl.GenVertexArrays(1, &id)

	va := &VertexArray{id: id}
	va.Bind()
	vbo.Bind()

	for _, d := range defs {
		switch d.Type {
		case AttribInt, AttribUint:
			gl.VertexAttribIPointer(d.Location, d.VecLen, uint32(d.Type), d.Stride, gl.PtrOffset(d.Offset))
		default:
			gl.VertexAttribPointer(d.Location, d.VecLen, uint32(d.Type), false, d.Stride, gl.PtrOffset(d.Offset))
		}
		gl.EnableVertexAttribArray(d.Location)
	}

	return va
}

// Bind binds the vertex array object.
func (va *VertexArray) Bind() {
	AssertMainThread()
	gl.BindVertexArray(va.id)
}

// Delete releases the vertex array object.
func (va *VertexArray) Delete() {
	AssertMainThread()
	gl.DeleteVertexArrays(1, &va.id)
	va.id = 0
}
