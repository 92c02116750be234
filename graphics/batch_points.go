package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/internal/gpu"
)

const (
	maxPts          = 64
	ptsBatchByteSize = maxPts * vertexSize
)

// ptsBatchBuffers is a fixed-capacity point buffer set. Points have no
// index buffer — they render directly off the vertex array.
type ptsBatchBuffers struct {
	vbo  *gpu.Buffer
	vao  *gpu.VertexArray
	vlen int
}

func newPtsBatchBuffers() *ptsBatchBuffers {
	vbo := gpu.NewBuffer(gpu.ArrayBuffer, maxPts*vertexSize, gpu.DynamicDraw)
	vao := gpu.NewVertexArray(vbo, vertexAttribs)
	return &ptsBatchBuffers{vbo: vbo, vao: vao}
}

func (b *ptsBatchBuffers) fits(verts int) bool {
	return b.vlen+verts <= maxPts
}

func (b *ptsBatchBuffers) onUseSize() int {
	return b.vlen * vertexSize
}

func (b *ptsBatchBuffers) push(verts []Vertex) {
	if !b.fits(len(verts)) {
		return
	}
	var stage []byte
	for _, v := range verts {
		stage = appendVertexBytes(stage, v)
	}
	b.vbo.SetSubData(b.vlen*vertexSize, stage)
	b.vlen += len(verts)
}

func (b *ptsBatchBuffers) bindAll() int {
	b.vao.Bind()
	return b.vlen
}

func (b *ptsBatchBuffers) clear() {
	b.vlen = 0
}

type ptsBatchRenderCall struct {
	buffers  *ptsBatchBuffers
	blending BlendingMode
	material *Material
}

func newPtsBatchRenderCall(buffers *ptsBatchBuffers, blending BlendingMode, material *Material) *ptsBatchRenderCall {
	return &ptsBatchRenderCall{buffers: buffers, blending: blending, material: material}
}

func (c *ptsBatchRenderCall) allows(vertsLen int, blending BlendingMode, material *Material) bool {
	return c.buffers.fits(vertsLen) && c.blending == blending && c.material.ID() == material.ID()
}

func (c *ptsBatchRenderCall) push(verts []Vertex) {
	stamped := make([]Vertex, len(verts))
	for i, v := range verts {
		v.TexSlot = 0
		stamped[i] = v
	}
	c.buffers.push(stamped)
}

func (c *ptsBatchRenderCall) onUseSize() int { return c.buffers.onUseSize() }
func (c *ptsBatchRenderCall) allocSize() int { return ptsBatchByteSize }

func (c *ptsBatchRenderCall) recycle() *ptsBatchBuffers {
	c.buffers.clear()
	return c.buffers
}

func (c *ptsBatchRenderCall) render(viewMat mgl32.Mat3) {
	vertsLen := c.buffers.bindAll()

	_, ok := c.material.bind()
	if !ok {
		log().Warn("batch: point call skipped, material bind failed")
		return
	}

	if loc := c.material.shader.UniformLocation("uViewMat"); loc >= 0 {
		gpu.SetUniformMat3(loc, viewMat)
	}

	gpu.ApplyBlending(c.blending.gpuMode())
	gpu.DrawArrays(gpu.PrimitivePoints, 0, int32(vertsLen))
}
