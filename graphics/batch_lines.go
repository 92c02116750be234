package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/internal/gpu"
)

const (
	maxLines        = 64
	lnsMaxVerts     = maxLines * 2
	lnsMaxIndices   = maxLines * 2
	lnsBatchByteSize = lnsMaxVerts*vertexSize + lnsMaxIndices*2
)

// lnsBatchBuffers is a fixed-capacity line buffer set. Unlike triangles,
// it deduplicates identical vertices (matching position, tint and UV) by
// linear scan before appending — a correctness-preserving optimization
// that never changes which segments are drawn, only how many vertices are
// uploaded (see DESIGN.md).
type lnsBatchBuffers struct {
	vbo *gpu.Buffer
	ebo *gpu.Buffer
	vao *gpu.VertexArray

	verts []Vertex
	vlen  int
	elen  int
}

func newLnsBatchBuffers() *lnsBatchBuffers {
	vbo := gpu.NewBuffer(gpu.ArrayBuffer, lnsMaxVerts*vertexSize, gpu.DynamicDraw)
	ebo := gpu.NewBuffer(gpu.ElementArrayBuffer, lnsMaxIndices*2, gpu.DynamicDraw)
	vao := gpu.NewVertexArray(vbo, vertexAttribs)
	return &lnsBatchBuffers{vbo: vbo, ebo: ebo, vao: vao}
}

func (b *lnsBatchBuffers) fits(verts, indices int) bool {
	return b.vlen+verts <= lnsMaxVerts && b.elen+indices <= lnsMaxIndices
}

func (b *lnsBatchBuffers) onUseSize() int {
	return b.vlen*vertexSize + b.elen*2
}

func vertsEqual(a, b Vertex) bool {
	return a.Pos == b.Pos && a.Tint == b.Tint && a.UV == b.UV && a.UV2 == b.UV2
}

func (b *lnsBatchBuffers) indexOf(v Vertex) int {
	for i, e := range b.verts {
		if vertsEqual(e, v) {
			return i
		}
	}
	return -1
}

func (b *lnsBatchBuffers) push(verts [2]Vertex) {
	if !b.fits(2, 2) {
		return
	}

	indices := [2]uint16{}
	for i, v := range verts {
		v.TexSlot = 0
		v.UV = [2]float32{}
		if idx := b.indexOf(v); idx >= 0 {
			indices[i] = uint16(idx)
			continue
		}
		b.verts = append(b.verts, v)
		b.vbo.SetSubData(b.vlen*vertexSize, appendVertexBytes(nil, v))
		indices[i] = uint16(b.vlen)
		b.vlen++
	}

	idxBytes := []byte{
		byte(indices[0]), byte(indices[0] >> 8),
		byte(indices[1]), byte(indices[1] >> 8),
	}
	b.ebo.SetSubData(b.elen*2, idxBytes)
	b.elen += 2
}

func (b *lnsBatchBuffers) bindAll() int {
	b.vao.Bind()
	b.ebo.Bind()
	return b.elen
}

func (b *lnsBatchBuffers) clear() {
	b.verts = b.verts[:0]
	b.vlen = 0
	b.elen = 0
}

type lnsBatchRenderCall struct {
	buffers  *lnsBatchBuffers
	blending BlendingMode
	material *Material
}

func newLnsBatchRenderCall(buffers *lnsBatchBuffers, blending BlendingMode, material *Material) *lnsBatchRenderCall {
	return &lnsBatchRenderCall{buffers: buffers, blending: blending, material: material}
}

func (c *lnsBatchRenderCall) allows(vertsLen, indicesLen int, blending BlendingMode, material *Material) bool {
	return c.buffers.fits(vertsLen, indicesLen) && c.blending == blending && c.material.ID() == material.ID()
}

func (c *lnsBatchRenderCall) push(verts [2]Vertex) {
	c.buffers.push(verts)
}

func (c *lnsBatchRenderCall) onUseSize() int { return c.buffers.onUseSize() }
func (c *lnsBatchRenderCall) allocSize() int { return lnsBatchByteSize }

func (c *lnsBatchRenderCall) recycle() *lnsBatchBuffers {
	c.buffers.clear()
	return c.buffers
}

func (c *lnsBatchRenderCall) render(viewMat mgl32.Mat3) {
	indicesLen := c.buffers.bindAll()

	_, ok := c.material.bind()
	if !ok {
		log().Warn("batch: line call skipped, material bind failed")
		return
	}

	if loc := c.material.shader.UniformLocation("uViewMat"); loc >= 0 {
		gpu.SetUniformMat3(loc, viewMat)
	}

	gpu.ApplyBlending(c.blending.gpuMode())
	gpu.DrawElements(gpu.PrimitiveLines, int32(indicesLen), 0)
}
