package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/internal/gpu"
)

const (
	maxQuads        = 2048
	triMaxVerts     = maxQuads * 4
	triMaxIndices   = maxQuads * 6
	triBatchByteSize = triMaxVerts*vertexSize + triMaxIndices*2
)

// maxTextures is the hard GPU limit on texture units the reserved
// uTextures[16] array in the default shaders covers.
const maxTextures = 16

// triBatchBuffers is the fixed-capacity CPU staging + GPU buffer-set pair
// backing one triangle batch call. Uploads are deferred to first bind of
// the frame (the `uploaded` flag), matching the original's interior
// mutability trick — Go just needs a plain bool since there's no
// aliasing-through-shared-reference concern here.
type triBatchBuffers struct {
	vbo *gpu.Buffer
	ebo *gpu.Buffer
	vao *gpu.VertexArray

	vboStage []byte
	eboStage []byte
	vlen     int
	elen     int
	uploaded bool
}

func newTriBatchBuffers() *triBatchBuffers {
	vbo := gpu.NewBuffer(gpu.ArrayBuffer, triMaxVerts*vertexSize, gpu.DynamicDraw)
	ebo := gpu.NewBuffer(gpu.ElementArrayBuffer, triMaxIndices*2, gpu.DynamicDraw)
	vao := gpu.NewVertexArray(vbo, vertexAttribs)
	return &triBatchBuffers{vbo: vbo, ebo: ebo, vao: vao}
}

func (b *triBatchBuffers) fits(verts, indices int) bool {
	return b.vlen+verts <= triMaxVerts && b.elen+indices <= triMaxIndices
}

func (b *triBatchBuffers) onUseSize() int {
	return b.vlen*vertexSize + b.elen*2
}

// push appends verts/indices to the staging buffers, adjusting each index
// by the call's current vertex base so the combined buffer indexes
// correctly after concatenation.
func (b *triBatchBuffers) push(verts []Vertex, indices []uint16) {
	if !b.fits(len(verts), len(indices)) {
		return
	}

	base := uint16(b.vlen)
	for _, v := range verts {
		b.vboStage = appendVertexBytes(b.vboStage, v)
	}
	for _, idx := range indices {
		adjusted := idx + base
		b.eboStage = append(b.eboStage, byte(adjusted), byte(adjusted>>8))
	}

	b.vlen += len(verts)
	b.elen += len(indices)
}

func (b *triBatchBuffers) uploadAndBind() int {
	if !b.uploaded {
		b.vbo.SetSubData(0, b.vboStage)
		b.ebo.SetSubData(0, b.eboStage)
		b.uploaded = true
	}
	b.vao.Bind()
	b.ebo.Bind()
	return b.elen
}

func (b *triBatchBuffers) clear() {
	b.vlen = 0
	b.elen = 0
	b.uploaded = false
	b.vboStage = b.vboStage[:0]
	b.eboStage = b.eboStage[:0]
}

// triBatchRenderCall is one GPU draw's worth of triangle submissions: a
// buffer set, the ordered texture-slot list, and the blending/material
// under which all its submissions were accepted.
type triBatchRenderCall struct {
	buffers  *triBatchBuffers
	textures []*TextureHandle
	blending BlendingMode
	material *Material
	texOffset int
}

func newTriBatchRenderCall(buffers *triBatchBuffers, blending BlendingMode, material *Material) *triBatchRenderCall {
	return &triBatchRenderCall{
		buffers:   buffers,
		blending:  blending,
		material:  material,
		texOffset: material.SamplerCount(),
	}
}

func (c *triBatchRenderCall) allows(vertsLen, indicesLen int, texture *TextureHandle, blending BlendingMode, material *Material) bool {
	if !c.buffers.fits(vertsLen, indicesLen) {
		return false
	}
	fitsTexSlot := c.texOffset+len(c.textures) < maxTextures
	if !fitsTexSlot {
		fitsTexSlot = c.containsTexture(texture)
	}
	return fitsTexSlot && c.blending == blending && c.material.ID() == material.ID()
}

func (c *triBatchRenderCall) containsTexture(tex *TextureHandle) bool {
	for _, t := range c.textures {
		if t.Equal(tex) {
			return true
		}
	}
	return false
}

// push assigns (or reuses) a texture slot for texture, stamps every vertex
// with the resulting tex_id, and forwards to the buffer set.
func (c *triBatchRenderCall) push(verts []Vertex, indices []uint16, texture *TextureHandle) {
	slot := -1
	for i, t := range c.textures {
		if t.Equal(texture) {
			slot = i
			break
		}
	}
	if slot < 0 {
		c.textures = append(c.textures, texture)
		slot = len(c.textures) - 1
	}
	texID := uint32(slot + c.texOffset)

	stamped := make([]Vertex, len(verts))
	for i, v := range verts {
		v.TexSlot = texID
		stamped[i] = v
	}

	c.buffers.push(stamped, indices)
}

func (c *triBatchRenderCall) onUseSize() int  { return c.buffers.onUseSize() }
func (c *triBatchRenderCall) allocSize() int  { return triBatchByteSize }

func (c *triBatchRenderCall) recycle() *triBatchBuffers {
	c.buffers.clear()
	return c.buffers
}

func (c *triBatchRenderCall) render(viewMat mgl32.Mat3) {
	indicesLen := c.buffers.uploadAndBind()

	samplerCount, ok := c.material.bind()
	if !ok {
		log().Warn("batch: triangle call skipped, material bind failed")
		return
	}

	for i, t := range c.textures {
		t.bind(uint32(i + samplerCount))
	}

	if loc := c.material.shader.UniformLocation("uViewMat"); loc >= 0 {
		gpu.SetUniformMat3(loc, viewMat)
	}
	if loc := c.material.shader.UniformLocation("uTextures"); loc >= 0 {
		gpu.SetUniform1iv(loc, identityTextureSlots[:])
	}

	gpu.ApplyBlending(c.blending.gpuMode())
	gpu.DrawElements(gpu.PrimitiveTriangles, int32(indicesLen), 0)
}

var identityTextureSlots = [maxTextures]int32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
