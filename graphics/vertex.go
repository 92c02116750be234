package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/color"
	"github.com/pixelforge/pf2d/internal/gpu"
)

// Vertex is the fixed vertex layout every batch call uses: position, tint,
// primary UV, secondary UV (nine-patch lattice / shader-local coords),
// texture slot and per-vertex user data.
type Vertex struct {
	Pos      mgl32.Vec2
	Tint     color.RGBA32
	UV       mgl32.Vec2
	UV2      mgl32.Vec2
	TexSlot  uint32
	UserData int32
}

// vertexSize is the byte size of one Vertex as laid out on the GPU.
const vertexSize = 4*2 + 4*4 + 4*2 + 4*2 + 4 + 4

// vertexAttribs is the attribute table bound to every batch VAO, matching
// §6.3's vertex attribute contract: location, stride, offset, type, vec_len.
var vertexAttribs = []gpu.AttribDef{
	{Location: 0, Stride: vertexSize, Offset: 0, Type: gpu.AttribFloat, VecLen: 2},  // pos
	{Location: 1, Stride: vertexSize, Offset: 8, Type: gpu.AttribFloat, VecLen: 4},  // tint
	{Location: 2, Stride: vertexSize, Offset: 24, Type: gpu.AttribFloat, VecLen: 2}, // uv
	{Location: 3, Stride: vertexSize, Offset: 32, Type: gpu.AttribFloat, VecLen: 2}, // uv2
	{Location: 4, Stride: vertexSize, Offset: 40, Type: gpu.AttribUint, VecLen: 1},  // tex slot
	{Location: 5, Stride: vertexSize, Offset: 44, Type: gpu.AttribInt, VecLen: 1},   // user data
}

func appendVertexBytes(dst []byte, v Vertex) []byte {
	dst = appendF32(dst, v.Pos[0])
	dst = appendF32(dst, v.Pos[1])
	dst = appendF32(dst, v.Tint.R)
	dst = appendF32(dst, v.Tint.G)
	dst = appendF32(dst, v.Tint.B)
	dst = appendF32(dst, v.Tint.A)
	dst = appendF32(dst, v.UV[0])
	dst = appendF32(dst, v.UV[1])
	dst = appendF32(dst, v.UV2[0])
	dst = appendF32(dst, v.UV2[1])
	dst = appendU32(dst, v.TexSlot)
	dst = appendU32(dst, uint32(v.UserData))
	return dst
}

func appendF32(dst []byte, f float32) []byte {
	return appendU32(dst, math.Float32bits(f))
}

func appendU32(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
