package graphics

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/internal/gpu"
)

var (
	blitGeomOnce sync.Once
	blitVAO      *gpu.VertexArray
)

// blitVertexSize covers just the two attributes the blit shader reads:
// position (location 0) and UV (location 2), packed tightly.
const blitVertexSize = 4*2 + 4*2

var blitAttribs = []gpu.AttribDef{
	{Location: 0, Stride: blitVertexSize, Offset: 0, Type: gpu.AttribFloat, VecLen: 2},
	{Location: 2, Stride: blitVertexSize, Offset: 8, Type: gpu.AttribFloat, VecLen: 2},
}

// ensureBlitGeometry lazily builds the single full-screen triangle used
// by every integer-scaling blit: one triangle with clip-space corners
// (-1,-1), (3,-1) and (-1,3), so its visible portion fills the viewport
// exactly, avoiding a seam down a two-triangle quad's diagonal.
func ensureBlitGeometry() {
	blitGeomOnce.Do(func() {
		data := []byte{}
		push := func(x, y, u, v float32) {
			data = appendF32(data, x)
			data = appendF32(data, y)
			data = appendF32(data, u)
			data = appendF32(data, v)
		}
		push(-1, -1, 0, 0)
		push(3, -1, 2, 0)
		push(-1, 3, 0, 2)

		vbo := gpu.NewBuffer(gpu.ArrayBuffer, len(data), gpu.StaticDraw)
		vbo.SetSubData(0, data)
		blitVAO = gpu.NewVertexArray(vbo, blitAttribs)
	})
}

// IntegerScalingBlit transfers src into dst, scaling src's resolution up
// by the largest integer factor that fits dst, and centering the result
// (§4.5). Preserves pixel-art crispness by never using a fractional scale.
func IntegerScalingBlit(src, dst *RenderTexture, stats *BlitRenderStats) {
	ensureBlitGeometry()

	srcW, srcH := src.Dims()
	dstW, dstH := dst.Dims()
	scale := integerScalingFactor(srcW, srcH, dstW, dstH)

	scaledW := srcW * scale
	scaledH := srcH * scale
	offX := (dstW - scaledW) / 2
	offY := (dstH - scaledH) / 2

	dst.Bind()
	gpu.SetViewport(int32(offX), int32(offY), int32(scaledW), int32(scaledH))

	mat := DefaultBlitMaterial()
	if srcTex, ok := src.ToTexture(); ok {
		mat.SetSampler("uSrc", srcTex.Handle())
	}
	if _, ok := mat.bind(); ok {
		blitVAO.Bind()
		gpu.DrawArrays(gpu.PrimitiveTriangles, 0, 3)
		stats.DrawCalls++
	}

	gpu.SetViewport(0, 0, int32(dstW), int32(dstH))
}

func integerScalingFactor(srcW, srcH, dstW, dstH int) int {
	if srcW == 0 || srcH == 0 {
		return 1
	}
	sx := dstW / srcW
	sy := dstH / srcH
	scale := sx
	if sy < scale {
		scale = sy
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}

// ScreenToWorld converts a screen-space pixel position to world space
// using the active scope's camera and target resolution (§6, supplemented
// feature grounded on gfx.rs::screen_to_world_pos).
func ScreenToWorld(pos mgl32.Vec2, camera CameraData, targetRes [2]int) mgl32.Vec2 {
	halfRes := mgl32.Vec2{float32(targetRes[0]) * 0.5, float32(targetRes[1]) * 0.5}
	unit := mgl32.Vec2{
		(pos[0]/halfRes[0] - 1) * 1,
		-(pos[1]/halfRes[1] - 1),
	}
	return mgl32.Vec2{
		unit[0]*camera.Extents[0]*0.5 + camera.Center[0],
		unit[1]*camera.Extents[1]*0.5 + camera.Center[1],
	}
}
