package gpu

import "github.com/go-gl/gl/v3.3-core/gl"

// BlendingMode selects the source/destination factor pair and blend
// equation applied to subsequent draw calls.
type BlendingMode int

const (
	// BlendAlphaMix is the default: straight alpha compositing.
	// src = SRC_ALPHA, dst = ONE_MINUS_SRC_ALPHA, eq = ADD.
	BlendAlphaMix BlendingMode = iota
	// BlendAdditive sums source and destination, weighted by source alpha.
	// src = SRC_ALPHA, dst = ONE, eq = ADD.
	BlendAdditive
	// BlendSubtractive subtracts the source from the destination, weighted
	// by source alpha. src = SRC_ALPHA, dst = ONE, eq = REVERSE_SUBTRACT.
	BlendSubtractive
	// BlendMultiplicative multiplies source and destination colors.
	// src = DST_COLOR, dst = ZERO, eq = ADD.
	BlendMultiplicative
)

// ApplyBlending sets the GL blend function and equation for mode. Called
// by every batch render call before its draw, whether or not the mode
// changed since the previous call.
func ApplyBlending(mode BlendingMode) {
	AssertMainThread()

	gl.Enable(gl.BLEND)
	switch mode {
	case BlendAdditive:
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
		gl.BlendEquation(gl.FUNC_ADD)
	case BlendSubtractive:
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
		gl.BlendEquation(gl.FUNC_REVERSE_SUBTRACT)
	case BlendMultiplicative:
		gl.BlendFunc(gl.DST_COLOR, gl.ZERO)
		gl.BlendEquation(gl.FUNC_ADD)
	default: // BlendAlphaMix
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.BlendEquation(gl.FUNC_ADD)
	}
}

// DrawElements issues an indexed draw call of count indices, each a 16-bit
// unsigned short, starting at the given index-buffer byte offset — the
// index width the batching core's buffer sets use throughout.
func DrawElements(mode uint32, count int32, byteOffset int) {
	AssertMainThread()
	gl.DrawElements(mode, count, gl.UNSIGNED_SHORT, gl.PtrOffset(byteOffset))
}

// DrawArrays issues a non-indexed draw call.
func DrawArrays(mode uint32, first, count int32) {
	AssertMainThread()
	gl.DrawArrays(mode, first, count)
}

const (
	PrimitiveTriangles uint32 = gl.TRIANGLES
	PrimitiveLines     uint32 = gl.LINES
	PrimitivePoints    uint32 = gl.POINTS
)
