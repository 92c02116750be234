package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/geom"
)

// CameraData is the camera state a render scope hands to the batching
// core each frame: world-space center and full extents (the visible
// rectangle spans center ± extents/2).
type CameraData struct {
	Center, Extents mgl32.Vec2
}

// batchRenderCall is the common shape triangle/point/line calls satisfy
// so batchData can hold them in one strictly-ordered slice.
type batchRenderCall interface {
	render(viewMat mgl32.Mat3)
	onUseSize() int
	allocSize() int
}

// batchData is the per-frame ordered command list: it receives
// submissions, culls and snaps them, and maintains the strictly ordered
// batch-call list that gets flushed to the GPU in submission order.
type batchData struct {
	calls []batchRenderCall
	pool  buffersPool

	viewMat   mgl32.Mat3
	camRect   geom.Rect
	snapping  mgl32.Vec2
	targetRes [2]int
	camera    CameraData

	stats BatchRenderStats
}

func newBatchData() *batchData {
	return &batchData{
		viewMat:  mgl32.Ident3(),
		snapping: mgl32.Vec2{1, 1},
	}
}

// setupFrame recycles every active call's buffers back to the pool,
// resets per-frame stats, and recomputes the snap grid / view matrix /
// camera rect for the new frame.
func (bd *batchData) setupFrame(camera CameraData, targetRes [2]int) {
	snapping := mgl32.Vec2{float32(targetRes[0]) / camera.Extents[0], float32(targetRes[1]) / camera.Extents[1]}
	camera.Center = snapVec(camera.Center, snapping)

	bd.snapping = snapping
	bd.viewMat = computeViewMatrix(camera)
	bd.camRect = geom.FromCenterExtents(camera.Center, camera.Extents.Mul(0.5))
	bd.camera = camera
	bd.targetRes = targetRes
	bd.stats = BatchRenderStats{}

	bd.clear()
}

// computeViewMatrix inverts the camera's world transform: translate to
// center, scale by extents with a Y-flip, matching the original's
// `mat3::tf_matrix(center, 0, extents.scale(1,-1)*0.5).inverse()`. The
// forward transform has no rotation, so its inverse is closed-form:
// invScale then translate by -center*invScale.
func computeViewMatrix(camera CameraData) mgl32.Mat3 {
	sx := camera.Extents[0] * 0.5
	sy := camera.Extents[1] * -0.5
	if sx == 0 || sy == 0 {
		return mgl32.Ident3()
	}
	invSx := 1 / sx
	invSy := 1 / sy
	tx := -camera.Center[0] * invSx
	ty := -camera.Center[1] * invSy

	// Column-major 3x3: columns (invSx,0,0), (0,invSy,0), (tx,ty,1).
	return mgl32.Mat3{
		invSx, 0, 0,
		0, invSy, 0,
		tx, ty, 1,
	}
}

func (bd *batchData) clear() {
	for _, call := range bd.calls {
		switch c := call.(type) {
		case *triBatchRenderCall:
			bd.pool.putTri(c.recycle())
		case *ptsBatchRenderCall:
			bd.pool.putPts(c.recycle())
		case *lnsBatchRenderCall:
			bd.pool.putLns(c.recycle())
		}
	}
	bd.calls = bd.calls[:0]
}

// render flushes every call in insertion order and folds the frame's
// submission/vert/triangle stats into out.
func (bd *batchData) render(out *BatchRenderStats) {
	onUseSize := 0
	allocSize := 0
	for _, call := range bd.calls {
		call.render(bd.viewMat)
		out.DrawCalls++
		onUseSize += call.onUseSize()
		allocSize += call.allocSize()
	}
	allocSize += bd.pool.byteSize()

	out.AllocatedMemory = int64(allocSize)
	out.OnUseMemory = int64(onUseSize)
	out.add(bd.stats)
}

func snapVec(pos, snapping mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		roundf(pos[0]*snapping[0]) / snapping[0],
		roundf(pos[1]*snapping[1]) / snapping[1],
	}
}

func roundf(v float32) float32 {
	if v >= 0 {
		return float32(int64(v + 0.5))
	}
	return float32(int64(v - 0.5))
}

func boundingBox(verts []Vertex) geom.Rect {
	min := mgl32.Vec2{fInf(1), fInf(1)}
	max := mgl32.Vec2{fInf(-1), fInf(-1)}
	for _, v := range verts {
		min = mgl32.Vec2{minf(min[0], v.Pos[0]), minf(min[1], v.Pos[1])}
		max = mgl32.Vec2{maxf(max[0], v.Pos[0]), maxf(max[1], v.Pos[1])}
	}
	return geom.Rect{Start: min, End: max}
}

func aabbOverlap(a, b geom.Rect) bool {
	return a.Start[0] < b.End[0] && b.Start[0] < a.End[0] &&
		a.Start[1] < b.End[1] && b.Start[1] < a.End[1]
}

func fInf(sign float32) float32 {
	return float32(math.Inf(int(sign)))
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// pushTriangles submits a triangle primitive. cullingEnabled gates the
// AABB-vs-camera-rect check (§4.2 step 2); verts/indices are copied and
// snapped before being handed to the coalescing cursor.
func (bd *batchData) pushTriangles(verts []Vertex, indices []uint16, texture *TextureHandle, blending BlendingMode, material *Material, cullingEnabled bool) {
	if cullingEnabled {
		bb := boundingBox(verts)
		if !aabbOverlap(bd.camRect, bb) {
			bd.stats.SkippedSubmissions++
			return
		}
	}
	bd.stats.RenderedSubmissions++

	snapped := make([]Vertex, len(verts))
	for i, v := range verts {
		v.Pos = snapVec(v.Pos, bd.snapping)
		snapped[i] = v
	}

	bd.stats.Verts += len(snapped)
	bd.stats.Triangles += len(indices) / 3

	call := bd.triCursor(len(snapped), len(indices), texture, blending, material)
	call.push(snapped, indices, texture)
}

func (bd *batchData) pushPoints(verts []Vertex, blending BlendingMode, material *Material, cullingEnabled bool) {
	if cullingEnabled {
		bb := boundingBox(verts)
		if !aabbOverlap(bd.camRect, bb) {
			bd.stats.SkippedSubmissions++
			return
		}
	}
	bd.stats.RenderedSubmissions++

	snapped := make([]Vertex, len(verts))
	for i, v := range verts {
		v.Pos = snapVec(v.Pos, bd.snapping)
		snapped[i] = v
	}
	bd.stats.Verts += len(snapped)

	call := bd.ptsCursor(len(snapped), blending, material)
	call.push(snapped)
}

func (bd *batchData) pushLine(v0, v1 Vertex, blending BlendingMode, material *Material, cullingEnabled bool) {
	verts := [2]Vertex{v0, v1}
	if cullingEnabled {
		bb := boundingBox(verts[:])
		if !aabbOverlap(bd.camRect, bb) {
			bd.stats.SkippedSubmissions++
			return
		}
	}
	bd.stats.RenderedSubmissions++

	verts[0].Pos = snapVec(verts[0].Pos, bd.snapping)
	verts[1].Pos = snapVec(verts[1].Pos, bd.snapping)

	bd.stats.Verts += 2
	bd.stats.Triangles += 2 // legacy bookkeeping, matches the original's stat convention

	call := bd.lnsCursor(2, 2, blending, material)
	call.push(verts)
}

func (bd *batchData) triCursor(vertsLen, indicesLen int, texture *TextureHandle, blending BlendingMode, material *Material) *triBatchRenderCall {
	if n := len(bd.calls); n > 0 {
		if last, ok := bd.calls[n-1].(*triBatchRenderCall); ok && last.allows(vertsLen, indicesLen, texture, blending, material) {
			return last
		}
	}
	call := newTriBatchRenderCall(bd.pool.getTri(), blending, material)
	bd.calls = append(bd.calls, call)
	return call
}

func (bd *batchData) ptsCursor(vertsLen int, blending BlendingMode, material *Material) *ptsBatchRenderCall {
	if n := len(bd.calls); n > 0 {
		if last, ok := bd.calls[n-1].(*ptsBatchRenderCall); ok && last.allows(vertsLen, blending, material) {
			return last
		}
	}
	call := newPtsBatchRenderCall(bd.pool.getPts(), blending, material)
	bd.calls = append(bd.calls, call)
	return call
}

func (bd *batchData) lnsCursor(vertsLen, indicesLen int, blending BlendingMode, material *Material) *lnsBatchRenderCall {
	if n := len(bd.calls); n > 0 {
		if last, ok := bd.calls[n-1].(*lnsBatchRenderCall); ok && last.allows(vertsLen, indicesLen, blending, material) {
			return last
		}
	}
	call := newLnsBatchRenderCall(bd.pool.getLns(), blending, material)
	bd.calls = append(bd.calls, call)
	return call
}
