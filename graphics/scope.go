package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/color"
	"github.com/pixelforge/pf2d/geom"
)

// RenderScopeCfgFlags is a bitmask of per-scope rendering configuration.
// Go has no bitflags macro; a plain typed bitmask is the idiomatic
// substitute used throughout this package (see DESIGN.md).
type RenderScopeCfgFlags uint8

const (
	CfgCulling         RenderScopeCfgFlags = 1 << 0
	CfgPositiveYIsDown RenderScopeCfgFlags = 1 << 1

	CfgDefault   = CfgCulling
	CfgDefaultUI = CfgDefault | CfgPositiveYIsDown
)

func (f RenderScopeCfgFlags) Has(bit RenderScopeCfgFlags) bool { return f&bit != 0 }

// RenderScope is the per-frame rendering state machine: camera, pivot,
// blending, material, pixels-per-unit, text settings and the active
// coordinate-system flags, exposing the draw entry points (§4.3).
type RenderScope struct {
	batch   *batchData
	texPPU  float32
	blending BlendingMode
	pivot   mgl32.Vec2
	userData int32
	material *Material

	text *textEngine

	fontSize    float32
	fontColor   Color
	wordWrap    bool
	richText    bool
	horAlign    HorTextAlign
	verAlign    VerTextAlign
	progress    int
	hasProgress bool

	cfgFlags RenderScopeCfgFlags

	renderStarted bool
	clearCol      Color
	pipeline      RenderPipeline
}

// NewRenderScope builds a scope with the default configuration (culling
// enabled, Y-up).
func NewRenderScope() *RenderScope {
	return &RenderScope{
		batch:     newBatchData(),
		texPPU:    1,
		blending:  AlphaMix,
		cfgFlags:  CfgDefault,
		clearCol:  color.Black,
		text:      newTextEngine(),
		fontSize:  16,
		fontColor: color.White,
		wordWrap:  true,
	}
}

// NewUIScope builds a scope pre-configured the way the UI system expects:
// culling on, positive-Y-is-down.
func NewUIScope() *RenderScope {
	s := NewRenderScope()
	s.cfgFlags = CfgDefaultUI
	return s
}

// RectSubmitCmd describes one draw_rect/draw_nine_patch/draw_texture
// submission.
type RectSubmitCmd struct {
	Pos     mgl32.Vec2
	Rot     float32
	Extents mgl32.Vec2
	Tint    [4]Color
	Texture *TextureHandle
	UVRect  geom.Rect
}

func tfMatrix(pos mgl32.Vec2, rot float32, scale mgl32.Vec2) mgl32.Mat3 {
	c := cos32(rot)
	s := sin32(rot)
	return mgl32.Mat3{
		scale[0] * c, scale[0] * s, 0,
		-scale[1] * s, scale[1] * c, 0,
		pos[0], pos[1], 1,
	}
}

// DrawRect builds the 4 corner vertices of a unit-square quad, offset by
// -pivot, transformed by translate∘rotate∘scale with the scope's active
// Y-axis convention, and pushes it as a triangle submission (§4.3).
func (rs *RenderScope) DrawRect(cmd RectSubmitCmd) {
	rs.assertRenderStarted()

	invertedY := rs.cfgFlags.Has(CfgPositiveYIsDown)
	ySign := float32(1)
	if invertedY {
		ySign = -1
	}

	tf := tfMatrix(mgl32.Vec2{cmd.Pos[0], cmd.Pos[1] * ySign}, cmd.Rot, mgl32.Vec2{cmd.Extents[0], -cmd.Extents[1] * ySign})

	var uvs [4]mgl32.Vec2
	if invertedY {
		uvs = [4]mgl32.Vec2{cmd.UVRect.LD(), cmd.UVRect.LU(), cmd.UVRect.RU(), cmd.UVRect.RD()}
	} else {
		uvs = [4]mgl32.Vec2{cmd.UVRect.LU(), cmd.UVRect.LD(), cmd.UVRect.RD(), cmd.UVRect.RU()}
	}

	corners := [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	verts := make([]Vertex, 4)
	for i, c := range corners {
		local := c.Sub(rs.pivot)
		p := tf.Mul3x1(mgl32.Vec3{local[0], local[1], 1})
		verts[i] = Vertex{
			Pos:      mgl32.Vec2{p[0], p[1]},
			Tint:     cmd.Tint[i],
			UV:       uvs[i],
			UV2:      c,
			UserData: rs.userData,
		}
	}
	indices := []uint16{0, 1, 2, 2, 3, 0}

	tex := cmd.Texture
	if tex == nil {
		tex = whiteTexture
	}

	rs.batch.pushTriangles(verts, indices, tex, rs.blending, rs.Material(), rs.cfgFlags.Has(CfgCulling))
}

// NinePatchSubmitCmd describes a draw_nine_patch submission.
type NinePatchSubmitCmd struct {
	Pos           mgl32.Vec2
	Rot           float32
	Extents       mgl32.Vec2
	Tint          Color
	Sprite        Sprite
	CornerScaling float32
}

// DrawNinePatch subdivides the quad into a 4x4 grid whose corner cells
// preserve the sprite's corner pixel size, per §4.3.
func (rs *RenderScope) DrawNinePatch(cmd NinePatchSubmitCmd) {
	rs.assertRenderStarted()

	if cmd.CornerScaling <= 0 {
		log().Error("graphics: nine-patch corner_scaling must be > 0", "corner_scaling", cmd.CornerScaling)
		panic("graphics: nine-patch corner_scaling must be > 0")
	}

	invertedY := rs.cfgFlags.Has(CfgPositiveYIsDown)
	ySign := float32(1)
	if invertedY {
		ySign = -1
	}
	tf := tfMatrix(mgl32.Vec2{cmd.Pos[0], cmd.Pos[1] * ySign}, cmd.Rot, mgl32.Vec2{cmd.Extents[0], -cmd.Extents[1] * ySign})

	dims := cmd.Sprite.Dims()
	cornerSize := mgl32.Vec2{
		dims[0] / rs.texPPU * cmd.CornerScaling / 3,
		dims[1] / rs.texPPU * cmd.CornerScaling / 3,
	}
	relCorner := mgl32.Vec2{cornerSize[0] / cmd.Extents[0], cornerSize[1] / cmd.Extents[1]}

	xs := [4]float32{0, relCorner[0], 1 - relCorner[0], 1}
	ys := [4]float32{0, relCorner[1], 1 - relCorner[1], 1}
	uvXs := [4]float32{cmd.Sprite.UVRect.Start[0], lerp1(cmd.Sprite.UVRect.Start[0], cmd.Sprite.UVRect.End[0], relCorner[0]), lerp1(cmd.Sprite.UVRect.Start[0], cmd.Sprite.UVRect.End[0], 1-relCorner[0]), cmd.Sprite.UVRect.End[0]}
	uvYs := [4]float32{cmd.Sprite.UVRect.Start[1], lerp1(cmd.Sprite.UVRect.Start[1], cmd.Sprite.UVRect.End[1], relCorner[1]), lerp1(cmd.Sprite.UVRect.Start[1], cmd.Sprite.UVRect.End[1], 1-relCorner[1]), cmd.Sprite.UVRect.End[1]}

	var verts [16]Vertex
	idx := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			local := mgl32.Vec2{xs[col], ys[row]}.Sub(rs.pivot)
			p := tf.Mul3x1(mgl32.Vec3{local[0], local[1], 1})
			uv := mgl32.Vec2{uvXs[col], uvYs[row]}
			if invertedY {
				uv = mgl32.Vec2{uvXs[col], uvYs[3-row]}
			}
			verts[idx] = Vertex{
				Pos:      mgl32.Vec2{p[0], p[1]},
				Tint:     cmd.Tint,
				UV:       uv,
				UV2:      mgl32.Vec2{xs[col], ys[row]},
				UserData: rs.userData,
			}
			idx++
		}
	}

	indices := make([]uint16, 0, 54)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			tl := uint16(row*4 + col)
			tr := tl + 1
			bl := tl + 4
			br := bl + 1
			indices = append(indices, tl, bl, br, br, tr, tl)
		}
	}

	tex := cmd.Sprite.Handle
	if tex == nil {
		tex = whiteTexture
	}

	rs.batch.pushTriangles(verts[:], indices, tex, rs.blending, rs.Material(), rs.cfgFlags.Has(CfgCulling))
}

func lerp1(a, b, t float32) float32 { return a + (b-a)*t }

// DrawPoints pushes a set of independently-colored points.
func (rs *RenderScope) DrawPoints(points []mgl32.Vec2, colors []Color) {
	rs.assertRenderStarted()

	ySign := float32(1)
	if rs.cfgFlags.Has(CfgPositiveYIsDown) {
		ySign = -1
	}

	verts := make([]Vertex, len(points))
	for i := range points {
		verts[i] = Vertex{Pos: mgl32.Vec2{points[i][0], points[i][1] * ySign}, Tint: colors[i], UserData: rs.userData}
	}

	rs.batch.pushPoints(verts, rs.blending, rs.Material(), rs.cfgFlags.Has(CfgCulling))
}

// DrawLine pushes a single line segment between from and to.
func (rs *RenderScope) DrawLine(from, to mgl32.Vec2, colFrom, colTo Color) {
	rs.assertRenderStarted()

	ySign := float32(1)
	if rs.cfgFlags.Has(CfgPositiveYIsDown) {
		ySign = -1
	}

	v0 := Vertex{Pos: mgl32.Vec2{from[0], from[1] * ySign}, Tint: colFrom, UserData: rs.userData}
	v1 := Vertex{Pos: mgl32.Vec2{to[0], to[1] * ySign}, Tint: colTo, UserData: rs.userData}

	rs.batch.pushLine(v0, v1, rs.blending, rs.Material(), rs.cfgFlags.Has(CfgCulling))
}

func (rs *RenderScope) assertRenderStarted() {
	if !rs.renderStarted {
		log().Error("graphics: draw call issued outside begin_render/end_render")
		panic("graphics: draw call issued outside begin_render/end_render")
	}
}

// Camera returns the scope's current camera state.
func (rs *RenderScope) Camera() CameraData { return rs.batch.camera }

// PixelsPerUnit returns the scale factor converting texture pixels to
// world-space unit length.
func (rs *RenderScope) PixelsPerUnit() float32 { return rs.texPPU }

// SetPixelsPerUnit sets the pixels-per-unit scale. Panics if ppu <= 0
// (fatal configuration error, §7).
func (rs *RenderScope) SetPixelsPerUnit(ppu float32) {
	if ppu <= 0 {
		log().Error("graphics: pixels per unit must be > 0", "ppu", ppu)
		panic("graphics: pixels per unit must be > 0")
	}
	rs.texPPU = ppu
}

// UserData returns the scope's per-vertex user data tag.
func (rs *RenderScope) UserData() int32 { return rs.userData }

// SetUserData sets the scope's per-vertex user data tag.
func (rs *RenderScope) SetUserData(v int32) { rs.userData = v }

// Pivot returns the active pivot.
func (rs *RenderScope) Pivot() mgl32.Vec2 { return rs.pivot }

// SetPivot sets the active pivot.
func (rs *RenderScope) SetPivot(p mgl32.Vec2) { rs.pivot = p }

// BlendingMode returns the active blending mode.
func (rs *RenderScope) BlendingMode() BlendingMode { return rs.blending }

// SetBlendingMode sets the active blending mode.
func (rs *RenderScope) SetBlendingMode(m BlendingMode) { rs.blending = m }

// SetMaterial stores the active material.
func (rs *RenderScope) SetMaterial(m *Material) { rs.material = m }

// ResetMaterial falls back to the default batch material.
func (rs *RenderScope) ResetMaterial() { rs.material = DefaultBatchMaterial() }

// Material returns the active material, or the default batch material if
// none has been set.
func (rs *RenderScope) Material() *Material {
	if rs.material == nil {
		return DefaultBatchMaterial()
	}
	return rs.material
}

// Cfg returns the active configuration flags.
func (rs *RenderScope) Cfg() RenderScopeCfgFlags { return rs.cfgFlags }

// EnableCfg turns on the given flags.
func (rs *RenderScope) EnableCfg(flags RenderScopeCfgFlags) { rs.cfgFlags |= flags }

// DisableCfg turns off the given flags.
func (rs *RenderScope) DisableCfg(flags RenderScopeCfgFlags) { rs.cfgFlags &^= flags }

// SetCfg replaces the configuration flags wholesale.
func (rs *RenderScope) SetCfg(flags RenderScopeCfgFlags) { rs.cfgFlags = flags }

// FontSize returns the scope's current font size (in pixels, before
// pixels-per-unit scaling).
func (rs *RenderScope) FontSize() float32 { return rs.fontSize }

// SetFontSize sets the scope's current font size.
func (rs *RenderScope) SetFontSize(size float32) { rs.fontSize = size }

// FontColor returns the scope's current default text color.
func (rs *RenderScope) FontColor() Color { return rs.fontColor }

// SetFontColor sets the scope's current default text color.
func (rs *RenderScope) SetFontColor(c Color) { rs.fontColor = c }

// WordWrap reports whether draw_text wraps overflowing lines.
func (rs *RenderScope) WordWrap() bool { return rs.wordWrap }

// SetWordWrap toggles word-wrap for subsequent draw_text calls.
func (rs *RenderScope) SetWordWrap(on bool) { rs.wordWrap = on }

// RichText reports whether draw_text parses inline rich-text tags.
func (rs *RenderScope) RichText() bool { return rs.richText }

// SetRichText toggles rich-text tag parsing for subsequent draw_text calls.
func (rs *RenderScope) SetRichText(on bool) { rs.richText = on }

// HorAlign returns the scope's current horizontal text alignment.
func (rs *RenderScope) HorAlign() HorTextAlign { return rs.horAlign }

// SetHorAlign sets the scope's current horizontal text alignment.
func (rs *RenderScope) SetHorAlign(a HorTextAlign) { rs.horAlign = a }

// VerAlign returns the scope's current vertical text alignment.
func (rs *RenderScope) VerAlign() VerTextAlign { return rs.verAlign }

// SetVerAlign sets the scope's current vertical text alignment.
func (rs *RenderScope) SetVerAlign(a VerTextAlign) { rs.verAlign = a }

// SetProgress enables progressive reveal, stopping emission after n
// sanitized characters. Clear with ClearProgress.
func (rs *RenderScope) SetProgress(n int) {
	rs.progress = n
	rs.hasProgress = true
}

// ClearProgress disables progressive reveal (the full text renders).
func (rs *RenderScope) ClearProgress() { rs.hasProgress = false }

// ScopeRenderSetup holds everything Run needs to drive one scope's frame.
type ScopeRenderSetup struct {
	Camera   CameraData
	ClearCol Color
	Pipeline RenderPipeline
}

// BeginRender applies the scope's Y-axis convention to the camera center,
// forwards to the batching core's setup_frame, and marks the scope ready
// to accept draw calls (§4.3).
func (rs *RenderScope) BeginRender(camera CameraData, targetRes [2]int, clearCol Color, pipeline RenderPipeline) {
	if rs.cfgFlags.Has(CfgPositiveYIsDown) {
		camera.Center = mgl32.Vec2{camera.Center[0], -camera.Center[1]}
	}
	rs.batch.setupFrame(camera, targetRes)
	rs.renderStarted = true
	if pipeline == nil {
		pipeline = DefaultPipeline{}
	}
	rs.pipeline = pipeline
	rs.clearCol = clearCol
}

// EndRender flushes the scope through its pipeline into target. Panics if
// called without a matching BeginRender (§5 ordering guarantee).
func (rs *RenderScope) EndRender(target *RenderTexture, isUI bool, complement *SceneData) RenderStats {
	if !rs.renderStarted {
		log().Error("graphics: end_render called without a matching begin_render")
		panic("graphics: end_render called without a matching begin_render")
	}
	rs.renderStarted = false

	var stats RenderStats
	scene := &SceneData{batch: rs.batch}
	if isUI {
		rs.pipeline.Render(target, complement, scene, rs.clearCol, &stats)
	} else {
		rs.pipeline.Render(target, scene, complement, rs.clearCol, &stats)
	}
	return stats
}

// Run makes rs the active scope for the duration of f, driving a full
// begin_render/end_render cycle against rt.
func (rs *RenderScope) Run(rt *RenderTexture, setup ScopeRenderSetup, f func()) RenderStats {
	w, h := rt.Dims()
	rs.BeginRender(setup.Camera, [2]int{w, h}, setup.ClearCol, setup.Pipeline)
	f()
	return rs.EndRender(rt, false, nil)
}

func (rs *RenderScope) targetRes() [2]int { return rs.batch.targetRes }

func cos32(rad float32) float32 { return float32(math.Cos(float64(rad))) }
func sin32(rad float32) float32 { return float32(math.Sin(float64(rad))) }
