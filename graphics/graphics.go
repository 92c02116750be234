package graphics

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/internal/gpu"
)

// FrameSetup bundles everything Init's caller needs to open a frame:
// the world camera, the render target resolution, an optional distinct UI
// resolution, the clear color, and an optional pipeline override (§6.2).
type FrameSetup struct {
	Camera   CameraData
	TargetRes [2]int
	UIRes     [2]int // zero value means "same as TargetRes"
	ClearCol  Color
	Pipeline  RenderPipeline
}

// graphicsState is the process-wide singleton the public draw API is
// thinned down to: an active scene scope and an active UI scope, guarded
// by a lock that is only ever taken on the main thread (it exists to
// serve the occasional config read from off-thread code), per §5.
type graphicsState struct {
	mu       sync.RWMutex
	scene    *RenderScope
	uiScope  *RenderScope
	target   *RenderTexture
	setup    FrameSetup
	inFrame  bool
}

var gfxState graphicsState

// Init brings up the engine's process-wide state: the GPU capability set,
// the default white texture, and the default shaders/materials. Must run
// once, on the thread holding the current GL context, before any other
// call in this package.
func Init() {
	gpu.Init()
	InitWhiteTexture()
	InitDefaults()

	gfxState.mu.Lock()
	defer gfxState.mu.Unlock()
	gfxState.scene = NewRenderScope()
	gfxState.uiScope = NewUIScope()
}

// Scene returns the process-wide scene render scope.
func Scene() *RenderScope {
	gfxState.mu.RLock()
	defer gfxState.mu.RUnlock()
	return gfxState.scene
}

// UI returns the process-wide UI render scope.
func UI() *RenderScope {
	gfxState.mu.RLock()
	defer gfxState.mu.RUnlock()
	return gfxState.uiScope
}

// BeginRender opens a frame against target: both the scene and UI scopes
// start accepting draw calls (§6.2).
func BeginRender(target *RenderTexture, setup FrameSetup) {
	gfxState.mu.Lock()
	defer gfxState.mu.Unlock()

	if gfxState.inFrame {
		log().Error("graphics: begin_render called while a frame is already open")
		panic("graphics: begin_render called while a frame is already open")
	}

	uiRes := setup.UIRes
	if uiRes == [2]int{} {
		uiRes = setup.TargetRes
	}
	uiCamera := CameraData{Extents: mgl32.Vec2{float32(uiRes[0]), float32(uiRes[1])}}

	gfxState.scene.BeginRender(setup.Camera, setup.TargetRes, setup.ClearCol, setup.Pipeline)
	gfxState.uiScope.BeginRender(uiCamera, uiRes, setup.ClearCol, setup.Pipeline)
	gfxState.target = target
	gfxState.setup = setup
	gfxState.inFrame = true
}

// EndRender closes the frame opened by BeginRender. It marks both scopes
// flushed, then drives the active pipeline once against target with the
// scene as primary and the UI scope as complement, returning the frame's
// combined render stats (§6.2).
func EndRender(realWindowRes [2]int) RenderStats {
	gfxState.mu.Lock()
	defer gfxState.mu.Unlock()

	if !gfxState.inFrame {
		log().Error("graphics: end_render called without a matching begin_render")
		panic("graphics: end_render called without a matching begin_render")
	}
	gfxState.inFrame = false

	scene := gfxState.scene
	ui := gfxState.uiScope
	if !scene.renderStarted || !ui.renderStarted {
		log().Error("graphics: end_render called without a matching begin_render")
		panic("graphics: end_render called without a matching begin_render")
	}
	scene.renderStarted = false
	ui.renderStarted = false

	sceneData := &SceneData{batch: scene.batch}
	uiData := &SceneData{batch: ui.batch}

	var out RenderStats
	scene.pipeline.Render(gfxState.target, sceneData, uiData, scene.clearCol, &out)

	if realWindowRes != [2]int{} {
		screen := ScreenTarget(realWindowRes[0], realWindowRes[1])
		IntegerScalingBlit(gfxState.target, screen, &out.Blit)
	}

	return out
}
