package graphics

import "github.com/pixelforge/pf2d/internal/gpu"

// BatchRenderStats accumulates the batching core's per-frame counters.
type BatchRenderStats struct {
	DrawCalls           int
	SkippedSubmissions  int
	RenderedSubmissions int
	Verts               int
	Triangles           int
	AllocatedMemory     int64
	OnUseMemory         int64
}

func (s *BatchRenderStats) add(other BatchRenderStats) {
	s.DrawCalls += other.DrawCalls
	s.SkippedSubmissions += other.SkippedSubmissions
	s.RenderedSubmissions += other.RenderedSubmissions
	s.Verts += other.Verts
	s.Triangles += other.Triangles
}

// BlitRenderStats counts the pipeline's own blit draw calls (the
// integer-scaling blit from an off-screen render texture to the screen).
type BlitRenderStats struct {
	DrawCalls int
}

// RenderStats is the full per-frame report returned by end_render (§6.2).
type RenderStats struct {
	Batch BatchRenderStats
	Blit  BlitRenderStats
}

// SceneData carries a reference to one render scope's batch data and
// knows how to flush it into a render target.
type SceneData struct {
	batch *batchData
}

// RenderTo binds target's framebuffer, sets its viewport, issues the
// batched draws, and rebinds the screen framebuffer (§4.5).
func (sd *SceneData) RenderTo(target *RenderTexture, stats *BatchRenderStats) {
	if sd == nil || sd.batch == nil {
		return
	}
	target.Bind()
	sd.batch.render(stats)
	gpu.BindScreenFramebuffer()
}

// RenderPipeline composes a scene and/or UI scene into a target render
// texture, clearing it first with clearCol. Either scene may be nil.
type RenderPipeline interface {
	Render(target *RenderTexture, scene, ui *SceneData, clearCol Color, stats *RenderStats)
}

// DefaultPipeline clears the target, draws the scene, then draws UI over
// it — UI composites with transparency blending by virtue of drawing
// second, not any special-cased blend state.
type DefaultPipeline struct{}

func (DefaultPipeline) Render(target *RenderTexture, scene, ui *SceneData, clearCol Color, stats *RenderStats) {
	target.Clear(clearCol)
	if scene != nil {
		scene.RenderTo(target, &stats.Batch)
	}
	if ui != nil {
		ui.RenderTo(target, &stats.Batch)
	}
}
