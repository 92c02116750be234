package graphics

import (
	"github.com/pixelforge/pf2d/internal/gpu"
)

// RenderTexture is a render target: either the screen framebuffer or an
// owned off-screen framebuffer with an RGBA8 color attachment.
type RenderTexture struct {
	fb       *gpu.Framebuffer
	handle   *TextureHandle
	width    int
	height   int
	toScreen bool
}

// screenTarget is the singleton representing the window's own framebuffer.
var screenTarget *RenderTexture

// ScreenTarget returns the render texture representing the default
// framebuffer, resized to the given pixel dimensions (tracked only for
// viewport purposes — the screen framebuffer itself is owned by the
// window system).
func ScreenTarget(width, height int) *RenderTexture {
	if screenTarget == nil {
		screenTarget = &RenderTexture{toScreen: true}
	}
	screenTarget.width = width
	screenTarget.height = height
	return screenTarget
}

// NewRenderTexture allocates an off-screen RGBA8 render target of the
// given dimensions. Returns (nil, false) if the framebuffer is incomplete
// (resource-creation failure, §7).
func NewRenderTexture(width, height int, sampling TextureSampling) (*RenderTexture, bool) {
	tex := NewTexture2D(width, height, FormatRGBA8, sampling)
	fb, ok := gpu.NewFramebuffer(tex.handle.tex)
	if !ok {
		log().Error("rendertexture: framebuffer incomplete", "width", width, "height", height)
		return nil, false
	}
	return &RenderTexture{fb: fb, handle: tex.handle, width: width, height: height}, true
}

// FromTexture wraps an existing RGBA8 texture as a render target. Panics
// (fatal configuration error) if tex is not RGBA8 — the spec restricts
// render-target conversion to that format.
func FromTexture(tex *Texture2D) (*RenderTexture, bool) {
	if tex.format != FormatRGBA8 {
		log().Error("rendertexture: unsupported pixel format for conversion", "format", tex.format)
		panic("graphics: render-target conversion requires an RGBA8 texture")
	}
	fb, ok := gpu.NewFramebuffer(tex.handle.tex)
	if !ok {
		log().Error("rendertexture: framebuffer incomplete")
		return nil, false
	}
	w, h := tex.Dims()
	return &RenderTexture{fb: fb, handle: tex.handle, width: w, height: h}, true
}

// ToTexture returns the render texture's backing Texture2D, or (nil,
// false) if this is the screen target (which owns no texture).
func (rt *RenderTexture) ToTexture() (*Texture2D, bool) {
	if rt.toScreen {
		return nil, false
	}
	return &Texture2D{handle: rt.handle, sampling: DefaultSampling, format: FormatRGBA8}, true
}

// Dims returns the render texture's pixel dimensions.
func (rt *RenderTexture) Dims() (int, int) { return rt.width, rt.height }

// Bind binds the render target's framebuffer and sets the viewport to its
// full extent.
func (rt *RenderTexture) Bind() {
	if rt.toScreen {
		gpu.BindScreenFramebuffer()
	} else {
		rt.fb.Bind()
	}
	gpu.SetViewport(0, 0, int32(rt.width), int32(rt.height))
}

// Clear clears the render target's color attachment.
func (rt *RenderTexture) Clear(c Color) {
	rt.Bind()
	gpu.ClearColor(c.R, c.G, c.B, c.A)
}
