package graphics

import "github.com/pixelforge/pf2d/internal/gpu"

// PixelFormat mirrors the GPU-supported pixel formats.
type PixelFormat int

const (
	FormatR8 PixelFormat = iota
	FormatRG8
	FormatRGBA8
)

func (f PixelFormat) gpuFormat() gpu.PixelFormat {
	switch f {
	case FormatR8:
		return gpu.FormatR8
	case FormatRG8:
		return gpu.FormatRG8
	default:
		return gpu.FormatRGBA8
	}
}

// TextureFiltering selects minification/magnification behavior.
type TextureFiltering int

const (
	FilterNearest TextureFiltering = iota
	FilterLinear
)

// TextureWrapping selects UV wrap behavior outside [0,1].
type TextureWrapping int

const (
	WrapClamp TextureWrapping = iota
	WrapRepeat
	WrapMirroredRepeat
)

// TextureSampling bundles filtering and wrap mode.
type TextureSampling struct {
	Filtering TextureFiltering
	Wrapping  TextureWrapping
}

// DefaultSampling is nearest-filtered, clamped — the right default for
// pixel-art sprites.
var DefaultSampling = TextureSampling{Filtering: FilterNearest, Wrapping: WrapClamp}

func (s TextureSampling) gpuFilter() gpu.TextureFilter {
	if s.Filtering == FilterLinear {
		return gpu.FilterLinear
	}
	return gpu.FilterNearest
}

func (s TextureSampling) gpuWrap() gpu.TextureWrap {
	switch s.Wrapping {
	case WrapRepeat:
		return gpu.WrapRepeat
	case WrapMirroredRepeat:
		return gpu.WrapMirroredRepeat
	default:
		return gpu.WrapClamp
	}
}

// TextureHandle is a shared-ownership reference to a GPU texture:
// equality is by the underlying GL object, and multiple Texture2D/Sprite
// values may point at the same handle.
type TextureHandle struct {
	tex    *gpu.Texture2D
	width  int
	height int
}

func newTextureHandle(tex *gpu.Texture2D) *TextureHandle {
	w, h := tex.Dims()
	return &TextureHandle{tex: tex, width: w, height: h}
}

// Dims returns the texture's pixel dimensions.
func (h *TextureHandle) Dims() (int, int) { return h.width, h.height }

// Equal reports whether h and other reference the same GPU texture.
func (h *TextureHandle) Equal(other *TextureHandle) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.tex.ID() == other.tex.ID()
}

func (h *TextureHandle) id() uint32 { return h.tex.ID() }

func (h *TextureHandle) bind(unit uint32) { h.tex.Bind(unit) }

// Texture2D is a 2D image held on the GPU. No host-side copy of its
// pixel contents is kept.
type Texture2D struct {
	handle   *TextureHandle
	sampling TextureSampling
	format   PixelFormat
}

// NewTexture2D allocates a blank texture of the given size and format.
func NewTexture2D(width, height int, format PixelFormat, sampling TextureSampling) *Texture2D {
	tex := gpu.NewTexture2D(width, height, format.gpuFormat(), sampling.gpuFilter(), sampling.gpuWrap())
	return &Texture2D{handle: newTextureHandle(tex), sampling: sampling, format: format}
}

// Handle returns the shared texture handle backing this image.
func (t *Texture2D) Handle() *TextureHandle { return t.handle }

// Dims returns the texture's pixel dimensions.
func (t *Texture2D) Dims() (int, int) { return t.handle.Dims() }

// SetPixels uploads pixel data covering the whole texture. data must be
// sized width*height*bytes-per-pixel for the texture's format.
func (t *Texture2D) SetPixels(data []byte) {
	t.handle.tex.SetPixels(data)
}

// whiteTexture is the 1x1 opaque-white texture created by
// InitWhiteTexture, used as the default fill for untextured draw calls
// (draw_rect uses it).
var whiteTexture *TextureHandle

// InitWhiteTexture creates the default white texture. Must run after
// gpu.Init, before any draw call that relies on the default material.
func InitWhiteTexture() {
	tex := NewTexture2D(1, 1, FormatRGBA8, DefaultSampling)
	tex.SetPixels([]byte{255, 255, 255, 255})
	whiteTexture = tex.handle
}
