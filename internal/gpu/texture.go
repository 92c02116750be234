package gpu

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// TextureFilter mirrors GL minification/magnification filters.
type TextureFilter uint32

const (
	FilterNearest TextureFilter = gl.NEAREST
	FilterLinear  TextureFilter = gl.LINEAR
)

// TextureWrap mirrors GL wrap modes.
type TextureWrap uint32

const (
	WrapClamp          TextureWrap = gl.CLAMP_TO_EDGE
	WrapRepeat         TextureWrap = gl.REPEAT
	WrapMirroredRepeat TextureWrap = gl.MIRRORED_REPEAT
)

// PixelFormat describes the channel layout of pixel data moving between
// host memory and a texture.
type PixelFormat uint32

const (
	FormatR8    PixelFormat = gl.RED
	FormatRG8   PixelFormat = gl.RG
	FormatRGBA8 PixelFormat = gl.RGBA
)

// BytesPerPixel returns the storage size of one pixel in this format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatR8:
		return 1
	case FormatRG8:
		return 2
	case FormatRGBA8:
		return 4
	default:
		return 4
	}
}

func internalFormat(f PixelFormat) int32 {
	switch f {
	case FormatR8:
		return gl.R8
	case FormatRG8:
		return gl.RG8
	default:
		return gl.RGBA8
	}
}

// Texture2D is a GPU 2D texture object.
type Texture2D struct {
	id            uint32
	width, height int32
	format        PixelFormat
}

// NewTexture2D allocates a texture of the given dimensions and format with
// no initial content, applying the given filter and wrap modes to both
// axes (the engine never needs independent S/T wrap modes).
func NewTexture2D(width, height int, format PixelFormat, filter TextureFilter, wrap TextureWrap) *Texture2D {
	AssertMainThread()

	var id uint32
	gl.GenTextures(1, &id)

	t := &Texture2D{id: id, width: int32(width), height: int32(height), format: format}
	t.Bind(0)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(filter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(wrap))

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat(format), int32(width), int32(height), 0,
		uint32(format), gl.UNSIGNED_BYTE, nil)

	return t
}

// Bind binds the texture to the given texture unit.
func (t *Texture2D) Bind(unit uint32) {
	AssertMainThread()
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// SetPixels uploads pixel data covering the full texture extent. data must
// hold width*height*format.BytesPerPixel() bytes.
func (t *Texture2D) SetPixels(data []byte) {
	AssertMainThread()
	if len(data) == 0 {
		return
	}
	t.Bind(0)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, t.width, t.height,
		uint32(t.format), gl.UNSIGNED_BYTE, unsafe.Pointer(&data[0]))
}

// Dims returns the texture's pixel dimensions.
func (t *Texture2D) Dims() (int, int) {
	return int(t.width), int(t.height)
}

// ID returns the underlying GL texture name, for use as a framebuffer
// color attachment.
func (t *Texture2D) ID() uint32 {
	return t.id
}

// Delete releases the underlying GPU texture.
func (t *Texture2D) Delete() {
	AssertMainThread()
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
