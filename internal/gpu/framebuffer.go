package gpu

import "github.com/go-gl/gl/v3.3-core/gl"

// Framebuffer is an off-screen render target with a single color
// attachment. The engine never needs depth or stencil attachments: 2D
// batches are painted back-to-front.
type Framebuffer struct {
	id  uint32
	col *Texture2D
}

// NewFramebuffer creates a framebuffer object and attaches col as its sole
// color attachment. Returns (nil, false) if the framebuffer is incomplete,
// a resource-creation failure the caller logs and falls back from.
func NewFramebuffer(col *Texture2D) (*Framebuffer, bool) {
	AssertMainThread()

	var id uint32
	gl.GenFramebuffers(1, &id)

	fb := &Framebuffer{id: id, col: col}
	fb.Bind()
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, col.id, 0)

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		BindScreenFramebuffer()
		gl.DeleteFramebuffers(1, &id)
		return nil, false
	}

	BindScreenFramebuffer()
	return fb, true
}

// Bind binds the framebuffer as the current draw target.
func (fb *Framebuffer) Bind() {
	AssertMainThread()
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.id)
}

// ColorTexture returns the framebuffer's backing color texture.
func (fb *Framebuffer) ColorTexture() *Texture2D {
	return fb.col
}

// Delete releases the framebuffer object. Does not delete the color
// texture, which may be shared or owned elsewhere.
func (fb *Framebuffer) Delete() {
	AssertMainThread()
	gl.DeleteFramebuffers(1, &fb.id)
	fb.id = 0
}

// BindScreenFramebuffer rebinds the default (window-provided) framebuffer.
func BindScreenFramebuffer() {
	AssertMainThread()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// SetViewport sets the GL viewport in pixels.
func SetViewport(x, y, width, height int32) {
	AssertMainThread()
	gl.Viewport(x, y, width, height)
}

// ClearColor clears the currently bound framebuffer's color attachment.
func ClearColor(r, g, b, a float32) {
	AssertMainThread()
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
