package gpu

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// BufferTarget mirrors the GL buffer binding targets the engine uses.
type BufferTarget uint32

const (
	ArrayBuffer        BufferTarget = gl.ARRAY_BUFFER
	ElementArrayBuffer BufferTarget = gl.ELEMENT_ARRAY_BUFFER
)

// BufferUsage mirrors the GL buffer usage hints the engine uses. Batch
// buffers are always DynamicDraw: their contents change every frame and
// are consumed by draw calls many times within that frame.
type BufferUsage uint32

const (
	StaticDraw  BufferUsage = gl.STATIC_DRAW
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	StreamDraw  BufferUsage = gl.STREAM_DRAW
)

// Buffer is a GPU buffer object preallocated to a fixed byte size. It is
// never resized; callers that need more room open a new batch call instead
// (see the batching core's coalescing predicate).
type Buffer struct {
	id     uint32
	target BufferTarget
	size   int
}

// NewBuffer allocates a buffer of sizeBytes with undefined contents
// (GL_BufferData(target, size, nil, usage)).
func NewBuffer(target BufferTarget, sizeBytes int, usage BufferUsage) *Buffer {
	AssertMainThread()

	var id uint32
	gl.GenBuffers(1, &id)

	b := &Buffer{id: id, target: target, size: sizeBytes}
	b.Bind()
	gl.BufferData(uint32(target), sizeBytes, nil, uint32(usage))
	return b
}

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	AssertMainThread()
	gl.BindBuffer(uint32(b.target), b.id)
}

// SetSubData uploads data at the given byte offset. Panics if the write
// would run past the buffer's preallocated size — that would indicate a
// batch call pushed more bytes than its fixed capacity allows, which is a
// program bug in the batching core, not a runtime condition to recover from.
func (b *Buffer) SetSubData(offsetBytes int, data []byte) {
	if len(data) == 0 {
		return
	}
	if offsetBytes+len(data) > b.size {
		panic("gpu: buffer sub-data write exceeds preallocated capacity")
	}

	b.Bind()
	gl.BufferSubData(uint32(b.target), offsetBytes, len(data), unsafe.Pointer(&data[0]))
}

// Size returns the buffer's preallocated byte size.
func (b *Buffer) Size() int {
	return b.size
}

// Delete releases the underlying GPU buffer. Safe to call once per buffer;
// callers must guarantee it is not referenced afterward.
func (b *Buffer) Delete() {
	AssertMainThread()
	gl.DeleteBuffers(1, &b.id)
	b.id = 0
}
