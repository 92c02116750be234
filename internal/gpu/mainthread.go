// Package gpu wraps the OpenGL 3.3 core profile calls the graphics engine
// needs, exposing the capability set described by the engine's GPU
// abstraction boundary: buffers, vertex arrays, programs, textures,
// framebuffers and draw calls. Callers treat it as an opaque capability
// set; no engine package above it imports "github.com/go-gl/gl" directly
// (only the host program, such as cmd/demo, does, to load GL itself).
package gpu

import (
	"fmt"
	"sync/atomic"
)

// initialized records whether Init has run. OpenGL contexts are bound to
// the thread that created them, so every exported call here must happen on
// that same thread; Go cannot read a portable OS-thread id for goroutines,
// so only this flag is tracked and the calling thread is not checked.
var initialized atomic.Bool

// Init marks the capability set as ready. Must be called once, on the
// thread holding the current GL context, before any other function in this
// package is used.
func Init() {
	initialized.Store(true)
}

// AssertMainThread panics if the capability set has not been initialized.
// GPU-touching calls in this package begin with this check (the uniform
// setters on Program are the exception and do not run it), matching
// the fatal-configuration-error class from the engine's error taxonomy:
// calling GPU functions without a context is a program bug, not a
// recoverable condition.
func AssertMainThread() {
	if !initialized.Load() {
		panic(fmt.Errorf("gpu: capability set used before gpu.Init"))
	}
}
