package graphics

import "sync"

// batchVertSrc and batchFragSrc implement the default batch shader: the
// fixed vertex layout from §3 in, a 16-slot sampler array out, selecting
// the per-vertex texture slot written by the triangle batcher.
const batchVertSrc = `#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aTint;
layout (location = 2) in vec2 aUV;
layout (location = 3) in vec2 aUV2;
layout (location = 4) in uint aTexSlot;
layout (location = 5) in int aUserData;

uniform mat3 uViewMat;

out vec4 vTint;
out vec2 vUV;
out vec2 vUV2;
flat out uint vTexSlot;
flat out int vUserData;

void main() {
    vec3 p = uViewMat * vec3(aPos, 1.0);
    gl_Position = vec4(p.xy, 0.0, 1.0);
    vTint = aTint;
    vUV = aUV;
    vUV2 = aUV2;
    vTexSlot = aTexSlot;
    vUserData = aUserData;
}
`

const batchFragSrc = `#version 330 core
in vec4 vTint;
in vec2 vUV;
in vec2 vUV2;
flat in uint vTexSlot;
flat in int vUserData;

uniform sampler2D uTextures[16];

out vec4 fragColor;

void main() {
    vec4 texel = texture(uTextures[vTexSlot], vUV);
    fragColor = texel * vTint;
}
`

// blitVertSrc/blitFragSrc implement the full-screen-triangle blit shader
// used by the integer-scaling blit (§4.5).
const blitVertSrc = `#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 2) in vec2 aUV;

out vec2 vUV;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    vUV = aUV;
}
`

const blitFragSrc = `#version 330 core
in vec2 vUV;
uniform sampler2D uSrc;
out vec4 fragColor;

void main() {
    fragColor = texture(uSrc, vUV);
}
`

var (
	defaultsOnce     sync.Once
	defaultBatchMat  *Material
	defaultBlitMat   *Material
	defaultsInitErr  bool
)

// InitDefaults compiles and links the engine's default shaders and
// materials. Must run once after gpu.Init and InitWhiteTexture. Panics
// (fatal configuration error) if the default shaders fail to compile —
// a broken default shader leaves the engine unable to draw anything,
// which is a program/build-time bug, not a recoverable runtime condition.
func InitDefaults() {
	defaultsOnce.Do(func() {
		batchShader, ok := NewShader(batchVertSrc, batchFragSrc, nil)
		if !ok {
			defaultsInitErr = true
			panic("graphics: default batch shader failed to compile")
		}
		blitShader, ok := NewShader(blitVertSrc, blitFragSrc, []string{"uSrc"})
		if !ok {
			defaultsInitErr = true
			panic("graphics: default blit shader failed to compile")
		}

		defaultBatchMat = NewMaterial(batchShader)
		defaultBlitMat = NewMaterial(blitShader)
	})
}

// DefaultBatchMaterial returns the singleton material every render scope
// falls back to when no material has been explicitly set.
func DefaultBatchMaterial() *Material {
	return defaultBatchMat
}

// DefaultBlitMaterial returns the singleton material the integer-scaling
// blit uses.
func DefaultBlitMaterial() *Material {
	return defaultBlitMat
}
