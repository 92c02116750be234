package graphics

import (
	"fmt"

	"github.com/pixelforge/pf2d/internal/gpu"
)

// Shader is a compiled vertex+fragment program plus the sampler uniform
// locations it declares, in declaration order. Batch textures occupy
// slots [SamplerCount, 16) in the reserved uTextures array; the shader's
// own declared samplers occupy [0, SamplerCount).
type Shader struct {
	prog         *gpu.Program
	samplerNames []string
	loc          map[string]int32
}

// NewShader compiles and links a vertex+fragment shader pair. samplerNames
// lists the shader's own declared sampler uniforms, in the order the
// shader expects them bound — this excludes the reserved uTextures array.
// Returns (nil, false) on a compile or link failure; the caller should log
// and fall back (resource-creation failure, §7).
func NewShader(vertSrc, fragSrc string, samplerNames []string) (*Shader, bool) {
	vert, err := gpu.CompileShader(vertSrc, gpu.VertexStage)
	if err != nil {
		log().Error("shader: vertex compile failed", "error", err)
		return nil, false
	}
	frag, err := gpu.CompileShader(fragSrc, gpu.FragmentStage)
	if err != nil {
		log().Error("shader: fragment compile failed", "error", err)
		return nil, false
	}
	prog, err := gpu.LinkProgram(vert, frag, samplerNames)
	if err != nil {
		log().Error("shader: link failed", "error", err)
		return nil, false
	}

	s := &Shader{prog: prog, samplerNames: samplerNames, loc: make(map[string]int32)}
	for _, n := range samplerNames {
		s.loc[n] = prog.UniformLocation(n)
	}
	return s, true
}

// SamplerCount is the number of shader-declared sampler uniforms.
func (s *Shader) SamplerCount() int {
	return len(s.samplerNames)
}

// SamplerIndex returns the slot index a shader-declared sampler name maps
// to, or -1 if name is not one of the shader's declared samplers.
func (s *Shader) SamplerIndex(name string) int {
	for i, n := range s.samplerNames {
		if n == name {
			return i
		}
	}
	return -1
}

// UniformLocation resolves a uniform location by name. Nothing is cached:
// every call queries the underlying program.
func (s *Shader) UniformLocation(name string) int32 {
	return s.prog.UniformLocation(name)
}

// Use activates the program and reports whether activation succeeded.
func (s *Shader) Use() bool {
	return s.prog.Use()
}

func (s *Shader) String() string {
	return fmt.Sprintf("Shader(samplers=%v)", s.samplerNames)
}
