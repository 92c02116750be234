package graphics

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/internal/gpu"
)

// UniformKind tags the concrete type a Uniform value holds.
type UniformKind int

const (
	UniformInt UniformKind = iota
	UniformIVec2
	UniformIVec3
	UniformIVec4
	UniformUint
	UniformUVec2
	UniformUVec3
	UniformUVec4
	UniformFloat
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat3
)

// Uniform is a tagged value set on a material, applied to its shader at
// bind time. There is no Go generic substitute here that fits the material
// uniform dictionary's need to hold mixed types keyed by name — a sum type
// expressed as a tagged struct is the idiomatic shape.
type Uniform struct {
	Kind  UniformKind
	I     int32
	IVec2 [2]int32
	IVec3 [3]int32
	IVec4 [4]int32
	U     uint32
	UVec2 [2]uint32
	UVec3 [3]uint32
	UVec4 [4]uint32
	F     float32
	Vec2  mgl32.Vec2
	Vec3  mgl32.Vec3
	Vec4  mgl32.Vec4
	Mat3  mgl32.Mat3
}

func UniformFromInt(v int32) Uniform     { return Uniform{Kind: UniformInt, I: v} }
func UniformFromUint(v uint32) Uniform   { return Uniform{Kind: UniformUint, U: v} }
func UniformFromFloat(v float32) Uniform { return Uniform{Kind: UniformFloat, F: v} }
func UniformFromVec2(v mgl32.Vec2) Uniform {
	return Uniform{Kind: UniformVec2, Vec2: v}
}
func UniformFromVec3(v mgl32.Vec3) Uniform {
	return Uniform{Kind: UniformVec3, Vec3: v}
}
func UniformFromVec4(v mgl32.Vec4) Uniform {
	return Uniform{Kind: UniformVec4, Vec4: v}
}
func UniformFromMat3(v mgl32.Mat3) Uniform {
	return Uniform{Kind: UniformMat3, Mat3: v}
}
func UniformFromIVec2(v [2]int32) Uniform  { return Uniform{Kind: UniformIVec2, IVec2: v} }
func UniformFromIVec3(v [3]int32) Uniform  { return Uniform{Kind: UniformIVec3, IVec3: v} }
func UniformFromIVec4(v [4]int32) Uniform  { return Uniform{Kind: UniformIVec4, IVec4: v} }
func UniformFromUVec2(v [2]uint32) Uniform { return Uniform{Kind: UniformUVec2, UVec2: v} }
func UniformFromUVec3(v [3]uint32) Uniform { return Uniform{Kind: UniformUVec3, UVec3: v} }
func UniformFromUVec4(v [4]uint32) Uniform { return Uniform{Kind: UniformUVec4, UVec4: v} }

var materialIDCounter atomic.Uint64

// MaterialID is a process-unique material identity used for batch
// compatibility checks (§4.1 predicate 3). The original engine derives
// this from a uuid; nothing in this pack carries a uuid library, so an
// atomic counter serves the same content-addressing role without adding
// an unwired dependency (see DESIGN.md).
type MaterialID uint64

// Material bundles a shader with the uniform values and sampler bindings
// the engine applies before each batch call that uses it. Materials are
// shared (multiple batch calls hold the same *Material); identity for
// coalescing purposes is MaterialID, not pointer equality, matching the
// original's content-addressing contract.
type Material struct {
	id       MaterialID
	shader   *Shader
	uniforms map[string]Uniform
	samplers map[string]*TextureHandle
}

// NewMaterial wraps shader with an empty uniform/sampler dictionary.
func NewMaterial(shader *Shader) *Material {
	return &Material{
		id:       MaterialID(materialIDCounter.Add(1)),
		shader:   shader,
		uniforms: make(map[string]Uniform),
		samplers: make(map[string]*TextureHandle),
	}
}

// ID returns the material's content-address identity.
func (m *Material) ID() MaterialID { return m.id }

// Shader returns the material's backing shader.
func (m *Material) Shader() *Shader { return m.shader }

// SamplerCount forwards to the backing shader's declared sampler count.
func (m *Material) SamplerCount() int { return m.shader.SamplerCount() }

// SetUniform stores a uniform value to apply on the next bind.
func (m *Material) SetUniform(name string, v Uniform) {
	m.uniforms[name] = v
}

// SetSampler binds a texture handle to one of the shader's declared
// sampler uniforms.
func (m *Material) SetSampler(name string, tex *TextureHandle) {
	m.samplers[name] = tex
}

// bind activates the material's shader, applies its uniforms and its own
// declared samplers (occupying the low texture units), and returns the
// next free texture unit for the batch call's own textures. Returns
// (0, false) on a soft failure (§7) — the caller skips the draw call.
func (m *Material) bind() (int, bool) {
	if !m.shader.Use() {
		log().Warn("material: shader activation failed", "material", m.id)
		return 0, false
	}

	ok := true
	for name, v := range m.uniforms {
		loc := m.shader.UniformLocation(name)
		if !applyUniform(loc, v) {
			log().Warn("material: uniform set failed", "material", m.id, "uniform", name)
			ok = false
		}
	}

	unit := 0
	for name, tex := range m.samplers {
		idx := m.shader.SamplerIndex(name)
		if idx < 0 || tex == nil {
			continue
		}
		tex.bind(uint32(idx))
		if !gpu.SetUniform1i(m.shader.UniformLocation(name), int32(idx)) {
			log().Warn("material: sampler bind failed", "material", m.id, "sampler", name)
			ok = false
		}
		unit++
	}

	return m.SamplerCount(), ok
}

func applyUniform(loc int32, v Uniform) bool {
	switch v.Kind {
	case UniformInt:
		return gpu.SetUniform1i(loc, v.I)
	case UniformUint:
		return gpu.SetUniform1ui(loc, v.U)
	case UniformFloat:
		return gpu.SetUniform1f(loc, v.F)
	case UniformVec2:
		return gpu.SetUniform2f(loc, v.Vec2)
	case UniformVec3:
		return gpu.SetUniform3f(loc, v.Vec3)
	case UniformVec4:
		return gpu.SetUniform4f(loc, v.Vec4)
	case UniformMat3:
		return gpu.SetUniformMat3(loc, v.Mat3)
	case UniformIVec2:
		return gpu.SetUniform2i(loc, v.IVec2)
	case UniformIVec3:
		return gpu.SetUniform3i(loc, v.IVec3)
	case UniformIVec4:
		return gpu.SetUniform4i(loc, v.IVec4)
	case UniformUVec2:
		return gpu.SetUniform2ui(loc, v.UVec2)
	case UniformUVec3:
		return gpu.SetUniform3ui(loc, v.UVec3)
	case UniformUVec4:
		return gpu.SetUniform4ui(loc, v.UVec4)
	default:
		return true
	}
}
