package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderStage identifies a shader's pipeline stage.
type ShaderStage uint32

const (
	VertexStage   ShaderStage = gl.VERTEX_SHADER
	FragmentStage ShaderStage = gl.FRAGMENT_SHADER
)

// Shader is a single compiled shader stage.
type Shader struct {
	id    uint32
	stage ShaderStage
}

// CompileShader compiles src for the given stage. Returns (nil, err) on a
// compile error — a resource-creation failure per the engine's error
// taxonomy, not a fatal one: the caller logs and may fall back.
func CompileShader(src string, stage ShaderStage) (*Shader, error) {
	AssertMainThread()

	id := gl.CreateShader(uint32(stage))
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := shaderInfoLog(id)
		gl.DeleteShader(id)
		return nil, fmt.Errorf("gpu: shader compile failed: %s", msg)
	}

	return &Shader{id: id, stage: stage}, nil
}

func shaderInfoLog(id uint32) string {
	var length int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)
	log := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(id, length, nil, gl.Str(log))
	return log
}

// Program is a linked vertex+fragment shader program.
type Program struct {
	id       uint32
	samplers []int32 // uniform locations discovered for declared sampler uniforms
}

// LinkProgram links vert and frag into a program. samplerNames lists the
// sampler-array uniform names to resolve locations for, in declaration
// order (excluding the reserved texture-array uniform, which the batch
// render calls set directly). Returns (nil, err) on a link error.
func LinkProgram(vert, frag *Shader, samplerNames []string) (*Program, error) {
	AssertMainThread()

	id := gl.CreateProgram()
	gl.AttachShader(id, vert.id)
	gl.AttachShader(id, frag.id)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(id, length, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("gpu: program link failed: %s", log)
	}

	gl.DeleteShader(vert.id)
	gl.DeleteShader(frag.id)

	p := &Program{id: id}
	for _, name := range samplerNames {
		loc := gl.GetUniformLocation(id, gl.Str(name+"\x00"))
		if loc >= 0 {
			p.samplers = append(p.samplers, loc)
		}
	}
	return p, nil
}

// Use activates the program. It performs no validation and always
// returns true.
func (p *Program) Use() bool {
	AssertMainThread()
	gl.UseProgram(p.id)
	return true
}

// UniformLocation resolves a uniform's location, or -1 if absent.
func (p *Program) UniformLocation(name string) int32 {
	AssertMainThread()
	return gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
}

// SamplerCount returns how many declared sampler uniforms this program has
// (excluding the reserved batch texture array).
func (p *Program) SamplerCount() int {
	return len(p.samplers)
}

// Delete releases the program object.
func (p *Program) Delete() {
	AssertMainThread()
	gl.DeleteProgram(p.id)
	p.id = 0
}

// Uniform setters. Each returns false if the GL error state indicates the
// set failed — a soft error the caller logs and continues past.

func SetUniform1i(loc int32, v int32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform1i(loc, v)
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform1iv(loc int32, v []int32) bool {
	if loc < 0 || len(v) == 0 {
		return true
	}
	gl.Uniform1iv(loc, int32(len(v)), &v[0])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform1ui(loc int32, v uint32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform1ui(loc, v)
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform1f(loc int32, v float32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform1f(loc, v)
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform2f(loc int32, v mgl32.Vec2) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform2f(loc, v[0], v[1])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform3f(loc int32, v mgl32.Vec3) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform3f(loc, v[0], v[1], v[2])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform4f(loc int32, v mgl32.Vec4) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniformMat3(loc int32, m mgl32.Mat3) bool {
	if loc < 0 {
		return true
	}
	gl.UniformMatrix3fv(loc, 1, false, &m[0])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform2i(loc int32, v [2]int32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform2i(loc, v[0], v[1])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform3i(loc int32, v [3]int32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform3i(loc, v[0], v[1], v[2])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform4i(loc int32, v [4]int32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform4i(loc, v[0], v[1], v[2], v[3])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform2ui(loc int32, v [2]uint32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform2ui(loc, v[0], v[1])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform3ui(loc int32, v [3]uint32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform3ui(loc, v[0], v[1], v[2])
	return gl.GetError() == gl.NO_ERROR
}

func SetUniform4ui(loc int32, v [4]uint32) bool {
	if loc < 0 {
		return true
	}
	gl.Uniform4ui(loc, v[0], v[1], v[2], v[3])
	return gl.GetError() == gl.NO_ERROR
}
