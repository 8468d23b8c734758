package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"glbatch/glx"
)

// GL45 is the OpenGL 4.5 core shader backend. All five stage kinds are
// available on a 4.5 context.
type GL45 struct {
	f glx.Funcs
}

// NewGL45 builds the driver over a GL command table.
func NewGL45(f glx.Funcs) GL45 {
	return GL45{f: f}
}

func (GL45) SupportsStage(kind StageKind) bool {
	switch kind {
	case Vertex, Fragment, Geometry, TessControl, TessEval:
		return true
	}
	return false
}

func stageEnum(kind StageKind) glx.Enum {
	switch kind {
	case Vertex:
		return glx.VERTEX_SHADER
	case Fragment:
		return glx.FRAGMENT_SHADER
	case Geometry:
		return glx.GEOMETRY_SHADER
	case TessControl:
		return glx.TESS_CONTROL_SHADER
	default:
		return glx.TESS_EVALUATION_SHADER
	}
}

func (d GL45) CompileStage(kind StageKind, source string) (Stage, error) {
	name := d.f.CreateShader(stageEnum(kind))
	d.f.ShaderSource(name, source)
	d.f.CompileShader(name)
	if d.f.GetShaderi(name, glx.COMPILE_STATUS) == 0 {
		log := d.f.GetShaderInfoLog(name)
		d.f.DeleteShader(name)
		return nil, &CompileError{Kind: kind, Log: log}
	}
	return &glStage{f: d.f, kind: kind, name: name}, nil
}

func (d GL45) LinkProgram(stages []Stage) (Object, error) {
	prog := d.f.CreateProgram()
	for _, st := range stages {
		gs, ok := st.(*glStage)
		if !ok {
			d.f.DeleteProgram(prog)
			return nil, fmt.Errorf("stage %s was not compiled by this backend", st.Kind())
		}
		d.f.AttachShader(prog, gs.name)
	}
	d.f.LinkProgram(prog)
	if d.f.GetProgrami(prog, glx.LINK_STATUS) == 0 {
		log := d.f.GetProgramInfoLog(prog)
		d.f.DeleteProgram(prog)
		return nil, &LinkError{Log: log}
	}
	return &glProgram{f: d.f, name: prog}, nil
}

type glStage struct {
	f    glx.Funcs
	kind StageKind
	name uint32
}

func (s *glStage) Kind() StageKind { return s.kind }

func (s *glStage) Destroy() error {
	s.f.DeleteShader(s.name)
	return nil
}

type glProgram struct {
	f    glx.Funcs
	name uint32
}

func (p *glProgram) Bind() {
	p.f.UseProgram(p.name)
}

func (p *glProgram) UniformLocation(name string) (int32, bool) {
	loc := p.f.GetUniformLocation(p.name, name)
	return loc, loc >= 0
}

// Write dispatches one uniform write to the matching ProgramUniform entry
// point. The typed layer restricts value to the closed Value set.
func (p *glProgram) Write(loc int32, value any) {
	f, prog := p.f, p.name
	switch v := value.(type) {
	case int32:
		f.ProgramUniform1i(prog, loc, v)
	case uint32:
		f.ProgramUniform1ui(prog, loc, v)
	case float32:
		f.ProgramUniform1f(prog, loc, v)
	case mgl32.Vec2:
		f.ProgramUniform2fv(prog, loc, 1, &v[0])
	case mgl32.Vec3:
		f.ProgramUniform3fv(prog, loc, 1, &v[0])
	case mgl32.Vec4:
		f.ProgramUniform4fv(prog, loc, 1, &v[0])
	case mgl32.Mat4:
		f.ProgramUniformMatrix4fv(prog, loc, 1, false, &v[0])
	case []int32:
		if len(v) > 0 {
			f.ProgramUniform1iv(prog, loc, int32(len(v)), &v[0])
		}
	case []uint32:
		if len(v) > 0 {
			f.ProgramUniform1uiv(prog, loc, int32(len(v)), &v[0])
		}
	case []float32:
		if len(v) > 0 {
			f.ProgramUniform1fv(prog, loc, int32(len(v)), &v[0])
		}
	case []mgl32.Vec2:
		if len(v) > 0 {
			f.ProgramUniform2fv(prog, loc, int32(len(v)), &v[0][0])
		}
	case []mgl32.Vec3:
		if len(v) > 0 {
			f.ProgramUniform3fv(prog, loc, int32(len(v)), &v[0][0])
		}
	case []mgl32.Vec4:
		if len(v) > 0 {
			f.ProgramUniform4fv(prog, loc, int32(len(v)), &v[0][0])
		}
	case []mgl32.Mat4:
		if len(v) > 0 {
			f.ProgramUniformMatrix4fv(prog, loc, int32(len(v)), false, &v[0][0])
		}
	}
}

func (p *glProgram) Destroy() error {
	p.f.DeleteProgram(p.name)
	return nil
}
