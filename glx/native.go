package glx

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// Native issues commands through the go-gl bindings. A current OpenGL 4.5
// context is required before any method is called; Load enforces that by
// initializing the bindings against the current context.
type Native struct{}

// Load initializes the go-gl function pointers against the current context
// and returns the native command table.
func Load() (Native, error) {
	if err := gl.Init(); err != nil {
		return Native{}, fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
	}
	return Native{}, nil
}

func (Native) CreateBuffer() uint32 {
	var b uint32
	gl.CreateBuffers(1, &b)
	return b
}

func (Native) NamedBufferStorage(buf uint32, size int, data unsafe.Pointer, flags Enum) {
	gl.NamedBufferStorage(buf, size, data, flags)
}

func (Native) NamedBufferSubData(buf uint32, offset, size int, data unsafe.Pointer) {
	gl.NamedBufferSubData(buf, offset, size, data)
}

func (Native) GetNamedBufferSubData(buf uint32, offset, size int, data unsafe.Pointer) {
	gl.GetNamedBufferSubData(buf, offset, size, data)
}

func (Native) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (Native) CreateTexture(target Enum) uint32 {
	var t uint32
	gl.CreateTextures(target, 1, &t)
	return t
}

func (Native) TextureStorage2D(tex uint32, levels int32, internalFormat Enum, width, height int32) {
	gl.TextureStorage2D(tex, levels, internalFormat, width, height)
}

func (Native) TextureSubImage2D(tex uint32, level, x, y, width, height int32, format, xtype Enum, pixels unsafe.Pointer) {
	gl.TextureSubImage2D(tex, level, x, y, width, height, format, xtype, pixels)
}

func (Native) ClearTexSubImage(tex uint32, level, x, y, width, height int32, format, xtype Enum, value unsafe.Pointer) {
	gl.ClearTexSubImage(tex, level, x, y, 0, width, height, 1, format, xtype, value)
}

func (Native) GenerateTextureMipmap(tex uint32) {
	gl.GenerateTextureMipmap(tex)
}

func (Native) TextureParameteri(tex uint32, pname Enum, value int32) {
	gl.TextureParameteri(tex, pname, value)
}

func (Native) BindTextureUnit(unit uint32, tex uint32) {
	gl.BindTextureUnit(unit, tex)
}

func (Native) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (Native) CreateSampler() uint32 {
	var s uint32
	gl.CreateSamplers(1, &s)
	return s
}

func (Native) SamplerParameteri(sampler uint32, pname Enum, value int32) {
	gl.SamplerParameteri(sampler, pname, value)
}

func (Native) BindSampler(unit uint32, sampler uint32) {
	gl.BindSampler(unit, sampler)
}

func (Native) DeleteSampler(sampler uint32) {
	gl.DeleteSamplers(1, &sampler)
}

func (Native) CreateRenderbuffer() uint32 {
	var rb uint32
	gl.CreateRenderbuffers(1, &rb)
	return rb
}

func (Native) NamedRenderbufferStorage(rb uint32, internalFormat Enum, width, height int32) {
	gl.NamedRenderbufferStorage(rb, internalFormat, width, height)
}

func (Native) DeleteRenderbuffer(rb uint32) {
	gl.DeleteRenderbuffers(1, &rb)
}

func (Native) CreateFramebuffer() uint32 {
	var fb uint32
	gl.CreateFramebuffers(1, &fb)
	return fb
}

func (Native) NamedFramebufferTexture(fb uint32, attachment Enum, tex uint32, level int32) {
	gl.NamedFramebufferTexture(fb, attachment, tex, level)
}

func (Native) NamedFramebufferRenderbuffer(fb uint32, attachment Enum, rb uint32) {
	gl.NamedFramebufferRenderbuffer(fb, attachment, gl.RENDERBUFFER, rb)
}

func (Native) CheckNamedFramebufferStatus(fb uint32, target Enum) Enum {
	return gl.CheckNamedFramebufferStatus(fb, target)
}

func (Native) BindFramebuffer(target Enum, fb uint32) {
	gl.BindFramebuffer(target, fb)
}

func (Native) DeleteFramebuffer(fb uint32) {
	gl.DeleteFramebuffers(1, &fb)
}

func (Native) CreateShader(kind Enum) uint32 {
	return gl.CreateShader(kind)
}

func (Native) ShaderSource(shader uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (Native) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Native) GetShaderi(shader uint32, pname Enum) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (Native) GetShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Native) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Native) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Native) AttachShader(prog, shader uint32) {
	gl.AttachShader(prog, shader)
}

func (Native) LinkProgram(prog uint32) {
	gl.LinkProgram(prog)
}

func (Native) GetProgrami(prog uint32, pname Enum) int32 {
	var v int32
	gl.GetProgramiv(prog, pname, &v)
	return v
}

func (Native) GetProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Native) GetUniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

func (Native) UseProgram(prog uint32) {
	gl.UseProgram(prog)
}

func (Native) DeleteProgram(prog uint32) {
	gl.DeleteProgram(prog)
}

func (Native) ProgramUniform1i(prog uint32, loc int32, v int32) {
	gl.ProgramUniform1i(prog, loc, v)
}

func (Native) ProgramUniform1ui(prog uint32, loc int32, v uint32) {
	gl.ProgramUniform1ui(prog, loc, v)
}

func (Native) ProgramUniform1f(prog uint32, loc int32, v float32) {
	gl.ProgramUniform1f(prog, loc, v)
}

func (Native) ProgramUniform1iv(prog uint32, loc int32, count int32, v *int32) {
	gl.ProgramUniform1iv(prog, loc, count, v)
}

func (Native) ProgramUniform1uiv(prog uint32, loc int32, count int32, v *uint32) {
	gl.ProgramUniform1uiv(prog, loc, count, v)
}

func (Native) ProgramUniform1fv(prog uint32, loc int32, count int32, v *float32) {
	gl.ProgramUniform1fv(prog, loc, count, v)
}

func (Native) ProgramUniform2fv(prog uint32, loc int32, count int32, v *float32) {
	gl.ProgramUniform2fv(prog, loc, count, v)
}

func (Native) ProgramUniform3fv(prog uint32, loc int32, count int32, v *float32) {
	gl.ProgramUniform3fv(prog, loc, count, v)
}

func (Native) ProgramUniform4fv(prog uint32, loc int32, count int32, v *float32) {
	gl.ProgramUniform4fv(prog, loc, count, v)
}

func (Native) ProgramUniformMatrix4fv(prog uint32, loc int32, count int32, transpose bool, v *float32) {
	gl.ProgramUniformMatrix4fv(prog, loc, count, transpose, v)
}

func (Native) CreateVertexArray() uint32 {
	var vao uint32
	gl.CreateVertexArrays(1, &vao)
	return vao
}

func (Native) VertexArrayVertexBuffer(vao uint32, binding uint32, buf uint32, offset int, stride int32) {
	gl.VertexArrayVertexBuffer(vao, binding, buf, offset, stride)
}

func (Native) VertexArrayElementBuffer(vao uint32, buf uint32) {
	gl.VertexArrayElementBuffer(vao, buf)
}

func (Native) EnableVertexArrayAttrib(vao uint32, attrib uint32) {
	gl.EnableVertexArrayAttrib(vao, attrib)
}

func (Native) VertexArrayAttribFormat(vao uint32, attrib uint32, size int32, xtype Enum, normalized bool, relOffset uint32) {
	gl.VertexArrayAttribFormat(vao, attrib, size, xtype, normalized, relOffset)
}

func (Native) VertexArrayAttribIFormat(vao uint32, attrib uint32, size int32, xtype Enum, relOffset uint32) {
	gl.VertexArrayAttribIFormat(vao, attrib, size, xtype, relOffset)
}

func (Native) VertexArrayAttribBinding(vao uint32, attrib uint32, binding uint32) {
	gl.VertexArrayAttribBinding(vao, attrib, binding)
}

func (Native) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (Native) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (Native) Enable(cap Enum) {
	gl.Enable(cap)
}

func (Native) Disable(cap Enum) {
	gl.Disable(cap)
}

func (Native) BlendFunc(sfactor, dfactor Enum) {
	gl.BlendFunc(sfactor, dfactor)
}

func (Native) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Native) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Native) Clear(mask Enum) {
	gl.Clear(mask)
}

func (Native) DrawArrays(mode Enum, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (Native) DrawElements(mode Enum, count int32, xtype Enum, offset int) {
	gl.DrawElementsWithOffset(mode, count, xtype, uintptr(offset))
}

func (Native) GetError() Enum {
	return gl.GetError()
}
