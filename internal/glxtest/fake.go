// Package glxtest provides a recording in-memory implementation of
// glx.Funcs for tests. Object names are handed out from one counter,
// interesting calls are appended to Calls for assertions, and buffer
// storage is backed by host memory so region reads round-trip.
package glxtest

import (
	"fmt"
	"strings"
	"unsafe"

	"glbatch/glx"
)

type Fake struct {
	Calls []string

	// CompileFail / LinkFail force shader compilation or program linking
	// to report failure with Log as the info log.
	CompileFail bool
	LinkFail    bool
	Log         string

	// UniformLocs backs GetUniformLocation; names absent from the map
	// resolve to -1.
	UniformLocs map[string]int32

	// FramebufferStatus overrides the completeness check result; zero
	// means complete.
	FramebufferStatus glx.Enum

	// ErrorCode is returned (once) by the next GetError call.
	ErrorCode glx.Enum

	names   uint32
	buffers map[uint32][]byte
}

func New() *Fake {
	return &Fake{buffers: make(map[uint32][]byte)}
}

func (f *Fake) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

// Count returns how many recorded calls start with prefix.
func (f *Fake) Count(prefix string) int {
	n := 0
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *Fake) nextName() uint32 {
	f.names++
	return f.names
}

func (f *Fake) CreateBuffer() uint32 {
	name := f.nextName()
	f.record("CreateBuffer() = %d", name)
	return name
}

func (f *Fake) NamedBufferStorage(buf uint32, size int, data unsafe.Pointer, flags glx.Enum) {
	f.record("NamedBufferStorage(%d, %d)", buf, size)
	store := make([]byte, size)
	if data != nil {
		copy(store, unsafe.Slice((*byte)(data), size))
	}
	f.buffers[buf] = store
}

func (f *Fake) NamedBufferSubData(buf uint32, offset, size int, data unsafe.Pointer) {
	f.record("NamedBufferSubData(%d, %d, %d)", buf, offset, size)
	if store, ok := f.buffers[buf]; ok && offset+size <= len(store) {
		copy(store[offset:offset+size], unsafe.Slice((*byte)(data), size))
	}
}

func (f *Fake) GetNamedBufferSubData(buf uint32, offset, size int, data unsafe.Pointer) {
	f.record("GetNamedBufferSubData(%d, %d, %d)", buf, offset, size)
	if store, ok := f.buffers[buf]; ok && offset+size <= len(store) {
		copy(unsafe.Slice((*byte)(data), size), store[offset:offset+size])
	}
}

func (f *Fake) DeleteBuffer(buf uint32) {
	f.record("DeleteBuffer(%d)", buf)
	delete(f.buffers, buf)
}

func (f *Fake) CreateTexture(target glx.Enum) uint32 {
	name := f.nextName()
	f.record("CreateTexture(0x%04x) = %d", target, name)
	return name
}

func (f *Fake) TextureStorage2D(tex uint32, levels int32, internalFormat glx.Enum, width, height int32) {
	f.record("TextureStorage2D(%d, %d, 0x%04x, %d, %d)", tex, levels, internalFormat, width, height)
}

func (f *Fake) TextureSubImage2D(tex uint32, level, x, y, width, height int32, format, xtype glx.Enum, pixels unsafe.Pointer) {
	f.record("TextureSubImage2D(%d, %d, %d, %d, %d, %d)", tex, level, x, y, width, height)
}

func (f *Fake) ClearTexSubImage(tex uint32, level, x, y, width, height int32, format, xtype glx.Enum, value unsafe.Pointer) {
	f.record("ClearTexSubImage(%d, %d, %d, %d, %d, %d)", tex, level, x, y, width, height)
}

func (f *Fake) GenerateTextureMipmap(tex uint32) {
	f.record("GenerateTextureMipmap(%d)", tex)
}

func (f *Fake) TextureParameteri(tex uint32, pname glx.Enum, value int32) {
	f.record("TextureParameteri(%d, 0x%04x, %d)", tex, pname, value)
}

func (f *Fake) BindTextureUnit(unit uint32, tex uint32) {
	f.record("BindTextureUnit(%d, %d)", unit, tex)
}

func (f *Fake) DeleteTexture(tex uint32) {
	f.record("DeleteTexture(%d)", tex)
}

func (f *Fake) CreateSampler() uint32 {
	name := f.nextName()
	f.record("CreateSampler() = %d", name)
	return name
}

func (f *Fake) SamplerParameteri(sampler uint32, pname glx.Enum, value int32) {
	f.record("SamplerParameteri(%d, 0x%04x, %d)", sampler, pname, value)
}

func (f *Fake) BindSampler(unit uint32, sampler uint32) {
	f.record("BindSampler(%d, %d)", unit, sampler)
}

func (f *Fake) DeleteSampler(sampler uint32) {
	f.record("DeleteSampler(%d)", sampler)
}

func (f *Fake) CreateRenderbuffer() uint32 {
	name := f.nextName()
	f.record("CreateRenderbuffer() = %d", name)
	return name
}

func (f *Fake) NamedRenderbufferStorage(rb uint32, internalFormat glx.Enum, width, height int32) {
	f.record("NamedRenderbufferStorage(%d, 0x%04x, %d, %d)", rb, internalFormat, width, height)
}

func (f *Fake) DeleteRenderbuffer(rb uint32) {
	f.record("DeleteRenderbuffer(%d)", rb)
}

func (f *Fake) CreateFramebuffer() uint32 {
	name := f.nextName()
	f.record("CreateFramebuffer() = %d", name)
	return name
}

func (f *Fake) NamedFramebufferTexture(fb uint32, attachment glx.Enum, tex uint32, level int32) {
	f.record("NamedFramebufferTexture(%d, 0x%04x, %d, %d)", fb, attachment, tex, level)
}

func (f *Fake) NamedFramebufferRenderbuffer(fb uint32, attachment glx.Enum, rb uint32) {
	f.record("NamedFramebufferRenderbuffer(%d, 0x%04x, %d)", fb, attachment, rb)
}

func (f *Fake) CheckNamedFramebufferStatus(fb uint32, target glx.Enum) glx.Enum {
	if f.FramebufferStatus != 0 {
		return f.FramebufferStatus
	}
	return glx.FRAMEBUFFER_COMPLETE
}

func (f *Fake) BindFramebuffer(target glx.Enum, fb uint32) {
	f.record("BindFramebuffer(%d)", fb)
}

func (f *Fake) DeleteFramebuffer(fb uint32) {
	f.record("DeleteFramebuffer(%d)", fb)
}

func (f *Fake) CreateShader(kind glx.Enum) uint32 {
	name := f.nextName()
	f.record("CreateShader(0x%04x) = %d", kind, name)
	return name
}

func (f *Fake) ShaderSource(shader uint32, source string) {
	f.record("ShaderSource(%d)", shader)
}

func (f *Fake) CompileShader(shader uint32) {
	f.record("CompileShader(%d)", shader)
}

func (f *Fake) GetShaderi(shader uint32, pname glx.Enum) int32 {
	if pname == glx.COMPILE_STATUS && f.CompileFail {
		return 0
	}
	return 1
}

func (f *Fake) GetShaderInfoLog(shader uint32) string {
	return f.Log
}

func (f *Fake) DeleteShader(shader uint32) {
	f.record("DeleteShader(%d)", shader)
}

func (f *Fake) CreateProgram() uint32 {
	name := f.nextName()
	f.record("CreateProgram() = %d", name)
	return name
}

func (f *Fake) AttachShader(prog, shader uint32) {
	f.record("AttachShader(%d, %d)", prog, shader)
}

func (f *Fake) LinkProgram(prog uint32) {
	f.record("LinkProgram(%d)", prog)
}

func (f *Fake) GetProgrami(prog uint32, pname glx.Enum) int32 {
	if pname == glx.LINK_STATUS && f.LinkFail {
		return 0
	}
	return 1
}

func (f *Fake) GetProgramInfoLog(prog uint32) string {
	return f.Log
}

func (f *Fake) GetUniformLocation(prog uint32, name string) int32 {
	if loc, ok := f.UniformLocs[name]; ok {
		return loc
	}
	return -1
}

func (f *Fake) UseProgram(prog uint32) {
	f.record("UseProgram(%d)", prog)
}

func (f *Fake) DeleteProgram(prog uint32) {
	f.record("DeleteProgram(%d)", prog)
}

func (f *Fake) ProgramUniform1i(prog uint32, loc int32, v int32) {
	f.record("ProgramUniform1i(%d, %d, %d)", prog, loc, v)
}

func (f *Fake) ProgramUniform1ui(prog uint32, loc int32, v uint32) {
	f.record("ProgramUniform1ui(%d, %d, %d)", prog, loc, v)
}

func (f *Fake) ProgramUniform1f(prog uint32, loc int32, v float32) {
	f.record("ProgramUniform1f(%d, %d, %g)", prog, loc, v)
}

func (f *Fake) ProgramUniform1iv(prog uint32, loc int32, count int32, v *int32) {
	f.record("ProgramUniform1iv(%d, %d, %d)", prog, loc, count)
}

func (f *Fake) ProgramUniform1uiv(prog uint32, loc int32, count int32, v *uint32) {
	f.record("ProgramUniform1uiv(%d, %d, %d)", prog, loc, count)
}

func (f *Fake) ProgramUniform1fv(prog uint32, loc int32, count int32, v *float32) {
	f.record("ProgramUniform1fv(%d, %d, %d)", prog, loc, count)
}

func (f *Fake) ProgramUniform2fv(prog uint32, loc int32, count int32, v *float32) {
	f.record("ProgramUniform2fv(%d, %d, %d)", prog, loc, count)
}

func (f *Fake) ProgramUniform3fv(prog uint32, loc int32, count int32, v *float32) {
	f.record("ProgramUniform3fv(%d, %d, %d)", prog, loc, count)
}

func (f *Fake) ProgramUniform4fv(prog uint32, loc int32, count int32, v *float32) {
	f.record("ProgramUniform4fv(%d, %d, %d)", prog, loc, count)
}

func (f *Fake) ProgramUniformMatrix4fv(prog uint32, loc int32, count int32, transpose bool, v *float32) {
	f.record("ProgramUniformMatrix4fv(%d, %d, %d)", prog, loc, count)
}

func (f *Fake) CreateVertexArray() uint32 {
	name := f.nextName()
	f.record("CreateVertexArray() = %d", name)
	return name
}

func (f *Fake) VertexArrayVertexBuffer(vao uint32, binding uint32, buf uint32, offset int, stride int32) {
	f.record("VertexArrayVertexBuffer(%d, %d, %d, %d, %d)", vao, binding, buf, offset, stride)
}

func (f *Fake) VertexArrayElementBuffer(vao uint32, buf uint32) {
	f.record("VertexArrayElementBuffer(%d, %d)", vao, buf)
}

func (f *Fake) EnableVertexArrayAttrib(vao uint32, attrib uint32) {
	f.record("EnableVertexArrayAttrib(%d, %d)", vao, attrib)
}

func (f *Fake) VertexArrayAttribFormat(vao uint32, attrib uint32, size int32, xtype glx.Enum, normalized bool, relOffset uint32) {
	f.record("VertexArrayAttribFormat(%d, %d, %d, 0x%04x, %d)", vao, attrib, size, xtype, relOffset)
}

func (f *Fake) VertexArrayAttribIFormat(vao uint32, attrib uint32, size int32, xtype glx.Enum, relOffset uint32) {
	f.record("VertexArrayAttribIFormat(%d, %d, %d, 0x%04x, %d)", vao, attrib, size, xtype, relOffset)
}

func (f *Fake) VertexArrayAttribBinding(vao uint32, attrib uint32, binding uint32) {
	f.record("VertexArrayAttribBinding(%d, %d, %d)", vao, attrib, binding)
}

func (f *Fake) BindVertexArray(vao uint32) {
	f.record("BindVertexArray(%d)", vao)
}

func (f *Fake) DeleteVertexArray(vao uint32) {
	f.record("DeleteVertexArray(%d)", vao)
}

func (f *Fake) Enable(cap glx.Enum) {
	f.record("Enable(0x%04x)", cap)
}

func (f *Fake) Disable(cap glx.Enum) {
	f.record("Disable(0x%04x)", cap)
}

func (f *Fake) BlendFunc(sfactor, dfactor glx.Enum) {
	f.record("BlendFunc(0x%04x, 0x%04x)", sfactor, dfactor)
}

func (f *Fake) Viewport(x, y, width, height int32) {
	f.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (f *Fake) ClearColor(r, g, b, a float32) {
	f.record("ClearColor(%g, %g, %g, %g)", r, g, b, a)
}

func (f *Fake) Clear(mask glx.Enum) {
	f.record("Clear(0x%04x)", mask)
}

func (f *Fake) DrawArrays(mode glx.Enum, first, count int32) {
	f.record("DrawArrays(0x%04x, %d, %d)", mode, first, count)
}

func (f *Fake) DrawElements(mode glx.Enum, count int32, xtype glx.Enum, offset int) {
	f.record("DrawElements(0x%04x, %d, 0x%04x, %d)", mode, count, xtype, offset)
}

func (f *Fake) GetError() glx.Enum {
	code := f.ErrorCode
	f.ErrorCode = glx.NO_ERROR
	return code
}
