// Package glx defines the subset of the OpenGL 4.5 core API that glbatch
// issues, as an interface so the rest of the module is independent of the
// native bindings. Native() returns the go-gl backed implementation; tests
// substitute recording fakes.
package glx

import "unsafe"

// Enum is a GL enumeration value.
type Enum = uint32

// GL constants used by this module. Values are the standard OpenGL ones.
const (
	POINTS    Enum = 0x0000
	LINES     Enum = 0x0001
	TRIANGLES Enum = 0x0004

	BLEND      Enum = 0x0BE2
	DEPTH_TEST Enum = 0x0B71

	ZERO                Enum = 0
	ONE                 Enum = 1
	SRC_COLOR           Enum = 0x0300
	ONE_MINUS_SRC_COLOR Enum = 0x0301
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	DST_ALPHA           Enum = 0x0304
	ONE_MINUS_DST_ALPHA Enum = 0x0305

	UNSIGNED_BYTE Enum = 0x1401
	INT           Enum = 0x1404
	UNSIGNED_INT  Enum = 0x1405
	FLOAT         Enum = 0x1406

	VERTEX_SHADER          Enum = 0x8B31
	FRAGMENT_SHADER        Enum = 0x8B30
	GEOMETRY_SHADER        Enum = 0x8DD9
	TESS_CONTROL_SHADER    Enum = 0x8E88
	TESS_EVALUATION_SHADER Enum = 0x8E87
	COMPILE_STATUS         Enum = 0x8B81
	LINK_STATUS            Enum = 0x8B82

	TEXTURE_2D Enum = 0x0DE1

	RGBA            Enum = 0x1908
	RGB             Enum = 0x1907
	RED             Enum = 0x1903
	DEPTH_COMPONENT Enum = 0x1902

	R8                 Enum = 0x8229
	RGB8               Enum = 0x8051
	RGBA8              Enum = 0x8058
	R32F               Enum = 0x822E
	RGBA32F            Enum = 0x8814
	DEPTH_COMPONENT32F Enum = 0x8CAC

	TEXTURE_MAG_FILTER     Enum = 0x2800
	TEXTURE_MIN_FILTER     Enum = 0x2801
	TEXTURE_WRAP_S         Enum = 0x2802
	TEXTURE_WRAP_T         Enum = 0x2803
	TEXTURE_COMPARE_MODE   Enum = 0x884C
	TEXTURE_COMPARE_FUNC   Enum = 0x884D
	COMPARE_REF_TO_TEXTURE Enum = 0x884E
	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	CLAMP_TO_EDGE          Enum = 0x812F
	REPEAT                 Enum = 0x2901

	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	FRAMEBUFFER          Enum = 0x8D40
	RENDERBUFFER         Enum = 0x8D41
	COLOR_ATTACHMENT0    Enum = 0x8CE0
	DEPTH_ATTACHMENT     Enum = 0x8D00
	FRAMEBUFFER_COMPLETE Enum = 0x8CD5

	DYNAMIC_STORAGE_BIT Enum = 0x0100

	COLOR_BUFFER_BIT Enum = 0x4000
	DEPTH_BUFFER_BIT Enum = 0x0100

	NO_ERROR                      Enum = 0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	STACK_OVERFLOW                Enum = 0x0503
	STACK_UNDERFLOW               Enum = 0x0504
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
)

// Funcs is the GL command surface glbatch issues. All object-manipulating
// entry points are the 4.5 direct-state-access forms, so no bind-to-edit
// state is threaded through the wrappers.
type Funcs interface {
	// Buffer objects.
	CreateBuffer() uint32
	NamedBufferStorage(buf uint32, size int, data unsafe.Pointer, flags Enum)
	NamedBufferSubData(buf uint32, offset, size int, data unsafe.Pointer)
	GetNamedBufferSubData(buf uint32, offset, size int, data unsafe.Pointer)
	DeleteBuffer(buf uint32)

	// Texture objects.
	CreateTexture(target Enum) uint32
	TextureStorage2D(tex uint32, levels int32, internalFormat Enum, width, height int32)
	TextureSubImage2D(tex uint32, level, x, y, width, height int32, format, xtype Enum, pixels unsafe.Pointer)
	ClearTexSubImage(tex uint32, level, x, y, width, height int32, format, xtype Enum, value unsafe.Pointer)
	GenerateTextureMipmap(tex uint32)
	TextureParameteri(tex uint32, pname Enum, value int32)
	BindTextureUnit(unit uint32, tex uint32)
	DeleteTexture(tex uint32)

	// Sampler objects.
	CreateSampler() uint32
	SamplerParameteri(sampler uint32, pname Enum, value int32)
	BindSampler(unit uint32, sampler uint32)
	DeleteSampler(sampler uint32)

	// Renderbuffer and framebuffer objects.
	CreateRenderbuffer() uint32
	NamedRenderbufferStorage(rb uint32, internalFormat Enum, width, height int32)
	DeleteRenderbuffer(rb uint32)
	CreateFramebuffer() uint32
	NamedFramebufferTexture(fb uint32, attachment Enum, tex uint32, level int32)
	NamedFramebufferRenderbuffer(fb uint32, attachment Enum, rb uint32)
	CheckNamedFramebufferStatus(fb uint32, target Enum) Enum
	BindFramebuffer(target Enum, fb uint32)
	DeleteFramebuffer(fb uint32)

	// Shader and program objects.
	CreateShader(kind Enum) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderi(shader uint32, pname Enum) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(prog, shader uint32)
	LinkProgram(prog uint32)
	GetProgrami(prog uint32, pname Enum) int32
	GetProgramInfoLog(prog uint32) string
	GetUniformLocation(prog uint32, name string) int32
	UseProgram(prog uint32)
	DeleteProgram(prog uint32)

	// Uniform writes (program-targeted, no UseProgram required).
	ProgramUniform1i(prog uint32, loc int32, v int32)
	ProgramUniform1ui(prog uint32, loc int32, v uint32)
	ProgramUniform1f(prog uint32, loc int32, v float32)
	ProgramUniform1iv(prog uint32, loc int32, count int32, v *int32)
	ProgramUniform1uiv(prog uint32, loc int32, count int32, v *uint32)
	ProgramUniform1fv(prog uint32, loc int32, count int32, v *float32)
	ProgramUniform2fv(prog uint32, loc int32, count int32, v *float32)
	ProgramUniform3fv(prog uint32, loc int32, count int32, v *float32)
	ProgramUniform4fv(prog uint32, loc int32, count int32, v *float32)
	ProgramUniformMatrix4fv(prog uint32, loc int32, count int32, transpose bool, v *float32)

	// Vertex array objects.
	CreateVertexArray() uint32
	VertexArrayVertexBuffer(vao uint32, binding uint32, buf uint32, offset int, stride int32)
	VertexArrayElementBuffer(vao uint32, buf uint32)
	EnableVertexArrayAttrib(vao uint32, attrib uint32)
	VertexArrayAttribFormat(vao uint32, attrib uint32, size int32, xtype Enum, normalized bool, relOffset uint32)
	VertexArrayAttribIFormat(vao uint32, attrib uint32, size int32, xtype Enum, relOffset uint32)
	VertexArrayAttribBinding(vao uint32, attrib uint32, binding uint32)
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	// Pipeline state and draws.
	Enable(cap Enum)
	Disable(cap Enum)
	BlendFunc(sfactor, dfactor Enum)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, xtype Enum, offset int)

	GetError() Enum
}
