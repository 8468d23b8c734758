package gpu

import (
	"unsafe"

	"glbatch/glx"
	"glbatch/resource"
)

// Texture2D is an immutable-storage 2D texture of format F with host pixel
// type P. Storage size, mip level count and sampling parameters are fixed
// atomically at creation.
type Texture2D[P any, F Format[P]] struct {
	f      glx.Funcs
	name   uint32
	width  int
	height int
	levels int
	triple Triple
}

// NewTexture2D allocates a width×height texture with the given number of
// mip levels (at least 1) and applies smp as its sampling state.
func NewTexture2D[P any, F Format[P]](sc *resource.Scope, f glx.Funcs, width, height, levels int, smp Sampling) *Texture2D[P, F] {
	if levels < 1 {
		levels = 1
	}
	var format F
	triple := format.Triple()
	return resource.Acquire(sc, func() (*Texture2D[P, F], func() error) {
		name := f.CreateTexture(glx.TEXTURE_2D)
		f.TextureStorage2D(name, int32(levels), triple.Internal, int32(width), int32(height))
		smp.apply(func(pname glx.Enum, value int32) {
			f.TextureParameteri(name, pname, value)
		})
		t := &Texture2D[P, F]{
			f:      f,
			name:   name,
			width:  width,
			height: height,
			levels: levels,
			triple: triple,
		}
		return t, func() error {
			f.DeleteTexture(name)
			return nil
		}
	})
}

// Name returns the raw GL texture name.
func (t *Texture2D[P, F]) Name() uint32 { return t.name }

// Width returns the level-0 width in texels.
func (t *Texture2D[P, F]) Width() int { return t.width }

// Height returns the level-0 height in texels.
func (t *Texture2D[P, F]) Height() int { return t.height }

// Levels returns the mip level count.
func (t *Texture2D[P, F]) Levels() int { return t.levels }

// UploadWhole replaces level 0 with pixels in row-major order and
// regenerates the mip chain when one exists. len(pixels) must be at least
// width*height; that is a caller contract, not checked here.
func (t *Texture2D[P, F]) UploadWhole(pixels []P) {
	t.UploadSub(0, 0, t.width, t.height, pixels)
	if t.levels > 1 {
		t.f.GenerateTextureMipmap(t.name)
	}
}

// UploadSub replaces the (x,y)..(x+width,y+height) rectangle of level 0.
// An out-of-bounds rectangle is a caller contract violation with
// driver-defined behavior.
func (t *Texture2D[P, F]) UploadSub(x, y, width, height int, pixels []P) {
	if len(pixels) == 0 {
		return
	}
	t.f.TextureSubImage2D(t.name, 0, int32(x), int32(y), int32(width), int32(height),
		t.triple.External, t.triple.Type, unsafe.Pointer(&pixels[0]))
}

// FillWhole sets every level-0 texel to value.
func (t *Texture2D[P, F]) FillWhole(value P) {
	t.FillSub(0, 0, t.width, t.height, value)
}

// FillSub sets every texel of the rectangle to value. Bounds are the
// caller's contract, as for UploadSub.
func (t *Texture2D[P, F]) FillSub(x, y, width, height int, value P) {
	t.f.ClearTexSubImage(t.name, 0, int32(x), int32(y), int32(width), int32(height),
		t.triple.External, t.triple.Type, unsafe.Pointer(&value))
}

// Bind attaches the texture to a texture unit.
func (t *Texture2D[P, F]) Bind(unit uint32) {
	t.f.BindTextureUnit(unit, t.name)
}

func (t *Texture2D[P, F]) attach(f glx.Funcs, fb uint32, point glx.Enum) {
	f.NamedFramebufferTexture(fb, point, t.name, 0)
}
