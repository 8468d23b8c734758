package gpu

import (
	"glbatch/glx"
	"glbatch/resource"
)

// Wrap selects texture coordinate wrapping outside [0,1].
type Wrap uint8

const (
	ClampToEdge Wrap = iota
	Repeat
)

func (w Wrap) enum() glx.Enum {
	if w == Repeat {
		return glx.REPEAT
	}
	return glx.CLAMP_TO_EDGE
}

// Filter selects texel filtering.
type Filter uint8

const (
	Nearest Filter = iota
	Linear
)

func (f Filter) enum() glx.Enum {
	if f == Linear {
		return glx.LINEAR
	}
	return glx.NEAREST
}

// CompareFunc selects the comparison applied by depth-comparison sampling.
// CompareNone leaves comparison off.
type CompareFunc uint8

const (
	CompareNone CompareFunc = iota
	CompareNever
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

func (c CompareFunc) enum() glx.Enum {
	switch c {
	case CompareNever:
		return glx.NEVER
	case CompareLess:
		return glx.LESS
	case CompareEqual:
		return glx.EQUAL
	case CompareLessEqual:
		return glx.LEQUAL
	case CompareGreater:
		return glx.GREATER
	case CompareNotEqual:
		return glx.NOTEQUAL
	case CompareGreaterEqual:
		return glx.GEQUAL
	}
	return glx.ALWAYS
}

// Sampling is a pure-value sampling configuration. It has no GPU identity
// until applied to a texture at creation or baked into a Sampler object.
type Sampling struct {
	WrapS     Wrap
	WrapT     Wrap
	MinFilter Filter
	MagFilter Filter
	Compare   CompareFunc
}

// DefaultSampling clamps to edge and filters linearly, with no depth
// comparison.
func DefaultSampling() Sampling {
	return Sampling{
		WrapS:     ClampToEdge,
		WrapT:     ClampToEdge,
		MinFilter: Linear,
		MagFilter: Linear,
		Compare:   CompareNone,
	}
}

// apply writes the configuration through a parameter setter, shared between
// texture-attached and standalone sampler parameters.
func (s Sampling) apply(set func(pname glx.Enum, value int32)) {
	set(glx.TEXTURE_WRAP_S, int32(s.WrapS.enum()))
	set(glx.TEXTURE_WRAP_T, int32(s.WrapT.enum()))
	set(glx.TEXTURE_MIN_FILTER, int32(s.MinFilter.enum()))
	set(glx.TEXTURE_MAG_FILTER, int32(s.MagFilter.enum()))
	if s.Compare != CompareNone {
		set(glx.TEXTURE_COMPARE_MODE, int32(glx.COMPARE_REF_TO_TEXTURE))
		set(glx.TEXTURE_COMPARE_FUNC, int32(s.Compare.enum()))
	}
}

// Sampler is a standalone sampling state object, reusable across any number
// of textures.
type Sampler struct {
	f    glx.Funcs
	name uint32
}

// NewSampler bakes a Sampling configuration into a GL sampler object.
func NewSampler(sc *resource.Scope, f glx.Funcs, smp Sampling) *Sampler {
	return resource.Acquire(sc, func() (*Sampler, func() error) {
		name := f.CreateSampler()
		smp.apply(func(pname glx.Enum, value int32) {
			f.SamplerParameteri(name, pname, value)
		})
		s := &Sampler{f: f, name: name}
		return s, func() error {
			f.DeleteSampler(name)
			return nil
		}
	})
}

// Name returns the raw GL sampler name.
func (s *Sampler) Name() uint32 { return s.name }

// Bind attaches the sampler to a texture unit, overriding the unit's
// texture-attached sampling state.
func (s *Sampler) Bind(unit uint32) {
	s.f.BindSampler(unit, s.name)
}
