package gpu

import (
	"github.com/go-gl/mathgl/mgl32"

	"glbatch/glx"
)

// Triple is the GL storage description of a pixel format: the internal
// (GPU-side) format plus the external transfer format/type pair. Any
// concrete format must keep the three consistent.
type Triple struct {
	Internal glx.Enum
	External glx.Enum
	Type     glx.Enum
}

// Format describes a pixel format whose host-visible representation is P.
// Each concrete format implements pixel for exactly its host pixel type, so
// pairing a format with any other element type does not compile.
type Format[P any] interface {
	Triple() Triple
	pixel(P)
}

// RGBA8N is 8-bit normalized RGBA, host type [4]uint8.
type RGBA8N struct{}

func (RGBA8N) pixel(PixelRGBA8) {}

func (RGBA8N) Triple() Triple {
	return Triple{Internal: glx.RGBA8, External: glx.RGBA, Type: glx.UNSIGNED_BYTE}
}

// RGB8N is 8-bit normalized RGB, host type [3]uint8.
type RGB8N struct{}

func (RGB8N) pixel(PixelRGB8) {}

func (RGB8N) Triple() Triple {
	return Triple{Internal: glx.RGB8, External: glx.RGB, Type: glx.UNSIGNED_BYTE}
}

// R8N is single-channel 8-bit normalized, host type uint8.
type R8N struct{}

func (R8N) pixel(PixelR8) {}

func (R8N) Triple() Triple {
	return Triple{Internal: glx.R8, External: glx.RED, Type: glx.UNSIGNED_BYTE}
}

// RGBA32F is full-float RGBA, host type mgl32.Vec4.
type RGBA32F struct{}

func (RGBA32F) pixel(PixelRGBAF) {}

func (RGBA32F) Triple() Triple {
	return Triple{Internal: glx.RGBA32F, External: glx.RGBA, Type: glx.FLOAT}
}

// R32F is single-channel full-float, host type float32.
type R32F struct{}

func (R32F) pixel(float32) {}

func (R32F) Triple() Triple {
	return Triple{Internal: glx.R32F, External: glx.RED, Type: glx.FLOAT}
}

// Depth32F is a 32-bit float depth format, host type float32.
type Depth32F struct{}

func (Depth32F) pixel(float32) {}

func (Depth32F) Triple() Triple {
	return Triple{Internal: glx.DEPTH_COMPONENT32F, External: glx.DEPTH_COMPONENT, Type: glx.FLOAT}
}

// Pixel aliases for the formats above, so call sites can spell the host
// type without deriving it.
type (
	PixelRGBA8 = [4]uint8
	PixelRGB8  = [3]uint8
	PixelR8    = uint8
	PixelRGBAF = mgl32.Vec4
)
