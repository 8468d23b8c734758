// Package render composes per-draw state into commands, groups commands
// under shader programs, groups those under framebuffers, and executes the
// nested structure in declared order while skipping redundant pipeline
// state changes.
package render

import "glbatch/glx"

// Blending is the per-command blend configuration. The zero value is
// blending disabled.
type Blending struct {
	Enabled bool
	Src     glx.Enum
	Dst     glx.Enum
}

// NoBlending disables blending.
var NoBlending = Blending{}

// AlphaBlending is standard source-alpha over.
var AlphaBlending = Blending{Enabled: true, Src: glx.SRC_ALPHA, Dst: glx.ONE_MINUS_SRC_ALPHA}

// AdditiveBlending accumulates source onto destination.
var AdditiveBlending = Blending{Enabled: true, Src: glx.ONE, Dst: glx.ONE}

// Drawable is the capability a command payload needs: issuing its GPU work
// against the command table. Geometry satisfies it; so can payloads with
// non-drawing side effects, which then batch identically.
type Drawable interface {
	Draw(f glx.Funcs)
}

// DrawFunc adapts a function to Drawable.
type DrawFunc func(f glx.Funcs)

func (fn DrawFunc) Draw(f glx.Funcs) { fn(f) }

// Cmd is one immutable render command: pipeline state plus a payload.
type Cmd[P Drawable] struct {
	Blending  Blending
	DepthTest bool
	Payload   P
}

// NewCmd assembles a command from explicit state.
func NewCmd[P Drawable](blending Blending, depthTest bool, payload P) Cmd[P] {
	return Cmd[P]{Blending: blending, DepthTest: depthTest, Payload: payload}
}

// StdCmd is the default command: depth-tested, non-blended, which is what
// most opaque geometry wants.
func StdCmd[P Drawable](payload P) Cmd[P] {
	return Cmd[P]{DepthTest: true, Payload: payload}
}
