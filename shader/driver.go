// Package shader abstracts shader stage compilation, program linking and
// uniform binding behind a backend-neutral Driver, with a typed layer on
// top: Program[I] carries a host-defined uniform interface value I built by
// composing Uniform handles, and uniform writes travel in collision-checked
// UpdateSets.
package shader

import (
	"glbatch/resource"
)

// StageKind identifies one unit of the shader pipeline.
type StageKind uint8

const (
	Vertex StageKind = iota
	Fragment
	Geometry
	TessControl
	TessEval
)

func (k StageKind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	case Geometry:
		return "geometry"
	case TessControl:
		return "tessellation control"
	case TessEval:
		return "tessellation evaluation"
	}
	return "unknown"
}

// Stage is one compiled pipeline stage. The concrete type belongs to the
// backend that compiled it.
type Stage interface {
	Kind() StageKind
	Destroy() error
}

// Object is a linked program as the backend represents it.
type Object interface {
	// Bind makes the program current for subsequent draws.
	Bind()
	// UniformLocation resolves a source-level uniform name. active is false
	// for names the linker discarded or never saw.
	UniformLocation(name string) (loc int32, active bool)
	// Write sets one uniform. value is one of the closed Value shapes; the
	// typed layer guarantees this, so backends may assume it.
	Write(loc int32, value any)
	Destroy() error
}

// Driver compiles stages and links programs. Each backend supplies its own
// Stage and Object implementations.
type Driver interface {
	SupportsStage(kind StageKind) bool
	// CompileStage compiles source for the given stage kind. Fails with
	// *CompileError. Callers check SupportsStage first; behavior for an
	// unsupported kind is backend-defined.
	CompileStage(kind StageKind, source string) (Stage, error)
	// LinkProgram links compiled stages into a program. Fails with
	// *LinkError.
	LinkProgram(stages []Stage) (Object, error)
}

// NewStage compiles source for kind through the driver, registering the
// stage with the scope. Returns *UnsupportedStageError before touching the
// backend when the driver lacks the stage kind.
func NewStage(sc *resource.Scope, d Driver, kind StageKind, source string) (Stage, error) {
	if !d.SupportsStage(kind) {
		return nil, &UnsupportedStageError{Kind: kind}
	}
	st, err := d.CompileStage(kind, source)
	if err != nil {
		return nil, err
	}
	return resource.Acquire(sc, func() (Stage, func() error) {
		return st, st.Destroy
	}), nil
}
