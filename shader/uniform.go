package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Value is the closed set of host types that can back a uniform: 32-bit
// scalars, float vectors of 2–4 components, 4×4 matrices, and arrays of
// each. Binding any other host type does not compile.
type Value interface {
	int32 | uint32 | float32 |
		mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 | mgl32.Mat4 |
		[]int32 | []uint32 | []float32 |
		[]mgl32.Vec2 | []mgl32.Vec3 | []mgl32.Vec4 | []mgl32.Mat4
}

// Uniform is a typed handle on one uniform of one linked program.
type Uniform[T Value] struct {
	obj Object
	loc int32
}

// Location returns the uniform's resolved location.
func (u Uniform[T]) Location() int32 { return u.loc }

// Update produces a single-write UpdateSet carrying v. Uniform[T] therefore
// satisfies Updater[T].
func (u Uniform[T]) Update(v T) UpdateSet {
	return UpdateSet{writes: []write{{
		obj:   u.obj,
		loc:   u.loc,
		apply: func() { u.obj.Write(u.loc, v) },
	}}}
}

type write struct {
	obj   Object
	loc   int32
	apply func()
}

// UpdateSet is a batch of uniform writes over disjoint uniforms. Sets over
// disjoint uniforms combine associatively and commutatively; a collision on
// one uniform is detected at Merge and reported at Apply rather than
// resolved by write order.
type UpdateSet struct {
	writes []write
	err    error
}

type uniformKey struct {
	obj Object
	loc int32
}

// Merge combines update sets, rejecting duplicate targets. The combined set
// is order-independent because every target appears at most once.
func Merge(sets ...UpdateSet) UpdateSet {
	var out UpdateSet
	seen := make(map[uniformKey]bool)
	for _, s := range sets {
		if s.err != nil {
			out.err = s.err
			return out
		}
		for _, w := range s.writes {
			k := uniformKey{obj: w.obj, loc: w.loc}
			if seen[k] {
				out.err = fmt.Errorf("conflicting updates for uniform at location %d", w.loc)
				return out
			}
			seen[k] = true
			out.writes = append(out.writes, w)
		}
	}
	return out
}

// Apply issues every write in the set, or returns the collision error
// detected when the set was merged.
func (s UpdateSet) Apply() error {
	if s.err != nil {
		return s.err
	}
	for _, w := range s.writes {
		w.apply()
	}
	return nil
}

// Len returns the number of pending writes.
func (s UpdateSet) Len() int { return len(s.writes) }

// Updater maps one host value to a batch of uniform writes. Uniform[T] is
// the primitive Updater; Divide and Contramap compose them so one host
// value can feed several shader uniforms.
type Updater[T any] interface {
	Update(v T) UpdateSet
}

// UpdaterFunc adapts a function to the Updater interface.
type UpdaterFunc[T any] func(v T) UpdateSet

func (f UpdaterFunc[T]) Update(v T) UpdateSet { return f(v) }

// Divide splits a host value across two updaters and merges their writes.
// The two sides must target disjoint uniforms; a shared target surfaces as
// an Apply error.
func Divide[A, B, C any](split func(A) (B, C), ub Updater[B], uc Updater[C]) Updater[A] {
	return UpdaterFunc[A](func(v A) UpdateSet {
		b, c := split(v)
		return Merge(ub.Update(b), uc.Update(c))
	})
}

// Contramap feeds a projection of the host value to an updater.
func Contramap[A, B any](project func(A) B, u Updater[B]) Updater[A] {
	return UpdaterFunc[A](func(v A) UpdateSet {
		return u.Update(project(v))
	})
}

// Conquer is the updater that writes nothing, the unit for Divide.
func Conquer[A any]() Updater[A] {
	return UpdaterFunc[A](func(A) UpdateSet { return UpdateSet{} })
}
