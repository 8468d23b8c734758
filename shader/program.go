package shader

import (
	"glbatch/resource"
)

// Lookup resolves uniforms of a program being built. It is only valid
// inside the NewProgram builder callback.
type Lookup struct {
	obj Object
}

// GetUniform resolves a uniform by source-level name. Fails with
// *InactiveUniformError when the linked program does not expose the name;
// the program is still usable for every uniform it does expose.
func GetUniform[T Value](lk Lookup, name string) (Uniform[T], error) {
	loc, active := lk.obj.UniformLocation(name)
	if !active {
		return Uniform[T]{}, &InactiveUniformError{Name: name}
	}
	return Uniform[T]{obj: lk.obj, loc: loc}, nil
}

// GetUniformAt addresses a uniform by explicit location (layout qualifier
// semantics), bypassing name lookup. No existence check is possible this
// way; writing to a location the program does not use is a silent no-op at
// the driver level. This path sees far less use than name lookup.
func GetUniformAt[T Value](lk Lookup, location int32) Uniform[T] {
	return Uniform[T]{obj: lk.obj, loc: location}
}

// Program is a linked pipeline configuration whose uniforms are reachable
// through the host-defined interface value I. I is built once at link time
// by composing Uniform handles and is immutable afterwards.
type Program[I any] struct {
	obj   Object
	iface I
}

// NewProgram links stages through the driver and runs build against the
// fresh program's uniform table to produce the interface value. A build
// failure (typically *InactiveUniformError) destroys the program with the
// rest of the scope.
func NewProgram[I any](sc *resource.Scope, d Driver, stages []Stage, build func(Lookup) (I, error)) (*Program[I], error) {
	obj, err := d.LinkProgram(stages)
	if err != nil {
		return nil, err
	}
	resource.Acquire(sc, func() (Object, func() error) {
		return obj, obj.Destroy
	})
	iface, err := build(Lookup{obj: obj})
	if err != nil {
		return nil, err
	}
	return &Program[I]{obj: obj, iface: iface}, nil
}

// Interface returns the uniform interface value built at link time.
func (p *Program[I]) Interface() I { return p.iface }

// Object returns the backend program object.
func (p *Program[I]) Object() Object { return p.obj }

// Update projects an UpdateSet out of the program's interface and applies
// it. Successive updates over disjoint uniforms commute; collisions within
// one projection are reported, not last-write-wins.
func (p *Program[I]) Update(project func(I) UpdateSet) error {
	return project(p.iface).Apply()
}
