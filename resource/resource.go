// Package resource ties GPU object lifetimes to host scopes. Every
// GPU-owning object in glbatch is created through a Scope; when the scope
// unwinds, every registered release action runs exactly once, whether the
// scope exited normally, with an error, or by panicking.
package resource

import "errors"

// Releaser frees one acquired resource. Release is safe to call more than
// once; the underlying action runs at most once.
type Releaser struct {
	fn   func() error
	done bool
}

// Release runs the release action now instead of waiting for scope exit.
func (r *Releaser) Release() error {
	if r.done {
		return nil
	}
	r.done = true
	return r.fn()
}

// Scope collects release actions for resources acquired within it. The model
// is single-threaded: a Scope must not be shared across goroutines.
type Scope struct {
	releases []*Releaser
}

// Acquire runs create and registers the returned release action with the
// scope. The handle is returned unchanged.
func Acquire[H any](s *Scope, create func() (H, func() error)) H {
	h, _ := AcquireReleasable(s, create)
	return h
}

// AcquireReleasable is Acquire for resources the caller may want to free
// before the scope ends. The scope still guarantees the action runs if the
// caller never does.
func AcquireReleasable[H any](s *Scope, create func() (H, func() error)) (H, *Releaser) {
	h, fn := create()
	r := &Releaser{fn: fn}
	s.releases = append(s.releases, r)
	return h, r
}

// ReleaseAll runs every outstanding release action. A failing action does
// not stop the remaining ones; failures are joined into the returned error.
// Actions run in reverse registration order, though callers must not rely
// on ordering between independent resources.
func (s *Scope) ReleaseAll() error {
	releases := s.releases
	s.releases = nil
	var errs []error
	for i := len(releases) - 1; i >= 0; i-- {
		if err := releases[i].Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// With runs fn with a fresh scope and releases everything acquired in it on
// every exit path. Release failures are joined onto fn's error; a panic in
// fn propagates after the releases have run.
func With(fn func(*Scope) error) (err error) {
	s := &Scope{}
	defer func() {
		relErr := s.ReleaseAll()
		if relErr != nil {
			err = errors.Join(err, relErr)
		}
	}()
	return fn(s)
}
