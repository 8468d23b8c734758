// Package gpu provides typed wrappers over raw GL object names: buffers with
// capability-typed region views, 2D textures parameterized by pixel format,
// samplers, renderbuffers and framebuffers. Every wrapper is allocated
// through a resource.Scope and freed when the scope unwinds.
package gpu

import (
	"unsafe"

	"glbatch/glx"
	"glbatch/resource"
)

// Buffer is a GPU buffer holding len elements of T. Storage is immutable in
// size; contents are mutated through Region views.
type Buffer[T any] struct {
	f    glx.Funcs
	name uint32
	len  int
}

// NewBuffer allocates a buffer sized for n elements of T. Contents are
// undefined until written.
func NewBuffer[T any](sc *resource.Scope, f glx.Funcs, n int) *Buffer[T] {
	return resource.Acquire(sc, func() (*Buffer[T], func() error) {
		name := f.CreateBuffer()
		f.NamedBufferStorage(name, n*sizeOf[T](), nil, glx.DYNAMIC_STORAGE_BIT)
		b := &Buffer[T]{f: f, name: name, len: n}
		return b, func() error {
			f.DeleteBuffer(name)
			return nil
		}
	})
}

// NewBufferFrom allocates a buffer and fills it from data in one bulk write.
func NewBufferFrom[T any](sc *resource.Scope, f glx.Funcs, data []T) *Buffer[T] {
	b := NewBuffer[T](sc, f, len(data))
	Write(Whole[RW](b), data)
	return b
}

// Len returns the buffer's capacity in elements.
func (b *Buffer[T]) Len() int { return b.len }

// Name returns the raw GL buffer name.
func (b *Buffer[T]) Name() uint32 { return b.name }

// Access capability tags for regions. R permits reads, W permits writes,
// RW permits both. Using a region against a capability it does not carry is
// a compile error.
type (
	R  struct{}
	W  struct{}
	RW struct{}
)

func (R) readCapable()   {}
func (W) writeCapable()  {}
func (RW) readCapable()  {}
func (RW) writeCapable() {}

type readable interface{ readCapable() }
type writable interface{ writeCapable() }

// Region is a typed view over a contiguous element range of a buffer,
// carrying an access capability A. The region is only valid while its
// buffer is.
type Region[T any, A any] struct {
	buf    *Buffer[T]
	offset int
	n      int
}

// Whole views the entire buffer under capability A.
func Whole[A any, T any](b *Buffer[T]) Region[T, A] {
	return Region[T, A]{buf: b, n: b.len}
}

// View views n elements starting at offset under capability A. An
// offset+n range beyond the buffer's length is a caller contract violation
// and is not checked here; the driver's behavior for such writes is
// undefined.
func View[A any, T any](b *Buffer[T], offset, n int) Region[T, A] {
	return Region[T, A]{buf: b, offset: offset, n: n}
}

// Len returns the region's extent in elements.
func (r Region[T, A]) Len() int { return r.n }

// Write copies data into the region's range in one bulk transfer. Only
// regions with a write capability compile. len(data) beyond the region's
// extent is a caller contract violation.
func Write[T any, A writable](r Region[T, A], data []T) {
	if len(data) == 0 {
		return
	}
	sz := sizeOf[T]()
	r.buf.f.NamedBufferSubData(r.buf.name, r.offset*sz, len(data)*sz, unsafe.Pointer(&data[0]))
}

// Read copies the region's first len(out) elements into out. Only regions
// with a read capability compile.
func Read[T any, A readable](r Region[T, A], out []T) {
	if len(out) == 0 {
		return
	}
	sz := sizeOf[T]()
	r.buf.f.GetNamedBufferSubData(r.buf.name, r.offset*sz, len(out)*sz, unsafe.Pointer(&out[0]))
}

func sizeOf[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}
