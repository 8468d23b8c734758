package geometry

import (
	"fmt"
	"unsafe"

	"glbatch/glx"
	"glbatch/gpu"
	"glbatch/resource"
)

// Mode is the primitive assembly mode, fixed for a geometry's lifetime.
type Mode uint8

const (
	Points Mode = iota
	Lines
	Triangles
)

func (m Mode) enum() glx.Enum {
	switch m {
	case Points:
		return glx.POINTS
	case Lines:
		return glx.LINES
	}
	return glx.TRIANGLES
}

// Geometry is GPU-resident vertex data plus an assembly mode. Direct
// geometry consumes vertices in input order; indexed geometry consumes them
// through an index buffer.
type Geometry struct {
	f       glx.Funcs
	vao     uint32
	mode    glx.Enum
	indexed bool
	count   int32
}

// vertexBindingIndex is the single VAO binding all attributes of a geometry
// source from.
const vertexBindingIndex = 0

// New uploads vertices (and indices, when non-nil) in one bulk write each
// and builds the vertex array binding from layout. The layout's stride must
// match V's in-memory size. Index values are not validated against the
// vertex count; an out-of-range index is a caller contract violation with
// driver-defined behavior.
func New[V any](sc *resource.Scope, f glx.Funcs, layout Layout, vertices []V, indices []uint32, mode Mode) (*Geometry, error) {
	bindings, stride, err := Resolve(layout)
	if err != nil {
		return nil, err
	}
	var zero V
	if vsize := int(unsafe.Sizeof(zero)); stride != vsize {
		return nil, fmt.Errorf("vertex layout stride %d does not match vertex type size %d", stride, vsize)
	}
	// Zero-size buffer storage is a driver error, so catch it here.
	if len(vertices) == 0 {
		return nil, fmt.Errorf("geometry has no vertices")
	}

	vbuf := gpu.NewBufferFrom(sc, f, vertices)

	g := resource.Acquire(sc, func() (*Geometry, func() error) {
		vao := f.CreateVertexArray()
		return &Geometry{f: f, vao: vao, mode: mode.enum()}, func() error {
			f.DeleteVertexArray(vao)
			return nil
		}
	})

	f.VertexArrayVertexBuffer(g.vao, vertexBindingIndex, vbuf.Name(), 0, int32(stride))
	for _, b := range bindings {
		f.EnableVertexArrayAttrib(g.vao, b.Slot)
		if b.Attrib.Kind == Float {
			f.VertexArrayAttribFormat(g.vao, b.Slot, int32(b.Attrib.Arity), glx.FLOAT, false, b.Offset)
		} else {
			f.VertexArrayAttribIFormat(g.vao, b.Slot, int32(b.Attrib.Arity), b.Attrib.Kind.enum(), b.Offset)
		}
		f.VertexArrayAttribBinding(g.vao, b.Slot, vertexBindingIndex)
	}

	if indices == nil {
		g.count = int32(len(vertices))
		return g, nil
	}
	ibuf := gpu.NewBufferFrom(sc, f, indices)
	f.VertexArrayElementBuffer(g.vao, ibuf.Name())
	g.indexed = true
	g.count = int32(len(indices))
	return g, nil
}

// Indexed reports whether draws go through an index buffer.
func (g *Geometry) Indexed() bool { return g.indexed }

// DrawCount returns the number of vertices (direct) or indices (indexed)
// one draw issues.
func (g *Geometry) DrawCount() int32 { return g.count }

// Draw issues the geometry's draw call: a direct draw of DrawCount vertices
// from 0, or an indexed draw of DrawCount indices through the bound index
// buffer.
func (g *Geometry) Draw(f glx.Funcs) {
	f.BindVertexArray(g.vao)
	if g.indexed {
		f.DrawElements(g.mode, g.count, glx.UNSIGNED_INT, 0)
	} else {
		f.DrawArrays(g.mode, 0, g.count)
	}
}
