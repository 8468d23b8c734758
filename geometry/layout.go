// Package geometry builds GPU-resident vertex and index data. The vertex
// attribute layout is derived from a structural description of the vertex
// type: primitive attributes of one to four components, composed by
// concatenation. Derivation is ordinary recursion over that structure, so
// two descriptions with the same component sequence always resolve to the
// same slots and offsets regardless of grouping.
package geometry

import (
	"fmt"

	"glbatch/glx"
)

// AttribKind is the component type of one vertex attribute. All kinds are
// 32-bit.
type AttribKind uint8

const (
	Float AttribKind = iota
	Int
	Uint
)

func (k AttribKind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	}
	return "uint"
}

func (k AttribKind) enum() glx.Enum {
	switch k {
	case Float:
		return glx.FLOAT
	case Int:
		return glx.INT
	}
	return glx.UNSIGNED_INT
}

const componentSize = 4

// Layout describes the structure of a vertex type: either a single Attrib
// leaf or a Struct concatenation of other layouts.
type Layout interface {
	flatten(into []Attrib) []Attrib
}

// Attrib is a leaf attribute: Arity components of Kind, one GPU attribute
// slot.
type Attrib struct {
	Kind  AttribKind
	Arity int
}

func (a Attrib) flatten(into []Attrib) []Attrib {
	return append(into, a)
}

type structLayout []Layout

func (s structLayout) flatten(into []Attrib) []Attrib {
	for _, child := range s {
		into = child.flatten(into)
	}
	return into
}

// Struct concatenates member layouts in declaration order.
func Struct(members ...Layout) Layout {
	return structLayout(members)
}

// Binding is one resolved attribute: its slot, its byte offset within the
// vertex, and the leaf description.
type Binding struct {
	Slot   uint32
	Offset uint32
	Attrib Attrib
}

// Resolve assigns attribute slots sequentially from 0 in structural order
// and accumulates byte offsets by component size, returning the bindings
// and the vertex stride. Arities outside 1–4 are rejected before any GPU
// call.
func Resolve(l Layout) ([]Binding, int, error) {
	attribs := l.flatten(nil)
	if len(attribs) == 0 {
		return nil, 0, fmt.Errorf("vertex layout has no attributes")
	}
	bindings := make([]Binding, 0, len(attribs))
	offset := 0
	for i, a := range attribs {
		if a.Arity < 1 || a.Arity > 4 {
			return nil, 0, fmt.Errorf("attribute %d: arity %d out of range 1..4", i, a.Arity)
		}
		bindings = append(bindings, Binding{
			Slot:   uint32(i),
			Offset: uint32(offset),
			Attrib: a,
		})
		offset += a.Arity * componentSize
	}
	return bindings, offset, nil
}
