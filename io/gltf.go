// Package io loads mesh data from glTF 2.0 files into host-side slices
// ready for geometry upload.
package io

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"glbatch/geometry"
	"glbatch/glx"
	"glbatch/resource"
)

// Vertex is the interleaved vertex this loader produces.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// VertexLayout describes Vertex to the layout deriver: three float
// attributes in declaration order.
func VertexLayout() geometry.Layout {
	return geometry.Struct(
		geometry.Attrib{Kind: geometry.Float, Arity: 3},
		geometry.Attrib{Kind: geometry.Float, Arity: 3},
		geometry.Attrib{Kind: geometry.Float, Arity: 2},
	)
}

// Mesh is one glTF primitive's worth of host-side geometry data.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// LoadMeshes opens a .glb or .gltf file and extracts every mesh primitive.
// Primitives without positions are skipped with an error only if the file
// yields nothing at all.
func LoadMeshes(path string) ([]Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var meshes []Mesh
	var firstErr error
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadPrimitive(doc, gm.Name, pi, *prim)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("mesh %d prim %d: %w", mi, pi, err)
				}
				continue
			}
			meshes = append(meshes, m)
		}
	}
	if len(meshes) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, fmt.Errorf("%q contains no mesh primitives", path)
	}
	return meshes, nil
}

// Upload builds GPU geometry for the mesh. Indexed when the primitive
// carried indices, direct otherwise.
func (m Mesh) Upload(sc *resource.Scope, f glx.Funcs) (*geometry.Geometry, error) {
	return geometry.New(sc, f, VertexLayout(), m.Vertices, m.Indices, geometry.Triangles)
}

func loadPrimitive(doc *gltf.Document, meshName string, primIdx int, prim gltf.Primitive) (Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return Mesh{}, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return Mesh{}, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return Mesh{}, fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return Mesh{}, fmt.Errorf("texture coordinates: %w", err)
		}
	}

	verts := make([]Vertex, len(positions))
	for i, p := range positions {
		v := Vertex{
			Position: mgl32.Vec3{p[0], p[1], p[2]},
			Normal:   mgl32.Vec3{0, 1, 0},
		}
		if i < len(normals) {
			v.Normal = mgl32.Vec3{normals[i][0], normals[i][1], normals[i][2]}
		}
		if i < len(uvs) {
			v.UV = mgl32.Vec2{uvs[i][0], uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return Mesh{}, fmt.Errorf("indices: %w", err)
		}
	}

	return Mesh{Name: name, Vertices: verts, Indices: indices}, nil
}
