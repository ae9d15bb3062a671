// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"fmt"

	"cogentcore.org/subdivide/math32"
)

// Mesh owns the vertices, halfedges and faces of a triangle mesh.
// The slices are kept in insertion order, which is also the id order
// used for output. The zero value is an empty mesh using [TwinScan].
type Mesh struct {

	// Vertices are all vertices, including removed ones
	// until the next [Mesh.Compact].
	Vertices []Vertex

	// Halfedges are all halfedges, including removed ones
	// until the next [Mesh.Compact].
	Halfedges []Halfedge

	// Faces are all faces, including removed ones
	// until the next [Mesh.Compact].
	Faces []Face

	// Twins is the strategy used to pair opposite halfedges.
	Twins TwinStrategy
}

// New returns a new empty mesh using the given twin strategy.
func New(twins TwinStrategy) *Mesh {
	return &Mesh{Twins: twins}
}

// Reset removes all vertices, halfedges and faces.
func (m *Mesh) Reset() {
	m.Vertices = nil
	m.Halfedges = nil
	m.Faces = nil
}

// AddVertex adds a new vertex at the given position,
// with no outgoing halfedge yet.
func (m *Mesh) AddVertex(pos math32.Vector3) VertexIndex {
	m.Vertices = append(m.Vertices, Vertex{Position: pos, Out: Invalid})
	return VertexIndex(len(m.Vertices) - 1)
}

// AddHalfedge adds a new halfedge with all references unbound.
func (m *Mesh) AddHalfedge() HalfedgeIndex {
	m.Halfedges = append(m.Halfedges, Halfedge{Sink: Invalid, Face: Invalid, Next: Invalid, Prev: Invalid, Opposite: Invalid})
	return HalfedgeIndex(len(m.Halfedges) - 1)
}

// AddFace adds a new face seeded with the given boundary halfedge.
// It does not set the face of the halfedges on the loop.
func (m *Mesh) AddFace(seed HalfedgeIndex) FaceIndex {
	m.Faces = append(m.Faces, Face{Halfedge: seed})
	return FaceIndex(len(m.Faces) - 1)
}

// IsVertex returns whether v refers to a live vertex.
func (m *Mesh) IsVertex(v VertexIndex) bool {
	return v >= 0 && int(v) < len(m.Vertices) && !m.Vertices[v].removed
}

// IsHalfedge returns whether h refers to a live halfedge.
func (m *Mesh) IsHalfedge(h HalfedgeIndex) bool {
	return h >= 0 && int(h) < len(m.Halfedges) && !m.Halfedges[h].removed
}

// IsFace returns whether f refers to a live face.
func (m *Mesh) IsFace(f FaceIndex) bool {
	return f >= 0 && int(f) < len(m.Faces) && !m.Faces[f].removed
}

// Source returns the vertex that h starts from,
// which is the sink of its previous halfedge.
func (m *Mesh) Source(h HalfedgeIndex) VertexIndex {
	return m.Halfedges[m.Halfedges[h].Prev].Sink
}

// RemoveFace removes face f and every halfedge bounding it.
// References held by the remaining entities to anything removed
// are rebound: opposites are unset, and vertices whose outgoing
// halfedge was removed pick another outgoing halfedge if they have one.
// It is linear in the number of halfedges.
func (m *Mesh) RemoveFace(f FaceIndex) error {
	if !m.IsFace(f) {
		return fmt.Errorf("halfedge.RemoveFace: face %d does not exist", f)
	}
	for i := range m.Halfedges {
		he := &m.Halfedges[i]
		if !he.removed && he.Face == f {
			he.removed = true
		}
	}
	m.Faces[f].removed = true

	for i := range m.Halfedges {
		he := &m.Halfedges[i]
		if he.removed {
			continue
		}
		if he.Opposite != Invalid && m.Halfedges[he.Opposite].removed {
			he.Opposite = Invalid
		}
	}
	for vi := range m.Vertices {
		vt := &m.Vertices[vi]
		if vt.removed || vt.Out == Invalid || !m.Halfedges[vt.Out].removed {
			continue
		}
		vt.Out = Invalid
		for i := range m.Halfedges {
			h := HalfedgeIndex(i)
			if m.IsHalfedge(h) && m.Source(h) == VertexIndex(vi) {
				vt.Out = h
				break
			}
		}
	}
	return nil
}

// NumVertices returns the number of live vertices.
func (m *Mesh) NumVertices() int {
	n := 0
	for i := range m.Vertices {
		if !m.Vertices[i].removed {
			n++
		}
	}
	return n
}

// NumHalfedges returns the number of live halfedges.
func (m *Mesh) NumHalfedges() int {
	n := 0
	for i := range m.Halfedges {
		if !m.Halfedges[i].removed {
			n++
		}
	}
	return n
}

// NumFaces returns the number of live faces.
func (m *Mesh) NumFaces() int {
	n := 0
	for i := range m.Faces {
		if !m.Faces[i].removed {
			n++
		}
	}
	return n
}

// NumEdges returns the number of undirected edges: each pair of
// opposite halfedges counts once, and each unpaired halfedge once.
func (m *Mesh) NumEdges() int {
	n := 0
	for i := range m.Halfedges {
		he := &m.Halfedges[i]
		if he.removed {
			continue
		}
		if he.Opposite == Invalid || int(he.Opposite) > i {
			n++
		}
	}
	return n
}

// Compact drops all removed entities and renumbers the remaining ones
// in their existing order, rebinding every reference.
// References to removed entities become [Invalid].
func (m *Mesh) Compact() {
	vmap := compact(&m.Vertices, func(v *Vertex) bool { return v.removed })
	hmap := compact(&m.Halfedges, func(h *Halfedge) bool { return h.removed })
	fmap := compact(&m.Faces, func(f *Face) bool { return f.removed })
	for i := range m.Vertices {
		vt := &m.Vertices[i]
		vt.Out = remap(hmap, vt.Out)
	}
	for i := range m.Halfedges {
		he := &m.Halfedges[i]
		he.Sink = remap(vmap, he.Sink)
		he.Face = remap(fmap, he.Face)
		he.Next = remap(hmap, he.Next)
		he.Prev = remap(hmap, he.Prev)
		he.Opposite = remap(hmap, he.Opposite)
	}
	for i := range m.Faces {
		fc := &m.Faces[i]
		fc.Halfedge = remap(hmap, fc.Halfedge)
	}
}

// compact removes the items for which removed returns true, in place,
// and returns the old-to-new index mapping, with [Invalid] for removed items.
// It returns nil if nothing was removed.
func compact[T any](items *[]T, removed func(*T) bool) []int {
	s := *items
	var mapping []int
	n := 0
	for i := range s {
		if removed(&s[i]) {
			if mapping == nil {
				mapping = make([]int, len(s))
				for j := range i {
					mapping[j] = j
				}
			}
			mapping[i] = Invalid
			continue
		}
		if mapping != nil {
			mapping[i] = n
		}
		s[n] = s[i]
		n++
	}
	clear(s[n:])
	*items = s[:n]
	return mapping
}

func remap[I ~int](mapping []int, i I) I {
	if mapping == nil || i < 0 || int(i) >= len(mapping) {
		return i
	}
	return I(mapping[i])
}
