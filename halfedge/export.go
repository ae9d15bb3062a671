// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"cogentcore.org/subdivide/math32"
)

// Positions returns the positions of the live vertices in id order.
func (m *Mesh) Positions() []math32.Vector3 {
	pos := make([]math32.Vector3, 0, len(m.Vertices))
	for i := range m.Vertices {
		if !m.Vertices[i].removed {
			pos = append(pos, m.Vertices[i].Position)
		}
	}
	return pos
}

// FaceLoops returns, for each live face in id order, the 0-based indexes
// into [Mesh.Positions] of its boundary vertices, found by walking next
// from the face's halfedge and taking each sink until back at the start.
func (m *Mesh) FaceLoops() [][]int {
	vmap := make([]int, len(m.Vertices))
	n := 0
	for i := range m.Vertices {
		if m.Vertices[i].removed {
			vmap[i] = Invalid
			continue
		}
		vmap[i] = n
		n++
	}
	loops := make([][]int, 0, len(m.Faces))
	for i := range m.Faces {
		fc := &m.Faces[i]
		if fc.removed {
			continue
		}
		var loop []int
		h := fc.Halfedge
		for range len(m.Halfedges) {
			loop = append(loop, vmap[m.Halfedges[h].Sink])
			h = m.Halfedges[h].Next
			if h == fc.Halfedge {
				break
			}
		}
		loops = append(loops, loop)
	}
	return loops
}

// Stats are summary statistics of a mesh.
type Stats struct {
	Vertices  int
	Edges     int
	Faces     int
	Halfedges int

	// Euler is the Euler characteristic V - E + F,
	// which is 2 for a closed surface of genus 0.
	Euler int

	// Valences maps each vertex valence to the number of vertices with it.
	// It is only filled in for meshes that pass [Mesh.Validate].
	Valences map[int]int

	// Bounds is the bounding box of all vertex positions.
	Bounds math32.Box3

	// Area is the total surface area of the faces.
	Area float32
}

// Stats returns summary statistics of the mesh.
func (m *Mesh) Stats() Stats {
	st := Stats{
		Vertices:  m.NumVertices(),
		Edges:     m.NumEdges(),
		Faces:     m.NumFaces(),
		Halfedges: m.NumHalfedges(),
	}
	st.Euler = st.Vertices - st.Edges + st.Faces
	pos := m.Positions()
	st.Bounds.SetFromPoints(pos)
	for _, loop := range m.FaceLoops() {
		for i := 2; i < len(loop); i++ {
			st.Area += math32.TriangleArea(pos[loop[0]], pos[loop[i-1]], pos[loop[i]])
		}
	}
	if m.Validate() != nil {
		return st
	}
	st.Valences = make(map[int]int)
	for i := range m.Vertices {
		if n, err := m.Valence(VertexIndex(i)); err == nil && !m.Vertices[i].removed {
			st.Valences[n]++
		}
	}
	return st
}
