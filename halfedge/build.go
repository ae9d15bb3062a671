// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"fmt"
	"log/slog"

	"cogentcore.org/subdivide/math32"
)

// Build returns a new mesh generated from the given positions and
// triangle indexes, using the given twin strategy. See [Mesh.Generate].
func Build(positions []math32.Vector3, indices []int, twins TwinStrategy) (*Mesh, error) {
	m := New(twins)
	if err := m.Generate(positions, indices); err != nil {
		return nil, err
	}
	return m, nil
}

// Generate replaces the contents of the mesh with the triangles given by
// consecutive triples of 0-based indexes into positions. Each halfedge is
// paired with the previously created halfedge covering the reverse edge,
// if any. Edges without a reverse (boundaries) or with more than one
// (non-manifold) are not rejected here: use [Mesh.Validate] for that.
// The input itself must be well formed: the number of indexes must be
// a multiple of 3, all indexes must be in range, and no triangle may
// repeat a vertex.
func (m *Mesh) Generate(positions []math32.Vector3, indices []int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d face indexes is not a multiple of 3", ErrNotTriangle, len(indices))
	}
	for i, vi := range indices {
		if vi < 0 || vi >= len(positions) {
			return fmt.Errorf("%w: face %d uses vertex %d of %d", ErrInvalidIndex, i/3, vi, len(positions))
		}
	}
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a == b || b == c || c == a {
			return fmt.Errorf("%w: face %d is (%d, %d, %d)", ErrDegenerateFace, i/3, a, b, c)
		}
	}

	m.Reset()
	m.Vertices = make([]Vertex, 0, len(positions))
	m.Halfedges = make([]Halfedge, 0, len(indices))
	m.Faces = make([]Face, 0, len(indices)/3)
	for _, p := range positions {
		m.AddVertex(p)
	}

	edges := newEdgeList(m.Twins, len(indices))
	for i, vi := range indices {
		h := m.AddHalfedge()
		corner := i % 3
		if corner != 0 {
			m.Halfedges[h].Prev = h - 1
			m.Halfedges[h-1].Next = h
		}
		m.Vertices[vi].Out = h

		dst := indices[i-corner+(corner+1)%3]
		m.Halfedges[h].Sink = VertexIndex(dst)

		key := edgeKey{src: VertexIndex(vi), dst: VertexIndex(dst)}
		if op, ok := edges.find(key.reverse()); ok {
			m.Halfedges[h].Opposite = op
			m.Halfedges[op].Opposite = h
		}
		edges.add(key, h)

		if corner == 2 {
			f := m.AddFace(h)
			first := h - 2
			m.Halfedges[h].Next = first
			m.Halfedges[first].Prev = h
			for k := first; k <= h; k++ {
				m.Halfedges[k].Face = f
			}
		}
	}
	slog.Debug("halfedge: generated mesh", "vertices", len(m.Vertices), "faces", len(m.Faces), "twins", m.Twins)
	return nil
}
