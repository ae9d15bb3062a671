// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"fmt"

	"cogentcore.org/subdivide/base/errors"
)

// CheckInvariants checks the structural invariants that hold for every
// settled mesh: all references point at live entities, next and prev
// are inverse, every face loop is a triangle whose halfedges all belong
// to that face, and every bound opposite is symmetric and reversed
// (h.Opposite.Opposite == h, h.Opposite.Sink == h.Prev.Sink and
// h.Sink == h.Opposite.Prev.Sink). Unbound opposites are allowed.
// It returns the first violation found.
func (m *Mesh) CheckInvariants() error {
	for i := range m.Halfedges {
		h := HalfedgeIndex(i)
		if !m.IsHalfedge(h) {
			continue
		}
		he := &m.Halfedges[h]
		switch {
		case !m.IsVertex(he.Sink):
			return fmt.Errorf("%w: halfedge %d has sink %d", ErrNonManifold, h, he.Sink)
		case !m.IsFace(he.Face):
			return fmt.Errorf("%w: halfedge %d has face %d", ErrNonManifold, h, he.Face)
		case !m.IsHalfedge(he.Next) || !m.IsHalfedge(he.Prev):
			return fmt.Errorf("%w: halfedge %d has next %d and prev %d", ErrNonManifold, h, he.Next, he.Prev)
		case m.Halfedges[he.Next].Prev != h || m.Halfedges[he.Prev].Next != h:
			return fmt.Errorf("%w: halfedge %d is not linked back by its next and prev", ErrNonManifold, h)
		case m.Halfedges[he.Next].Face != he.Face:
			return fmt.Errorf("%w: halfedge %d and its next bound different faces", ErrNonManifold, h)
		}
		if he.Opposite == Invalid {
			continue
		}
		if !m.IsHalfedge(he.Opposite) {
			return fmt.Errorf("%w: halfedge %d has opposite %d", ErrNonManifold, h, he.Opposite)
		}
		op := &m.Halfedges[he.Opposite]
		switch {
		case op.Opposite != h:
			return fmt.Errorf("%w: opposite of halfedge %d is not symmetric", ErrNonManifold, h)
		case op.Sink != m.Source(h) || he.Sink != m.Source(he.Opposite):
			return fmt.Errorf("%w: halfedge %d and its opposite %d are not reversed", ErrNonManifold, h, he.Opposite)
		}
	}
	for i := range m.Faces {
		f := FaceIndex(i)
		if !m.IsFace(f) {
			continue
		}
		n, err := m.faceSize(f)
		if err != nil {
			return err
		}
		if n != 3 {
			return fmt.Errorf("%w: face %d has %d halfedges", ErrNotTriangle, f, n)
		}
	}
	for i := range m.Vertices {
		v := VertexIndex(i)
		if !m.IsVertex(v) {
			continue
		}
		out := m.Vertices[v].Out
		if out == Invalid {
			continue
		}
		if !m.IsHalfedge(out) || m.Source(out) != v {
			return fmt.Errorf("%w: outgoing halfedge %d of vertex %d does not start there", ErrNonManifold, out, v)
		}
	}
	return nil
}

// faceSize returns the number of halfedges on the loop of f.
func (m *Mesh) faceSize(f FaceIndex) (int, error) {
	start := m.Faces[f].Halfedge
	if !m.IsHalfedge(start) {
		return 0, fmt.Errorf("%w: face %d has halfedge %d", ErrNonManifold, f, start)
	}
	h := start
	for n := 1; n <= len(m.Halfedges); n++ {
		if m.Halfedges[h].Face != f {
			return n, fmt.Errorf("%w: halfedge %d on the loop of face %d belongs to face %d", ErrNonManifold, h, f, m.Halfedges[h].Face)
		}
		h = m.Halfedges[h].Next
		if h == start {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: loop of face %d does not close", ErrNonManifold, f)
}

// Validate checks that the mesh is a closed, consistently oriented,
// 2-manifold triangle mesh, which is what subdivision requires.
// In addition to [Mesh.CheckInvariants] it requires at least one face,
// an opposite for every halfedge, no repeated directed edge, an outgoing
// halfedge for every vertex, no two faces sharing more than one edge,
// and a single fan of triangles around every vertex. Errors wrap the
// sentinel errors of this package.
func (m *Mesh) Validate() error {
	if m.NumFaces() == 0 {
		return ErrEmpty
	}
	if err := m.CheckInvariants(); err != nil {
		return err
	}
	edges := newEdgeList(TwinIndex, len(m.Halfedges))
	for i := range m.Halfedges {
		h := HalfedgeIndex(i)
		if !m.IsHalfedge(h) {
			continue
		}
		key := edgeKey{src: m.Source(h), dst: m.Halfedges[h].Sink}
		if m.Halfedges[h].Opposite == Invalid {
			return fmt.Errorf("%w: halfedge %d (%d -> %d) has no opposite", ErrBoundary, h, key.src, key.dst)
		}
		if edges.add(key, h) {
			return fmt.Errorf("%w: directed edge %d -> %d is used by more than one face", ErrNonManifold, key.src, key.dst)
		}
		// quadrisection would give such a pair two inner edges with the same endpoints
		if m.sameFaceAcross(m.Halfedges[h].Next, h) {
			return fmt.Errorf("%w: faces %d and %d share more than one edge", ErrNonManifold,
				m.Halfedges[h].Face, m.Halfedges[m.Halfedges[h].Opposite].Face)
		}
	}
	total := 0
	var errs []error
	for i := range m.Vertices {
		v := VertexIndex(i)
		if !m.IsVertex(v) {
			continue
		}
		if m.Vertices[v].Out == Invalid {
			errs = append(errs, fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, v))
			continue
		}
		ring, err := m.OneRing(v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		total += len(ring)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	// every halfedge leaves exactly one vertex, so a vertex with more
	// than one fan leaves some halfedges out of the one-ring walks.
	if nh := m.NumHalfedges(); total != nh {
		return fmt.Errorf("%w: one-rings cover %d of %d halfedges", ErrNonManifold, total, nh)
	}
	return nil
}
