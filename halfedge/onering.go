// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import "fmt"

// OneRing returns the neighbors of v in cyclic order, starting with the
// sink of its outgoing halfedge and stepping to h.Prev.Opposite each time.
// The length of the result is the valence of v. It returns [ErrBoundary]
// if the walk meets a halfedge without an opposite, and [ErrNonManifold]
// if it does not return to its start.
func (m *Mesh) OneRing(v VertexIndex) ([]VertexIndex, error) {
	if !m.IsVertex(v) {
		return nil, fmt.Errorf("halfedge.OneRing: vertex %d does not exist", v)
	}
	start := m.Vertices[v].Out
	if !m.IsHalfedge(start) {
		return nil, fmt.Errorf("%w: vertex %d", ErrIsolatedVertex, v)
	}
	var ring []VertexIndex
	h := start
	for range len(m.Halfedges) {
		ring = append(ring, m.Halfedges[h].Sink)
		op := m.Halfedges[m.Halfedges[h].Prev].Opposite
		if op == Invalid {
			return ring, fmt.Errorf("%w: at vertex %d", ErrBoundary, v)
		}
		h = op
		if h == start {
			return ring, nil
		}
	}
	return ring, fmt.Errorf("%w: one-ring of vertex %d does not close", ErrNonManifold, v)
}

// Valence returns the number of edges incident to v.
func (m *Mesh) Valence(v VertexIndex) (int, error) {
	ring, err := m.OneRing(v)
	return len(ring), err
}
