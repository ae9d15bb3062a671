// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"fmt"

	"cogentcore.org/subdivide/math32"
)

// SplitEdge inserts a new vertex at position p in the middle of the
// edge of h, and returns it. With h going from u to v and its opposite
// from v to u, afterwards h goes from u to the new vertex w, followed by
// a new halfedge from w to v in the face of h, and the opposite is
// preceded by a new halfedge from v to w in its face, so that it now goes
// from w to u. The two new halfedges are opposites of each other.
// u, v and w get h, the new v to w halfedge, and the old opposite as
// their outgoing halfedges. No face is created or removed: the two faces
// on either side of the edge just have one more halfedge each.
func (m *Mesh) SplitEdge(h HalfedgeIndex, p math32.Vector3) (VertexIndex, error) {
	if !m.IsHalfedge(h) {
		return Invalid, fmt.Errorf("halfedge.SplitEdge: halfedge %d does not exist", h)
	}
	hop := m.Halfedges[h].Opposite
	if !m.IsHalfedge(hop) {
		return Invalid, fmt.Errorf("%w: cannot split halfedge %d", ErrBoundary, h)
	}
	src := m.Source(h)
	dst := m.Halfedges[h].Sink

	w := m.AddVertex(p)
	m.Vertices[w].Out = hop
	m.Halfedges[h].Sink = w
	m.Vertices[src].Out = h

	gon := m.AddHalfedge()
	opn := m.AddHalfedge()
	hs := m.Halfedges

	hs[gon].Opposite = opn
	hs[opn].Opposite = gon
	hs[gon].Sink = dst
	hs[opn].Sink = w

	hs[gon].Next = hs[h].Next
	hs[hs[gon].Next].Prev = gon
	hs[gon].Prev = h
	hs[gon].Face = hs[h].Face
	hs[h].Next = gon

	hs[opn].Next = hop
	hs[opn].Prev = hs[hop].Prev
	hs[hs[opn].Prev].Next = opn
	hs[opn].Face = hs[hop].Face
	hs[hop].Prev = opn

	m.Vertices[dst].Out = opn
	return w, nil
}

// Mask computes the position of the vertex that splits the edge of the
// given halfedge. Masks read the mesh but do not change it.
type Mask func(m *Mesh, h HalfedgeIndex) (math32.Vector3, error)

// MidpointMask places the new vertex halfway between the edge endpoints.
func MidpointMask(m *Mesh, h HalfedgeIndex) (math32.Vector3, error) {
	u, v := m.Source(h), m.Halfedges[h].Sink
	return m.pos(u).Add(m.pos(v)).MulScalar(0.5), nil
}

// LoopMask is the Loop edge mask: 3/8 of each endpoint plus
// 1/8 of each of the two apex vertices opposite the edge.
func LoopMask(m *Mesh, h HalfedgeIndex) (math32.Vector3, error) {
	hop := m.Halfedges[h].Opposite
	if hop == Invalid {
		return math32.Vector3{}, fmt.Errorf("%w: halfedge %d", ErrBoundary, h)
	}
	u, v := m.Source(h), m.Halfedges[h].Sink
	f1, err := m.apex(h)
	if err != nil {
		return math32.Vector3{}, err
	}
	f2, err := m.apex(hop)
	if err != nil {
		return math32.Vector3{}, err
	}
	p := m.pos(u).Add(m.pos(v)).MulScalar(3.0 / 8.0)
	return p.Add(m.pos(f1).Add(m.pos(f2)).MulScalar(1.0 / 8.0)), nil
}

// ButterflyMask is the interpolating Butterfly edge mask: 1/2 of each
// endpoint, plus 1/8 of each apex vertex, minus 1/16 of each of the four
// wing vertices beyond the two triangles next to the edge. It returns
// [ErrButterflyStencil] if a wing vertex coincides with an endpoint of
// the edge, which happens when the edge has no distinct diagonal neighbors.
func ButterflyMask(m *Mesh, h HalfedgeIndex) (math32.Vector3, error) {
	hop := m.Halfedges[h].Opposite
	if hop == Invalid {
		return math32.Vector3{}, fmt.Errorf("%w: halfedge %d", ErrBoundary, h)
	}
	u, v := m.Source(h), m.Halfedges[h].Sink
	f1, err := m.apex(h)
	if err != nil {
		return math32.Vector3{}, err
	}
	f2, err := m.apex(hop)
	if err != nil {
		return math32.Vector3{}, err
	}
	wings := [4]VertexIndex{}
	for i, side := range [2]HalfedgeIndex{h, hop} {
		for j, first := range [2]HalfedgeIndex{m.nextOverLine(side), m.prevOverLine(side)} {
			w, err := m.wing(first)
			if err != nil {
				return math32.Vector3{}, err
			}
			if w == u || w == v {
				return math32.Vector3{}, fmt.Errorf("%w: wing vertex %d of edge %d -> %d is an endpoint", ErrButterflyStencil, w, u, v)
			}
			wings[2*i+j] = w
		}
	}
	p := m.pos(u).Add(m.pos(v)).MulScalar(0.5)
	p = p.Add(m.pos(f1).Add(m.pos(f2)).MulScalar(1.0 / 8.0))
	ws := m.pos(wings[0]).Add(m.pos(wings[1])).Add(m.pos(wings[2])).Add(m.pos(wings[3]))
	return p.Sub(ws.MulScalar(1.0 / 16.0)), nil
}

func (m *Mesh) pos(v VertexIndex) math32.Vector3 {
	return m.Vertices[v].Position
}

// nextOverLine returns the next halfedge of h, unless that one's opposite
// lies in the same face as the opposite of h, in which case the two faces
// share two edges and it returns the halfedge after that instead.
// The opposites involved must be bound.
func (m *Mesh) nextOverLine(h HalfedgeIndex) HalfedgeIndex {
	next := m.Halfedges[h].Next
	if m.sameFaceAcross(next, h) {
		return m.Halfedges[next].Next
	}
	return next
}

// prevOverLine is the mirror of [Mesh.nextOverLine] using prev.
func (m *Mesh) prevOverLine(h HalfedgeIndex) HalfedgeIndex {
	prev := m.Halfedges[h].Prev
	if m.sameFaceAcross(prev, h) {
		return m.Halfedges[prev].Prev
	}
	return prev
}

// sameFaceAcross returns whether the opposites of a and b bound the same face.
func (m *Mesh) sameFaceAcross(a, b HalfedgeIndex) bool {
	oa, ob := m.Halfedges[a].Opposite, m.Halfedges[b].Opposite
	if oa == Invalid || ob == Invalid {
		return false
	}
	return m.Halfedges[oa].Face == m.Halfedges[ob].Face
}

// apex returns the vertex opposite the edge of h in the face of h,
// skipping over a face that shares two edges with the face across h.
func (m *Mesh) apex(h HalfedgeIndex) (VertexIndex, error) {
	if m.Halfedges[h].Opposite == Invalid {
		return Invalid, fmt.Errorf("%w: halfedge %d", ErrBoundary, h)
	}
	return m.Halfedges[m.nextOverLine(h)].Sink, nil
}

// wing returns the apex of the triangle across the given side halfedge.
func (m *Mesh) wing(side HalfedgeIndex) (VertexIndex, error) {
	op := m.Halfedges[side].Opposite
	if op == Invalid {
		return Invalid, fmt.Errorf("%w: halfedge %d", ErrBoundary, side)
	}
	return m.apex(op)
}
