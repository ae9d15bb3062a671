// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/subdivide/math32"
)

// LoopSubdivision applies one pass of Loop subdivision.
func (m *Mesh) LoopSubdivision() error {
	return m.Subdivide(SchemeLoop)
}

// ButterflySubdivision applies one pass of Butterfly subdivision.
func (m *Mesh) ButterflySubdivision() error {
	return m.Subdivide(SchemeButterfly)
}

// SubdivideN applies the given number of passes of the given scheme.
func (m *Mesh) SubdivideN(s Scheme, iterations int) error {
	for i := range iterations {
		if err := m.Subdivide(s); err != nil {
			return fmt.Errorf("subdivision pass %d: %w", i+1, err)
		}
	}
	return nil
}

// Subdivide applies one pass of the given scheme. Every edge is split
// once and every triangle is replaced by four: one at each original
// corner and one in the middle. A mesh with V vertices, E edges and
// F faces ends up with V+E vertices, 2E+3F edges and 4F faces.
//
// The mesh must pass [Mesh.Validate]. All new positions are computed
// before anything is changed, so an error from validation or from the
// scheme's mask leaves the mesh as it was. An error after that point
// means the mesh is inconsistent and must be discarded.
func (m *Mesh) Subdivide(s Scheme) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.Compact()
	nv, nf := len(m.Vertices), len(m.Faces)

	var rings [][]VertexIndex
	var old []math32.Vector3
	if s.Smooths() {
		rings = make([][]VertexIndex, nv)
		old = make([]math32.Vector3, nv)
		for v := range nv {
			ring, err := m.OneRing(VertexIndex(v))
			if err != nil {
				return err
			}
			rings[v] = ring
			old[v] = m.Vertices[v].Position
		}
	}

	splits, err := m.edgeSplits(s.Mask(), make([]bool, len(m.Halfedges)))
	if err != nil {
		return err
	}

	faceVerts := make([][]VertexIndex, nf)
	for _, sp := range splits {
		f1 := m.Halfedges[sp.h].Face
		f2 := m.Halfedges[m.Halfedges[sp.h].Opposite].Face
		w, err := m.SplitEdge(sp.h, sp.pos)
		if err != nil {
			return err
		}
		faceVerts[f1] = append(faceVerts[f1], w)
		faceVerts[f2] = append(faceVerts[f2], w)
	}

	if err := m.retriangulate(nv, faceVerts); err != nil {
		return err
	}
	if _, err := m.ResolveTwins(); err != nil {
		return err
	}

	for v := range rings {
		m.Vertices[v].Position = smooth(old[v], rings[v], old)
	}

	slog.Debug("halfedge: subdivision pass", "scheme", s, "twins", m.Twins,
		"vertices", len(m.Vertices), "faces", len(m.Faces), "splits", len(splits))
	return nil
}

// edgeSplit is an edge to split and the position of its new vertex.
type edgeSplit struct {
	h   HalfedgeIndex
	pos math32.Vector3
}

// edgeSplits returns one split per undirected edge, in halfedge order,
// with positions computed by mask on the current mesh. visited records
// the halfedges whose edge is already covered; it is scoped to one pass.
func (m *Mesh) edgeSplits(mask Mask, visited []bool) ([]edgeSplit, error) {
	splits := make([]edgeSplit, 0, len(m.Halfedges)/2)
	for i := range m.Halfedges {
		h := HalfedgeIndex(i)
		if visited[h] {
			continue
		}
		p, err := mask(m, h)
		if err != nil {
			return nil, err
		}
		if !p.IsFinite() {
			return nil, fmt.Errorf("halfedge: edge %d -> %d gives non-finite position %v", m.Source(h), m.Halfedges[h].Sink, p)
		}
		splits = append(splits, edgeSplit{h: h, pos: p})
		visited[h] = true
		visited[m.Halfedges[h].Opposite] = true
	}
	return splits, nil
}

// retriangulate replaces the faces of the mesh, which after all edges are
// split are hexagonal loops, by four triangles each. The first nv vertices
// are the original ones, and faceVerts has the three new vertices on
// each original face. Old faces are removed and the face slice is
// compacted at the end. Opposites of the new halfedges are left unbound.
func (m *Mesh) retriangulate(nv int, faceVerts [][]VertexIndex) error {
	nf := len(faceVerts)
	for f := range nf {
		m.Faces[f].removed = true
	}

	inner := make([][]HalfedgeIndex, nf)
	for v := range nv {
		start := m.Vertices[v].Out
		it := start
		for steps := 0; ; steps++ {
			if steps > nf {
				return fmt.Errorf("%w: wedges around vertex %d do not close", ErrNonManifold, v)
			}
			of := m.Halfedges[it].Face
			prev := m.Halfedges[it].Prev
			corner := m.AddHalfedge()
			hs := m.Halfedges
			hs[corner].Prev = it
			hs[corner].Next = prev
			hs[corner].Sink = hs[hs[prev].Prev].Sink
			hs[it].Next = corner
			hs[prev].Prev = corner

			f := m.AddFace(corner)
			hs[corner].Face = f
			hs[prev].Face = f
			hs[it].Face = f
			inner[of] = append(inner[of], corner)

			it = hs[prev].Opposite
			if it == start {
				break
			}
		}
	}

	for f := range nf {
		if err := m.centralTriangle(FaceIndex(f), inner[f], faceVerts[f]); err != nil {
			return err
		}
	}
	m.compactFaces()
	return nil
}

// centralTriangle adds the middle triangle of original face f, given the
// inner halfedges of its three corner triangles and its new vertices.
// Each new halfedge runs against one inner halfedge, and is followed by
// the new halfedge starting where it ends.
func (m *Mesh) centralTriangle(f FaceIndex, inner []HalfedgeIndex, verts []VertexIndex) error {
	if len(inner) != 3 || len(verts) != 3 {
		return fmt.Errorf("%w: face %d has %d corners and %d new vertices", ErrNotTriangle, f, len(inner), len(verts))
	}
	var hes [3]HalfedgeIndex
	for k, in := range inner {
		if !slices.Contains(verts, m.Halfedges[in].Sink) {
			return fmt.Errorf("%w: corner of face %d ends at vertex %d, which is not on its edges", ErrNonManifold, f, m.Halfedges[in].Sink)
		}
		hes[k] = m.AddHalfedge()
	}
	hs := m.Halfedges
	for k, in := range inner {
		hs[hes[k]].Sink = m.Source(in)
	}
	for k, in := range inner {
		for j := range inner {
			// the halfedge against inner j starts at the sink of inner j
			if j != k && hs[inner[j]].Sink == m.Source(in) {
				hs[hes[k]].Next = hes[j]
				hs[hes[j]].Prev = hes[k]
			}
		}
	}
	nf := m.AddFace(hes[0])
	for _, h := range hes {
		if hs[h].Next == Invalid || hs[h].Prev == Invalid {
			return fmt.Errorf("%w: central triangle of face %d does not close", ErrNonManifold, f)
		}
		hs[h].Face = nf
	}
	return nil
}

// compactFaces drops removed faces and renumbers the remaining ones.
func (m *Mesh) compactFaces() {
	fmap := compact(&m.Faces, func(f *Face) bool { return f.removed })
	for i := range m.Halfedges {
		m.Halfedges[i].Face = remap(fmap, m.Halfedges[i].Face)
	}
}

// LoopWeight returns the Loop smoothing weight of a vertex with
// valence n: 3/8 + (3/8 + 1/4 cos(2π/n))². LoopWeight(6) is 5/8.
func LoopWeight(n int) float32 {
	c := 3.0/8.0 + 0.25*math32.Cos(2*math32.Pi/float32(n))
	return 3.0/8.0 + c*c
}

// smooth returns the Loop smoothed position of a vertex at p with the
// given neighbors, reading all positions from old.
func smooth(p math32.Vector3, ring []VertexIndex, old []math32.Vector3) math32.Vector3 {
	n := len(ring)
	alpha := LoopWeight(n)
	var sum math32.Vector3
	for _, nb := range ring {
		sum.SetAdd(old[nb])
	}
	return p.MulScalar(alpha).Add(sum.MulScalar((1 - alpha) / float32(n)))
}
