// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"fmt"
	"testing"

	"cogentcore.org/subdivide/base/tolassert"
	"cogentcore.org/subdivide/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopWeight(t *testing.T) {
	tolassert.EqualTol(t, 0.625, LoopWeight(6), 1e-6)
	tolassert.EqualTol(t, 0.4375, LoopWeight(3), 1e-6)
	tolassert.EqualTol(t, 0.515625, LoopWeight(4), 1e-6)
	tolassert.EqualTol(t, 0.390625, LoopWeight(2), 1e-6)
}

func TestOneRing(t *testing.T) {
	m := build(t, octahedron, TwinScan)
	ring, err := m.OneRing(4)
	require.NoError(t, err)
	assert.Equal(t, []VertexIndex{3, 0, 2, 1}, ring)

	for v := range m.Vertices {
		n, err := m.Valence(VertexIndex(v))
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	}

	_, err = m.OneRing(42)
	assert.Error(t, err)

	pos, idx := tetrahedron()
	open, err := Build(pos, idx[:9], TwinScan)
	require.NoError(t, err)
	_, err = open.OneRing(1)
	assert.ErrorIs(t, err, ErrBoundary)
}

func TestSplitEdge(t *testing.T) {
	m := build(t, tetrahedron, TwinIndex)
	h := HalfedgeIndex(0)
	hop := m.Halfedges[h].Opposite
	u, v := m.Source(h), m.Halfedges[h].Sink
	p := math32.Vec3(0, 0.5, 0)

	w, err := m.SplitEdge(h, p)
	require.NoError(t, err)
	assert.Equal(t, VertexIndex(4), w)
	assert.Equal(t, p, m.Vertices[w].Position)
	assert.Equal(t, 14, m.NumHalfedges())
	assert.Equal(t, 4, m.NumFaces())

	assert.Equal(t, w, m.Halfedges[h].Sink)
	assert.Equal(t, u, m.Source(h))
	assert.Equal(t, hop, m.Halfedges[h].Opposite)
	assert.Equal(t, w, m.Source(hop))
	assert.Equal(t, u, m.Halfedges[hop].Sink)

	gon := m.Halfedges[h].Next
	opn := m.Halfedges[gon].Opposite
	assert.Equal(t, v, m.Halfedges[gon].Sink)
	assert.Equal(t, w, m.Halfedges[opn].Sink)
	assert.Equal(t, v, m.Source(opn))
	assert.Equal(t, opn, m.Halfedges[hop].Prev)
	assert.Equal(t, m.Halfedges[h].Face, m.Halfedges[gon].Face)
	assert.Equal(t, m.Halfedges[hop].Face, m.Halfedges[opn].Face)

	for _, vi := range []VertexIndex{u, v, w} {
		assert.Equal(t, vi, m.Source(m.Vertices[vi].Out))
	}
	n, err := m.faceSize(m.Halfedges[h].Face)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = m.faceSize(m.Halfedges[hop].Face)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.ErrorIs(t, m.CheckInvariants(), ErrNotTriangle)

	pos, idx := tetrahedron()
	open, err := Build(pos, idx[:3], TwinScan)
	require.NoError(t, err)
	_, err = open.SplitEdge(0, p)
	assert.ErrorIs(t, err, ErrBoundary)
}

func TestMasks(t *testing.T) {
	tet := build(t, tetrahedron, TwinScan)
	// halfedge 4 is 1 -> 3, between faces (0, 1, 3) and (1, 2, 3)
	p, err := LoopMask(tet, 4)
	require.NoError(t, err)
	tolassert.EqualVector(t, math32.Vec3(0.375, 0.125, 0.375), p, 1e-6)
	p, err = MidpointMask(tet, 4)
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0.5, 0, 0.5), p)
	// the wings of a tetrahedron edge are the apexes, which cancel out
	p, err = ButterflyMask(tet, 4)
	require.NoError(t, err)
	tolassert.EqualVector(t, math32.Vec3(0.5, 0, 0.5), p, 1e-6)

	oct := build(t, octahedron, TwinScan)
	// halfedge 0 is +x -> +y
	p, err = LoopMask(oct, 0)
	require.NoError(t, err)
	tolassert.EqualVector(t, math32.Vec3(0.375, 0.375, 0), p, 1e-6)
	p, err = ButterflyMask(oct, 0)
	require.NoError(t, err)
	tolassert.EqualVector(t, math32.Vec3(0.625, 0.625, 0), p, 1e-6)
}

// In a triangle covered on both sides every pair of faces shares all of
// its edges, so the apex lookup skips over the next halfedge and lands
// on an endpoint of the edge. That turns the Loop mask into the midpoint,
// and leaves the Butterfly mask without wing vertices.
func TestOverLineGuard(t *testing.T) {
	m := build(t, doubleTriangle, TwinScan)
	h := HalfedgeIndex(0)
	assert.Equal(t, m.Halfedges[m.Halfedges[h].Next].Next, m.nextOverLine(h))
	f1, err := m.apex(h)
	require.NoError(t, err)
	assert.Equal(t, VertexIndex(0), f1)
	f2, err := m.apex(m.Halfedges[h].Opposite)
	require.NoError(t, err)
	assert.Equal(t, VertexIndex(1), f2)

	p, err := LoopMask(m, h)
	require.NoError(t, err)
	tolassert.EqualVector(t, math32.Vec3(0.5, 0, 0), p, 1e-6)

	_, err = ButterflyMask(m, h)
	assert.ErrorIs(t, err, ErrButterflyStencil)

	// no skipping in a regular neighborhood
	tet := build(t, tetrahedron, TwinScan)
	assert.Equal(t, tet.Halfedges[0].Next, tet.nextOverLine(0))
	assert.Equal(t, tet.Halfedges[0].Prev, tet.prevOverLine(0))
}

// checkPass checks the invariants that hold after any number of passes
// over a closed mesh with v vertices, e edges and f faces.
func checkPass(t *testing.T, m *Mesh, v, e, f int) {
	t.Helper()
	require.NoError(t, m.CheckInvariants())
	require.NoError(t, m.Validate())
	assert.Equal(t, v, m.NumVertices())
	assert.Equal(t, e, m.NumEdges())
	assert.Equal(t, f, m.NumFaces())
	assert.Equal(t, 3*f, m.NumHalfedges())
	assert.Len(t, m.Faces, f)
	for _, loop := range m.FaceLoops() {
		assert.Len(t, loop, 3)
	}
	for i := range m.Halfedges {
		h := HalfedgeIndex(i)
		op := m.Halfedges[h].Opposite
		require.NotEqual(t, HalfedgeIndex(Invalid), op)
		assert.Equal(t, h, m.Halfedges[op].Opposite)
		assert.Equal(t, m.Halfedges[op].Sink, m.Source(h))
		assert.Equal(t, m.Halfedges[h].Sink, m.Source(op))
	}
	for i := range m.Vertices {
		assert.Equal(t, VertexIndex(i), m.Source(m.Vertices[i].Out))
	}
}

func TestSubdivideCounts(t *testing.T) {
	fixtures := map[string]func() ([]math32.Vector3, []int){
		"tetrahedron":    tetrahedron,
		"octahedron":     octahedron,
		"doubleHexagon": doubleHexagon,
	}
	for name, fixture := range fixtures {
		for _, s := range []Scheme{SchemeLoop, SchemeButterfly, SchemeMidpoint} {
			for _, twins := range []TwinStrategy{TwinScan, TwinIndex} {
				t.Run(fmt.Sprintf("%s/%v/%v", name, s, twins), func(t *testing.T) {
					m := build(t, fixture, twins)
					v, e, f := m.NumVertices(), m.NumEdges(), m.NumFaces()
					for range 2 {
						require.NoError(t, m.Subdivide(s))
						v, e, f = v+e, 2*e+3*f, 4*f
						checkPass(t, m, v, e, f)
					}
					assert.Equal(t, 2, v-e+f)
				})
			}
		}
	}
}

func TestTetrahedronLoop(t *testing.T) {
	m := build(t, tetrahedron, TwinIndex)
	require.NoError(t, m.LoopSubdivision())
	assert.Equal(t, 10, m.NumVertices())
	assert.Equal(t, 16, m.NumFaces())

	// valence 3 smoothing of the corner at the origin
	// with neighbors (1, 0, 0), (0, 1, 0) and (0, 0, 1)
	tolassert.EqualVector(t, math32.Vector3Scalar(0.1875), m.Vertices[0].Position, 1e-6)

	// each split vertex is 3/8 of the edge endpoints plus 1/8 of the apexes
	pos, _ := tetrahedron()
	sum := math32.Vector3{}
	for _, p := range pos {
		sum.SetAdd(p)
	}
	loops := m.FaceLoops()
	for v := 4; v < 10; v++ {
		var ends []int
		for _, loop := range loops {
			for k, lv := range loop {
				if lv == v && loop[(k+1)%3] < 4 {
					ends = append(ends, loop[(k+1)%3])
				}
			}
		}
		require.Len(t, ends, 2)
		a, b := pos[ends[0]], pos[ends[1]]
		apexes := sum.Sub(a).Sub(b)
		want := a.Add(b).MulScalar(3.0 / 8.0).Add(apexes.MulScalar(1.0 / 8.0))
		tolassert.EqualVector(t, want, m.Vertices[v].Position, 1e-6)
	}
}

func TestOctahedronLoop(t *testing.T) {
	m := build(t, octahedron, TwinScan)
	require.NoError(t, m.Subdivide(SchemeLoop))
	// opposite neighbors cancel out, leaving alpha(4) of the position
	tolassert.EqualVector(t, math32.Vec3(0.515625, 0, 0), m.Vertices[0].Position, 1e-6)
	tolassert.EqualVector(t, math32.Vec3(0, 0, -0.515625), m.Vertices[5].Position, 1e-6)
	tolassert.EqualVector(t, math32.Vec3(0.375, 0.375, 0), m.Vertices[6].Position, 1e-6)
}

func TestLoopPlanar(t *testing.T) {
	m := build(t, doubleHexagon, TwinIndex)
	require.NoError(t, m.SubdivideN(SchemeLoop, 3))
	for _, v := range m.Vertices {
		tolassert.EqualTol(t, planeZ(v.Position.X, v.Position.Y), v.Position.Z, 1e-4)
	}
}

func TestButterflyInterpolates(t *testing.T) {
	for _, fixture := range []func() ([]math32.Vector3, []int){tetrahedron, octahedron, doubleHexagon} {
		pos, _ := fixture()
		m := build(t, fixture, TwinIndex)
		require.NoError(t, m.SubdivideN(SchemeButterfly, 3))
		for v, p := range pos {
			assert.Equal(t, p, m.Vertices[v].Position)
		}
	}
}

func TestMidpointKeepsShape(t *testing.T) {
	m := build(t, tetrahedron, TwinIndex)
	require.NoError(t, m.Subdivide(SchemeMidpoint))
	pos, _ := tetrahedron()
	for v, p := range pos {
		assert.Equal(t, p, m.Vertices[v].Position)
	}
	for _, v := range m.Vertices[4:] {
		// every midpoint of a corner tetrahedron edge has two coordinates in {0, 0.5}
		n := 0
		for _, c := range [3]float32{v.Position.X, v.Position.Y, v.Position.Z} {
			if c == 0.5 {
				n++
			}
		}
		assert.Contains(t, []int{1, 2}, n)
	}
}

func TestDoubleTriangleRejected(t *testing.T) {
	for _, twins := range []TwinStrategy{TwinScan, TwinIndex} {
		m := build(t, doubleTriangle, twins)
		err := m.Validate()
		assert.ErrorIs(t, err, ErrNonManifold)
		assert.Contains(t, err.Error(), "share more than one edge")
		for _, s := range []Scheme{SchemeLoop, SchemeButterfly, SchemeMidpoint} {
			before := clone(m)
			assert.ErrorIs(t, m.Subdivide(s), ErrNonManifold, "%v", s)
			assert.Equal(t, before, m)
			assert.NoError(t, m.CheckInvariants())
		}
	}
}

func TestSubdivideRejectsOpen(t *testing.T) {
	pos, idx := tetrahedron()
	m, err := Build(pos, idx[:9], TwinScan)
	require.NoError(t, err)
	before := clone(m)
	assert.ErrorIs(t, m.Subdivide(SchemeLoop), ErrBoundary)
	assert.Equal(t, before, m)

	err = m.SubdivideN(SchemeLoop, 2)
	assert.ErrorIs(t, err, ErrBoundary)
	assert.Contains(t, err.Error(), "pass 1")
	assert.NoError(t, m.SubdivideN(SchemeLoop, 0))
}

func TestResolveTwinsIdempotent(t *testing.T) {
	for _, twins := range []TwinStrategy{TwinScan, TwinIndex} {
		m := build(t, octahedron, twins)
		require.NoError(t, m.Subdivide(SchemeLoop))
		before := opposites(m)
		changed, err := m.ResolveTwins()
		require.NoError(t, err)
		assert.Equal(t, 0, changed)
		changed, err = m.ResolveTwins()
		require.NoError(t, err)
		assert.Equal(t, 0, changed)
		assert.Equal(t, before, opposites(m))
	}
}

func TestResolveTwinsRebinds(t *testing.T) {
	m := build(t, tetrahedron, TwinScan)
	want := opposites(m)
	for _, twins := range []TwinStrategy{TwinScan, TwinIndex} {
		m.Twins = twins
		for i := range m.Halfedges {
			m.Halfedges[i].Opposite = Invalid
		}
		changed, err := m.ResolveTwins()
		require.NoError(t, err)
		assert.Equal(t, 12, changed)
		assert.Equal(t, want, opposites(m))
	}

	pos, idx := tetrahedron()
	open, err := Build(pos, idx[:9], TwinIndex)
	require.NoError(t, err)
	_, err = open.ResolveTwins()
	assert.ErrorIs(t, err, ErrBoundary)
}

func TestStrategiesAgreeAfterSubdivision(t *testing.T) {
	scan := build(t, octahedron, TwinScan)
	index := build(t, octahedron, TwinIndex)
	require.NoError(t, scan.SubdivideN(SchemeLoop, 2))
	require.NoError(t, index.SubdivideN(SchemeLoop, 2))
	assert.Equal(t, scan.Vertices, index.Vertices)
	assert.Equal(t, scan.Halfedges, index.Halfedges)
	assert.Equal(t, scan.Faces, index.Faces)
}
