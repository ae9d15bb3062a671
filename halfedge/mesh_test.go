// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"testing"

	"cogentcore.org/subdivide/base/tolassert"
	"cogentcore.org/subdivide/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	m := New(TwinScan)
	assert.Equal(t, VertexIndex(0), m.AddVertex(math32.Vec3(1, 2, 3)))
	assert.Equal(t, VertexIndex(1), m.AddVertex(math32.Vec3(4, 5, 6)))
	assert.Equal(t, HalfedgeIndex(0), m.AddHalfedge())
	assert.Equal(t, FaceIndex(0), m.AddFace(0))

	assert.Equal(t, HalfedgeIndex(Invalid), m.Vertices[0].Out)
	he := m.Halfedges[0]
	assert.Equal(t, VertexIndex(Invalid), he.Sink)
	assert.Equal(t, HalfedgeIndex(Invalid), he.Opposite)
	assert.True(t, m.IsVertex(1))
	assert.False(t, m.IsVertex(2))
	assert.False(t, m.IsHalfedge(Invalid))
	assert.True(t, m.IsFace(0))
}

func TestGenerate(t *testing.T) {
	pos, idx := tetrahedron()
	for _, twins := range []TwinStrategy{TwinScan, TwinIndex} {
		t.Run(twins.String(), func(t *testing.T) {
			m := build(t, tetrahedron, twins)
			assert.Equal(t, 4, m.NumVertices())
			assert.Equal(t, 12, m.NumHalfedges())
			assert.Equal(t, 4, m.NumFaces())
			assert.Equal(t, 6, m.NumEdges())
			require.NoError(t, m.CheckInvariants())
			require.NoError(t, m.Validate())

			assert.Equal(t, pos, m.Positions())
			loops := m.FaceLoops()
			require.Len(t, loops, 4)
			for f, loop := range loops {
				assert.Equal(t, idx[3*f:3*f+3], loop)
			}
			for v := range m.Vertices {
				assert.Equal(t, VertexIndex(v), m.Source(m.Vertices[v].Out))
			}
		})
	}
}

func TestGenerateStrategiesAgree(t *testing.T) {
	for _, fixture := range []func() ([]math32.Vector3, []int){tetrahedron, octahedron, doubleHexagon} {
		scan := build(t, fixture, TwinScan)
		index := build(t, fixture, TwinIndex)
		assert.Equal(t, scan.Halfedges, index.Halfedges)
		assert.Equal(t, scan.Vertices, index.Vertices)
	}
}

func TestGenerateErrors(t *testing.T) {
	pos, _ := tetrahedron()
	_, err := Build(pos, []int{0, 1, 2, 3}, TwinScan)
	assert.ErrorIs(t, err, ErrNotTriangle)
	_, err = Build(pos, []int{0, 1, 9}, TwinScan)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = Build(pos, []int{0, 1, -1}, TwinScan)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = Build(pos, []int{0, 1, 1}, TwinScan)
	assert.ErrorIs(t, err, ErrDegenerateFace)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, New(TwinScan).Validate(), ErrEmpty)

	pos, idx := tetrahedron()
	open, err := Build(pos, idx[:9], TwinIndex)
	require.NoError(t, err)
	assert.NoError(t, open.CheckInvariants())
	assert.ErrorIs(t, open.Validate(), ErrBoundary)

	extra := append(append([]math32.Vector3(nil), pos...), math32.Vec3(5, 5, 5))
	isolated, err := Build(extra, idx, TwinIndex)
	require.NoError(t, err)
	assert.ErrorIs(t, isolated.Validate(), ErrIsolatedVertex)

	// two tetrahedra touching at vertex 0
	bpos := append(append([]math32.Vector3(nil), pos...),
		math32.Vec3(-1, 0, 0), math32.Vec3(0, -1, 0), math32.Vec3(0, 0, -1))
	bidx := append(append([]int(nil), idx...),
		0, 4, 5,
		0, 6, 4,
		0, 5, 6,
		4, 6, 5)
	bowtie, err := Build(bpos, bidx, TwinIndex)
	require.NoError(t, err)
	assert.ErrorIs(t, bowtie.Validate(), ErrNonManifold)

	flipped := append([]int(nil), idx...)
	flipped[1], flipped[2] = flipped[2], flipped[1]
	bad, err := Build(pos, flipped, TwinScan)
	require.NoError(t, err)
	assert.Error(t, bad.Validate())
}

func TestRemoveFace(t *testing.T) {
	m := build(t, tetrahedron, TwinIndex)
	require.NoError(t, m.RemoveFace(3))
	assert.Error(t, m.RemoveFace(3))

	assert.Equal(t, 3, m.NumFaces())
	assert.Equal(t, 9, m.NumHalfedges())
	assert.Equal(t, 4, m.NumVertices())
	assert.Len(t, m.Halfedges, 12)
	require.NoError(t, m.CheckInvariants())
	assert.ErrorIs(t, m.Validate(), ErrBoundary)

	unbound := 0
	for i := range m.Halfedges {
		if m.IsHalfedge(HalfedgeIndex(i)) && m.Halfedges[i].Opposite == Invalid {
			unbound++
		}
	}
	assert.Equal(t, 3, unbound)
	for v := range m.Vertices {
		out := m.Vertices[v].Out
		require.True(t, m.IsHalfedge(out))
		assert.Equal(t, VertexIndex(v), m.Source(out))
	}

	m.Compact()
	assert.Len(t, m.Halfedges, 9)
	assert.Len(t, m.Faces, 3)
	require.NoError(t, m.CheckInvariants())
	assert.Equal(t, [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}}, m.FaceLoops())
}

func TestCompactNoop(t *testing.T) {
	m := build(t, octahedron, TwinIndex)
	before := clone(m)
	m.Compact()
	assert.Equal(t, before, m)
}

func TestStats(t *testing.T) {
	m := build(t, octahedron, TwinIndex)
	st := m.Stats()
	assert.Equal(t, 6, st.Vertices)
	assert.Equal(t, 12, st.Edges)
	assert.Equal(t, 8, st.Faces)
	assert.Equal(t, 24, st.Halfedges)
	assert.Equal(t, 2, st.Euler)
	assert.Equal(t, map[int]int{4: 6}, st.Valences)
	assert.Equal(t, math32.Vec3(-1, -1, -1), st.Bounds.Min)
	assert.Equal(t, math32.Vec3(1, 1, 1), st.Bounds.Max)
	// eight equilateral triangles with side sqrt(2)
	tolassert.EqualTol(t, 4*math32.Sqrt(3), st.Area, 1e-5)

	// Loop subdivision shrinks the surface, midpoint subdivision keeps it
	loop := build(t, octahedron, TwinIndex)
	require.NoError(t, loop.LoopSubdivision())
	assert.Less(t, loop.Stats().Area, st.Area)
	mid := build(t, octahedron, TwinIndex)
	require.NoError(t, mid.Subdivide(SchemeMidpoint))
	tolassert.EqualTol(t, st.Area, mid.Stats().Area, 1e-5)

	pos, idx := tetrahedron()
	open, err := Build(pos, idx[:9], TwinIndex)
	require.NoError(t, err)
	assert.Nil(t, open.Stats().Valences)
}

func TestParse(t *testing.T) {
	for i, name := range Schemes {
		s, err := ParseScheme(name)
		require.NoError(t, err)
		assert.Equal(t, Scheme(i), s)
		assert.Equal(t, name, s.String())
	}
	_, err := ParseScheme("catmull-clark")
	assert.Error(t, err)

	var s Scheme
	require.NoError(t, s.UnmarshalText([]byte("butterfly")))
	assert.Equal(t, SchemeButterfly, s)
	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "butterfly", string(text))
	assert.Error(t, s.UnmarshalText([]byte("sqrt3")))

	ts, err := ParseTwinStrategy("index")
	require.NoError(t, err)
	assert.Equal(t, TwinIndex, ts)
	_, err = ParseTwinStrategy("hash")
	assert.Error(t, err)
}
