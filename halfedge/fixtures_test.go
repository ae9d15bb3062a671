// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"testing"

	"cogentcore.org/subdivide/math32"
	"github.com/stretchr/testify/require"
)

// tetrahedron is a unit corner tetrahedron with outward faces.
func tetrahedron() ([]math32.Vector3, []int) {
	pos := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
	}
	idx := []int{
		0, 2, 1,
		0, 1, 3,
		0, 3, 2,
		1, 2, 3,
	}
	return pos, idx
}

// octahedron has its vertices on the unit axes: +x, -x, +y, -y, +z, -z.
func octahedron() ([]math32.Vector3, []int) {
	pos := []math32.Vector3{
		math32.Vec3(1, 0, 0),
		math32.Vec3(-1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, -1, 0),
		math32.Vec3(0, 0, 1),
		math32.Vec3(0, 0, -1),
	}
	idx := []int{
		0, 2, 4,
		2, 1, 4,
		1, 3, 4,
		3, 0, 4,
		2, 0, 5,
		1, 2, 5,
		3, 1, 5,
		0, 3, 5,
	}
	return pos, idx
}

// doubleTriangle is a triangle covered on both sides, so that its two
// faces share all three edges.
func doubleTriangle() ([]math32.Vector3, []int) {
	pos := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
	}
	idx := []int{
		0, 1, 2,
		0, 2, 1,
	}
	return pos, idx
}

// planeZ is the tilted plane that [doubleHexagon] lies in.
func planeZ(x, y float32) float32 {
	return 0.5*x - 0.25*y + 1
}

// doubleHexagon is a flat hexagon covered on both sides, with a separate
// center vertex for each side, all lying in the plane given by [planeZ].
func doubleHexagon() ([]math32.Vector3, []int) {
	pos := []math32.Vector3{
		math32.Vec3(0, 0, planeZ(0, 0)),
		math32.Vec3(0, 0, planeZ(0, 0)),
	}
	for i := range 6 {
		a := float32(i) * math32.Pi / 3
		x, y := 2*math32.Cos(a), 2*math32.Cos(a-math32.Pi/2)
		pos = append(pos, math32.Vec3(x, y, planeZ(x, y)))
	}
	var idx []int
	for i := range 6 {
		r0, r1 := 2+i, 2+(i+1)%6
		idx = append(idx, 0, r0, r1)
		idx = append(idx, 1, r1, r0)
	}
	return pos, idx
}

func build(t *testing.T, fixture func() ([]math32.Vector3, []int), twins TwinStrategy) *Mesh {
	t.Helper()
	pos, idx := fixture()
	m, err := Build(pos, idx, twins)
	require.NoError(t, err)
	return m
}

// clone returns a deep copy of the mesh.
func clone(m *Mesh) *Mesh {
	return &Mesh{
		Vertices:  append([]Vertex(nil), m.Vertices...),
		Halfedges: append([]Halfedge(nil), m.Halfedges...),
		Faces:     append([]Face(nil), m.Faces...),
		Twins:     m.Twins,
	}
}

func opposites(m *Mesh) []HalfedgeIndex {
	ops := make([]HalfedgeIndex, len(m.Halfedges))
	for i := range m.Halfedges {
		ops[i] = m.Halfedges[i].Opposite
	}
	return ops
}
