// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package halfedge provides a halfedge representation of closed, manifold
triangle meshes, and the Loop and Butterfly subdivision schemes that
refine them in place.

All vertices, halfedges and faces live in insertion-ordered slices owned
by a [Mesh], and refer to each other by typed integer indexes
([VertexIndex], [HalfedgeIndex], [FaceIndex]) instead of pointers.
Removed entities are tombstoned and keep their index until [Mesh.Compact]
is called, which drops them and renumbers everything in traversal order.

A mesh is built from flat positions and triangle index triples with
[Mesh.Generate] (or [Build]), refined with [Mesh.Subdivide], and exported
with [Mesh.Positions] and [Mesh.FaceLoops]:

	m, err := halfedge.Build(positions, indices, halfedge.TwinIndex)
	if err != nil {
		return err
	}
	if err := m.SubdivideN(halfedge.SchemeLoop, 2); err != nil {
		return err
	}
	pos, loops := m.Positions(), m.FaceLoops()

Every subdivision pass checks the closed manifold preconditions with
[Mesh.Validate] and computes all new vertex positions before it mutates
anything, so a rejected mesh is left untouched.
*/
package halfedge
