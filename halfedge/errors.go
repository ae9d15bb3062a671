// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import "cogentcore.org/subdivide/base/errors"

var (
	// ErrInvalidIndex is returned for input face indexes outside the vertex range.
	ErrInvalidIndex = errors.New("halfedge: vertex index out of range")

	// ErrDegenerateFace is returned for input triangles that repeat a vertex.
	ErrDegenerateFace = errors.New("halfedge: degenerate face")

	// ErrNotTriangle is returned when a face loop does not have exactly 3 halfedges.
	ErrNotTriangle = errors.New("halfedge: face is not a triangle")

	// ErrBoundary is returned when a halfedge has no opposite.
	ErrBoundary = errors.New("halfedge: boundary edge")

	// ErrNonManifold is returned for inconsistent or non-manifold connectivity.
	ErrNonManifold = errors.New("halfedge: non-manifold connectivity")

	// ErrIsolatedVertex is returned for a vertex without an incident halfedge.
	ErrIsolatedVertex = errors.New("halfedge: isolated vertex")

	// ErrButterflyStencil is returned when the local connectivity of an edge
	// cannot supply the four distinct wing vertices of the Butterfly mask.
	ErrButterflyStencil = errors.New("halfedge: butterfly stencil unavailable")

	// ErrEmpty is returned when subdividing a mesh without faces.
	ErrEmpty = errors.New("halfedge: mesh has no faces")
)
