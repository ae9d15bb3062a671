// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"fmt"

	"cogentcore.org/subdivide/math32"
)

// VertexIndex is the index of a [Vertex] in [Mesh.Vertices].
type VertexIndex int

// HalfedgeIndex is the index of a [Halfedge] in [Mesh.Halfedges].
type HalfedgeIndex int

// FaceIndex is the index of a [Face] in [Mesh.Faces].
type FaceIndex int

// Invalid is the value of an unbound reference.
const Invalid = -1

// Vertex is a mesh vertex.
type Vertex struct {

	// Position is the location of the vertex.
	Position math32.Vector3

	// Out is any halfedge that starts at this vertex.
	// It is the traversal seed for [Mesh.OneRing].
	Out HalfedgeIndex

	removed bool
}

// Halfedge is one directed half of an undirected mesh edge,
// bounding exactly one face.
type Halfedge struct {

	// Sink is the destination vertex.
	Sink VertexIndex

	// Face is the face this halfedge bounds.
	Face FaceIndex

	// Next is the following halfedge around Face.
	Next HalfedgeIndex

	// Prev is the preceding halfedge around Face.
	Prev HalfedgeIndex

	// Opposite is the halfedge covering the same undirected
	// edge in the reverse direction, or [Invalid].
	Opposite HalfedgeIndex

	removed bool
}

// Face is a mesh face, given by any one of its boundary halfedges.
type Face struct {
	Halfedge HalfedgeIndex

	removed bool
}

// TwinStrategy selects how opposite halfedges are matched up,
// both when building a mesh and in [Mesh.ResolveTwins].
// Both strategies produce identical pairings.
type TwinStrategy int32

const (
	// TwinScan compares every halfedge against every other one.
	// It is quadratic in the number of halfedges.
	TwinScan TwinStrategy = iota

	// TwinIndex matches halfedges through a (source, sink) index.
	TwinIndex
)

func (ts TwinStrategy) String() string {
	switch ts {
	case TwinScan:
		return "scan"
	case TwinIndex:
		return "index"
	}
	return fmt.Sprintf("TwinStrategy(%d)", int32(ts))
}

// ParseTwinStrategy returns the strategy with the given name.
func ParseTwinStrategy(s string) (TwinStrategy, error) {
	switch s {
	case "scan":
		return TwinScan, nil
	case "index":
		return TwinIndex, nil
	}
	return TwinScan, fmt.Errorf("halfedge: unknown twin strategy %q (want scan or index)", s)
}
