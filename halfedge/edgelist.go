// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

// edgeKey is a directed edge, from src to dst.
type edgeKey struct {
	src, dst VertexIndex
}

func (k edgeKey) reverse() edgeKey {
	return edgeKey{src: k.dst, dst: k.src}
}

// edgeList is an ordered list of directed edges and their halfedges.
// With [TwinIndex] it also keeps a map from key to the last index
// holding that key, otherwise lookups scan the list from the end.
// Either way a lookup finds the most recently added match.
type edgeList struct {
	// keys is the ordered list of directed edges.
	keys []edgeKey

	// values are the halfedges, in the same order as keys.
	values []HalfedgeIndex

	// indexes is the key-to-index mapping, only used with [TwinIndex].
	indexes map[edgeKey]int
}

func newEdgeList(twins TwinStrategy, capacity int) *edgeList {
	el := &edgeList{
		keys:   make([]edgeKey, 0, capacity),
		values: make([]HalfedgeIndex, 0, capacity),
	}
	if twins == TwinIndex {
		el.indexes = make(map[edgeKey]int, capacity)
	}
	return el
}

// add appends the given directed edge.
// It returns true if the key was already on the list.
func (el *edgeList) add(key edgeKey, h HalfedgeIndex) bool {
	_, had := el.find(key)
	if el.indexes != nil {
		el.indexes[key] = len(el.keys)
	}
	el.keys = append(el.keys, key)
	el.values = append(el.values, h)
	return had
}

// find returns the most recently added halfedge for the given key.
func (el *edgeList) find(key edgeKey) (HalfedgeIndex, bool) {
	if el.indexes != nil {
		idx, ok := el.indexes[key]
		if !ok {
			return Invalid, false
		}
		return el.values[idx], true
	}
	for i := len(el.keys) - 1; i >= 0; i-- {
		if el.keys[i] == key {
			return el.values[i], true
		}
	}
	return Invalid, false
}
