// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import (
	"fmt"

	"cogentcore.org/subdivide/base/errors"
)

// ResolveTwins rebinds the opposite of every live halfedge to the halfedge
// whose source and sink are its sink and source, using [Mesh.Twins].
// It returns the number of halfedges whose opposite changed, so a second
// call on a consistent mesh returns 0. Halfedges with no reverse
// ([ErrBoundary]) or with several ([ErrNonManifold]) are reported in the
// returned error; with several, the last one in mesh order is bound,
// for both strategies.
func (m *Mesh) ResolveTwins() (int, error) {
	if m.Twins == TwinIndex {
		return m.resolveTwinsIndex()
	}
	return m.resolveTwinsScan()
}

func (m *Mesh) resolveTwinsScan() (int, error) {
	changed := 0
	var errs []error
	for i := range m.Halfedges {
		h := HalfedgeIndex(i)
		if !m.IsHalfedge(h) {
			continue
		}
		src, dst := m.Source(h), m.Halfedges[h].Sink
		found := HalfedgeIndex(Invalid)
		matches := 0
		for j := range m.Halfedges {
			o := HalfedgeIndex(j)
			if !m.IsHalfedge(o) {
				continue
			}
			if m.Halfedges[o].Sink == src && m.Source(o) == dst {
				found = o
				matches++
			}
		}
		changed += m.bindTwins(h, found)
		if err := twinError(h, src, dst, matches); err != nil {
			errs = append(errs, err)
		}
	}
	return changed, errors.Join(errs...)
}

func (m *Mesh) resolveTwinsIndex() (int, error) {
	edges := newEdgeList(TwinIndex, len(m.Halfedges))
	counts := make(map[edgeKey]int, len(m.Halfedges))
	for i := range m.Halfedges {
		h := HalfedgeIndex(i)
		if !m.IsHalfedge(h) {
			continue
		}
		key := edgeKey{src: m.Source(h), dst: m.Halfedges[h].Sink}
		edges.add(key, h)
		counts[key]++
	}
	changed := 0
	var errs []error
	for i := range m.Halfedges {
		h := HalfedgeIndex(i)
		if !m.IsHalfedge(h) {
			continue
		}
		src, dst := m.Source(h), m.Halfedges[h].Sink
		rev := edgeKey{src: dst, dst: src}
		found, _ := edges.find(rev)
		changed += m.bindTwins(h, found)
		if err := twinError(h, src, dst, counts[rev]); err != nil {
			errs = append(errs, err)
		}
	}
	return changed, errors.Join(errs...)
}

// bindTwins binds h and o as mutual opposites, or unbinds h if o is
// [Invalid]. It returns the number of halfedges whose opposite changed.
func (m *Mesh) bindTwins(h, o HalfedgeIndex) int {
	changed := 0
	if m.Halfedges[h].Opposite != o {
		m.Halfedges[h].Opposite = o
		changed++
	}
	if o != Invalid && m.Halfedges[o].Opposite != h {
		m.Halfedges[o].Opposite = h
		changed++
	}
	return changed
}

func twinError(h HalfedgeIndex, src, dst VertexIndex, matches int) error {
	switch {
	case matches == 0:
		return fmt.Errorf("%w: halfedge %d (%d -> %d) has no opposite", ErrBoundary, h, src, dst)
	case matches > 1:
		return fmt.Errorf("%w: halfedge %d (%d -> %d) has %d opposites", ErrNonManifold, h, src, dst, matches)
	}
	return nil
}
