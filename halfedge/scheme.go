// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package halfedge

import "fmt"

// Scheme is a subdivision scheme.
type Scheme int32

const (
	// SchemeLoop is approximating Loop subdivision: every edge is split
	// with [LoopMask] and the original vertices are smoothed.
	SchemeLoop Scheme = iota

	// SchemeButterfly is interpolating Butterfly subdivision: every edge
	// is split with [ButterflyMask] and the original vertices stay put.
	SchemeButterfly

	// SchemeMidpoint splits every edge at its midpoint and does not move
	// anything, so the surface keeps its shape.
	SchemeMidpoint
)

// Schemes are the names of the schemes, indexed by [Scheme].
var Schemes = [...]string{"loop", "butterfly", "midpoint"}

func (s Scheme) String() string {
	if s >= 0 && int(s) < len(Schemes) {
		return Schemes[s]
	}
	return fmt.Sprintf("Scheme(%d)", int32(s))
}

// ParseScheme returns the scheme with the given name.
func ParseScheme(name string) (Scheme, error) {
	for i, sn := range Schemes {
		if sn == name {
			return Scheme(i), nil
		}
	}
	return SchemeLoop, fmt.Errorf("halfedge: unknown subdivision scheme %q", name)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scheme) UnmarshalText(text []byte) error {
	ps, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// Mask returns the edge mask of the scheme.
func (s Scheme) Mask() Mask {
	switch s {
	case SchemeLoop:
		return LoopMask
	case SchemeButterfly:
		return ButterflyMask
	}
	return MidpointMask
}

// Smooths returns whether the scheme moves the original vertices.
func (s Scheme) Smooths() bool {
	return s == SchemeLoop
}
