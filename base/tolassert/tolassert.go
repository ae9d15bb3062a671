// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// and vectors with tolerance.
package tolassert

import (
	"testing"

	"cogentcore.org/subdivide/math32"
	"github.com/stretchr/testify/assert"
)

// StandardTol is the default tolerance for float32 mesh positions.
const StandardTol = float32(1.0e-5)

// EqualTol asserts that the given two numbers are equal within the given tolerance.
func EqualTol(t *testing.T, expected, actual, tol float32) bool {
	t.Helper()
	return assert.InDelta(t, float64(expected), float64(actual), float64(tol))
}

// EqualVector asserts that the given two vectors are equal within the given
// tolerance on every component.
func EqualVector(t *testing.T, expected, actual math32.Vector3, tol float32) bool {
	t.Helper()
	return assert.Truef(t, expected.IsEqualTol(actual, tol), "expected %v, got %v (tol %g)", expected, actual, tol)
}
