// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// TriangleArea returns the area of the triangle with the given corners.
func TriangleArea(a, b, c Vector3) float32 {
	return 0.5 * b.Sub(a).Cross(c.Sub(a)).Length()
}
