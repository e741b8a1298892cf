// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/tokens/base/tolassert"
)

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	tolassert.Equal(t, 0.54708011, x)
	tolassert.Equal(t, 0.58595027, y)
	tolassert.Equal(t, 0.74639502, z)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	tolassert.EqualTol(t, 0.5, rl, 1e-12)
	tolassert.EqualTol(t, 0.6, gl, 1e-12)
	tolassert.EqualTol(t, 0.7, bl, 1e-12)

	tolassert.Equal(t, 3.2404548, XYZToSRGBMatrix[0])
	tolassert.Equal(t, 1.3299099, D50ToD65Matrix[8])

	dx, dy, dz := XYZD50ToD65(XYZD65ToD50(x, y, z))
	tolassert.EqualTol(t, x, dx, 1e-12)
	tolassert.EqualTol(t, y, dy, 1e-12)
	tolassert.EqualTol(t, z, dz, 1e-12)
}

func TestMatrixInverse(t *testing.T) {
	m := Matrix3{2, 0, 0, 0, 4, 0, 0, 0, 0.5}
	inv := m.Inverse()
	tolassert.Equal(t, 0.5, inv[0])
	tolassert.Equal(t, 0.25, inv[4])
	tolassert.Equal(t, 2.0, inv[8])
	tolassert.Equal(t, 0.0, inv[1])
}
