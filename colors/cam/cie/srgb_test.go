// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/tokens/base/tolassert"
)

func TestSRGB(t *testing.T) {
	tolassert.Equal(t, 0.00015479876, SRGBToLinearComp(0.002))
	tolassert.Equal(t, 0.23302200, SRGBToLinearComp(0.52))

	tolassert.Equal(t, 0.01292, SRGBFromLinearComp(0.001))
	tolassert.Equal(t, 0.84338917, SRGBFromLinearComp(0.68))

	for _, v := range []float64{0, 0.02, 0.04045, 0.3, 0.5, 0.99, 1} {
		tolassert.EqualTol(t, v, SRGBFromLinearComp(SRGBToLinearComp(v)), 1e-7)
	}

	r, g, b := SRGBFromLinear(SRGBToLinear(0.3, 0.2, 0.6))
	tolassert.Equal(t, 0.3, r)
	tolassert.Equal(t, 0.2, g)
	tolassert.Equal(t, 0.6, b)
}
