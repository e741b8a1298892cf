// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"cogentcore.org/tokens/base/num"
)

// ChromaEpsilon is the chroma below which a CIELAB color is
// considered achromatic, with an undefined hue of 0.
const ChromaEpsilon = 1e-4

// LABToLCH converts CIE L*a*b* into its polar form L*C*h,
// with the hue in degrees in [0, 360).
func LABToLCH(l, a, b float64) (ll, c, h float64) {
	c = math.Hypot(a, b)
	if c < ChromaEpsilon {
		return l, 0, 0
	}
	h = num.WrapHue(math.Atan2(b, a) * 180 / math.Pi)
	return l, c, h
}

// LCHToLAB converts CIE L*C*h with the hue in degrees into L*a*b*.
func LCHToLAB(l, c, h float64) (ll, a, b float64) {
	sin, cos := math.Sincos(h * math.Pi / 180)
	return l, c * cos, c * sin
}

// SnapLAB zeroes the a and b components of a CIE L*a*b* color
// when they are within floating point noise of 0.
func SnapLAB(l, a, b float64) (ll, la, lb float64) {
	if math.Abs(a) < ChromaEpsilon {
		a = 0
	}
	if math.Abs(b) < ChromaEpsilon {
		b = 0
	}
	return l, a, b
}
