// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// CIE standard constants for the CIELAB companding function.
const (
	LABEpsilon = 216.0 / 24389.0
	LABKappa   = 24389.0 / 27.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// before they are combined into L*a*b*.
func LABCompress(t float64) float64 {
	if t > LABEpsilon {
		return math.Cbrt(t)
	}
	return (LABKappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float64) float64 {
	if t := ft * ft * ft; t > LABEpsilon {
		return t
	}
	return (116*ft - 16) / LABKappa
}

// XYZToLAB converts a D50 XYZ color into CIE L*a*b*,
// where L is in [0, 100].
func XYZToLAB(x, y, z float64) (l, a, b float64) {
	fx := LABCompress(x / WhiteD50[0])
	fy := LABCompress(y / WhiteD50[1])
	fz := LABCompress(z / WhiteD50[2])
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a CIE L*a*b* color into D50 XYZ.
func LABToXYZ(l, a, b float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD50[0]
	y = LToY(l) / 100 * WhiteD50[1]
	z = LABUncompress(fz) * WhiteD50[2]
	return
}

// LToY converts L* lightness to Y luminance in [0, 100].
func LToY(l float64) float64 {
	if l > LABKappa*LABEpsilon {
		ft := (l + 16) / 116
		return 100 * ft * ft * ft
	}
	return 100 * l / LABKappa
}

// YToL converts Y luminance in [0, 100] to L* lightness.
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}

// SRGBToLAB converts sRGB components in [0, 1] into CIE L*a*b*,
// adapting from D65 to D50 with the Bradford transform.
func SRGBToLAB(r, g, b float64) (l, la, lb float64) {
	return XYZToLAB(XYZD65ToD50(SRGBToXYZ(r, g, b)))
}

// LABToSRGB converts CIE L*a*b* into unclipped sRGB components,
// adapting from D50 to D65 with the Bradford transform.
func LABToSRGB(l, a, b float64) (r, g, bl float64) {
	return XYZToSRGB(XYZD50ToD65(LABToXYZ(l, a, b)))
}
