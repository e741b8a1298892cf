// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Rec. 709 luminance coefficients of linear sRGB.
const (
	LumR = 0.2126
	LumG = 0.7152
	LumB = 0.0722
)

// LinearLuminance returns the relative luminance Y in [0, 1]
// of the given linear sRGB components.
func LinearLuminance(rl, gl, bl float64) float64 {
	return LumR*rl + LumG*gl + LumB*bl
}

// Luminance returns the relative luminance Y in [0, 1] of the
// given gamma-encoded sRGB components, as defined by WCAG 2.
func Luminance(r, g, b float64) float64 {
	return LinearLuminance(SRGBToLinear(r, g, b))
}
