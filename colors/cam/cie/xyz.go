// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [9]float64

// Mul returns m applied to the column vector (x, y, z).
func (m *Matrix3) Mul(x, y, z float64) (ox, oy, oz float64) {
	ox = m[0]*x + m[1]*y + m[2]*z
	oy = m[3]*x + m[4]*y + m[5]*z
	oz = m[6]*x + m[7]*y + m[8]*z
	return
}

// Inverse returns the inverse of m, computed from its adjugate.
// m must not be singular.
func (m *Matrix3) Inverse() Matrix3 {
	c0 := m[4]*m[8] - m[5]*m[7]
	c1 := m[5]*m[6] - m[3]*m[8]
	c2 := m[3]*m[7] - m[4]*m[6]
	det := m[0]*c0 + m[1]*c1 + m[2]*c2
	return Matrix3{
		c0 / det, (m[2]*m[7] - m[1]*m[8]) / det, (m[1]*m[5] - m[2]*m[4]) / det,
		c1 / det, (m[0]*m[8] - m[2]*m[6]) / det, (m[2]*m[3] - m[0]*m[5]) / det,
		c2 / det, (m[1]*m[6] - m[0]*m[7]) / det, (m[0]*m[4] - m[1]*m[3]) / det,
	}
}

var (
	// SRGBToXYZMatrix converts linear sRGB to CIE XYZ (D65),
	// from http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
	SRGBToXYZMatrix = Matrix3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	}

	// XYZToSRGBMatrix is the exact inverse of [SRGBToXYZMatrix].
	XYZToSRGBMatrix = SRGBToXYZMatrix.Inverse()

	// D65ToD50Matrix is the Bradford chromatic adaptation
	// from the D65 to the D50 white point.
	D65ToD50Matrix = Matrix3{
		1.0478112, 0.0228866, -0.0501270,
		0.0295424, 0.9904844, -0.0170491,
		-0.0092345, 0.0150436, 0.7521316,
	}

	// D50ToD65Matrix is the exact inverse of [D65ToD50Matrix].
	D50ToD65Matrix = D65ToD50Matrix.Inverse()
)

// WhiteD50 is the XYZ of the D50 reference white.
var WhiteD50 = [3]float64{0.96422, 1, 0.82521}

// SRGBLinToXYZ converts sRGB linear into XYZ CIE standard color space
// under the D65 white point.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	return SRGBToXYZMatrix.Mul(rl, gl, bl)
}

// XYZToSRGBLin converts XYZ CIE standard color space
// under the D65 white point to sRGB linear.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	return XYZToSRGBMatrix.Mul(x, y, z)
}

// SRGBToXYZ converts sRGB into XYZ CIE standard color space (D65).
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return SRGBLinToXYZ(SRGBToLinear(r, g, b))
}

// XYZToSRGB converts XYZ CIE standard color space (D65) into sRGB.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	return SRGBFromLinear(XYZToSRGBLin(x, y, z))
}

// XYZD65ToD50 adapts a D65 XYZ color to the D50 white point.
func XYZD65ToD50(x, y, z float64) (dx, dy, dz float64) {
	return D65ToD50Matrix.Mul(x, y, z)
}

// XYZD50ToD65 adapts a D50 XYZ color to the D65 white point.
func XYZD50ToD65(x, y, z float64) (dx, dy, dz float64) {
	return D50ToD65Matrix.Mul(x, y, z)
}
