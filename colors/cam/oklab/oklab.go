// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklab provides the Oklab perceptual color space
// (https://bottosson.github.io/posts/oklab/) and its polar form.
package oklab

import (
	"math"

	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/colors/cam/cie"
)

// ChromaEpsilon is the chroma below which an Oklab color is
// considered achromatic, with an undefined hue of 0.
const ChromaEpsilon = 1e-6

var (
	// linToLMS converts linear sRGB to approximate cone responses.
	linToLMS = cie.Matrix3{
		0.4122214708, 0.5363325363, 0.0514459929,
		0.2119034982, 0.6806995451, 0.1073969566,
		0.0883024619, 0.2817188376, 0.6299787005,
	}

	// lmsToLab converts cube-rooted cone responses to L, a, b.
	lmsToLab = cie.Matrix3{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}

	labToLMS = cie.Matrix3{
		1, 0.3963377774, 0.2158037573,
		1, -0.1055613458, -0.0638541728,
		1, -0.0894841775, -1.2914855480,
	}

	lmsToLin = cie.Matrix3{
		4.0767416621, -3.3077115913, 0.2309699292,
		-1.2684380046, 2.6097574011, -0.3413193965,
		-0.0041960863, -0.7034186147, 1.7076147010,
	}
)

// Lab is a color in the Oklab color space, with L in [0, 1].
type Lab struct {
	L, A, B float64
}

// LCh is the polar form of an Oklab color, with L in [0, 1],
// the chroma C >= 0, and the hue H in degrees in [0, 360).
type LCh struct {
	L, C, H float64
}

// FromLinearSRGB converts linear sRGB components to Oklab.
func FromLinearSRGB(rl, gl, bl float64) Lab {
	l, m, s := linToLMS.Mul(rl, gl, bl)
	ll, a, b := lmsToLab.Mul(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
	return Lab{ll, a, b}
}

// FromSRGB converts gamma-encoded sRGB components in [0, 1] to Oklab.
func FromSRGB(r, g, b float64) Lab {
	return FromLinearSRGB(cie.SRGBToLinear(r, g, b))
}

// LinearSRGB returns the unclipped linear sRGB components of the color.
func (c Lab) LinearSRGB() (rl, gl, bl float64) {
	l, m, s := labToLMS.Mul(c.L, c.A, c.B)
	return lmsToLin.Mul(l*l*l, m*m*m, s*s*s)
}

// SRGB returns the unclipped gamma-encoded sRGB components of the color.
func (c Lab) SRGB() (r, g, b float64) {
	return cie.SRGBFromLinear(c.LinearSRGB())
}

// LCh returns the polar form of the color. Chroma within floating
// point noise of 0 is snapped to 0, with a hue of 0.
func (c Lab) LCh() LCh {
	ch := math.Hypot(c.A, c.B)
	if ch < ChromaEpsilon {
		return LCh{L: c.L}
	}
	return LCh{c.L, ch, num.WrapHue(math.Atan2(c.B, c.A) * 180 / math.Pi)}
}

// Lab returns the rectangular form of the color.
func (c LCh) Lab() Lab {
	sin, cos := math.Sincos(c.H * math.Pi / 180)
	return Lab{c.L, c.C * cos, c.C * sin}
}

// Lerp returns the color at t in [0, 1] on the straight line
// from c to o in Oklab.
func (c Lab) Lerp(o Lab, t float64) Lab {
	return Lab{num.Lerp(c.L, o.L, t), num.Lerp(c.A, o.A, t), num.Lerp(c.B, o.B, t)}
}

// DeltaE returns the Euclidean distance between two colors in Oklab,
// a measure of their perceptual difference.
func DeltaE(c, o Lab) float64 {
	dl := c.L - o.L
	da := c.A - o.A
	db := c.B - o.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
