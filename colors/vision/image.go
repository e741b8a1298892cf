// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vision

import (
	"image"
	"image/color"

	"cogentcore.org/tokens/colors/cam/cie"
	"github.com/anthonynsimon/bild/adjust"
	"github.com/chewxy/math32"
)

// FilterImage returns a copy of the given image with the given
// filter applied to every pixel. The pixels are processed in parallel.
func FilterImage(img image.Image, f Filter) *image.RGBA {
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		if c.A == 0 {
			return c
		}
		c = unpremultiply(c)
		r, g, b := f(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
		return premultiply(color.RGBA{toByte32(float32(r)), toByte32(float32(g)), toByte32(float32(b)), c.A})
	})
}

// SimulateImage returns a copy of the given image as perceived with
// the color vision deficiency of the given options. It uses float32
// arithmetic and a linearization table, so results can differ from
// [Simulate] by one unit in the last place.
func SimulateImage(img image.Image, o Options) *image.RGBA {
	sim := newSimulator32(o)
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		if c.A == 0 {
			return c
		}
		c = unpremultiply(c)
		r, g, b := sim.simulate(linearTable[c.R], linearTable[c.G], linearTable[c.B])
		return premultiply(color.RGBA{encode32(r), encode32(g), encode32(b), c.A})
	})
}

// linearTable maps 8-bit sRGB components to linear sRGB.
var linearTable = func() (tbl [256]float32) {
	for i := range tbl {
		tbl[i] = float32(cie.SRGBToLinearComp(float64(i) / 255))
	}
	return
}()

// matrix32 is a row-major 3x3 matrix of float32 values.
type matrix32 [9]float32

func toMatrix32(m *cie.Matrix3) *matrix32 {
	var m32 matrix32
	for i, v := range m {
		m32[i] = float32(v)
	}
	return &m32
}

func (m *matrix32) mul(x, y, z float32) (float32, float32, float32) {
	return m[0]*x + m[1]*y + m[2]*z, m[3]*x + m[4]*y + m[5]*z, m[6]*x + m[7]*y + m[8]*z
}

// simulator32 is the float32 form of [Options.simulateLinear].
type simulator32 struct {
	severity float32
	achromat bool
	m1, m2   *matrix32
	n        [3]float32
}

func newSimulator32(o Options) *simulator32 {
	s := &simulator32{severity: float32(o.fraction())}
	k := o.As.complete()
	if k == Achromatopsia {
		s.achromat = true
		return s
	}
	if m, ok := vienot[k]; ok && o.Method == Vienot {
		s.m1 = toMatrix32(m)
		s.m2 = s.m1
		return s
	}
	d, ok := brettel[k]
	if !ok {
		s.m1 = &matrix32{1, 0, 0, 0, 1, 0, 0, 0, 1}
		s.m2 = s.m1
		return s
	}
	s.m1, s.m2 = toMatrix32(&d.M1), toMatrix32(&d.M2)
	s.n = [3]float32{float32(d.N[0]), float32(d.N[1]), float32(d.N[2])}
	return s
}

func (s *simulator32) simulate(rl, gl, bl float32) (float32, float32, float32) {
	var sr, sg, sb float32
	switch {
	case s.achromat:
		y := float32(cie.LumR)*rl + float32(cie.LumG)*gl + float32(cie.LumB)*bl
		sr, sg, sb = y, y, y
	case rl*s.n[0]+gl*s.n[1]+bl*s.n[2] >= 0:
		sr, sg, sb = s.m1.mul(rl, gl, bl)
	default:
		sr, sg, sb = s.m2.mul(rl, gl, bl)
	}
	return rl + (sr-rl)*s.severity, gl + (sg-gl)*s.severity, bl + (sb-bl)*s.severity
}

// encode32 converts the given linear component to a gamma-encoded byte.
func encode32(lin float32) uint8 {
	lin = math32.Max(0, math32.Min(lin, 1))
	if lin <= 0.0031308 {
		return toByte32(12.92 * lin)
	}
	return toByte32(1.055*math32.Pow(lin, 1/2.4) - 0.055)
}

// toByte32 converts the given component in [0, 1] to a byte.
func toByte32(v float32) uint8 {
	return uint8(math32.Floor(math32.Max(0, math32.Min(v, 1))*255 + 0.5))
}

func unpremultiply(c color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	a := uint32(c.A)
	return color.RGBA{uint8(min(uint32(c.R)*255/a, 255)), uint8(min(uint32(c.G)*255/a, 255)), uint8(min(uint32(c.B)*255/a, 255)), c.A}
}

func premultiply(c color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	a := uint32(c.A)
	return color.RGBA{uint8(uint32(c.R) * a / 255), uint8(uint32(c.G) * a / 255), uint8(uint32(c.B) * a / 255), c.A}
}
