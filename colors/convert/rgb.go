// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert implements the conversion matrix between the
// supported color formats. Every conversion goes through the [RGB]
// hub, except for conversions between CIELAB and CIELCh, which are
// done directly.
package convert

import (
	"log/slog"
	"math"

	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/colors/cam/cie"
	"cogentcore.org/tokens/colors/cam/cmyk"
	"cogentcore.org/tokens/colors/cam/hsl"
	"cogentcore.org/tokens/colors/cam/oklab"
	"cogentcore.org/tokens/colors/notation"
)

// RGB is the hub representation of a color: gamma-encoded sRGB
// components and alpha, all in [0, 1].
type RGB struct {
	R, G, B, A float64
}

// Clip returns the color with every component clipped to [0, 1].
func (c RGB) Clip() RGB {
	return RGB{num.Clamp(c.R, 0, 1), num.Clamp(c.G, 0, 1), num.Clamp(c.B, 0, 1), num.Clamp(c.A, 0, 1)}
}

// InGamut returns whether all components are within [0, 1],
// allowing for floating point noise.
func (c RGB) InGamut() bool {
	const lo, hi = -num.Epsilon, 1 + num.Epsilon
	return c.R >= lo && c.R <= hi && c.G >= lo && c.G <= hi && c.B >= lo && c.B <= hi
}

// Quantize returns the color with its R, G, and B components rounded
// to the nearest 8-bit value, rounding halves up. Alpha is unchanged.
func (c RGB) Quantize() RGB {
	return RGB{quantize(c.R), quantize(c.G), quantize(c.B), c.A}
}

func quantize(v float64) float64 {
	return math.Floor(v*255+0.5) / 255
}

// PercentEpsilon is the distance from 0% and 100% below which
// percent channels are floating point noise.
const PercentEpsilon = 1e-3

// percent returns the given [0, 1] value as a percentage,
// snapping noise around 0% and 100%.
func percent(v float64) float64 {
	p := v * 100
	switch {
	case math.Abs(p) < PercentEpsilon:
		return 0
	case math.Abs(p-100) < PercentEpsilon:
		return 100
	}
	return p
}

// clip clips an unbounded conversion result to the sRGB gamut.
func clip(f notation.Format, c RGB) RGB {
	if !c.InGamut() {
		slog.Debug("clipped color outside of the sRGB gamut", "from", f, "r", c.R, "g", c.G, "b", c.B)
	}
	return c.Clip()
}

// ToRGB converts the given tuple to the [RGB] hub. Colors outside
// of the sRGB gamut are clipped.
func ToRGB(t notation.Tuple) RGB {
	ch := t.Channels
	c := RGB{A: num.Clamp(t.Alpha, 0, 1)}
	switch t.Format {
	case notation.Named, notation.Hex, notation.RGB:
		c.R, c.G, c.B = ch[0]/255, ch[1]/255, ch[2]/255
	case notation.HSL:
		c.R, c.G, c.B = hsl.New(ch[0], ch[1]/100, ch[2]/100).SRGB()
	case notation.HWB:
		c.R, c.G, c.B = hsl.NewHWB(ch[0], ch[1]/100, ch[2]/100).SRGB()
	case notation.CMYK:
		c.R, c.G, c.B = cmyk.CMYK{C: ch[0] / 100, M: ch[1] / 100, Y: ch[2] / 100, K: ch[3] / 100}.SRGB()
	case notation.CIELAB:
		c.R, c.G, c.B = cie.LABToSRGB(ch[0], ch[1], ch[2])
	case notation.CIELCh:
		c.R, c.G, c.B = cie.LABToSRGB(cie.LCHToLAB(ch[0], ch[1], ch[2]))
	case notation.Oklab:
		c.R, c.G, c.B = oklab.LCh{L: ch[0] / 100, C: ch[1], H: ch[2]}.Lab().SRGB()
	}
	return clip(t.Format, c)
}

// FromRGB converts the given [RGB] hub color to a tuple in the given format.
// Converting to [notation.Named] gives a tuple that serializes as a keyword
// if there is one for the color, and as hex otherwise; see [ToNamed].
func FromRGB(f notation.Format, c RGB) notation.Tuple {
	c = c.Clip()
	t := notation.Tuple{Format: f, Alpha: c.A}
	ch := &t.Channels
	switch f {
	case notation.Named, notation.Hex, notation.RGB:
		ch[0], ch[1], ch[2] = c.R*255, c.G*255, c.B*255
	case notation.HSL:
		h := hsl.FromSRGB(c.R, c.G, c.B, c.A)
		ch[0], ch[1], ch[2] = h.H, percent(h.S), percent(h.L)
	case notation.HWB:
		h := hsl.HWBFromSRGB(c.R, c.G, c.B, c.A)
		ch[0], ch[1], ch[2] = h.H, percent(h.W), percent(h.B)
	case notation.CMYK:
		k := cmyk.FromSRGB(c.R, c.G, c.B)
		ch[0], ch[1], ch[2], ch[3] = percent(k.C), percent(k.M), percent(k.Y), percent(k.K)
	case notation.CIELAB:
		ch[0], ch[1], ch[2] = cie.SnapLAB(cie.SRGBToLAB(c.R, c.G, c.B))
	case notation.CIELCh:
		ch[0], ch[1], ch[2] = cie.LABToLCH(cie.SRGBToLAB(c.R, c.G, c.B))
	case notation.Oklab:
		lch := oklab.FromSRGB(c.R, c.G, c.B).LCh()
		ch[0], ch[1], ch[2] = lch.L*100, lch.C, lch.H
	}
	return t
}

// ToOklab returns the given tuple in the Oklab color space, and its alpha.
func ToOklab(t notation.Tuple) (oklab.Lab, float64) {
	if t.Format == notation.Oklab {
		return oklab.LCh{L: t.Channels[0] / 100, C: t.Channels[1], H: t.Channels[2]}.Lab(), t.Alpha
	}
	c := ToRGB(t)
	return oklab.FromSRGB(c.R, c.G, c.B), c.A
}

// FromOklab converts the given Oklab color and alpha to a tuple
// in the given format.
func FromOklab(f notation.Format, lab oklab.Lab, alpha float64) notation.Tuple {
	if f == notation.Oklab {
		lch := lab.LCh()
		return notation.NewTuple(notation.Oklab, num.Clamp(alpha, 0, 1), lch.L*100, lch.C, lch.H)
	}
	r, g, b := lab.SRGB()
	return FromRGB(f, clip(notation.Oklab, RGB{r, g, b, alpha}))
}
