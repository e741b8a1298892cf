// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the cylindrical HSL and HWB representations
// of sRGB colors.
package hsl

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/tokens/base/num"
)

// HSL represents a color in terms of its hue, saturation,
// and lightness, with an alpha component.
type HSL struct {

	// Hue is the hue of the color, in degrees in [0, 360).
	H float64 `min:"0" max:"360"`

	// Saturation is the saturation of the color, in [0, 1].
	S float64 `min:"0" max:"1"`

	// Lightness is the lightness of the color, in [0, 1].
	L float64 `min:"0" max:"1"`

	// A is the alpha (opacity) of the color, in [0, 1].
	A float64 `min:"0" max:"1"`
}

// New returns a new opaque [HSL] color from the given values.
func New(h, s, l float64) HSL {
	return HSL{h, s, l, 1}
}

// FromSRGB returns a new [HSL] color from the given sRGB components in [0, 1].
func FromSRGB(r, g, b, a float64) HSL {
	h := HSL{A: a}
	h.SetSRGB(r, g, b)
	return h
}

// FromColor converts the given Go color to an [HSL] color.
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// SetSRGB sets the hue, saturation, and lightness from the
// given sRGB components in [0, 1].
func (h *HSL) SetSRGB(r, g, b float64) {
	mx := max(r, g, b)
	mn := min(r, g, b)
	h.H, h.S, h.L = 0, 0, (mx+mn)/2
	d := mx - mn
	if d <= num.Epsilon {
		return
	}
	if h.L > 0.5 {
		h.S = d / (2 - mx - mn)
	} else {
		h.S = d / (mx + mn)
	}
	h.H = hue(r, g, b, mx, d)
}

// SRGB returns the sRGB components in [0, 1] of the color.
func (h HSL) SRGB() (r, g, b float64) {
	if h.S == 0 {
		return h.L, h.L, h.L
	}
	var q float64
	if h.L < 0.5 {
		q = h.L * (1 + h.S)
	} else {
		q = h.L + h.S - h.L*h.S
	}
	p := 2*h.L - q
	hk := num.WrapHue(h.H) / 360
	r = hueToComp(p, q, hk+1.0/3)
	g = hueToComp(p, q, hk)
	b = hueToComp(p, q, hk-1.0/3)
	return
}

// SetColor sets the HSL values from the given Go color.
func (h *HSL) SetColor(c color.Color) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		*h = HSL{}
		return
	}
	fa := float64(a)
	h.SetSRGB(float64(r)/fa, float64(g)/fa, float64(b)/fa)
	h.A = fa / 0xffff
}

// RGBA implements the [color.Color] interface.
// Performs the premultiplication of the RGB components by alpha at the end.
func (h HSL) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := h.SRGB()
	return premultiply(fr, fg, fb, h.A)
}

// AsRGBA returns a non-premultiplied [color.RGBA] version of the color.
func (h HSL) AsRGBA() color.RGBA {
	r, g, b := h.SRGB()
	return color.RGBA{toByte(r), toByte(g), toByte(b), toByte(h.A)}
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// hue returns the hue angle in degrees shared by HSL and HWB,
// given the maximum component and the chroma d > 0.
func hue(r, g, b, mx, d float64) float64 {
	var h float64
	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return num.WrapHue(h * 60)
}

func hueToComp(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func premultiply(r, g, b, a float64) (pr, pg, pb, pa uint32) {
	pr = uint32(math.Round(num.Clamp(r*a, 0, 1) * 0xffff))
	pg = uint32(math.Round(num.Clamp(g*a, 0, 1) * 0xffff))
	pb = uint32(math.Round(num.Clamp(b*a, 0, 1) * 0xffff))
	pa = uint32(math.Round(num.Clamp(a, 0, 1) * 0xffff))
	return
}

func toByte(v float64) uint8 {
	return uint8(math.Floor(num.Clamp(v, 0, 1)*255 + 0.5))
}
