// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"fmt"
	"image/color"
)

// HWB represents a color in terms of its hue, whiteness,
// and blackness, with an alpha component.
type HWB struct {

	// Hue is the hue of the color, in degrees in [0, 360).
	H float64 `min:"0" max:"360"`

	// W is the whiteness of the color, in [0, 1].
	W float64 `min:"0" max:"1"`

	// B is the blackness of the color, in [0, 1].
	B float64 `min:"0" max:"1"`

	// A is the alpha (opacity) of the color, in [0, 1].
	A float64 `min:"0" max:"1"`
}

// NewHWB returns a new opaque [HWB] color from the given values.
func NewHWB(h, w, b float64) HWB {
	return HWB{h, w, b, 1}
}

// HWBFromSRGB returns a new [HWB] color from the given sRGB
// components in [0, 1].
func HWBFromSRGB(r, g, b, a float64) HWB {
	mx := max(r, g, b)
	mn := min(r, g, b)
	hw := HWB{W: mn, B: 1 - mx, A: a}
	if d := mx - mn; d > 0 {
		hw.H = hue(r, g, b, mx, d)
	}
	return hw
}

// SRGB returns the sRGB components in [0, 1] of the color.
// Whiteness and blackness summing to more than 1 are
// normalized, giving a shade of gray.
func (hw HWB) SRGB() (r, g, b float64) {
	w, bk := hw.W, hw.B
	if s := w + bk; s >= 1 {
		gray := w / s
		return gray, gray, gray
	}
	r, g, b = New(hw.H, 1, 0.5).SRGB()
	f := 1 - w - bk
	return r*f + w, g*f + w, b*f + w
}

// RGBA implements the [color.Color] interface.
func (hw HWB) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := hw.SRGB()
	return premultiply(fr, fg, fb, hw.A)
}

func (hw HWB) String() string {
	return fmt.Sprintf("hwb(%g, %g, %g)", hw.H, hw.W, hw.B)
}

// HWBModel is the standard [color.Model] that converts colors to HWB.
var HWBModel = color.ModelFunc(hwbModel)

func hwbModel(c color.Color) color.Color {
	if hw, ok := c.(HWB); ok {
		return hw
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return HWB{}
	}
	fa := float64(a)
	return HWBFromSRGB(float64(r)/fa, float64(g)/fa, float64(b)/fa, fa/0xffff)
}
