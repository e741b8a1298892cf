// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"cogentcore.org/tokens/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestHSL(t *testing.T) {
	assert.Equal(t, HSL{100, 0.87, 0.56, 1}, New(100, 0.87, 0.56))

	want := HSL{20.583942, 0.5732218, 0.5313725, 1}
	assert.Equal(t, want, Model.Convert(want))
	have := Model.Convert(color.NRGBA{204, 114, 67, 255}).(HSL)
	tolassert.Equal(t, want.H, have.H)
	tolassert.Equal(t, want.S, have.S)
	tolassert.Equal(t, want.L, have.L)
	tolassert.Equal(t, want.A, have.A)

	assert.Equal(t, color.RGBA{204, 114, 67, 255}, want.AsRGBA())

	r, g, b, a := want.RGBA()
	assert.Equal(t, uint32(0xcccc), r)
	assert.Equal(t, uint32(0x7272), g)
	assert.Equal(t, uint32(0x4343), b)
	assert.Equal(t, uint32(0xffff), a)

	have = FromColor(color.NRGBA{204, 114, 67, 128})
	tolassert.EqualTol(t, want.H, have.H, 0.5)
	tolassert.EqualTol(t, want.L, have.L, 0.01)
	tolassert.EqualTol(t, 128.0/255, have.A, 0.001)

	have = FromSRGB(30.0/255, 144.0/255, 1, 1)
	tolassert.Equal(t, 209.6, have.H)
	tolassert.Equal(t, 1.0, have.S)
	tolassert.Equal(t, 0.5588235, have.L)

	gray := FromSRGB(0.5, 0.5, 0.5, 1)
	assert.Equal(t, HSL{0, 0, 0.5, 1}, gray)
	assert.Equal(t, color.RGBA{248, 251, 243, 255}, New(86, 0.54, 0.97).AsRGBA())
	assert.Equal(t, color.RGBA{30, 144, 255, 255}, New(209.6, 1, 0.5588235).AsRGBA())

	assert.Equal(t, "hsl(86, 0.54, 0.97)", New(86, 0.54, 0.97).String())
}

func TestHWB(t *testing.T) {
	hw := HWBFromSRGB(30.0/255, 144.0/255, 1, 1)
	tolassert.Equal(t, 209.6, hw.H)
	tolassert.Equal(t, 0.1176471, hw.W)
	tolassert.Equal(t, 0.0, hw.B)

	r, g, b := hw.SRGB()
	tolassert.Equal(t, 30.0/255, r)
	tolassert.Equal(t, 144.0/255, g)
	tolassert.Equal(t, 1.0, b)

	r, g, b = NewHWB(120, 0.6, 0.6).SRGB()
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, []float64{r, g, b})

	r, g, b = NewHWB(0, 0, 0).SRGB()
	assert.Equal(t, []float64{1, 0, 0}, []float64{r, g, b})

	assert.Equal(t, HWB{0, 0.25, 0.75, 0.5}, HWBFromSRGB(0.25, 0.25, 0.25, 0.5))
	assert.Equal(t, hw, HWBModel.Convert(hw))
	assert.Equal(t, "hwb(120, 0.6, 0.6)", NewHWB(120, 0.6, 0.6).String())
}
