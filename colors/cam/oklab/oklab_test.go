// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklab

import (
	"testing"

	"cogentcore.org/tokens/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestOklab(t *testing.T) {
	c := FromSRGB(30.0/255, 144.0/255, 1)
	tolassert.Equal(t, 0.65200556, c.L)
	tolassert.Equal(t, -0.05493326, c.A)
	tolassert.Equal(t, -0.18200985, c.B)

	r, g, b := c.SRGB()
	tolassert.EqualTol(t, 30.0/255, r, 1e-6)
	tolassert.EqualTol(t, 144.0/255, g, 1e-6)
	tolassert.EqualTol(t, 1, b, 1e-6)

	lch := c.LCh()
	tolassert.Equal(t, 0.65200556, lch.L)
	tolassert.Equal(t, 0.19011903, lch.C)
	tolassert.Equal(t, 253.20541, lch.H)

	back := lch.Lab()
	tolassert.Equal(t, c.A, back.A)
	tolassert.Equal(t, c.B, back.B)

	r, g, b = LCh{0.65, 0.15, 30}.Lab().SRGB()
	tolassert.Equal(t, 0.86001592, r)
	tolassert.Equal(t, 0.40184762, g)
	tolassert.Equal(t, 0.33620045, b)
}

func TestAchromatic(t *testing.T) {
	white := FromSRGB(1, 1, 1)
	tolassert.Equal(t, 1.0, white.L)
	assert.Equal(t, LCh{L: white.L}, white.LCh())

	gray := FromSRGB(0.5, 0.5, 0.5).LCh()
	tolassert.Equal(t, 0.59818073, gray.L)
	assert.Equal(t, 0.0, gray.C)
	assert.Equal(t, 0.0, gray.H)
}

func TestLerp(t *testing.T) {
	red := FromSRGB(1, 0, 0)
	blue := FromSRGB(0, 0, 1)
	assert.Equal(t, red, red.Lerp(blue, 0))
	mid := red.Lerp(blue, 0.5)
	tolassert.Equal(t, (red.L+blue.L)/2, mid.L)
	tolassert.Equal(t, 0.53708982, DeltaE(red, blue))
	tolassert.Equal(t, DeltaE(red, blue)/2, DeltaE(red, mid))
}
