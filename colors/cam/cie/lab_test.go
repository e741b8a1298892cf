// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/tokens/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLAB(t *testing.T) {
	tolassert.Equal(t, 0.88790400, LABCompress(0.7))
	tolassert.Equal(t, 0.13795440, LABCompress(0.000003))
	tolassert.Equal(t, 0.216, LABUncompress(0.6))

	tolassert.Equal(t, 2.3023315, LToY(17))
	tolassert.Equal(t, 0.55352823, LToY(5))
	tolassert.Equal(t, 21.579497, YToL(3.4))

	l, a, b := SRGBToLAB(1, 0, 0)
	tolassert.Equal(t, 54.291735, l)
	tolassert.Equal(t, 80.812432, a)
	tolassert.Equal(t, 69.885074, b)

	l, a, b = SRGBToLAB(30.0/255, 144.0/255, 1)
	tolassert.Equal(t, 58.362054, l)
	tolassert.Equal(t, 0.88971065, a)
	tolassert.Equal(t, -64.778787, b)

	rr, rg, rb := LABToSRGB(l, a, b)
	tolassert.EqualTol(t, 30.0/255, rr, 1e-9)
	tolassert.EqualTol(t, 144.0/255, rg, 1e-9)
	tolassert.EqualTol(t, 1, rb, 1e-9)

	rr, rg, rb = LABToSRGB(50, 20, -30)
	tolassert.Equal(t, 0.52113069, rr)
	tolassert.Equal(t, 0.42366559, rg)
	tolassert.Equal(t, 0.66851406, rb)

	l, a, b = SnapLAB(SRGBToLAB(1, 1, 1))
	tolassert.Equal(t, 100.0, l)
	assert.Equal(t, 0.0, a)
	assert.Equal(t, 0.0, b)

	l, a, b = SRGBToLAB(0, 0, 0)
	assert.Equal(t, 0.0, l)
	assert.Equal(t, 0.0, a)
	assert.Equal(t, 0.0, b)
}

func TestLCH(t *testing.T) {
	l, c, h := LABToLCH(SRGBToLAB(1, 0, 0))
	tolassert.Equal(t, 54.291735, l)
	tolassert.Equal(t, 106.83900, c)
	tolassert.Equal(t, 40.852635, h)

	_, a, b := LCHToLAB(l, c, h)
	tolassert.Equal(t, 80.812432, a)
	tolassert.Equal(t, 69.885074, b)

	_, c, h = LABToLCH(SRGBToLAB(1, 1, 1))
	assert.Equal(t, 0.0, c)
	assert.Equal(t, 0.0, h)

	_, _, h = LABToLCH(50, 0, -10)
	tolassert.Equal(t, 270.0, h)
}

func TestLuminance(t *testing.T) {
	tolassert.Equal(t, 1.0, Luminance(1, 1, 1))
	tolassert.Equal(t, 0.0, Luminance(0, 0, 0))
	tolassert.Equal(t, 0.2126, Luminance(1, 0, 0))
	tolassert.Equal(t, 0.21404114, Luminance(0.5, 0.5, 0.5))
}
