// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3.0, 0, 1))
	assert.Equal(t, 1.0, Clamp(3.0, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 255, Clamp(300, 0, 255))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0.0, 10, 0.5))
	assert.Equal(t, 10.0, Lerp(0.0, 10, 1))
}

func TestRoundSig(t *testing.T) {
	assert.Equal(t, 123.46, RoundSig(123.456789, 5))
	assert.Equal(t, 0.012346, RoundSig(0.0123456, 5))
	assert.Equal(t, 255.0, RoundSig(254.999999, 5))
	assert.Equal(t, 0.0, RoundSig(math.Copysign(0, -1), 5))
	assert.Equal(t, 0.0, RoundSig(-1e-13, 5))
	assert.Equal(t, 0.00012346, RoundSig(0.000123456, 5))
}

func TestStepSig(t *testing.T) {
	assert.Equal(t, 82.805, StepSig(82.804, 1, 5))
	assert.Equal(t, -42.355, StepSig(-42.354, -1, 5))
	assert.Equal(t, 0.88973, StepSig(0.88971, 2, 5))
	assert.Equal(t, 123.44, StepSig(123.45, -1, 5))
	assert.Equal(t, 7.9637, StepSig(7.9637, 0, 5))
	assert.Equal(t, 0.0, StepSig(0.0, 3, 5))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.5", Format(0.5))
	assert.Equal(t, "255", Format(255.0))
	assert.Equal(t, "33.333", Format(100.0/3))
	assert.Equal(t, "-12.346", Format(-12.3456))
	assert.Equal(t, "0.00001", Format(0.00001))
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{720, 0},
		{-30, 330},
		{-390, 330},
		{400, 40},
		{359.5, 359.5},
		{-360, 0},
	}
	for _, test := range tests {
		have := WrapHue(test.in)
		assert.InDelta(t, test.want, have, 1e-9, test.in)
		assert.True(t, have >= 0 && have < 360, test.in)
	}
}
