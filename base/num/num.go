// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic numeric helpers shared by the
// color packages: clamping, interpolation, significant-digit
// rounding and hue-circle wrapping.
package num

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Precision is the number of significant digits that serialized
// color components are rounded to.
const Precision = 5

// Clamp returns v limited to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Lerp returns the linear interpolation between a and b at t,
// where t = 0 gives a and t = 1 gives b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Epsilon is the magnitude below which values are floating point
// noise and are treated as zero when rounding.
const Epsilon = 1e-9

// RoundSig rounds v to the given number of significant digits.
// Values smaller in magnitude than [Epsilon] and negative zero
// are returned as zero.
func RoundSig[T constraints.Float](v T, digits int) T {
	f := float64(v)
	if math.Abs(f) < Epsilon || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'g', digits, 64), 64)
	if r == 0 {
		return 0
	}
	return T(r)
}

// StepSig returns v moved by n units of its last significant digit
// at the given number of digits, rounded to that many digits.
// Zero is returned unchanged.
func StepSig[T constraints.Float](v T, n, digits int) T {
	f := float64(v)
	if f == 0 || n == 0 {
		return v
	}
	unit := math.Pow(10, math.Floor(math.Log10(math.Abs(f)))-float64(digits-1))
	return RoundSig(T(f+float64(n)*unit), digits)
}

// Format returns v rounded to [Precision] significant digits,
// formatted in plain decimal notation without trailing zeros.
func Format[T constraints.Float](v T) string {
	return strconv.FormatFloat(float64(RoundSig(v, Precision)), 'f', -1, 64)
}

// WrapHue returns the given hue angle in degrees normalized into [0, 360).
// Negative angles are corrected counter-clockwise by adding full turns
// and angles past a full turn are corrected clockwise by removing them.
func WrapHue[T constraints.Float](h T) T {
	f := float64(h)
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0
	case f < 0:
		f = math.Mod(f, 360) + 360
	case f >= 360:
		f = math.Mod(f, 360)
	}
	if f >= 360 {
		f = 0
	}
	return T(f)
}
