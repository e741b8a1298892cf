// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides perceptual operations on color strings:
// adjusting the lightness, chroma, hue, and alpha of a color, mixing
// two colors, and generating scales of colors from either. All of the
// operations are done in the Oklab color space, and their results are
// returned in the format of the input color.
package colors

import (
	"cogentcore.org/tokens/base/errors"
	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/colors/cam/oklab"
	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
)

// MaxChroma is the upper bound that adjusted Oklab chroma is clamped to.
const MaxChroma = 0.5

// Adjustment contains deltas that are added to the channels of a color
// in its Oklab polar form. Zero values leave a channel unchanged.
type Adjustment struct {

	// Lightness is added to the Oklab lightness, in percent.
	// The result is clamped to [0, 100].
	Lightness float64

	// Chroma is added to the Oklab chroma.
	// The result is clamped to [0, [MaxChroma]].
	Chroma float64

	// Hue is added to the hue, in degrees.
	// The result is wrapped into [0, 360).
	Hue float64

	// Alpha is added to the alpha, as a fraction.
	// The result is clamped to [0, 1].
	Alpha float64
}

// IsZero returns whether the adjustment does not change anything.
func (a Adjustment) IsZero() bool {
	return a == Adjustment{}
}

// Scale returns the adjustment with every delta multiplied by f.
func (a Adjustment) Scale(f float64) Adjustment {
	return Adjustment{a.Lightness * f, a.Chroma * f, a.Hue * f, a.Alpha * f}
}

// Adjust returns the given color with the given adjustment applied,
// in the format of the input color (named colors give hex).
// It returns a [notation.InvalidFormatError] if the color is invalid.
func Adjust(adj Adjustment, color string) (string, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return "", err
	}
	return notation.Serialize(AdjustTuple(adj, t)), nil
}

// MustAdjust is like [Adjust] but panics on an error.
func MustAdjust(adj Adjustment, color string) string {
	return errors.Must1(Adjust(adj, color))
}

// AdjustTuple returns the given tuple with the given adjustment applied.
func AdjustTuple(adj Adjustment, t notation.Tuple) notation.Tuple {
	lab, alpha := convert.ToOklab(t)
	lch := lab.LCh()
	lch.L = num.Clamp(lch.L*100+adj.Lightness, 0, 100) / 100
	lch.C = num.Clamp(lch.C+adj.Chroma, 0, MaxChroma)
	lch.H = num.WrapHue(lch.H + adj.Hue)
	alpha = num.Clamp(alpha+adj.Alpha, 0, 1)
	return convert.FromOklab(OutputFormat(t.Format), lch.Lab(), alpha)
}

// OutputFormat returns the format that results derived from a color
// in the given format are returned in: the same format, except that
// [notation.Named] colors yield [notation.Hex] results.
func OutputFormat(f notation.Format) notation.Format {
	if f == notation.Named {
		return notation.Hex
	}
	return f
}

// Lab returns the given color in the Oklab color space, and its alpha.
func Lab(color string) (oklab.Lab, float64, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return oklab.Lab{}, 0, err
	}
	lab, alpha := convert.ToOklab(t)
	return lab, alpha, nil
}
