// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vision simulates how colors are perceived under color
// vision deficiencies, different illuminants, and reduced contrast
// sensitivity. All filters operate on gamma-encoded sRGB through the
// conversion layer and return results in the format of their input.
package vision

import (
	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/colors"
	"cogentcore.org/tokens/colors/cam/cie"
	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
)

// Filter is a perception filter that maps gamma-encoded sRGB
// components in [0, 1] to new components in [0, 1].
type Filter func(r, g, b float64) (fr, fg, fb float64)

// linear returns a [Filter] that applies the given function to
// linear sRGB components.
func linear(fun func(rl, gl, bl float64) (float64, float64, float64)) Filter {
	return func(r, g, b float64) (float64, float64, float64) {
		rl, gl, bl := fun(cie.SRGBToLinear(r, g, b))
		return cie.SRGBFromLinear(num.Clamp(rl, 0, 1), num.Clamp(gl, 0, 1), num.Clamp(bl, 0, 1))
	}
}

// blend returns a [Filter] that interpolates between the input and
// the output of the given function in linear sRGB by the given
// fraction.
func blend(f float64, fun func(rl, gl, bl float64) (float64, float64, float64)) Filter {
	return linear(func(rl, gl, bl float64) (float64, float64, float64) {
		sr, sg, sb := fun(rl, gl, bl)
		return num.Lerp(rl, sr, f), num.Lerp(gl, sg, f), num.Lerp(bl, sb, f)
	})
}

// ApplyTuple returns the given tuple with the given filter applied,
// in the output format of the tuple; see [colors.OutputFormat].
// Alpha is preserved.
func ApplyTuple(f Filter, t notation.Tuple) notation.Tuple {
	c := convert.ToRGB(t)
	c.R, c.G, c.B = f(c.R, c.G, c.B)
	return convert.FromRGB(colors.OutputFormat(t.Format), c)
}

// Apply returns the given color with the given filter applied.
func Apply(f Filter, color string) (string, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return "", err
	}
	return notation.Serialize(ApplyTuple(f, t)), nil
}

// ApplyAll applies the given filter to each of the given colors.
func ApplyAll(f Filter, palette []string) ([]string, error) {
	res := make([]string, len(palette))
	for i, c := range palette {
		s, err := Apply(f, c)
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}
