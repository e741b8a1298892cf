// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"log/slog"

	"cogentcore.org/tokens/colors/notation"
)

// Interpolation specifies a scale of colors generated by [AdjustScale].
type Interpolation struct {
	Adjustment

	// Values is the number of colors in the scale.
	Values int `default:"5"`
}

// Blend specifies a scale of colors generated by [MixScale].
type Blend struct {

	// Target is the color that the scale is mixed toward.
	Target string

	// Amount is the amount of the target, in percent, in the first
	// (most mixed) color of the scale.
	Amount float64

	// Values is the number of colors in the scale.
	Values int `default:"5"`
}

// AdjustScale returns a scale of colors made by adjusting the given color
// with linearly decreasing fractions of the given adjustment: the i-th
// color uses delta - delta/values*i, so the first color is the most
// adjusted and the last is the nearest to the original. Duplicate
// colors are removed.
func AdjustScale(in Interpolation, color string) ([]string, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return nil, err
	}
	n := max(in.Values, 1)
	res := make([]string, n)
	for i := range n {
		f := 1 - float64(i)/float64(n)
		res[i] = notation.Serialize(AdjustTuple(in.Adjustment.Scale(f), t))
	}
	return Dedupe(res), nil
}

// MixScale returns a scale of colors made by mixing the given color
// toward the target with linearly decreasing amounts: the i-th color
// uses amount - amount/values*i, so the first color is the most mixed
// and the last is the nearest to the original. Duplicate colors are removed.
func MixScale(bl Blend, color string) ([]string, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return nil, err
	}
	tt, err := notation.ParseColor(bl.Target)
	if err != nil {
		return nil, err
	}
	n := max(bl.Values, 1)
	res := make([]string, n)
	for i := range n {
		amount := bl.Amount - bl.Amount/float64(n)*float64(i)
		res[i] = notation.Serialize(MixTuple(t, tt, amount))
	}
	return Dedupe(res), nil
}

// Dedupe returns the given colors with later duplicates removed,
// keeping the order of first occurrence.
func Dedupe(colors []string) []string {
	seen := make(map[string]bool, len(colors))
	res := make([]string, 0, len(colors))
	for _, c := range colors {
		if seen[c] {
			continue
		}
		seen[c] = true
		res = append(res, c)
	}
	if len(res) < len(colors) {
		slog.Debug("removed duplicate colors", "from", len(colors), "to", len(res))
	}
	return res
}
