// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import "cogentcore.org/tokens/colors"

// CustomOptions are the options for a [Custom] scheme.
type CustomOptions struct {

	// Hues is the total number of colors in the scheme.
	Hues int `default:"3"`

	// Arc is the hue distance in degrees between adjacent colors.
	Arc float64 `default:"30"`

	// Offset rotates the whole scheme by the given number of degrees.
	Offset float64
}

// Offsets returns the hue offsets of the scheme: Hues angles spaced by
// Arc degrees and centered on the origin, rotated by Offset.
func (o CustomOptions) Offsets() []float64 {
	n := max(o.Hues, 1)
	mid := float64(n-1) / 2
	hues := make([]float64, n)
	for i := range hues {
		hues[i] = o.Offset + (float64(i)-mid)*o.Arc
	}
	return hues
}

// Custom returns a custom scheme for the given color, in the format of
// the color (named colors give hex). Duplicate colors, such as those
// produced by arcs that wrap around the hue circle, are removed.
func Custom(o CustomOptions, color string) ([]string, error) {
	res, err := rotateColor(o.Offsets(), color)
	if err != nil {
		return nil, err
	}
	return colors.Dedupe(res), nil
}
