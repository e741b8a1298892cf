// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package a11y provides accessibility checks for colors based on the
// WCAG 2 contrast ratio: relative luminance, contrast ratios between
// colors, and filtering palettes down to colors that are legible on
// a given background.
package a11y

//go:generate core generate

import (
	"log/slog"

	"cogentcore.org/tokens/colors/cam/cie"
	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
)

// MaxRatio is the highest possible contrast ratio, between black and white.
const MaxRatio = 21

// Rating is a WCAG conformance level.
type Rating int32 //enums:enum -transform upper

const (
	// AA is the minimum WCAG conformance level.
	AA Rating = iota

	// AAA is the enhanced WCAG conformance level.
	AAA
)

// Options are the options for [Filter].
type Options struct {

	// Rating is the conformance level that colors must meet.
	Rating Rating

	// Enhanced is whether to use the stricter threshold of the rating,
	// which applies to normal sized text rather than large text.
	Enhanced bool
}

// Threshold returns the minimum contrast ratio for the options:
// 3.1 for AA, 4.5 for enhanced AA and AAA, and 7 for enhanced AAA.
func (o Options) Threshold() float64 {
	switch {
	case o.Rating == AAA && o.Enhanced:
		return 7
	case o.Rating == AAA, o.Enhanced:
		return 4.5
	}
	return 3.1
}

// RatioOfYs returns the contrast ratio between two relative luminances
// in [0, 1], which is between 1 and [MaxRatio].
func RatioOfYs(y1, y2 float64) float64 {
	lighter := max(y1, y2)
	darker := min(y1, y2)
	return (lighter + 0.05) / (darker + 0.05)
}

func luminance(t notation.Tuple) float64 {
	c := convert.ToRGB(t)
	return cie.Luminance(c.R, c.G, c.B)
}

// RelativeLuminance returns the WCAG relative luminance of the given
// color, in [0, 1]. Alpha is ignored.
func RelativeLuminance(color string) (float64, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return 0, err
	}
	return luminance(t), nil
}

// Ratio returns the contrast ratio between the given two colors.
func Ratio(a, b string) (float64, error) {
	ya, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	yb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}
	return RatioOfYs(ya, yb), nil
}

// Passes returns whether the given contrast ratio meets the
// threshold of the options.
func (o Options) Passes(ratio float64) bool {
	return ratio >= o.Threshold() && ratio <= MaxRatio
}

// Filter returns the colors of the given palette whose contrast ratio
// against the given background meets the threshold of the options,
// in their original order.
func Filter(o Options, background string, palette []string) ([]string, error) {
	bg, err := RelativeLuminance(background)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(palette))
	for _, c := range palette {
		y, err := RelativeLuminance(c)
		if err != nil {
			return nil, err
		}
		if r := RatioOfYs(bg, y); o.Passes(r) {
			res = append(res, c)
		} else {
			slog.Debug("filtered out color with insufficient contrast", "color", c, "background", background, "ratio", r)
		}
	}
	return res, nil
}

// ContrastColor returns whichever of white and black has the higher
// contrast ratio against the given color, for use as a text color on it.
func ContrastColor(color string) (string, error) {
	y, err := RelativeLuminance(color)
	if err != nil {
		return "", err
	}
	if RatioOfYs(y, 1) >= RatioOfYs(y, 0) {
		return "#ffffff", nil
	}
	return "#000000", nil
}
