// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheme generates color schemes: sets of colors whose hues
// are rotated from an origin color by fixed angles, keeping its
// Oklab lightness and chroma.
package scheme

//go:generate core generate

import (
	"cogentcore.org/tokens/colors"
	"cogentcore.org/tokens/colors/notation"
)

// Kind is a kind of fixed color scheme.
type Kind int32 //enums:enum -transform kebab

const (
	// Dyadic is the origin and the color a quarter turn away.
	Dyadic Kind = iota

	// Complementary is the origin and its opposite on the hue circle.
	Complementary

	// Analogous is the origin and its two neighbors 45 degrees apart.
	Analogous

	// SplitComplementary is the origin and the two colors
	// 30 degrees on either side of its complement.
	SplitComplementary

	// Triadic is three colors evenly spaced by 120 degrees.
	Triadic

	// Clash is the origin and the two colors a quarter turn
	// away from it in each direction ([Square] without its complement).
	Clash

	// Tetradic is two complementary pairs 60 degrees apart.
	Tetradic

	// Square is four colors evenly spaced by 90 degrees.
	Square

	// Star is five colors evenly spaced by 72 degrees.
	Star

	// Hexagon is six colors evenly spaced by 60 degrees.
	Hexagon
)

// rotate returns the hue offsets of count colors spaced by arc degrees.
func rotate(count int, arc float64) []float64 {
	hues := make([]float64, count)
	for i := range hues {
		hues[i] = float64(i) * arc
	}
	return hues
}

// Hues returns the hue offsets in degrees of the colors in the scheme,
// relative to the origin color.
func (k Kind) Hues() []float64 {
	switch k {
	case Dyadic:
		return rotate(2, 90)
	case Complementary:
		return rotate(2, 180)
	case Analogous:
		return rotate(3, 45)
	case SplitComplementary:
		return []float64{0, 150, 210}
	case Triadic:
		return rotate(3, 120)
	case Clash:
		sq := Square.Hues()
		return []float64{sq[0], sq[1], sq[3]}
	case Tetradic:
		sq := Square.Hues()
		return []float64{sq[0], sq[0] + 60, sq[2], sq[2] + 60}
	case Square:
		return rotate(4, 90)
	case Star:
		return rotate(5, 72)
	case Hexagon:
		return rotate(6, 60)
	}
	return nil
}

// Generate returns the colors of the given kind of scheme for the given
// origin color, in the format of the origin (named colors give hex).
// The first color is always the origin itself. Duplicate colors are
// removed, so achromatic colors give a single color.
func Generate(k Kind, color string) ([]string, error) {
	hues := k.Hues()
	if hues == nil {
		return nil, &notation.UnsupportedError{Kind: "scheme", Value: k.String(), Supported: KindStrings()}
	}
	res, err := rotateColor(hues, color)
	if err != nil {
		return nil, err
	}
	return colors.Dedupe(res), nil
}

// GenerateString is like [Generate], but takes the kind as a string,
// such as "split-complementary".
func GenerateString(kind, color string) ([]string, error) {
	var k Kind
	if err := k.SetString(kind); err != nil {
		return nil, err
	}
	return Generate(k, color)
}

func rotateColor(hues []float64, color string) ([]string, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(hues))
	for i, h := range hues {
		res[i] = notation.Serialize(colors.AdjustTuple(colors.Adjustment{Hue: h}, t))
	}
	return res, nil
}

// ComplementaryOf returns the [Complementary] scheme of the given color.
func ComplementaryOf(color string) ([]string, error) { return Generate(Complementary, color) }

// AnalogousOf returns the [Analogous] scheme of the given color.
func AnalogousOf(color string) ([]string, error) { return Generate(Analogous, color) }

// SplitComplementaryOf returns the [SplitComplementary] scheme of the given color.
func SplitComplementaryOf(color string) ([]string, error) {
	return Generate(SplitComplementary, color)
}

// TriadicOf returns the [Triadic] scheme of the given color.
func TriadicOf(color string) ([]string, error) { return Generate(Triadic, color) }

// TetradicOf returns the [Tetradic] scheme of the given color.
func TetradicOf(color string) ([]string, error) { return Generate(Tetradic, color) }

// SquareOf returns the [Square] scheme of the given color.
func SquareOf(color string) ([]string, error) { return Generate(Square, color) }
