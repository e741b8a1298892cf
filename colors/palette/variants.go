// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates palettes of related colors from a base
// color: tints, tones, and shades made by mixing the color toward
// white, gray, and black in Oklab, and the Material and Artistic
// palettes assembled from them.
package palette

//go:generate core generate

import (
	"cmp"
	"slices"

	"cogentcore.org/tokens/colors"
	"cogentcore.org/tokens/colors/cam/oklab"
	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
)

// Variant is a kind of color variant.
type Variant int32 //enums:enum -transform lower

const (
	// Tint is a color mixed toward white.
	Tint Variant = iota

	// Tone is a color mixed toward middle gray.
	Tone

	// Shade is a color mixed toward black.
	Shade
)

// Target returns the color that the variant mixes toward.
func (v Variant) Target() string {
	switch v {
	case Tone:
		return "#808080"
	case Shade:
		return "#000000"
	}
	return "#ffffff"
}

// sortKey returns the Oklab quantity that variants are sorted by:
// lightness for tints and shades, and lightness plus chroma for tones.
func (v Variant) sortKey(lab oklab.Lab) float64 {
	if v == Tone {
		return lab.L + lab.LCh().C
	}
	return lab.L
}

// Variants returns count variants of the given color, mixed toward the
// target of the variant by amounts decreasing linearly from contrast
// (in percent). The result is deduplicated and sorted in ascending order
// of the Oklab lightness (plus chroma for tones), and is in the format
// of the color (named colors give hex).
func Variants(v Variant, count int, contrast float64, color string) ([]string, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return nil, err
	}
	return serialize(v.sorted(v.mix(count, contrast, t)), true), nil
}

// Tints returns count tints of the given color; see [Variants].
func Tints(count int, contrast float64, color string) ([]string, error) {
	return Variants(Tint, count, contrast, color)
}

// Tones returns count tones of the given color; see [Variants].
func Tones(count int, contrast float64, color string) ([]string, error) {
	return Variants(Tone, count, contrast, color)
}

// Shades returns count shades of the given color; see [Variants].
func Shades(count int, contrast float64, color string) ([]string, error) {
	return Variants(Shade, count, contrast, color)
}

// mix returns the raw, unsorted blend scale of the variant.
func (v Variant) mix(count int, contrast float64, t notation.Tuple) []notation.Tuple {
	target := notation.MustParseColor(v.Target())
	n := max(count, 1)
	res := make([]notation.Tuple, n)
	for i := range n {
		res[i] = colors.MixTuple(t, target, contrast-contrast/float64(n)*float64(i))
	}
	return res
}

// sorted sorts the given variants in place by their sort key.
func (v Variant) sorted(ts []notation.Tuple) []notation.Tuple {
	type keyed struct {
		t   notation.Tuple
		key float64
	}
	ks := make([]keyed, len(ts))
	for i, t := range ts {
		lab, _ := convert.ToOklab(t)
		ks[i] = keyed{t, v.sortKey(lab)}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int { return cmp.Compare(a.key, b.key) })
	for i := range ks {
		ts[i] = ks[i].t
	}
	return ts
}

func serialize(ts []notation.Tuple, dedupe bool) []string {
	res := make([]string, len(ts))
	for i, t := range ts {
		res[i] = notation.Serialize(t)
	}
	if dedupe {
		return colors.Dedupe(res)
	}
	return res
}
