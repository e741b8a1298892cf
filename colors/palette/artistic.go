// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"slices"

	"cogentcore.org/tokens/colors/notation"
)

// ArtisticToneFactor is how much the contrast of tones and shades is
// reduced relative to that of tints in an [Artistic] palette.
const ArtisticToneFactor = 1.27

// ArtisticOptions are the options for an [Artistic] palette.
type ArtisticOptions struct {

	// Tints is the number of tints.
	Tints int `default:"3"`

	// Tones is the number of tones.
	Tones int `default:"3"`

	// Shades is the number of shades.
	Shades int `default:"3"`

	// Contrast is the contrast of the tints, in percent.
	// Tones and shades use Contrast / [ArtisticToneFactor].
	Contrast float64 `default:"95"`
}

// DefaultArtisticOptions returns the default [ArtisticOptions].
func DefaultArtisticOptions() ArtisticOptions {
	return ArtisticOptions{Tints: 3, Tones: 3, Shades: 3, Contrast: 95}
}

// ArtisticPalette is a base color with groups of its tints, tones, and shades.
type ArtisticPalette struct {
	Base   string
	Tints  []string
	Tones  []string
	Shades []string
}

// All returns all of the colors of the palette in one list: the base,
// then the tints, tones, and shades.
func (p *ArtisticPalette) All() []string {
	return slices.Concat([]string{p.Base}, p.Tints, p.Tones, p.Shades)
}

// Artistic returns an artistic palette for the given color. Groups
// with a count of zero or less are left empty.
func Artistic(o ArtisticOptions, color string) (*ArtisticPalette, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return nil, err
	}
	p := &ArtisticPalette{Base: notation.Serialize(t)}
	group := func(v Variant, count int, contrast float64) []string {
		if count <= 0 {
			return nil
		}
		return serialize(v.sorted(v.mix(count, contrast, t)), true)
	}
	p.Tints = group(Tint, o.Tints, o.Contrast)
	p.Tones = group(Tone, o.Tones, o.Contrast/ArtisticToneFactor)
	p.Shades = group(Shade, o.Shades, o.Contrast/ArtisticToneFactor)
	return p, nil
}
