// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"slices"

	"cogentcore.org/tokens/base/ordmap"
	"cogentcore.org/tokens/colors"
	"cogentcore.org/tokens/colors/notation"
)

// MaterialStops are the keys of a Material palette, from lightest to darkest.
var MaterialStops = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// MaterialOptions are the options for a [Material] palette.
type MaterialOptions struct {

	// Light is the contrast, in percent, of the lightest tint (stop 50).
	Light float64 `default:"95"`

	// Dark is the contrast, in percent, of the darkest shade (stop 900).
	// It also controls how much the base (stop 500) is darkened.
	Dark float64 `default:"80"`
}

// DefaultMaterialOptions returns the default [MaterialOptions].
func DefaultMaterialOptions() MaterialOptions {
	return MaterialOptions{Light: 95, Dark: 80}
}

// Material returns a Material Design style palette of ten colors for
// the given color, keyed by [MaterialStops]: five tints from lightest
// (50) to 400, a base at 500 that is the color slightly mixed toward
// black by (light-dark)/10 percent, and four shades from 600 to the
// darkest (900). Colors are in the format of the given color (named
// colors give hex), and are not deduplicated, so that every stop is set.
func Material(o MaterialOptions, color string) (*ordmap.Map[int, string], error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return nil, err
	}
	tints := serialize(Tint.sorted(Tint.mix(5, o.Light, t)), false)
	slices.Reverse(tints)
	shades := serialize(Shade.sorted(Shade.mix(4, o.Dark, t)), false)
	slices.Reverse(shades)

	black := notation.MustParseColor(Shade.Target())
	darker := colors.MixTuple(t, black, (o.Light-o.Dark)/10)
	base := notation.Serialize(colors.MixTuple(t, darker, o.Dark))

	all := slices.Concat(tints, []string{base}, shades)
	om := ordmap.New[int, string]()
	for i, stop := range MaterialStops {
		om.Add(stop, all[i])
	}
	return om, nil
}
