// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vision

import (
	"math"

	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/colors/cam/cie"
	"cogentcore.org/tokens/colors/notation"
)

// Limits of the correlated color temperature, in kelvin.
const (
	MinTemperature = 1000
	MaxTemperature = 40000
)

// IlluminantOptions are the options for [Illuminant].
type IlluminantOptions struct {

	// K is the correlated color temperature of the illuminant,
	// in kelvin, within [MinTemperature, MaxTemperature].
	// 6500 is approximately neutral daylight.
	K float64 `default:"6500"`

	// Intensity is how strongly the illuminant tints colors,
	// in percent.
	Intensity float64 `default:"50"`
}

// WhitePoint returns the gamma-encoded sRGB color of a blackbody
// radiator at the given temperature in kelvin, using the curve fit
// of Tanner Helland.
func WhitePoint(k float64) (r, g, b float64) {
	t := num.Clamp(k, MinTemperature, MaxTemperature) / 100
	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
	}
	switch {
	case t >= 66:
		b = 255
	case t <= 19:
		b = 0
	default:
		b = 138.5177312231*math.Log(t-10) - 305.0447927307
	}
	return num.Clamp(r, 0, 255) / 255, num.Clamp(g, 0, 255) / 255, num.Clamp(b, 0, 255) / 255
}

// Filter returns the [Filter] that simulates the illuminant, which
// scales each linear channel by the white point of the illuminant.
func (o IlluminantOptions) Filter() Filter {
	wr, wg, wb := cie.SRGBToLinear(WhitePoint(o.K))
	return blend(num.Clamp(o.Intensity, 0, 100)/100, func(rl, gl, bl float64) (float64, float64, float64) {
		return rl * wr, gl * wg, bl * wb
	})
}

// Illuminant returns the given color as it appears under a light source
// of the given color temperature, in the format of the color.
func Illuminant(o IlluminantOptions, color string) (string, error) {
	return Apply(o.Filter(), color)
}

// IlluminantTuple is like [Illuminant] for a tuple.
func IlluminantTuple(o IlluminantOptions, t notation.Tuple) notation.Tuple {
	return ApplyTuple(o.Filter(), t)
}

// SensitivityOptions are the options for [Sensitivity].
type SensitivityOptions struct {

	// Contrast is the remaining contrast sensitivity, in percent:
	// 100 leaves colors unchanged and 0 maps every color to middle gray.
	Contrast float64 `default:"50"`
}

// Filter returns the [Filter] that simulates the reduced contrast
// sensitivity, compressing each channel toward middle gray.
func (o SensitivityOptions) Filter() Filter {
	f := num.Clamp(o.Contrast, 0, 100) / 100
	return func(r, g, b float64) (float64, float64, float64) {
		return num.Lerp(0.5, r, f), num.Lerp(0.5, g, f), num.Lerp(0.5, b, f)
	}
}

// Sensitivity returns the given color as perceived with reduced
// contrast sensitivity, in the format of the color.
func Sensitivity(o SensitivityOptions, color string) (string, error) {
	return Apply(o.Filter(), color)
}
