// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vision

import (
	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/colors/cam/cie"
	"cogentcore.org/tokens/colors/notation"
)

// dichromat contains the linear sRGB projections of the Brettel
// method for one cone deficiency: colors on the positive side of the
// separation plane with normal N use M1, the others M2.
type dichromat struct {
	M1, M2 cie.Matrix3
	N      [3]float64
}

// project applies the Brettel projection to the given linear color.
func (d *dichromat) project(rl, gl, bl float64) (float64, float64, float64) {
	if rl*d.N[0]+gl*d.N[1]+bl*d.N[2] >= 0 {
		return d.M1.Mul(rl, gl, bl)
	}
	return d.M2.Mul(rl, gl, bl)
}

// brettel contains the Brettel projections in linear sRGB,
// indexed by the complete [Kind].
var brettel = map[Kind]*dichromat{
	Protanopia: {
		M1: cie.Matrix3{0.14980, 1.19548, -0.34528, 0.10764, 0.84864, 0.04372, 0.00384, -0.00540, 1.00156},
		M2: cie.Matrix3{0.14570, 1.16172, -0.30742, 0.10816, 0.85291, 0.03892, 0.00386, -0.00524, 1.00139},
		N:  [3]float64{0.00048, 0.00393, -0.00441},
	},
	Deuteranopia: {
		M1: cie.Matrix3{0.36477, 0.86381, -0.22858, 0.26294, 0.64245, 0.09462, -0.02006, 0.02728, 0.99278},
		M2: cie.Matrix3{0.37298, 0.88166, -0.25464, 0.25954, 0.63506, 0.10540, -0.01980, 0.02784, 0.99196},
		N:  [3]float64{-0.00281, -0.00611, 0.00892},
	},
	Tritanopia: {
		M1: cie.Matrix3{1.01277, 0.13548, -0.14826, -0.01243, 0.86812, 0.14431, 0.07589, 0.80500, 0.11911},
		M2: cie.Matrix3{0.93678, 0.18979, -0.12657, 0.06154, 0.81526, 0.12320, -0.37562, 1.12767, 0.24796},
		N:  [3]float64{0.03901, -0.02788, -0.01113},
	},
}

// vienot contains the Viénot projections in linear sRGB,
// indexed by the complete [Kind].
var vienot = map[Kind]*cie.Matrix3{
	Protanopia:   {0.11238, 0.88762, 0, 0.11238, 0.88762, 0, 0.00401, -0.00401, 1},
	Deuteranopia: {0.29275, 0.70725, 0, 0.29275, 0.70725, 0, -0.02234, 0.02234, 1},
}

// Options are the options for [Simulate].
type Options struct {

	// As is the kind of color vision deficiency to simulate.
	As Kind

	// Severity is the strength of an anomalous deficiency, in percent,
	// from 0 (normal vision) to 100 (the complete deficiency).
	// Complete deficiencies are always simulated at 100.
	Severity float64 `default:"100"`

	// Method is the method used for protan and deutan deficiencies.
	Method Method
}

// fraction returns the effective severity as a fraction.
func (o Options) fraction() float64 {
	if o.As.Complete() {
		return 1
	}
	return num.Clamp(o.Severity, 0, 100) / 100
}

// simulateLinear returns the fully simulated linear color
// for the complete form of the deficiency.
func (o Options) simulateLinear(rl, gl, bl float64) (float64, float64, float64) {
	k := o.As.complete()
	if k == Achromatopsia {
		y := cie.LinearLuminance(rl, gl, bl)
		return y, y, y
	}
	if o.Method == Vienot {
		if m, ok := vienot[k]; ok {
			return m.Mul(rl, gl, bl)
		}
	}
	if d, ok := brettel[k]; ok {
		return d.project(rl, gl, bl)
	}
	return rl, gl, bl
}

// Filter returns the [Filter] that simulates the deficiency.
func (o Options) Filter() Filter {
	return blend(o.fraction(), o.simulateLinear)
}

// Simulate returns the given color as perceived with the color vision
// deficiency of the given options, in the format of the color.
func Simulate(o Options, color string) (string, error) {
	return Apply(o.Filter(), color)
}

// SimulateTuple is like [Simulate] for a tuple.
func SimulateTuple(o Options, t notation.Tuple) notation.Tuple {
	return ApplyTuple(o.Filter(), t)
}
