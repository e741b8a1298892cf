// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vision

//go:generate core generate

// Kind is a kind of color vision deficiency. Each deficiency has a
// complete form (-opia) and an anomalous form (-anomaly/-omaly) whose
// strength is controlled by [Options.Severity].
type Kind int32 //enums:enum -transform lower

const (
	// Protanopia is the absence of long-wavelength (red) cones.
	Protanopia Kind = iota

	// Protanomaly is reduced sensitivity of long-wavelength (red) cones.
	Protanomaly

	// Deuteranopia is the absence of medium-wavelength (green) cones.
	Deuteranopia

	// Deuteranomaly is reduced sensitivity of medium-wavelength (green) cones.
	Deuteranomaly

	// Tritanopia is the absence of short-wavelength (blue) cones.
	Tritanopia

	// Tritanomaly is reduced sensitivity of short-wavelength (blue) cones.
	Tritanomaly

	// Achromatopsia is the complete absence of color vision.
	Achromatopsia

	// Achromatomaly is partially reduced color vision.
	Achromatomaly
)

// Complete returns whether the kind is a complete deficiency,
// which is always simulated at full severity.
func (k Kind) Complete() bool {
	return k%2 == 0
}

// complete returns the complete form of the kind.
func (k Kind) complete() Kind {
	return k - k%2
}

// Method is a method for simulating dichromacy.
type Method int32 //enums:enum -transform lower

const (
	// Brettel is the two half-plane projection method of
	// Brettel, Viénot and Mollon (1997).
	Brettel Method = iota

	// Vienot is the single-plane projection method of
	// Viénot, Brettel and Mollon (1999). It is only defined for
	// protan and deutan deficiencies; tritan deficiencies always
	// use [Brettel].
	Vienot
)
