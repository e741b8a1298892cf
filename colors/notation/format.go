// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notation implements the textual side of the color engine:
// recognizing which of the supported CSS color notations a string is
// written in, extracting and parsing its components into a numeric
// [Tuple], and serializing tuples back into canonical strings.
package notation

//go:generate core generate

// Format is one of the supported color notations.
type Format int32 //enums:enum -transform lower

const (
	// Named is a CSS color keyword such as "dodgerblue".
	Named Format = iota

	// Hex is a #rgb, #rgba, #rrggbb or #rrggbbaa hexadecimal color.
	Hex

	// RGB is rgb() or rgba() functional notation.
	RGB

	// HSL is hsl() or hsla() functional notation.
	HSL

	// CMYK is device-cmyk() functional notation.
	CMYK

	// HWB is hwb() functional notation.
	HWB

	// CIELAB is lab() functional notation, referenced to D50.
	CIELAB

	// CIELCh is lch() functional notation, the polar form of [CIELAB].
	CIELCh

	// Oklab is oklab() functional notation, exchanged in its
	// polar form of lightness, chroma and hue.
	Oklab
)

// Arity returns the number of color channels of the format,
// not counting alpha.
func (f Format) Arity() int {
	if f == CMYK {
		return 4
	}
	return 3
}

// IsLegacy returns whether the format is serialized with the
// comma-delimited legacy functional syntax.
func (f Format) IsLegacy() bool {
	return f == RGB || f == HSL
}

// IsPolar returns whether the format has a hue channel.
func (f Format) IsPolar() bool {
	switch f {
	case HSL, HWB, CIELCh, Oklab:
		return true
	}
	return false
}

// IsRGB returns whether the channels of the format are sRGB
// components in [0, 255], which is the case for [Named], [Hex], and [RGB].
func (f Format) IsRGB() bool {
	return f == Named || f == Hex || f == RGB
}

// HueIndex returns the index of the hue channel of the format,
// or -1 if it does not have one.
func (f Format) HueIndex() int {
	switch f {
	case HSL, HWB:
		return 0
	case CIELCh, Oklab:
		return 2
	}
	return -1
}
