// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/tokens/base/num"
)

// Tuple is the numeric form of a color value in a given format.
// The channels are in the native domain of the format:
//
//   - [Named], [Hex], [RGB]: red, green, blue in [0, 255]
//   - [HSL]: hue in degrees, saturation and lightness in percent
//   - [CMYK]: cyan, magenta, yellow, key in percent
//   - [HWB]: hue in degrees, whiteness and blackness in percent
//   - [CIELAB]: lightness in percent, a and b
//   - [CIELCh]: lightness in percent, chroma and hue in degrees
//   - [Oklab]: lightness in percent, chroma and hue in degrees
//
// Unused channels are zero. Alpha is always a fraction in [0, 1].
type Tuple struct {

	// Format is the format that the channels are expressed in.
	Format Format

	// Channels are the color channels, of which [Format.Arity] are used.
	Channels [4]float64

	// Alpha is the opacity of the color, in [0, 1].
	Alpha float64
}

// NewTuple returns a new tuple in the given format with the
// given channels and alpha.
func NewTuple(f Format, alpha float64, channels ...float64) Tuple {
	t := Tuple{Format: f, Alpha: alpha}
	copy(t.Channels[:], channels)
	return t
}

// FromRGBA returns a [Hex] tuple for the given color, which is
// assumed to be non-premultiplied like the values in [colornames.Map].
func FromRGBA(c color.RGBA) Tuple {
	return NewTuple(Hex, float64(c.A)/255, float64(c.R), float64(c.G), float64(c.B))
}

// RGBA returns the color as an 8-bit, non-premultiplied [color.RGBA].
// It is only meaningful for [Named], [Hex], and [RGB] tuples.
func (t Tuple) RGBA() color.RGBA {
	return color.RGBA{toByte(t.Channels[0]), toByte(t.Channels[1]), toByte(t.Channels[2]), toByte(t.Alpha * 255)}
}

// Hue returns the hue channel of a polar tuple, or 0 if the
// format has none.
func (t Tuple) Hue() float64 {
	if i := t.Format.HueIndex(); i >= 0 {
		return t.Channels[i]
	}
	return 0
}

// Opaque returns whether the alpha of the tuple is 1 once rounded.
func (t Tuple) Opaque() bool {
	return num.RoundSig(t.Alpha, num.Precision) >= 1
}

// String returns the serialized form of the tuple; see [Serialize].
func (t Tuple) String() string {
	return Serialize(t)
}

// GoString is used for debugging output.
func (t Tuple) GoString() string {
	return fmt.Sprintf("notation.Tuple{%v %v %v}", t.Format, t.Channels[:t.Format.Arity()], t.Alpha)
}

// toByte clamps and rounds the given value in [0, 255] to a byte,
// rounding halves up.
func toByte(v float64) uint8 {
	return uint8(math.Floor(num.Clamp(v, 0, 255) + 0.5))
}
