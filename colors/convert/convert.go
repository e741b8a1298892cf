// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"cmp"
	"fmt"
	"slices"

	"cogentcore.org/tokens/base/errors"
	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/base/ordmap"
	"cogentcore.org/tokens/colors/cam/cie"
	"cogentcore.org/tokens/colors/cam/oklab"
	"cogentcore.org/tokens/colors/notation"
)

// Tuple converts the given tuple to the given format.
// CIELAB and CIELCh are converted directly between each other.
// Other tuples go through the [RGB] hub, which is quantized to
// 8-bit values unless the tuple already has sRGB channels, so that
// converting a result to another format and back gives the same string.
// A tuple already in the given format is normalized; see [Normalize].
func Tuple(to notation.Format, t notation.Tuple) notation.Tuple {
	ch := t.Channels
	switch {
	case t.Format == to:
		return Normalize(t)
	case t.Format == notation.CIELAB && to == notation.CIELCh:
		return notation.NewTuple(to, t.Alpha, first3(cie.LABToLCH(ch[0], ch[1], ch[2]))...)
	case t.Format == notation.CIELCh && to == notation.CIELAB:
		return notation.NewTuple(to, t.Alpha, first3(lchToLAB(t))...)
	}
	c := ToRGB(t)
	if !t.Format.IsRGB() {
		c = c.Quantize()
	}
	return FromRGB(to, c)
}

// Normalize returns the canonical form of the given tuple in its own format.
// HSL and HWB tuples are normalized through the [RGB] hub, which gives
// grays a hue of 0 and scales HWB whiteness and blackness that add up
// to more than 100%. CIELCh and Oklab tuples without chroma get a hue
// of 0, and CMYK black has no cyan, magenta, or yellow.
func Normalize(t notation.Tuple) notation.Tuple {
	switch t.Format {
	case notation.HSL, notation.HWB:
		return FromRGB(t.Format, ToRGB(t))
	case notation.CMYK:
		if t.Channels[3] >= 100 {
			t.Channels[0], t.Channels[1], t.Channels[2] = 0, 0, 0
		}
	case notation.CIELCh:
		if t.Channels[1] < cie.ChromaEpsilon {
			t.Channels[1], t.Channels[2] = 0, 0
		}
	case notation.Oklab:
		if t.Channels[1] < oklab.ChromaEpsilon {
			t.Channels[1], t.Channels[2] = 0, 0
		}
	}
	return t
}

// lchSearch is the number of units in the last significant digit
// that lchToLAB moves a and b to find a stable rounding.
const lchSearch = 3

// lchToLAB returns the CIELAB channels of the given CIELCh tuple,
// rounded to [num.Precision] significant digits. Of the roundings
// near the exact value, the nearest one that converts back to the
// same serialized CIELCh is used.
func lchToLAB(t notation.Tuple) (l, a, b float64) {
	l, a, b = cie.SnapLAB(cie.LCHToLAB(t.Channels[0], t.Channels[1], t.Channels[2]))
	a, b = num.RoundSig(a, num.Precision), num.RoundSig(b, num.Precision)
	want := notation.Serialize(t)
	for _, d := range lchSteps {
		na := num.StepSig(a, d[0], num.Precision)
		nb := num.StepSig(b, d[1], num.Precision)
		lch := notation.NewTuple(notation.CIELCh, t.Alpha, first3(cie.LABToLCH(l, na, nb))...)
		if notation.Serialize(lch) == want {
			return l, na, nb
		}
	}
	return l, a, b
}

// lchSteps are the steps tried by lchToLAB, nearest first.
var lchSteps = func() [][2]int {
	var s [][2]int
	for da := -lchSearch; da <= lchSearch; da++ {
		for db := -lchSearch; db <= lchSearch; db++ {
			s = append(s, [2]int{da, db})
		}
	}
	slices.SortStableFunc(s, func(x, y [2]int) int {
		return cmp.Compare(abs(x[0])+abs(x[1]), abs(y[0])+abs(y[1]))
	})
	return s
}()

func abs(v int) int {
	return max(v, -v)
}

// first3 returns the given three values as a slice.
func first3(a, b, c float64) []float64 {
	return []float64{a, b, c}
}

// Convert converts the given color string to the given format.
// Converting to [notation.Named] fails with a
// [notation.UndefinedKeywordError] if the color has no keyword.
func Convert(to notation.Format, color string) (string, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return "", err
	}
	if to == notation.Named {
		return toNamed(t)
	}
	return notation.Serialize(Tuple(to, t)), nil
}

// MustConvert is like [Convert] but panics on an error.
func MustConvert(to notation.Format, color string) string {
	return errors.Must1(Convert(to, color))
}

// ToNamed returns the color keyword of the given color string.
// It fails with a [notation.UndefinedKeywordError] if no keyword
// has exactly the color.
func ToNamed(color string) (string, error) {
	return Convert(notation.Named, color)
}

func toNamed(t notation.Tuple) (string, error) {
	hex := Tuple(notation.Hex, t)
	if name, ok := notation.KeywordFor(hex.RGBA()); ok {
		return name, nil
	}
	return "", &notation.UndefinedKeywordError{Keyword: notation.Serialize(hex), Set: "CSS color"}
}

// ConvertAll converts all of the given color strings to the given format,
// stopping at the first error.
func ConvertAll(to notation.Format, colors []string) ([]string, error) {
	res := make([]string, len(colors))
	for i, c := range colors {
		s, err := Convert(to, c)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		res[i] = s
	}
	return res, nil
}

// Comparison is a color expressed in several formats.
type Comparison struct {

	// Original is the color as it was given.
	Original string

	// Format is the format of the original color.
	Format notation.Format

	// Values contains the color in each of the compared formats,
	// in the order they were requested.
	Values *ordmap.Map[notation.Format, string]
}

// Compare returns the given color converted to each of the given formats.
// If no formats are given, all formats are compared. A [notation.Named]
// value is only included when the color has a keyword.
func Compare(formats []notation.Format, color string) (*Comparison, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return nil, err
	}
	if len(formats) == 0 {
		formats = notation.FormatValues()
	}
	cmp := &Comparison{Original: color, Format: t.Format, Values: ordmap.New[notation.Format, string]()}
	for _, f := range formats {
		if f == notation.Named {
			if name, err := toNamed(t); err == nil {
				cmp.Values.Add(f, name)
			}
			continue
		}
		cmp.Values.Add(f, notation.Serialize(Tuple(f, t)))
	}
	return cmp, nil
}
