// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import (
	"testing"

	"cogentcore.org/tokens/base/errors"
	"cogentcore.org/tokens/colors/notation"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dodgerblue = map[notation.Format]string{
	notation.Named:  "dodgerblue",
	notation.Hex:    "#1e90ff",
	notation.RGB:    "rgb(30, 144, 255)",
	notation.HSL:    "hsl(209.6, 100%, 55.882%)",
	notation.CMYK:   "device-cmyk(88.235% 43.529% 0% 0%)",
	notation.HWB:    "hwb(209.6 11.765% 0%)",
	notation.CIELAB: "lab(58.362% 0.88971 -64.779)",
	notation.CIELCh: "lch(58.362% 64.785 270.79)",
	notation.Oklab:  "oklab(65.201% 0.19012 253.21)",
}

func TestConvertMatrix(t *testing.T) {
	for to, want := range dodgerblue {
		have, err := Convert(to, "#1e90ff")
		if assert.NoError(t, err, to) {
			assert.Equal(t, want, have, to)
		}
	}
	for from, in := range dodgerblue {
		for _, to := range []notation.Format{notation.Named, notation.Hex, notation.RGB} {
			have, err := Convert(to, in)
			if assert.NoError(t, err, "%v -> %v", from, to) {
				assert.Equal(t, dodgerblue[to], have, "%v -> %v", from, to)
			}
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		to       notation.Format
		in, want string
	}{
		{notation.Hex, "hsl(0 100% 50%)", "#ff0000"},
		{notation.Hex, "hsl(0.5turn, 100%, 50%)", "#00ffff"},
		{notation.RGB, "device-cmyk(0% 0% 0% 100%)", "rgb(0, 0, 0)"},
		{notation.CMYK, "black", "device-cmyk(0% 0% 0% 100%)"},
		{notation.CMYK, "white", "device-cmyk(0% 0% 0% 0%)"},
		{notation.CIELAB, "white", "lab(100% 0 0)"},
		{notation.CIELCh, "black", "lch(0% 0 0)"},
		{notation.Oklab, "#808080", "oklab(59.987% 0 0)"},
		{notation.CIELCh, "lab(50% 0 -10)", "lch(50% 10 270)"},
		{notation.CIELAB, "lch(50% 10 270)", "lab(50% 0 -10)"},
		{notation.CIELCh, "lab(50% 0 0 / 0.5)", "lch(50% 0 0 / 0.5)"},
		{notation.HSL, "#1e90ff80", "hsla(209.6, 100%, 55.882%, 0.50196)"},
		{notation.Hex, "rgba(30, 144, 255, 0.5)", "#1e90ff80"},
		{notation.Hex, "lab(50% 120 0)", "#ff007e"},
		{notation.Named, "rgb(0, 255, 255)", "aqua"},
		{notation.Named, "transparent", "transparent"},
		{notation.HWB, "hwb(90 60% 60%)", "hwb(0 50% 50%)"},
		{notation.CMYK, "lab(58.362% 0.88971 -64.779)", "device-cmyk(88.235% 43.529% 0% 0%)"},
		{notation.RGB, "lch(58.362% 64.785 270.79)", "rgb(30, 144, 255)"},
		{notation.RGB, "oklab(65.201% 0.19012 253.21)", "rgb(30, 144, 255)"},
		{notation.RGB, "rgb(127.5, 0, 255)", "rgb(127.5, 0, 255)"},
		{notation.HSL, "rgb(127.5, 0, 255)", "hsl(270, 100%, 50%)"},
	}
	for _, test := range tests {
		have, err := Convert(test.to, test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, have, test.in)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	_, err := Convert(notation.Hex, "c0ffee")
	assert.ErrorIs(t, err, notation.ErrInvalidColorFormat)

	_, err = ToNamed("#1f90ff")
	assert.ErrorIs(t, err, notation.ErrUndefinedColorKeyword)
	var uke *notation.UndefinedKeywordError
	require.True(t, errors.As(err, &uke))
	assert.Equal(t, "#1f90ff", uke.Keyword)

	assert.Panics(t, func() { MustConvert(notation.Hex, "invalid") })
	assert.Equal(t, "#ffffff", MustConvert(notation.Hex, "white"))
}

func TestRoundTripStability(t *testing.T) {
	colors := []string{"#1e90ff", "#c0ffee", "#8c53a2", "#aeaeae", "#000000", "#ffffff", "#ff007e", "#123456"}
	for _, c := range colors {
		for _, f := range notation.FormatValues()[1:] {
			s, err := Convert(f, c)
			require.NoError(t, err)
			back, err := Convert(notation.Hex, s)
			require.NoError(t, err)
			assert.Equal(t, c, back, "%s via %v (%s)", c, f, s)

			again, err := Convert(f, back)
			require.NoError(t, err)
			assert.Equal(t, s, again, "%s via %v", c, f)
		}
	}
}

func TestCrossFormatStability(t *testing.T) {
	bytes := []string{"#1e90ff", "#ffffff", "#000000", "#808080", "#663399", "#ff7f50", "#c0ffee", "#e409ca", "#ae9587"}
	others := []string{"hsl(200, 50%, 50%)", "lab(50% 20 30)", "rgb(127.5, 0, 255)", "lch(56.2106% 14.1675 44.7992)"}
	formats := notation.FormatValues()[1:]
	for i, c := range append(bytes, others...) {
		for _, f1 := range formats {
			for _, f2 := range formats {
				first := MustConvert(f1, c)
				once := MustConvert(f1, MustConvert(f2, first))
				twice := MustConvert(f1, MustConvert(f2, once))
				assert.Equal(t, once, twice, "%s %v/%v: %s -> %s -> %s", c, f1, f2, first, once, twice)

				lab := f1 == notation.CIELAB && f2 == notation.CIELCh || f1 == notation.CIELCh && f2 == notation.CIELAB
				if i < len(bytes) && !lab {
					assert.Equal(t, first, once, "%s %v/%v", c, f1, f2)
				}
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hwb(90 60% 60%)", "hwb(0 50% 50%)"},
		{"hwb(209.6 11.765% 0%)", "hwb(209.6 11.765% 0%)"},
		{"hsl(120, 0%, 50%)", "hsl(0, 0%, 50%)"},
		{"hsl(120, 50%, 100%)", "hsl(0, 0%, 100%)"},
		{"hsl(200, 50%, 50%)", "hsl(200, 50%, 50%)"},
		{"hsl(209.6, 100%, 55.882%)", "hsl(209.6, 100%, 55.882%)"},
		{"lch(50% 0 120)", "lch(50% 0 0)"},
		{"oklab(50% 0 90)", "oklab(50% 0 0)"},
		{"device-cmyk(10% 20% 30% 100%)", "device-cmyk(0% 0% 0% 100%)"},
		{"device-cmyk(10% 20% 30% 40%)", "device-cmyk(10% 20% 30% 40%)"},
		{"lab(50% 20 30)", "lab(50% 20 30)"},
	}
	for _, test := range tests {
		tp := notation.MustParseColor(test.in)
		assert.Equal(t, test.want, notation.Serialize(Normalize(tp)), test.in)
		assert.Equal(t, test.want, MustConvert(tp.Format, test.in), test.in)
	}
}

func TestConvertAll(t *testing.T) {
	have, err := ConvertAll(notation.Hex, []string{"red", "rgb(0, 128, 0)", "hsl(240, 100%, 50%)"})
	assert.NoError(t, err)
	if diff := cmp.Diff([]string{"#ff0000", "#008000", "#0000ff"}, have); diff != "" {
		t.Errorf("ConvertAll mismatch (-want +got):\n%s", diff)
	}

	_, err = ConvertAll(notation.Hex, []string{"red", "nope"})
	assert.ErrorIs(t, err, notation.ErrInvalidColorFormat)
	assert.Contains(t, err.Error(), "color 1")
}

func TestCompare(t *testing.T) {
	c, err := Compare(nil, "DodgerBlue")
	require.NoError(t, err)
	assert.Equal(t, "DodgerBlue", c.Original)
	assert.Equal(t, notation.Named, c.Format)
	assert.Equal(t, notation.FormatValues(), c.Values.Keys())
	for f, s := range c.Values.All() {
		assert.Equal(t, dodgerblue[f], s, f)
	}

	c, err = Compare([]notation.Format{notation.Oklab, notation.Named, notation.Hex}, "#1f90ff")
	require.NoError(t, err)
	assert.Equal(t, []notation.Format{notation.Oklab, notation.Hex}, c.Values.Keys())

	_, err = Compare(nil, "invalid")
	assert.ErrorIs(t, err, notation.ErrInvalidColorFormat)
}

func TestToRGB(t *testing.T) {
	c := ToRGB(notation.MustParseColor("lab(50% 120 0)"))
	assert.True(t, c.InGamut())
	assert.Equal(t, 1.0, c.R)
	assert.Equal(t, 0.0, c.G)

	c = RGB{0.5, 30.3 / 255, 1, 0.5}.Quantize()
	assert.Equal(t, RGB{128.0 / 255, 30.0 / 255, 1, 0.5}, c)

	k := FromRGB(notation.CMYK, RGB{0.1, 0.5, 0.9999937, 1})
	assert.Equal(t, 0.0, k.Channels[3])
	assert.Equal(t, 100.0, FromRGB(notation.HSL, RGB{0.9999999, 0.9999999, 0.9999999, 1}).Channels[2])

	assert.False(t, RGB{1.2, 0, 0, 1}.InGamut())
	assert.Equal(t, RGB{1, 0, 0.5, 1}, RGB{1.2, -1, 0.5, 3}.Clip())
}
