// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"testing"

	"cogentcore.org/tokens/colors/notation"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleTints() {
	fmt.Println(Tints(3, 95, "dodgerblue"))
	// Output: [#74b6ff #b5d8ff #f5faff] <nil>
}

func TestVariants(t *testing.T) {
	tests := []struct {
		v        Variant
		contrast float64
		want     []string
	}{
		{Tint, 95, []string{"#74b6ff", "#b5d8ff", "#f5faff"}},
		{Tone, 95, []string{"#7d8187", "#6889af", "#4d8dd7"}},
		{Shade, 95, []string{"#000000", "#021f3f", "#0d5499"}},
	}
	for _, test := range tests {
		have, err := Variants(test.v, 3, test.contrast, "#1e90ff")
		require.NoError(t, err)
		if diff := cmp.Diff(test.want, have); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", test.v, diff)
		}
	}

	have, err := Tints(3, 50, "white")
	assert.NoError(t, err)
	assert.Equal(t, []string{"#ffffff"}, have)

	have, err = Shades(2, 50, "rgb(30, 144, 255)")
	assert.NoError(t, err)
	for _, c := range have {
		f, err := notation.Validate(c)
		assert.NoError(t, err)
		assert.Equal(t, notation.RGB, f)
	}

	_, err = Tones(3, 50, "nope")
	assert.ErrorIs(t, err, notation.ErrInvalidColorFormat)
}

func TestVariantSetString(t *testing.T) {
	var v Variant
	assert.NoError(t, v.SetString("Shade"))
	assert.Equal(t, Shade, v)
	assert.Equal(t, "#000000", v.Target())
	assert.ErrorIs(t, v.SetString("tinted"), notation.ErrUnsupportedFamilyOrUnit)
}

func TestMaterial(t *testing.T) {
	m, err := Material(DefaultMaterialOptions(), "dodgerblue")
	require.NoError(t, err)
	assert.Equal(t, MaterialStops, m.Keys())
	want := []string{
		"#f5faff", "#cfe6ff", "#a8d2ff", "#81bdff", "#57a7ff",
		"#1d8efb",
		"#136abe", "#094580", "#032448", "#000716",
	}
	if diff := cmp.Diff(want, m.Values()); diff != "" {
		t.Errorf("Material mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "#1d8efb", m.ValueByKey(500))

	m, err = Material(DefaultMaterialOptions(), "white")
	require.NoError(t, err)
	assert.Equal(t, 10, m.Len())
	assert.Equal(t, "#ffffff", m.ValueByKey(50))

	_, err = Material(MaterialOptions{}, "nope")
	assert.Error(t, err)
}

func TestArtistic(t *testing.T) {
	p, err := Artistic(DefaultArtisticOptions(), "dodgerblue")
	require.NoError(t, err)
	assert.Equal(t, "dodgerblue", p.Base)
	assert.Equal(t, []string{"#74b6ff", "#b5d8ff", "#f5faff"}, p.Tints)
	assert.Equal(t, []string{"#7086a1", "#5d8bc0", "#468ee0"}, p.Tones)
	assert.Equal(t, []string{"#010e22", "#053563", "#1160ae"}, p.Shades)
	assert.Len(t, p.All(), 10)
	assert.Equal(t, "dodgerblue", p.All()[0])

	p, err = Artistic(ArtisticOptions{Tints: 2, Contrast: 50}, "#1e90ff")
	require.NoError(t, err)
	assert.Equal(t, "#1e90ff", p.Base)
	assert.Len(t, p.Tints, 2)
	assert.Nil(t, p.Tones)
	assert.Nil(t, p.Shades)
}
