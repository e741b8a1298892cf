// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"fmt"
	"math"
	"testing"

	"cogentcore.org/tokens/colors/notation"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleTriadicOf() {
	fmt.Println(TriadicOf("dodgerblue"))
	// Output: [#1e90ff #ec516e #5da600] <nil>
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{Complementary, []string{"#1e90ff", "#d37700"}},
		{SplitComplementary, []string{"#1e90ff", "#ea5d07", "#a69100"}},
		{Triadic, []string{"#1e90ff", "#ec516e", "#5da600"}},
		{Tetradic, []string{"#1e90ff", "#b866e0", "#d37700", "#5da600"}},
	}
	for _, test := range tests {
		have, err := Generate(test.kind, "#1e90ff")
		require.NoError(t, err)
		if diff := cmp.Diff(test.want, have); diff != "" {
			t.Errorf("%v mismatch (-want +got):\n%s", test.kind, diff)
		}
	}
}

func TestArity(t *testing.T) {
	arity := map[Kind]int{
		Dyadic: 2, Complementary: 2, Analogous: 3, SplitComplementary: 3, Triadic: 3,
		Clash: 3, Tetradic: 4, Square: 4, Star: 5, Hexagon: 6,
	}
	for _, k := range KindValues() {
		have, err := Generate(k, "#1e90ff")
		require.NoError(t, err, k)
		assert.Len(t, have, arity[k], k)

		have, err = Generate(k, "gray")
		require.NoError(t, err, k)
		assert.Equal(t, []string{"#808080"}, have, k)
	}

	have, err := ComplementaryOf("white")
	require.NoError(t, err)
	assert.Equal(t, []string{"#ffffff"}, have)
}

func hueDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return min(d, 360-d)
}

func TestTriadicSpacing(t *testing.T) {
	have, err := TriadicOf("oklab(65.201% 0.19012 253.21)")
	require.NoError(t, err)
	require.Len(t, have, 3)
	assert.Equal(t, "oklab(65.201% 0.19012 13.21)", have[1])
	hues := make([]float64, 3)
	for i, c := range have {
		hues[i] = notation.MustParseColor(c).Hue()
	}
	for i := range hues {
		assert.InDelta(t, 120, hueDistance(hues[i], hues[(i+1)%3]), 0.01)
	}
}

func TestHues(t *testing.T) {
	assert.Equal(t, []float64{0, 90, 270}, Clash.Hues())
	assert.Equal(t, []float64{0, 60, 180, 240}, Tetradic.Hues())
	assert.Equal(t, []float64{0, 72, 144, 216, 288}, Star.Hues())
	assert.Nil(t, Kind(42).Hues())

	_, err := Generate(Kind(42), "red")
	assert.ErrorIs(t, err, notation.ErrUnsupportedFamilyOrUnit)
}

func TestGenerateString(t *testing.T) {
	have, err := GenerateString("Split-Complementary", "#1e90ff")
	assert.NoError(t, err)
	assert.Len(t, have, 3)

	_, err = GenerateString("tetraedric", "#1e90ff")
	assert.ErrorIs(t, err, notation.ErrUnsupportedFamilyOrUnit)
	assert.Contains(t, err.Error(), `did you mean "tetradic"?`)

	_, err = GenerateString("square", "nope")
	assert.ErrorIs(t, err, notation.ErrInvalidColorFormat)
}

func TestCustom(t *testing.T) {
	assert.Equal(t, []float64{-30, 0, 30}, CustomOptions{Hues: 3, Arc: 30}.Offsets())
	assert.Equal(t, []float64{-5, 15}, CustomOptions{Hues: 2, Arc: 20, Offset: 5}.Offsets())
	assert.Equal(t, []float64{10}, CustomOptions{Offset: 10}.Offsets())

	have, err := Custom(CustomOptions{Hues: 3, Arc: 30}, "dodgerblue")
	assert.NoError(t, err)
	assert.Equal(t, []string{"#00a4e3", "#1e90ff", "#847afe"}, have)

	have, err = Custom(CustomOptions{Hues: 3, Arc: 360}, "dodgerblue")
	assert.NoError(t, err)
	assert.Equal(t, []string{"#1e90ff"}, have)

	_, err = Custom(CustomOptions{Hues: 3, Arc: 30}, "nope")
	assert.Error(t, err)
}
