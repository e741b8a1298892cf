// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package a11y

import (
	"fmt"
	"testing"

	"cogentcore.org/tokens/base/tolassert"
	"cogentcore.org/tokens/colors/notation"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleFilter() {
	fmt.Println(Filter(Options{Rating: AAA, Enhanced: true}, "white", []string{"#1e90ff", "#595959", "#0d5499"}))
	// Output: [#595959 #0d5499] <nil>
}

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"white", 1},
		{"black", 0},
		{"#1e90ff", 0.27442537},
		{"rgb(118, 118, 118)", 0.18116424},
		{"hsl(0, 0%, 100% / 50%)", 1},
	}
	for _, test := range tests {
		have, err := RelativeLuminance(test.in)
		require.NoError(t, err, test.in)
		tolassert.EqualTol(t, test.want, have, 1e-6, test.in)
	}

	_, err := RelativeLuminance("#12345")
	assert.ErrorIs(t, err, notation.ErrInvalidColorFormat)
}

func TestRatio(t *testing.T) {
	r, err := Ratio("white", "black")
	require.NoError(t, err)
	assert.Equal(t, 21.0, r)

	r, err = Ratio("#000", "#fff")
	require.NoError(t, err)
	assert.Equal(t, 21.0, r)

	r, err = Ratio("dodgerblue", "dodgerblue")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	r, err = Ratio("#1e90ff", "#ffffff")
	require.NoError(t, err)
	tolassert.EqualTol(t, 3.23649165, r, 1e-6)

	r, err = Ratio("#595959", "white")
	require.NoError(t, err)
	tolassert.EqualTol(t, 7.00472921, r, 1e-6)

	_, err = Ratio("white", "blak")
	assert.ErrorIs(t, err, notation.ErrInvalidColorFormat)
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, 3.1, Options{Rating: AA}.Threshold())
	assert.Equal(t, 4.5, Options{Rating: AA, Enhanced: true}.Threshold())
	assert.Equal(t, 4.5, Options{Rating: AAA}.Threshold())
	assert.Equal(t, 7.0, Options{Rating: AAA, Enhanced: true}.Threshold())

	o := Options{Rating: AA}
	assert.True(t, o.Passes(3.1))
	assert.True(t, o.Passes(MaxRatio))
	assert.False(t, o.Passes(3.09))
	assert.False(t, o.Passes(21.5))
}

func TestFilter(t *testing.T) {
	palette := []string{"#1e90ff", "#767676", "#777777", "#595959", "#949494", "#0d5499"}
	tests := []struct {
		opts Options
		want []string
	}{
		{Options{Rating: AA}, []string{"#1e90ff", "#767676", "#777777", "#595959", "#0d5499"}},
		{Options{Rating: AA, Enhanced: true}, []string{"#767676", "#595959", "#0d5499"}},
		{Options{Rating: AAA}, []string{"#767676", "#595959", "#0d5499"}},
		{Options{Rating: AAA, Enhanced: true}, []string{"#595959", "#0d5499"}},
	}
	for _, test := range tests {
		have, err := Filter(test.opts, "#ffffff", palette)
		require.NoError(t, err)
		if diff := cmp.Diff(test.want, have); diff != "" {
			t.Errorf("%+v mismatch (-want +got):\n%s", test.opts, diff)
		}
	}

	have, err := Filter(Options{}, "black", []string{"black", "#000000"})
	require.NoError(t, err)
	assert.Empty(t, have)

	_, err = Filter(Options{}, "nope", palette)
	assert.Error(t, err)
	_, err = Filter(Options{}, "white", []string{"#fff", "nope"})
	assert.Error(t, err)
}

func TestContrastColor(t *testing.T) {
	c, err := ContrastColor("#1e90ff")
	require.NoError(t, err)
	assert.Equal(t, "#000000", c)

	c, err = ContrastColor("#0d5499")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", c)
}

func TestRatingSetString(t *testing.T) {
	var r Rating
	assert.NoError(t, r.SetString("aaa"))
	assert.Equal(t, AAA, r)
	assert.ErrorIs(t, r.SetString("b"), notation.ErrUnsupportedFamilyOrUnit)
}
