// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stylesheet

import (
	"testing"

	"cogentcore.org/tokens/colors/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertValue(t *testing.T) {
	tests := []struct {
		opts  Options
		value string
		want  string
		n     int
	}{
		{Options{To: notation.Hex, Keywords: true}, "1px solid red", "1px solid #ff0000", 1},
		{Options{To: notation.HSL, Keywords: true}, "linear-gradient(#fff, rgb(255 0 0 / 50%))", "linear-gradient(hsl(0, 0%, 100%), hsla(0, 100%, 50%, 0.5))", 2},
		{Options{To: notation.RGB}, "red #000", "red rgb(0, 0, 0)", 1},
		{Options{To: notation.Hex, Keywords: true}, "Arial, sans-serif", "Arial, sans-serif", 0},
		{Options{To: notation.Named, Keywords: true}, "#ff0000 #123456", "red #123456", 2},
		{Options{To: notation.Oklab, Keywords: true}, "var(--accent, #ffffff)", "var(--accent, oklab(100% 0 0))", 1},
		{Options{To: notation.Hex, Keywords: true}, "0 0 2px HSL(0turn 100% 50%)", "0 0 2px #ff0000", 1},
		{Options{To: notation.Hex, Keywords: true}, "rgb(1, 2)", "rgb(1, 2)", 0},
		{Options{To: notation.Hex, Keywords: true}, "#ggg", "#ggg", 0},
	}
	for _, test := range tests {
		have, n, err := ConvertValue(test.opts, test.value)
		require.NoError(t, err, test.value)
		assert.Equal(t, test.want, have, test.value)
		assert.Equal(t, test.n, n, test.value)
	}
}

func TestConvert(t *testing.T) {
	src := `a { color: red; border: 1px solid #1e90ff; }
@media (min-width: 10px) {
  b { background: rgb(0, 0, 255); }
}
`
	have, n, err := Convert(Options{To: notation.HSL, Keywords: true}, src)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Contains(t, have, "color: hsl(0, 100%, 50%)")
	assert.Contains(t, have, "border: 1px solid hsl(209.6, 100%, 55.882%)")
	assert.Contains(t, have, "background: hsl(240, 100%, 50%)")
	assert.Contains(t, have, "@media (min-width: 10px)")
}
