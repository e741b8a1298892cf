// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/tokens/base/errors"
	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
)

// Mix returns the color that is the given amount (in percent, 0-100)
// of the way from the given color to the target color in Oklab,
// in the format of the given color (named colors give hex).
// Alpha is interpolated along with the color channels.
func Mix(color, target string, amount float64) (string, error) {
	t, err := notation.ParseColor(color)
	if err != nil {
		return "", err
	}
	tt, err := notation.ParseColor(target)
	if err != nil {
		return "", err
	}
	return notation.Serialize(MixTuple(t, tt, amount)), nil
}

// MustMix is like [Mix] but panics on an error.
func MustMix(color, target string, amount float64) string {
	return errors.Must1(Mix(color, target, amount))
}

// MixTuple is the tuple version of [Mix].
func MixTuple(t, target notation.Tuple, amount float64) notation.Tuple {
	f := num.Clamp(amount, 0, 100) / 100
	a, aa := convert.ToOklab(t)
	b, ba := convert.ToOklab(target)
	return convert.FromOklab(OutputFormat(t.Format), a.Lerp(b, f), num.Lerp(aa, ba, f))
}
