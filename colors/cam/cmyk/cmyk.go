// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmyk provides the naive device CMYK representation of sRGB colors.
package cmyk

import "cogentcore.org/tokens/base/num"

// CMYK represents a device color in terms of its cyan, magenta,
// yellow, and key (black) ink coverage, each in [0, 1].
type CMYK struct {
	C, M, Y, K float64
}

// FromSRGB returns the [CMYK] color for the given sRGB components in [0, 1].
// Pure black has a key of 1 and no other ink.
func FromSRGB(r, g, b float64) CMYK {
	k := 1 - max(r, g, b)
	if k >= 1-num.Epsilon {
		return CMYK{K: 1}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k),
		M: (1 - g - k) / (1 - k),
		Y: (1 - b - k) / (1 - k),
		K: k,
	}
}

// SRGB returns the sRGB components in [0, 1] of the color.
func (c CMYK) SRGB() (r, g, b float64) {
	k := 1 - num.Clamp(c.K, 0, 1)
	r = (1 - num.Clamp(c.C, 0, 1)) * k
	g = (1 - num.Clamp(c.M, 0, 1)) * k
	b = (1 - num.Clamp(c.Y, 0, 1)) * k
	return
}
