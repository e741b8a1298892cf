// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmyk

import (
	"testing"

	"cogentcore.org/tokens/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestCMYK(t *testing.T) {
	c := FromSRGB(30.0/255, 144.0/255, 1)
	tolassert.Equal(t, 0.8823529, c.C)
	tolassert.Equal(t, 0.4352941, c.M)
	tolassert.Equal(t, 0.0, c.Y)
	tolassert.Equal(t, 0.0, c.K)

	r, g, b := c.SRGB()
	tolassert.Equal(t, 30.0/255, r)
	tolassert.Equal(t, 144.0/255, g)
	tolassert.Equal(t, 1.0, b)

	assert.Equal(t, CMYK{K: 1}, FromSRGB(0, 0, 0))
	assert.Equal(t, CMYK{}, FromSRGB(1, 1, 1))

	r, g, b = CMYK{0, 0, 0, 0.5}.SRGB()
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, []float64{r, g, b})

	r, g, b = CMYK{2, -1, 0, 0}.SRGB()
	assert.Equal(t, []float64{0, 1, 1}, []float64{r, g, b})
}
