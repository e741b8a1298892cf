// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[int, string]()
	om.Add(50, "#f5faff")
	om.Add(100, "#b5d8ff")
	om.Add(500, "#1e90ff")

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, "#b5d8ff", om.ValueByKey(100))
	assert.Equal(t, 2, om.IndexByKey(500))
	assert.Equal(t, -1, om.IndexByKey(900))
	_, ok := om.ValueByKeyTry(900)
	assert.False(t, ok)

	om.Add(100, "#74b6ff")
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []int{50, 100, 500}, om.Keys())
	assert.Equal(t, []string{"#f5faff", "#74b6ff", "#1e90ff"}, om.Values())
	assert.Equal(t, 100, om.KeyByIndex(1))
	assert.Equal(t, "#1e90ff", om.ValueByIndex(2))

	var keys []int
	for k := range om.All() {
		keys = append(keys, k)
		if k == 100 {
			break
		}
	}
	assert.Equal(t, []int{50, 100}, keys)
}

func TestMake(t *testing.T) {
	om := Make([]KeyValue[string, string]{{"original", "red"}, {"hex", "#ff0000"}})
	assert.Equal(t, "#ff0000", om.ValueByKey("hex"))
	assert.Equal(t, "[{original red} {hex #ff0000}]", om.String())

	var nilMap *Map[string, int]
	assert.Equal(t, 0, nilMap.Len())
}
