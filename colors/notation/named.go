// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"image/color"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
)

// keywords contains the CSS color keywords. It is based on
// [colornames.Map], which predates the CSS Color Level 4 additions.
var keywords = func() map[string]color.RGBA {
	m := make(map[string]color.RGBA, len(colornames.Map)+2)
	for name, c := range colornames.Map {
		m[name] = c
	}
	m["rebeccapurple"] = color.RGBA{0x66, 0x33, 0x99, 0xff}
	m["transparent"] = color.RGBA{}
	return m
}()

// keywordNames is the sorted list of keys in keywords.
var keywordNames = func() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}()

// keywordsByValue maps colors back to their alphabetically first keyword,
// so that aliases such as aqua and cyan resolve to a stable name.
var keywordsByValue = func() map[color.RGBA]string {
	m := make(map[color.RGBA]string, len(keywords))
	for _, name := range keywordNames {
		c := keywords[name]
		if _, has := m[c]; !has {
			m[c] = name
		}
	}
	return m
}()

// Keywords returns the sorted list of supported color keywords.
func Keywords() []string {
	return slices.Clone(keywordNames)
}

// IsKeyword returns whether the given string is a color keyword,
// ignoring case and surrounding space.
func IsKeyword(s string) bool {
	_, ok := keywords[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// Lookup returns the color value of the given color keyword.
// It returns an [UndefinedKeywordError] if there is no such keyword.
func Lookup(name string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	c, ok := keywords[key]
	if !ok {
		return color.RGBA{}, &UndefinedKeywordError{Keyword: name, Set: "CSS color", Suggestion: Suggest(key, keywordNames)}
	}
	return c, nil
}

// KeywordFor returns the keyword whose value is exactly the given color,
// and whether there is one.
func KeywordFor(c color.RGBA) (string, bool) {
	name, ok := keywordsByValue[c]
	return name, ok
}
