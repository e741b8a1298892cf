// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"regexp"
	"strings"
)

// Building blocks of the functional notation grammars.
const (
	number   = `[+-]?(?:\d+(?:\.\d*)?|\.\d+)`
	numPct   = number + `%?`
	hueToken = number + `(?:deg|rad|grad|turn)?`
	opening  = `\(\s*`
	closing  = `\s*\)$`
	comma    = `\s*,\s*`
	space    = `\s+`

	legacyAlpha = `(?:\s*[,/]\s*` + numPct + `)?`
	modernAlpha = `(?:\s*/\s*` + numPct + `)?`
)

// token matches a single numeric component with its optional unit.
var token = regexp.MustCompile(`(?i)` + number + `(?:%|deg|rad|grad|turn)?`)

// grammars contains the grammar of each functional and hex format,
// indexed by [Format]. Named colors are matched against the keyword
// table instead of a grammar.
var grammars = [FormatN]*regexp.Regexp{
	Hex: regexp.MustCompile(`(?i)^#(?:[0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`),
	RGB: regexp.MustCompile(`(?i)^rgba?` + opening + `(?:` +
		numPct + comma + numPct + comma + numPct + legacyAlpha + `|` +
		numPct + space + numPct + space + numPct + modernAlpha + `)` + closing),
	HSL: regexp.MustCompile(`(?i)^hsla?` + opening + `(?:` +
		hueToken + comma + numPct + comma + numPct + legacyAlpha + `|` +
		hueToken + space + numPct + space + numPct + modernAlpha + `)` + closing),
	CMYK:   regexp.MustCompile(`(?i)^device-cmyk` + opening + numPct + space + numPct + space + numPct + space + numPct + modernAlpha + closing),
	HWB:    regexp.MustCompile(`(?i)^hwb` + opening + hueToken + space + numPct + space + numPct + modernAlpha + closing),
	CIELAB: regexp.MustCompile(`(?i)^lab` + opening + numPct + space + numPct + space + numPct + modernAlpha + closing),
	CIELCh: regexp.MustCompile(`(?i)^lch` + opening + numPct + space + numPct + space + hueToken + modernAlpha + closing),
	Oklab:  regexp.MustCompile(`(?i)^oklab` + opening + numPct + space + numPct + space + hueToken + modernAlpha + closing),
}

// Matches returns whether the given string is a valid color
// in the given format.
func (f Format) Matches(s string) bool {
	s = strings.TrimSpace(s)
	if f == Named {
		return IsKeyword(s)
	}
	if f < 0 || f >= FormatN {
		return false
	}
	return grammars[f].MatchString(s)
}

// Validate returns the format of the given color string, trying each
// format in priority order and returning the first one that matches.
// It returns an [InvalidFormatError] if the string matches no format.
func Validate(s string) (Format, error) {
	for _, f := range _FormatValues {
		if f.Matches(s) {
			return f, nil
		}
	}
	return 0, &InvalidFormatError{Input: s, Suggestion: Suggest(strings.TrimSpace(s), keywordNames)}
}

// IsValid returns whether the given string is a valid color
// in any supported format.
func IsValid(s string) bool {
	_, err := Validate(s)
	return err == nil
}
