// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/tokens/base/errors"
	"cogentcore.org/tokens/base/num"
)

// Reference values for percentages of unbounded channels,
// as defined in CSS Color Level 4.
const (
	labABPercent  = 125
	lchCPercent   = 150
	oklabCPercent = 0.4
)

// Extract returns the raw component substrings of the given color
// string in the given format, including the alpha component if present.
// Hex components are returned as expanded two-digit byte groups and
// named colors as their lowercase keyword. It returns an
// [InvalidFormatError] if the string does not match the format.
func Extract(f Format, s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if !f.Matches(s) {
		return nil, &InvalidFormatError{Input: s, Suggestion: Suggest(s, keywordNames)}
	}
	switch f {
	case Named:
		return []string{strings.ToLower(s)}, nil
	case Hex:
		digits := strings.ToLower(s[1:])
		if len(digits) <= 4 {
			var sb strings.Builder
			for _, d := range digits {
				sb.WriteRune(d)
				sb.WriteRune(d)
			}
			digits = sb.String()
		}
		groups := make([]string, 0, 4)
		for i := 0; i < len(digits); i += 2 {
			groups = append(groups, digits[i:i+2])
		}
		return groups, nil
	}
	args := s[strings.IndexByte(s, '(')+1:]
	return token.FindAllString(args, -1), nil
}

// ParseColor validates the given color string and parses it into
// a [Tuple] in the format it is written in.
func ParseColor(s string) (Tuple, error) {
	f, err := Validate(s)
	if err != nil {
		return Tuple{}, err
	}
	return Parse(f, s)
}

// MustParseColor is like [ParseColor] but panics on an error.
func MustParseColor(s string) Tuple {
	return errors.Must1(ParseColor(s))
}

// Parse parses the given color string in the given format into a [Tuple].
// Channels are interpreted by position and unit suffix, and clamped to
// the domain of the format; see [Tuple]. A missing alpha defaults to 1.
func Parse(f Format, s string) (Tuple, error) {
	parts, err := Extract(f, s)
	if err != nil {
		return Tuple{}, err
	}
	t := Tuple{Format: f, Alpha: 1}
	switch f {
	case Named:
		c, err := Lookup(parts[0])
		if err != nil {
			return Tuple{}, err
		}
		t = FromRGBA(c)
		t.Format = Named
		return t, nil
	case Hex:
		for i, p := range parts {
			v, err := strconv.ParseUint(p, 16, 8)
			if err != nil {
				return Tuple{}, &ParseError{Format: f, Component: p, Err: err}
			}
			if i == 3 {
				t.Alpha = float64(v) / 255
			} else {
				t.Channels[i] = float64(v)
			}
		}
		return t, nil
	}

	arity := f.Arity()
	if len(parts) != arity && len(parts) != arity+1 {
		return Tuple{}, &ParseError{Format: f, Component: s, Err: fmt.Errorf("expected %d or %d components but got %d", arity, arity+1, len(parts))}
	}
	for i := range arity {
		v, err := parseChannel(f, i, parts[i])
		if err != nil {
			return Tuple{}, err
		}
		t.Channels[i] = v
	}
	if len(parts) > arity {
		a, err := ParseAlpha(parts[arity])
		if err != nil {
			return Tuple{}, &ParseError{Format: f, Component: parts[arity], Err: err}
		}
		t.Alpha = a
	}
	return t, nil
}

// parseChannel parses channel i of the given format.
func parseChannel(f Format, i int, s string) (float64, error) {
	if i == f.HueIndex() {
		h, err := ParseHue(s)
		if err != nil {
			return 0, &ParseError{Format: f, Component: s, Err: err}
		}
		return h, nil
	}
	v, pct, err := parseNumber(s)
	if err != nil {
		return 0, &ParseError{Format: f, Component: s, Err: err}
	}
	switch f {
	case RGB:
		if pct {
			v *= 2.55
		}
		return num.Clamp(v, 0, 255), nil
	case HSL, HWB:
		return num.Clamp(v, 0, 100), nil
	case CMYK:
		if !pct {
			v *= 100
		}
		return num.Clamp(v, 0, 100), nil
	case CIELAB:
		if i == 0 {
			return num.Clamp(v, 0, 100), nil
		}
		if pct {
			v = v / 100 * labABPercent
		}
		return v, nil
	case CIELCh:
		if i == 0 {
			return num.Clamp(v, 0, 100), nil
		}
		if pct {
			v = v / 100 * lchCPercent
		}
		return max(v, 0), nil
	case Oklab:
		if i == 0 {
			if !pct {
				v *= 100
			}
			return num.Clamp(v, 0, 100), nil
		}
		if pct {
			v = v / 100 * oklabCPercent
		}
		return max(v, 0), nil
	}
	return v, nil
}

// parseNumber parses a numeric token, reporting whether it has
// a percent suffix.
func parseNumber(s string) (v float64, pct bool, err error) {
	if str, ok := strings.CutSuffix(s, "%"); ok {
		s, pct = str, true
	}
	v, err = strconv.ParseFloat(s, 64)
	return v, pct, err
}

// ParseHue parses the given hue token, which may have a deg, rad,
// grad, or turn unit suffix (degrees if none), and returns the
// angle in degrees in [0, 360).
func ParseHue(s string) (float64, error) {
	ls := strings.ToLower(s)
	factor := 1.0
	// grad must be checked before rad
	switch {
	case strings.HasSuffix(ls, "deg"):
		ls = strings.TrimSuffix(ls, "deg")
	case strings.HasSuffix(ls, "grad"):
		ls, factor = strings.TrimSuffix(ls, "grad"), 180.0/200
	case strings.HasSuffix(ls, "rad"):
		ls, factor = strings.TrimSuffix(ls, "rad"), 180/math.Pi
	case strings.HasSuffix(ls, "turn"):
		ls, factor = strings.TrimSuffix(ls, "turn"), 360
	}
	v, err := strconv.ParseFloat(ls, 64)
	if err != nil {
		return 0, err
	}
	return num.WrapHue(v * factor), nil
}

// ParseAlpha parses the given alpha token, which is either a
// fraction or a percentage, and returns it clamped to [0, 1].
func ParseAlpha(s string) (float64, error) {
	v, pct, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if pct {
		v /= 100
	}
	return num.Clamp(v, 0, 1), nil
}
