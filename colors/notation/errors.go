// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"strings"

	"cogentcore.org/tokens/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrInvalidColorFormat is returned (wrapped in an [InvalidFormatError])
	// when a string matches none of the supported color grammars.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrUndefinedColorKeyword is returned (wrapped in an [UndefinedKeywordError])
	// when a color keyword lookup misses.
	ErrUndefinedColorKeyword = errors.New("undefined color keyword")

	// ErrUnsupportedFamilyOrUnit is returned (wrapped in an [UnsupportedError])
	// when a caller-specified keyword is outside of its enumerated set.
	ErrUnsupportedFamilyOrUnit = errors.New("unsupported family or unit")

	// ErrParse is returned (wrapped in a [ParseError]) when a component
	// of an otherwise valid color string can not be parsed.
	ErrParse = errors.New("malformed color component")
)

// examples are shown in error messages as valid inputs for each format.
var examples = map[Format]string{
	Named:  "dodgerblue",
	Hex:    "#1e90ff",
	RGB:    "rgb(30, 144, 255)",
	HSL:    "hsl(209.6, 100%, 55.882%)",
	CMYK:   "device-cmyk(88.235% 43.529% 0% 0%)",
	HWB:    "hwb(209.6 11.765% 0%)",
	CIELAB: "lab(58.362% 0.88971 -64.779)",
	CIELCh: "lch(58.362% 64.785 270.79)",
	Oklab:  "oklab(65.201% 0.19012 253.21)",
}

// InvalidFormatError is the error returned when a string
// is not a valid color in any supported notation.
type InvalidFormatError struct {

	// Input is the offending string.
	Input string

	// Suggestion is the closest color keyword to the input,
	// if the input looks like a misspelled keyword.
	Suggestion string
}

func (e *InvalidFormatError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v: %q is not a recognized color", ErrInvalidColorFormat, e.Input)
	if e.Suggestion != "" {
		fmt.Fprintf(&sb, " (did you mean %q?)", e.Suggestion)
	}
	sb.WriteString("; use one of: ")
	for i, f := range _FormatValues {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(examples[f])
	}
	return sb.String()
}

func (e *InvalidFormatError) Unwrap() error { return ErrInvalidColorFormat }

// UndefinedKeywordError is the error returned when a color
// keyword is not found in its keyword set.
type UndefinedKeywordError struct {

	// Keyword is the keyword that was looked up, or a
	// description of the value that has no keyword.
	Keyword string

	// Set is the name of the keyword set that was searched.
	Set string

	// Suggestion is the closest keyword in the set, if any.
	Suggestion string
}

func (e *UndefinedKeywordError) Error() string {
	msg := fmt.Sprintf("%v: %q is not defined in the %s keywords", ErrUndefinedColorKeyword, e.Keyword, e.Set)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg + "; for example, use " + examples[Named]
}

func (e *UndefinedKeywordError) Unwrap() error { return ErrUndefinedColorKeyword }

// UnsupportedError is the error returned when a caller-specified
// keyword (a format, a scheme, a color vision deficiency, a unit)
// is outside of the supported enumerated set.
type UnsupportedError struct {

	// Kind is what the value was supposed to name, such as "format".
	Kind string

	// Value is the offending value.
	Value string

	// Supported is the list of supported values.
	Supported []string
}

func (e *UnsupportedError) Error() string {
	msg := fmt.Sprintf("%v: unsupported %s %q", ErrUnsupportedFamilyOrUnit, e.Kind, e.Value)
	if s := Suggest(e.Value, e.Supported); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return msg + "; supported values are: " + strings.Join(e.Supported, ", ")
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupportedFamilyOrUnit }

// ParseError is the error returned when a component of a color
// string that matched a grammar can not be parsed as a number.
type ParseError struct {
	Format    Format
	Component string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s component %q: %v; for example, use %s", ErrParse, e.Format, e.Component, e.Err, examples[e.Format])
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// suggestThreshold is the minimum similarity for a suggestion.
const suggestThreshold = 0.6

// Suggest returns the candidate most similar to the given word
// by Levenshtein similarity, or "" if none is similar enough.
func Suggest(word string, candidates []string) string {
	word = strings.ToLower(word)
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.0
	for _, c := range candidates {
		if sim := strutil.Similarity(word, c, lev); sim > bestSim {
			best, bestSim = c, sim
		}
	}
	if bestSim < suggestThreshold {
		return ""
	}
	return best
}
