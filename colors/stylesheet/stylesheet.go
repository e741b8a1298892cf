// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stylesheet converts the colors in CSS stylesheets and
// property values between color formats.
package stylesheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/tdewolff/parse/v2"
	cssl "github.com/tdewolff/parse/v2/css"
)

// Options are the options for [Convert] and [ConvertValue].
type Options struct {

	// To is the format that colors are converted to.
	To notation.Format `default:"hex"`

	// Keywords is whether to also convert named color keywords;
	// otherwise, only hex and functional colors are converted.
	Keywords bool `default:"true"`
}

// colorFunctions are the names of the functional color notations.
var colorFunctions = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true, "hwb": true,
	"lab": true, "lch": true, "oklab": true, "device-cmyk": true,
}

// ConvertValue returns the given CSS property value with every color
// in it converted to the format of the options, and the number of
// colors converted. Tokens that are not valid colors are left as is.
func ConvertValue(o Options, value string) (string, int, error) {
	lex := cssl.NewLexer(parse.NewInputString(value))
	var b strings.Builder
	n := 0
	write := func(color string) error {
		f, err := notation.Validate(color)
		if err != nil || (f == notation.Named && !o.Keywords) {
			b.WriteString(color)
			return nil
		}
		c, err := convert.Convert(o.To, color)
		if err != nil {
			// no keyword for the color
			var uke *notation.UndefinedKeywordError
			if errors.As(err, &uke) {
				b.WriteString(uke.Keyword)
				n++
				return nil
			}
			return err
		}
		b.WriteString(c)
		n++
		return nil
	}
	for {
		tt, text := lex.Next()
		switch tt {
		case cssl.ErrorToken:
			if err := lex.Err(); err != nil && err != io.EOF {
				return "", n, fmt.Errorf("error lexing %q: %w", value, err)
			}
			return b.String(), n, nil
		case cssl.HashToken, cssl.IdentToken:
			if err := write(string(text)); err != nil {
				return "", n, err
			}
		case cssl.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(string(text), "("))
			if !colorFunctions[name] {
				b.Write(text)
				continue
			}
			fun, err := function(lex, text)
			if err != nil {
				return "", n, err
			}
			if err := write(fun); err != nil {
				return "", n, err
			}
		default:
			b.Write(text)
		}
	}
}

// function returns the text of the function whose name token has
// just been read from the given lexer, up to its closing parenthesis.
func function(lex *cssl.Lexer, name []byte) (string, error) {
	var b bytes.Buffer
	b.Write(name)
	depth := 1
	for depth > 0 {
		tt, text := lex.Next()
		switch tt {
		case cssl.ErrorToken:
			if err := lex.Err(); err != nil && err != io.EOF {
				return "", err
			}
			return b.String(), nil
		case cssl.FunctionToken, cssl.LeftParenthesisToken:
			depth++
		case cssl.RightParenthesisToken:
			depth--
		}
		b.Write(text)
	}
	return b.String(), nil
}

// Convert returns the given CSS stylesheet with the colors in every
// declaration converted to the format of the options, and the number
// of colors converted. Declarations nested in at-rules such as @media
// are converted as well.
func Convert(o Options, src string) (string, int, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return "", 0, fmt.Errorf("error parsing stylesheet: %w", err)
	}
	n, err := convertRules(o, sheet.Rules)
	if err != nil {
		return "", n, err
	}
	slog.Debug("converted stylesheet colors", "count", n, "to", o.To)
	return sheet.String(), n, nil
}

func convertRules(o Options, rules []*css.Rule) (int, error) {
	total := 0
	for _, r := range rules {
		for _, d := range r.Declarations {
			v, n, err := ConvertValue(o, d.Value)
			if err != nil {
				return total, fmt.Errorf("property %q: %w", d.Property, err)
			}
			d.Value = v
			total += n
		}
		n, err := convertRules(o, r.Rules)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
