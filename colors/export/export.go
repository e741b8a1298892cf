// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes named palettes of color values to the
// stylesheet languages and data formats used by design tools.
package export

//go:generate core generate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"cogentcore.org/tokens/base/ordmap"
	"cogentcore.org/tokens/colors/notation"
)

// Palette is an ordered list of named color values.
type Palette = ordmap.Map[string, string]

// List returns a new [Palette] with the given colors named
// by their one-based index.
func List(colors ...string) *Palette {
	p := ordmap.New[string, string]()
	for i, c := range colors {
		p.Add(strconv.Itoa(i+1), c)
	}
	return p
}

// Stops returns a new [Palette] with the given colors named by
// their numeric stop, such as the stops of a Material palette.
func Stops(stops *ordmap.Map[int, string]) *Palette {
	p := ordmap.New[string, string]()
	for stop, c := range stops.All() {
		p.Add(strconv.Itoa(stop), c)
	}
	return p
}

// Exporter writes a named palette in some format.
type Exporter interface {

	// Export returns the given palette with the given name
	// encoded in the format of the exporter.
	Export(name string, p *Palette) ([]byte, error)
}

// Format is a supported export format.
type Format int32 //enums:enum -transform lower

const (
	// CSS is CSS custom properties on the :root selector.
	CSS Format = iota

	// Sass is SCSS variables.
	Sass

	// Less is Less variables.
	Less

	// Stylus is Stylus variables.
	Stylus

	// JSON is a JSON object.
	JSON

	// YAML is a YAML mapping.
	YAML

	// TOML is a TOML table.
	TOML

	// GPL is a GIMP palette.
	GPL

	// Markdown is a Markdown table.
	Markdown

	// HTML is an HTML table with color swatches.
	HTML
)

// Exporter returns the [Exporter] for the format with default options.
func (f Format) Exporter() Exporter {
	switch f {
	case CSS:
		return &Variables{Syntax: CSS}
	case Sass:
		return &Variables{Syntax: Sass}
	case Less:
		return &Variables{Syntax: Less}
	case Stylus:
		return &Variables{Syntax: Stylus}
	case JSON:
		return &JSONExporter{Indent: "  "}
	case YAML:
		return &YAMLExporter{Indent: 2}
	case TOML:
		return &TOMLExporter{}
	case GPL:
		return &GPLExporter{}
	case Markdown:
		return &MarkdownExporter{}
	case HTML:
		return &HTMLExporter{}
	}
	return nil
}

// Extension returns the file extension of the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case Sass:
		return ".scss"
	case Stylus:
		return ".styl"
	case YAML:
		return ".yaml"
	case Markdown:
		return ".md"
	}
	return "." + f.String()
}

// Export is a helper that exports the given palette in the given format.
func Export(f Format, name string, p *Palette) ([]byte, error) {
	e := f.Exporter()
	if e == nil {
		return nil, &notation.UnsupportedError{Kind: "export format", Value: f.String(), Supported: FormatStrings()}
	}
	return e.Export(name, p)
}

// validate returns an error if any value of the given palette
// is not a valid color.
func validate(p *Palette) error {
	for key, c := range p.All() {
		if _, err := notation.Validate(c); err != nil {
			return fmt.Errorf("palette entry %q: %w", key, err)
		}
	}
	return nil
}

// Ident returns the given name as a lowercase, dash-separated
// identifier suitable for a variable name.
func Ident(name string) string {
	f := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	return strings.Join(f, "-")
}

// variable returns the variable name of the given entry of
// the palette with the given name.
func variable(name, key string) string {
	if name == "" {
		return Ident(key)
	}
	return Ident(name) + "-" + Ident(key)
}
