// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/tokens/colors/a11y"
	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
)

// output is where the results of a command are written.
type output struct {
	io.Writer
	term  *termenv.Output
	file  *os.File
	color bool
}

// newOutput returns the output for the given config: the file given
// by [Config.Output] or [stdout].
func newOutput(cfg *Config) (*output, error) {
	o := &output{Writer: stdout}
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return nil, err
		}
		o.Writer, o.file = f, f
		return o, nil
	}
	o.term = termenv.NewOutput(stdout)
	o.color = o.term.Profile != termenv.Ascii
	return o, nil
}

// Close closes the output file, if any.
func (o *output) Close() error {
	if o.file == nil {
		return nil
	}
	slog.Info("wrote file", "file", o.file.Name())
	return o.file.Close()
}

// swatch returns a color swatch for the given color, or ""
// if the output does not support colors.
func (o *output) swatch(color string) string {
	if !o.color {
		return ""
	}
	hex, err := convert.Convert(notation.Hex, color)
	if err != nil {
		return ""
	}
	hex = hex[:7]
	text, err := a11y.ContrastColor(hex)
	if err != nil {
		return ""
	}
	return o.term.String(" Aa ").Background(o.term.Color(hex)).Foreground(o.term.Color(text)).String() + " "
}

// highlight writes the given code in the given language,
// syntax highlighted if the output supports colors.
func (o *output) highlight(cfg *Config, code, lang string) error {
	if !o.color || !cfg.Highlight {
		_, err := io.WriteString(o, code)
		return err
	}
	return quick.Highlight(o, code, lang, "terminal256", "monokai")
}

// to converts the given colors to the format given by [Config.To], if any.
func to(cfg *Config, colors []string) ([]string, error) {
	if cfg.To == "" {
		return colors, nil
	}
	var f notation.Format
	if err := f.SetString(cfg.To); err != nil {
		return nil, err
	}
	return convert.ConvertAll(f, colors)
}

// printColors prints the given colors, one per line, with an optional
// label before each one.
func printColors(cfg *Config, labels, colors []string) error {
	colors, err := to(cfg, colors)
	if err != nil {
		return err
	}
	o, err := newOutput(cfg)
	if err != nil {
		return err
	}
	w := 0
	for _, l := range labels {
		w = max(w, len(l))
	}
	for i, c := range colors {
		var sb strings.Builder
		if cfg.Swatch {
			sb.WriteString(o.swatch(c))
		}
		if i < len(labels) {
			fmt.Fprintf(&sb, "%-*s  ", w, labels[i])
		}
		sb.WriteString(c)
		if _, err := fmt.Fprintln(o, sb.String()); err != nil {
			o.Close()
			return err
		}
	}
	return o.Close()
}
