// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strconv"

	"cogentcore.org/tokens/base/num"
	"cogentcore.org/tokens/colors"
	"cogentcore.org/tokens/colors/a11y"
	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/export"
	"cogentcore.org/tokens/colors/notation"
	"cogentcore.org/tokens/colors/palette"
	"cogentcore.org/tokens/colors/scheme"
	"cogentcore.org/tokens/colors/stylesheet"
	"cogentcore.org/tokens/colors/vision"
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// errNoColors is returned by commands that need at least one color.
var errNoColors = errors.New("no colors given")

// needColors returns [errNoColors] if there are fewer than n arguments.
func needColors(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%w: expected at least %d", errNoColors, n)
	}
	return nil
}

func convertCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	if cfg.To == "" {
		return errors.New("no format given with --to")
	}
	return printColors(cfg, nil, args)
}

func compareCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	formats := make([]notation.Format, len(cfg.Formats))
	for i, s := range cfg.Formats {
		if err := formats[i].SetString(s); err != nil {
			return err
		}
	}
	var labels, values []string
	for _, c := range args {
		cmp, err := convert.Compare(formats, c)
		if err != nil {
			return err
		}
		for f, v := range cmp.Values.All() {
			labels = append(labels, f.String())
			values = append(values, v)
		}
	}
	// the comparison already has every format, so --to does not apply
	cfg.To = ""
	return printColors(cfg, labels, values)
}

func adjustCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	var res []string
	for _, c := range args {
		if cfg.Steps > 0 {
			scale, err := colors.AdjustScale(colors.Interpolation{Adjustment: cfg.Adjustment, Values: cfg.Steps}, c)
			if err != nil {
				return err
			}
			res = append(res, scale...)
			continue
		}
		a, err := colors.Adjust(cfg.Adjustment, c)
		if err != nil {
			return err
		}
		res = append(res, a)
	}
	return printColors(cfg, nil, res)
}

func mixCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	var res []string
	for _, c := range args {
		if cfg.Steps > 0 {
			scale, err := colors.MixScale(colors.Blend{Target: cfg.Target, Amount: cfg.Amount, Values: cfg.Steps}, c)
			if err != nil {
				return err
			}
			res = append(res, scale...)
			continue
		}
		m, err := colors.Mix(c, cfg.Target, cfg.Amount)
		if err != nil {
			return err
		}
		res = append(res, m)
	}
	return printColors(cfg, nil, res)
}

func schemeCmd(cfg *Config, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expected a scheme kind (%v or custom) and at least one color", scheme.KindStrings())
	}
	var res []string
	for _, c := range args[1:] {
		var s []string
		var err error
		if args[0] == "custom" {
			s, err = scheme.Custom(cfg.Custom, c)
		} else {
			s, err = scheme.GenerateString(args[0], c)
		}
		if err != nil {
			return err
		}
		res = append(res, s...)
	}
	return printColors(cfg, nil, res)
}

// variantCmd returns the command that generates the given variant.
func variantCmd(v palette.Variant) func(cfg *Config, args []string) error {
	return func(cfg *Config, args []string) error {
		if err := needColors(args, 1); err != nil {
			return err
		}
		var res []string
		for _, c := range args {
			vs, err := palette.Variants(v, cfg.Count, cfg.Contrast, c)
			if err != nil {
				return err
			}
			res = append(res, vs...)
		}
		return printColors(cfg, nil, res)
	}
}

func materialCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	var labels, res []string
	for _, c := range args {
		p, err := palette.Material(cfg.Material, c)
		if err != nil {
			return err
		}
		for stop, v := range p.All() {
			labels = append(labels, strconv.Itoa(stop))
			res = append(res, v)
		}
	}
	return printColors(cfg, labels, res)
}

func artisticCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	var labels, res []string
	add := func(label string, cs []string) {
		for i, c := range cs {
			labels = append(labels, fmt.Sprintf("%s %d", label, i+1))
			res = append(res, c)
		}
	}
	for _, c := range args {
		p, err := palette.Artistic(cfg.Artistic, c)
		if err != nil {
			return err
		}
		labels = append(labels, "base")
		res = append(res, p.Base)
		add("tint", p.Tints)
		add("tone", p.Tones)
		add("shade", p.Shades)
	}
	return printColors(cfg, labels, res)
}

func contrastCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	labels := make([]string, len(args))
	for i, c := range args {
		r, err := a11y.Ratio(c, cfg.Background)
		if err != nil {
			return err
		}
		verdict := "fail"
		if cfg.A11y.Passes(r) {
			verdict = "pass"
		}
		labels[i] = fmt.Sprintf("%s:1 %s", num.Format(r), verdict)
	}
	return printColors(cfg, labels, args)
}

func filterCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	res, err := a11y.Filter(cfg.A11y, cfg.Background, args)
	if err != nil {
		return err
	}
	return printColors(cfg, nil, res)
}

// filterColors applies the given filter to the image given by
// [Config.Image], or to the given colors if there is none.
func filterColors(cfg *Config, args []string, name string, f vision.Filter) error {
	if cfg.Image != "" {
		return filterImage(cfg, name, func(img image.Image) image.Image {
			return vision.FilterImage(img, f)
		})
	}
	if err := needColors(args, 1); err != nil {
		return err
	}
	res, err := vision.ApplyAll(f, args)
	if err != nil {
		return err
	}
	return printColors(cfg, nil, res)
}

func visionCmd(cfg *Config, args []string) error {
	if cfg.Image != "" {
		return filterImage(cfg, cfg.Vision.As.String(), func(img image.Image) image.Image {
			return vision.SimulateImage(img, cfg.Vision)
		})
	}
	return filterColors(cfg, args, cfg.Vision.As.String(), cfg.Vision.Filter())
}

func illuminantCmd(cfg *Config, args []string) error {
	return filterColors(cfg, args, "illuminant", cfg.Illuminant.Filter())
}

func sensitivityCmd(cfg *Config, args []string) error {
	return filterColors(cfg, args, "sensitivity", cfg.Sensitivity.Filter())
}

// stylesheetOptions returns the stylesheet options for the given config.
func stylesheetOptions(cfg *Config) (stylesheet.Options, error) {
	o := stylesheet.Options{To: notation.Hex, Keywords: cfg.Keywords}
	if cfg.To != "" {
		if err := o.To.SetString(cfg.To); err != nil {
			return o, err
		}
	}
	return o, nil
}

func stylesheetCmd(cfg *Config, args []string) error {
	if len(args) != 1 {
		return errors.New("expected one stylesheet file")
	}
	o, err := stylesheetOptions(cfg)
	if err != nil {
		return err
	}
	if err := convertStylesheet(cfg, o, args[0]); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	return watch(args[0], func() error {
		return convertStylesheet(cfg, o, args[0])
	})
}

// convertStylesheet converts the given stylesheet file and writes the result.
func convertStylesheet(cfg *Config, o stylesheet.Options, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	res, n, err := stylesheet.Convert(o, string(b))
	if err != nil {
		return err
	}
	slog.Info("converted stylesheet", "file", file, "colors", n)
	out, err := newOutput(cfg)
	if err != nil {
		return err
	}
	if err := out.highlight(cfg, res, "css"); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func exportCmd(cfg *Config, args []string) error {
	if err := needColors(args, 1); err != nil {
		return err
	}
	cs, err := to(cfg, args)
	if err != nil {
		return err
	}
	e := cfg.Export.Exporter()
	if e == nil {
		return fmt.Errorf("unsupported export format %v", cfg.Export)
	}
	switch e := e.(type) {
	case *export.GPLExporter:
		e.Language = userLanguage()
	case *export.MarkdownExporter:
		e.Swatches = cfg.Swatch
	}
	b, err := e.Export(cfg.Name, export.List(cs...))
	if err != nil {
		return err
	}
	out, err := newOutput(cfg)
	if err != nil {
		return err
	}
	lexer := cfg.Export.String()
	if cfg.Export == export.Sass {
		lexer = "scss"
	}
	if err := out.highlight(cfg, string(b), lexer); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// userLanguage returns the language of the user, or
// [language.Und] if it is unknown.
func userLanguage() language.Tag {
	s, err := locale.GetLanguage()
	if err != nil {
		slog.Debug("unknown user language", "err", err)
		return language.Und
	}
	tag, err := language.Parse(s)
	if err != nil {
		slog.Debug("invalid user language", "language", s, "err", err)
		return language.Und
	}
	return tag
}
