// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/tokens/colors"
	"cogentcore.org/tokens/colors/a11y"
	"cogentcore.org/tokens/colors/export"
	"cogentcore.org/tokens/colors/palette"
	"cogentcore.org/tokens/colors/scheme"
	"cogentcore.org/tokens/colors/vision"
)

// Config is the configuration for all of the commands.
type Config struct {

	// To is the format that results are converted to; results are in
	// the format of their input if it is empty.
	To string `desc:"the format to convert results to: named, hex, rgb, hsl, cmyk, hwb, cielab, cielch, or oklab"`

	// Formats are the formats compared by the compare command.
	Formats []string `desc:"the formats to compare; all formats if empty"`

	// Adjustment is the adjustment of the adjust command.
	Adjustment colors.Adjustment

	// Steps is the number of colors in the scales made by the adjust and mix commands.
	Steps int `desc:"the number of colors in an adjust or mix scale; 0 gives a single color"`

	// Target is the color that the mix command mixes toward.
	Target string `default:"black" desc:"the color to mix toward"`

	// Amount is the amount of the target color that the mix command mixes in.
	Amount float64 `default:"50" desc:"the amount of the target color to mix in, in percent"`

	// Custom are the options of the custom scheme.
	Custom scheme.CustomOptions `flag:"custom"`

	// Count is the number of tints, tones, or shades.
	Count int `default:"3" desc:"the number of tints, tones, or shades"`

	// Contrast is the contrast of tints, tones, and shades.
	Contrast float64 `default:"95" desc:"the contrast of tints, tones, or shades, in percent"`

	// Material are the options of Material palettes.
	Material palette.MaterialOptions `flag:"material"`

	// Artistic are the options of artistic palettes.
	Artistic palette.ArtisticOptions `flag:"artistic"`

	// Background is the background color that contrast is checked against.
	Background string `default:"#ffffff" desc:"the background color to check contrast against"`

	// A11y are the accessibility options of the contrast and filter commands.
	A11y a11y.Options

	// Vision are the options of the vision command.
	Vision vision.Options

	// Illuminant are the options of the illuminant command.
	Illuminant vision.IlluminantOptions

	// Sensitivity are the options of the sensitivity command.
	Sensitivity vision.SensitivityOptions `flag:"sensitivity"`

	// Image is an image file to apply the vision, illuminant, or
	// sensitivity filter to instead of colors.
	Image string `desc:"an image file to filter instead of colors"`

	// Keywords is whether the stylesheet command converts named color keywords.
	Keywords bool `default:"true" desc:"whether to convert named color keywords in stylesheets"`

	// Watch is whether the stylesheet command keeps converting
	// the stylesheet whenever it changes.
	Watch bool `desc:"convert the stylesheet again whenever it changes"`

	// Export is the format of the export command.
	Export export.Format `default:"css" desc:"the export format: css, sass, less, stylus, json, yaml, toml, gpl, markdown, or html"`

	// Name is the name of the exported palette.
	Name string `default:"palette" desc:"the name of the exported palette"`

	// Output is the file that results are written to, instead of
	// standard output.
	Output string `flag:"output" desc:"the file to write results to instead of standard output"`

	// Swatch is whether to print a color swatch next to each color
	// when standard output is a terminal.
	Swatch bool `default:"true" desc:"print a color swatch next to each color in a terminal"`

	// Highlight is whether to syntax highlight exported code
	// when standard output is a terminal.
	Highlight bool `default:"true" desc:"syntax highlight exported code in a terminal"`

	// VeryVerbose is whether to print debug messages.
	VeryVerbose bool `flag:"vv" desc:"print debug messages"`

	// Verbose is whether to print informational messages.
	Verbose bool `flag:"v" desc:"print informational messages"`

	// Quiet is whether to only print errors.
	Quiet bool `flag:"q" desc:"only print errors"`
}
