// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tokens converts, manipulates, and exports design token colors.
package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/tokens/base/logx"
	"cogentcore.org/tokens/cli"
	"cogentcore.org/tokens/colors/palette"
)

// stdout is where results are written.
var stdout io.Writer = os.Stdout

// options are the options of the app.
var options = &cli.Options{
	AppName:      "tokens",
	AppAbout:     "Tokens converts, manipulates, and exports design token colors.",
	DefaultFiles: []string{"~/.config/tokens/tokens.toml", "tokens.toml"},
}

func main() {
	logx.SetDefaultLogger()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run runs the app with the given arguments.
func run(args []string) error {
	options.Stdout = stdout
	return cli.Run(options, &Config{}, args, commands()...)
}

// commands returns all of the commands of the app.
func commands() []*cli.Cmd[*Config] {
	cmds := []*cli.Cmd[*Config]{
		{Name: "convert", Func: convertCmd, Doc: "converts the given colors to the format given by --to"},
		{Name: "compare", Func: compareCmd, Doc: "prints the given color in every format given by --formats"},
		{Name: "adjust", Func: adjustCmd, Doc: "adjusts the lightness, chroma, hue, and alpha of the given color, or makes a scale with --steps"},
		{Name: "mix", Func: mixCmd, Doc: "mixes the given color with a target color, or makes a scale with --steps"},
		{Name: "scheme", Func: schemeCmd, Doc: "generates a color scheme of the given kind (or custom) for the given color"},
		{Name: "tints", Func: variantCmd(palette.Tint), Doc: "generates tints of the given color"},
		{Name: "tones", Func: variantCmd(palette.Tone), Doc: "generates tones of the given color"},
		{Name: "shades", Func: variantCmd(palette.Shade), Doc: "generates shades of the given color"},
		{Name: "material", Func: materialCmd, Doc: "generates a Material palette for the given color"},
		{Name: "artistic", Func: artisticCmd, Doc: "generates an artistic palette of tints, tones, and shades for the given color"},
		{Name: "contrast", Func: contrastCmd, Doc: "prints the contrast ratio of the given colors against --background"},
		{Name: "filter", Func: filterCmd, Doc: "prints the given colors that have enough contrast against --background"},
		{Name: "vision", Func: visionCmd, Doc: "simulates a color vision deficiency on the given colors or --image"},
		{Name: "illuminant", Func: illuminantCmd, Doc: "simulates an illuminant on the given colors or --image"},
		{Name: "sensitivity", Func: sensitivityCmd, Doc: "simulates reduced contrast sensitivity on the given colors or --image"},
		{Name: "stylesheet", Func: stylesheetCmd, Doc: "converts the colors in the given CSS file to the format given by --to"},
		{Name: "export", Func: exportCmd, Doc: "exports the given colors as a palette in the format given by --export"},
		{Name: "script", Func: scriptCmd, Doc: "runs the commands in the given files, one per line"},
	}
	for _, c := range cmds {
		fun := c.Func
		c.Func = func(cfg *Config, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			return fun(cfg, args)
		}
	}
	return cmds
}
