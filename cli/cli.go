// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli runs commands on a configuration struct, which is set
// from `default:` struct tags, TOML config files, and command-line flags,
// in that order.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Cmd represents a runnable command with configuration options.
// The type constraint is the type of the configuration
// information passed to the command.
type Cmd[T any] struct {

	// Func is the actual function that runs the command.
	// It takes configuration information and the positional
	// arguments after the command name, and returns an error.
	Func func(cfg T, args []string) error

	// Name is the name of the command.
	Name string

	// Doc is the documentation for the command.
	Doc string
}

// Options contains the options that control the behavior of [Run].
type Options struct {

	// AppName is the name of the app, used in usage text.
	AppName string

	// AppAbout is the description of the app.
	AppAbout string

	// DefaultFiles are the config files that are read, if they
	// exist, before any config file given with the --config flag.
	DefaultFiles []string

	// Stdout is where usage text is written; [os.Stdout] if nil.
	Stdout io.Writer
}

func (o *Options) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

// Config sets the given config object from its `default:` tags, the
// default config files and the file named by the --config flag, and
// finally the flags in the given arguments. It returns the positional
// arguments left after the flags.
func Config[T any](opts *Options, cfg T, args []string) ([]string, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}

	// first pass to get the config file, ignoring everything else
	var file string
	pre := pflag.NewFlagSet(opts.AppName, pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	pre.SetOutput(io.Discard)
	pre.StringVarP(&file, "config", "c", "", "")
	pre.BoolP("help", "h", false, "")
	pre.Parse(args)

	if err := OpenFiles(cfg, opts.DefaultFiles...); err != nil {
		return nil, err
	}
	if file != "" {
		if err := Open(cfg, file); err != nil {
			return nil, err
		}
	}

	return SetFromArgs(opts, cfg, args)
}

// SetFromArgs sets the given config object from only the flags in the
// given arguments, and returns the positional arguments left after them.
func SetFromArgs(opts *Options, cfg any, args []string) ([]string, error) {
	fs, err := flagSet(opts, cfg)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// flagSet returns the full flag set for the given config object.
func flagSet(opts *Options, cfg any) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(opts.AppName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(true)
	fs.StringP("config", "c", "", "the TOML config file to read")
	if err := AddFlags(fs, cfg); err != nil {
		return nil, err
	}
	return fs, nil
}

// Run configures the given config object from the given arguments
// (see [Config]) and runs the command named by the first positional
// argument with the rest of the positional arguments. If there is no
// command or the command is "help", it prints [Usage].
func Run[T any](opts *Options, cfg T, args []string, cmds ...*Cmd[T]) error {
	leftovers, err := Config(opts, cfg, args)
	if err == pflag.ErrHelp || (err == nil && (len(leftovers) == 0 || leftovers[0] == "help")) {
		fmt.Fprintln(opts.stdout(), Usage(opts, cfg, cmds...))
		return nil
	}
	if err != nil {
		return fmt.Errorf("error configuring app: %w", err)
	}
	return RunCmd(cfg, leftovers[0], leftovers[1:], cmds...)
}

// RunCmd runs the command with the given name on the given config
// object with the given positional arguments.
func RunCmd[T any](cfg T, cmd string, args []string, cmds ...*Cmd[T]) error {
	for _, c := range cmds {
		if c.Name == cmd {
			if err := c.Func(cfg, args); err != nil {
				return fmt.Errorf("error running command %q: %w", c.Name, err)
			}
			return nil
		}
	}
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return fmt.Errorf("unknown command %q; the available commands are: %s", cmd, strings.Join(names, ", "))
}

// Usage returns the usage text for the given app,
// listing its commands and flags.
func Usage[T any](opts *Options, cfg T, cmds ...*Cmd[T]) string {
	var b strings.Builder
	if opts.AppAbout != "" {
		b.WriteString(opts.AppAbout + "\n\n")
	}
	fmt.Fprintf(&b, "Usage:\n  %s <command> [arguments] [flags]\n\nCommands:\n", opts.AppName)
	w := 0
	for _, c := range cmds {
		w = max(w, len(c.Name))
	}
	for _, c := range cmds {
		fmt.Fprintf(&b, "  %-*s  %s\n", w, c.Name, c.Doc)
	}
	if fs, err := flagSet(opts, cfg); err == nil {
		b.WriteString("\nFlags:\n")
		b.WriteString(fs.FlagUsages())
	}
	return strings.TrimRight(b.String(), "\n")
}
