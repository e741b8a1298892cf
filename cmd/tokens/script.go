// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/tokens/cli"
	"github.com/jinzhu/copier"
	"github.com/mattn/go-shellwords"
)

func scriptCmd(cfg *Config, args []string) error {
	if len(args) == 0 {
		return errors.New("no script files given")
	}
	for _, file := range args {
		if err := runScript(cfg, file); err != nil {
			return err
		}
	}
	return nil
}

// runScript runs each line of the given file as a command, with flags
// that apply on top of the given config for that line only. Blank
// lines and lines starting with # are skipped. Arguments are split
// like a shell does, so functional colors need to be quoted.
func runScript(cfg *Config, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runLine(cfg, line); err != nil {
			return fmt.Errorf("%s:%d: %w", file, ln, err)
		}
	}
	return sc.Err()
}

// runLine runs the given script line on a copy of the given config.
func runLine(cfg *Config, line string) error {
	words, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	var c Config
	if err := copier.CopyWithOption(&c, cfg, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	args, err := cli.SetFromArgs(options, &c, words)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("no command given")
	}
	if args[0] == "script" {
		return errors.New("scripts cannot run other scripts")
	}
	slog.Debug("running script line", "line", line)
	return cli.RunCmd(&c, args[0], args[1:], commands()...)
}
