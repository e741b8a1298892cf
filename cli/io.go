// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given config object from the given TOML file.
// A leading ~ in the file name is expanded to the home directory.
func Open(cfg any, file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("error reading config file %q: %w", path, err)
	}
	return nil
}

// OpenFiles reads the given config object from each of the given
// TOML files in order, so that later files override earlier ones.
// Files that do not exist are skipped.
func OpenFiles(cfg any, files ...string) error {
	for _, file := range files {
		err := Open(cfg, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}
		slog.Debug("read config file", "file", file)
	}
	return nil
}

// Save writes the given config object to the given TOML file.
func Save(cfg any, file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0666)
}
