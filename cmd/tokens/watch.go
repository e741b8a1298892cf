// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls the given function whenever the given file is written,
// until the process is interrupted. Errors from the function are
// logged and do not stop watching.
func watch(file string, fun func() error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchContext(ctx, file, fun)
}

// watchContext is like [watch], but stops when the context is done.
func watchContext(ctx context.Context, file string, fun func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace files, so the directory is watched
	if err := w.Add(filepath.Dir(file)); err != nil {
		return err
	}
	name := filepath.Clean(file)
	slog.Info("watching for changes", "file", file)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Debug("file changed", "file", ev.Name, "op", ev.Op)
			if err := fun(); err != nil {
				slog.Error("error handling change", "file", file, "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("error watching file", "file", file, "err", err)
		}
	}
}
