// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// readImage reads the image in the given file.
func readImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	if !filetype.IsImage(head[:n]) {
		return nil, fmt.Errorf("%s is not an image", file)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	slog.Debug("read image", "file", file, "format", format, "size", img.Bounds().Size())
	return img, nil
}

// writeImage writes the given image to the given file, in the
// format given by its extension (png if it is unknown).
func writeImage(img image.Image, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	case ".gif":
		err = gif.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return err
	}
	slog.Info("wrote image", "file", file)
	return f.Close()
}

// imageOutput returns the file that a filtered version of the given
// image is written to: [Config.Output] if it is set, or else the
// image file with the given suffix added to its name.
func imageOutput(cfg *Config, suffix string) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	ext := filepath.Ext(cfg.Image)
	return strings.TrimSuffix(cfg.Image, ext) + "-" + suffix + ".png"
}

// filterImage applies the given function to the image given
// by [Config.Image] and writes the result.
func filterImage(cfg *Config, suffix string, fun func(img image.Image) image.Image) error {
	img, err := readImage(cfg.Image)
	if err != nil {
		return err
	}
	return writeImage(fun(img), imageOutput(cfg, suffix))
}
