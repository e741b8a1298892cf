// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf))
	logger.Debug("hidden")
	logger.With("color", "#fff").WithGroup("convert").Info("converted", "to", "hsl")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "converted")
	assert.Contains(t, out, " color=#fff")
	assert.Contains(t, out, "convert.to=hsl")
}
