// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"fmt"

	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GPLExporter is an [Exporter] that writes a palette as a GIMP
// palette file. Values are converted to 8-bit RGB, dropping alpha,
// and entry names are title cased.
type GPLExporter struct {

	// Columns is the number of columns that GIMP displays the
	// palette in; 0 lets GIMP decide.
	Columns int

	// Language is the language used for title casing names;
	// English if unset.
	Language language.Tag
}

func (g *GPLExporter) Export(name string, p *Palette) ([]byte, error) {
	lang := g.Language
	if lang == language.Und {
		lang = language.English
	}
	title := cases.Title(lang)
	var b bytes.Buffer
	b.WriteString("GIMP Palette\n")
	fmt.Fprintf(&b, "Name: %s\n", title.String(name))
	fmt.Fprintf(&b, "Columns: %d\n#\n", max(g.Columns, 0))
	for key, c := range p.All() {
		t, err := notation.ParseColor(c)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", key, err)
		}
		rgb := convert.Tuple(notation.RGB, t).RGBA()
		fmt.Fprintf(&b, "%3d %3d %3d\t%s\n", rgb.R, rgb.G, rgb.B, title.String(key))
	}
	return b.Bytes(), nil
}
