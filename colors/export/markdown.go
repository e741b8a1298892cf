// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"fmt"
	"strings"

	"cogentcore.org/tokens/colors/a11y"
	"cogentcore.org/tokens/colors/convert"
	"cogentcore.org/tokens/colors/notation"
	"github.com/gomarkdown/markdown"
)

// MarkdownExporter is an [Exporter] that writes a palette as a
// Markdown table under a heading with the palette name.
type MarkdownExporter struct {

	// Swatches is whether to add a column of inline HTML color
	// swatches to the table.
	Swatches bool
}

func (m *MarkdownExporter) Export(name string, p *Palette) ([]byte, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if name != "" {
		fmt.Fprintf(&b, "# %s\n\n", cell(name))
	}
	if m.Swatches {
		b.WriteString("| | Name | Value |\n| --- | --- | --- |\n")
	} else {
		b.WriteString("| Name | Value |\n| --- | --- |\n")
	}
	for key, c := range p.All() {
		b.WriteString("| ")
		if m.Swatches {
			sw, err := swatch(c)
			if err != nil {
				return nil, err
			}
			b.WriteString(sw + " | ")
		}
		fmt.Fprintf(&b, "%s | `%s` |\n", cell(key), cell(c))
	}
	return b.Bytes(), nil
}

// cell escapes the given text for use in a table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// swatch returns an inline HTML swatch of the given color, with
// sample text in whichever of black and white contrasts more with it.
func swatch(c string) (string, error) {
	hex, err := convert.Convert(notation.Hex, c)
	if err != nil {
		return "", err
	}
	text, err := a11y.ContrastColor(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<span style="background: %s; color: %s; padding: 0 1em">Aa</span>`, hex, text), nil
}

// HTMLExporter is an [Exporter] that writes a palette as an HTML
// table with color swatches, rendered from a Markdown table.
type HTMLExporter struct{}

func (h *HTMLExporter) Export(name string, p *Palette) ([]byte, error) {
	md, err := (&MarkdownExporter{Swatches: true}).Export(name, p)
	if err != nil {
		return nil, err
	}
	return markdown.ToHTML(md, nil, nil), nil
}
