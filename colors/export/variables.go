// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"fmt"
)

// Variables is an [Exporter] that writes a palette as stylesheet
// variables in one of the [CSS], [Sass], [Less], or [Stylus] syntaxes.
type Variables struct {

	// Syntax is the stylesheet language of the variables.
	Syntax Format

	// Selector is the selector that CSS custom properties are
	// declared on.
	Selector string `default:":root"`
}

func (v *Variables) Export(name string, p *Palette) ([]byte, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if v.Syntax == CSS {
		sel := v.Selector
		if sel == "" {
			sel = ":root"
		}
		fmt.Fprintf(&b, "%s {\n", sel)
	}
	for key, c := range p.All() {
		vr := variable(name, key)
		switch v.Syntax {
		case CSS:
			fmt.Fprintf(&b, "  --%s: %s;\n", vr, c)
		case Sass:
			fmt.Fprintf(&b, "$%s: %s;\n", vr, c)
		case Less:
			fmt.Fprintf(&b, "@%s: %s;\n", vr, c)
		case Stylus:
			fmt.Fprintf(&b, "%s = %s\n", vr, c)
		default:
			return nil, fmt.Errorf("export: %v is not a stylesheet syntax", v.Syntax)
		}
	}
	if v.Syntax == CSS {
		b.WriteString("}\n")
	}
	return b.Bytes(), nil
}
