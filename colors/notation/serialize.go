// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package notation

import (
	"fmt"
	"strings"

	"cogentcore.org/tokens/base/num"
)

// Serialize returns the canonical string form of the given tuple in
// its format. Every number is rounded to [num.Precision] significant
// digits and the alpha component is only included when the color is
// not fully opaque. Legacy formats ([RGB], [HSL]) use comma-separated
// syntax with an rgba/hsla prefix for translucent colors; the other
// functional formats use space-separated syntax with slash alpha.
// [Named] tuples without a matching keyword are serialized as [Hex].
func Serialize(t Tuple) string {
	switch t.Format {
	case Named:
		if name, ok := KeywordFor(t.RGBA()); ok {
			return name
		}
		return serializeHex(t)
	case Hex:
		return serializeHex(t)
	}

	ch := t.Channels
	if hi := t.Format.HueIndex(); hi >= 0 {
		ch[hi] = roundHue(ch[hi])
	}
	var sb strings.Builder
	switch t.Format {
	case RGB:
		legacy(&sb, "rgb", t, num.Format(ch[0]), num.Format(ch[1]), num.Format(ch[2]))
	case HSL:
		legacy(&sb, "hsl", t, num.Format(ch[0]), percent(ch[1]), percent(ch[2]))
	case CMYK:
		modern(&sb, "device-cmyk", t, percent(ch[0]), percent(ch[1]), percent(ch[2]), percent(ch[3]))
	case HWB:
		modern(&sb, "hwb", t, num.Format(ch[0]), percent(ch[1]), percent(ch[2]))
	case CIELAB:
		modern(&sb, "lab", t, percent(ch[0]), num.Format(ch[1]), num.Format(ch[2]))
	case CIELCh:
		modern(&sb, "lch", t, percent(ch[0]), num.Format(ch[1]), num.Format(ch[2]))
	case Oklab:
		modern(&sb, "oklab", t, percent(ch[0]), num.Format(ch[1]), num.Format(ch[2]))
	default:
		return fmt.Sprintf("%%!Format(%d)", t.Format)
	}
	return sb.String()
}

func serializeHex(t Tuple) string {
	c := t.RGBA()
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// legacy writes comma-separated functional notation.
func legacy(sb *strings.Builder, name string, t Tuple, channels ...string) {
	sb.WriteString(name)
	if !t.Opaque() {
		sb.WriteByte('a')
	}
	sb.WriteByte('(')
	sb.WriteString(strings.Join(channels, ", "))
	if !t.Opaque() {
		sb.WriteString(", ")
		sb.WriteString(num.Format(t.Alpha))
	}
	sb.WriteByte(')')
}

// modern writes space-separated functional notation.
func modern(sb *strings.Builder, name string, t Tuple, channels ...string) {
	sb.WriteString(name)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(channels, " "))
	if !t.Opaque() {
		sb.WriteString(" / ")
		sb.WriteString(num.Format(t.Alpha))
	}
	sb.WriteByte(')')
}

func percent(v float64) string {
	return num.Format(v) + "%"
}

// roundHue wraps and rounds the given hue, folding values that round
// up to a full turn back to 0.
func roundHue(h float64) float64 {
	h = num.RoundSig(num.WrapHue(h), num.Precision)
	if h >= 360 {
		return 0
	}
	return h
}
