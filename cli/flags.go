// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
)

// AddFlags adds a flag to the given flag set for each exported field
// of the given config object, which must be a pointer to a struct.
// The name of a flag is the kebab-case field name, or the value of the
// `flag:` tag of the field if it has one; a `flag:"-"` tag skips the field.
// The fields of struct fields are added as well, prefixed with the
// `flag:` tag of the struct field if it has one. The `desc:` tag of a
// field is used as its usage text.
func AddFlags(fs *pflag.FlagSet, cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("AddFlags: expected a pointer to a struct, not %T", cfg)
	}
	return addFlags(fs, v.Elem(), "")
}

func addFlags(fs *pflag.FlagSet, v reflect.Value, prefix string) error {
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, hasTag := f.Tag.Lookup("flag")
		if tag == "-" {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Struct && !isText(fv) {
			sub := prefix
			if hasTag {
				sub = join(prefix, tag)
			}
			if err := addFlags(fs, fv, sub); err != nil {
				return err
			}
			continue
		}
		name := kebab(f.Name)
		if hasTag {
			name = tag
		}
		name = join(prefix, name)
		if fs.Lookup(name) != nil {
			return fmt.Errorf("AddFlags: duplicate flag %q for field %s", name, f.Name)
		}
		usage := f.Tag.Get("desc")
		// one-letter names are also usable as -x
		short := ""
		if len(name) == 1 && fs.ShorthandLookup(name) == nil {
			short = name
		}
		ptr := fv.Addr().Interface()
		if tv, ok := ptr.(encoding.TextUnmarshaler); ok {
			fs.VarP(&textValue{tv}, name, short, usage)
			continue
		}
		switch p := ptr.(type) {
		case *string:
			fs.StringVarP(p, name, short, *p, usage)
		case *bool:
			fs.BoolVarP(p, name, short, *p, usage)
		case *int:
			fs.IntVarP(p, name, short, *p, usage)
		case *float64:
			fs.Float64VarP(p, name, short, *p, usage)
		case *[]string:
			fs.StringSliceVarP(p, name, short, *p, usage)
		default:
			return fmt.Errorf("AddFlags: unsupported type %T for field %s", ptr, f.Name)
		}
	}
	return nil
}

// textValue is a [pflag.Value] for a value that can be set from text,
// such as an enum.
type textValue struct {
	encoding.TextUnmarshaler
}

func (t *textValue) String() string {
	if s, ok := t.TextUnmarshaler.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

func (t *textValue) Set(s string) error {
	return t.UnmarshalText([]byte(s))
}

func (t *textValue) Type() string {
	return "string"
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}

// kebab converts the given CamelCase name to kebab-case.
func kebab(name string) string {
	var sb strings.Builder
	rs := []rune(name)
	for i, r := range rs {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(rs[i-1]) || (i+1 < len(rs) && unicode.IsLower(rs[i+1]) && unicode.IsUpper(rs[i-1]))) {
				sb.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
