// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// JSONExporter is an [Exporter] that writes a palette as a JSON
// object with the palette name as its only key, mapping to an
// object of the entries in palette order.
type JSONExporter struct {

	// Indent is the indentation of each level; no indentation
	// gives compact output.
	Indent string
}

func (j *JSONExporter) Export(name string, p *Palette) ([]byte, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.WriteByte('{')
	if err := writeJSONString(&b, name); err != nil {
		return nil, err
	}
	b.WriteString(":{")
	i := 0
	for key, c := range p.All() {
		if i > 0 {
			b.WriteByte(',')
		}
		i++
		if err := writeJSONString(&b, key); err != nil {
			return nil, err
		}
		b.WriteByte(':')
		if err := writeJSONString(&b, c); err != nil {
			return nil, err
		}
	}
	b.WriteString("}}")
	if j.Indent == "" {
		b.WriteByte('\n')
		return b.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b.Bytes(), "", j.Indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSONString(b *bytes.Buffer, s string) error {
	bs, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(bs)
	return nil
}

// YAMLExporter is an [Exporter] that writes a palette as a YAML
// mapping with the palette name as its only key, mapping to the
// entries in palette order.
type YAMLExporter struct {

	// Indent is the number of spaces of indentation of each level.
	Indent int `default:"2"`
}

func (y *YAMLExporter) Export(name string, p *Palette) ([]byte, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	entries := &yaml.Node{Kind: yaml.MappingNode}
	for key, c := range p.All() {
		entries.Content = append(entries.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c})
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
		entries,
	}}
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(max(y.Indent, 1))
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// TOMLExporter is an [Exporter] that writes a palette as a TOML
// table named after the palette. Keys within a TOML table are
// unordered, so entries are written in sorted key order.
type TOMLExporter struct{}

func (t *TOMLExporter) Export(name string, p *Palette) ([]byte, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	entries := make(map[string]string, p.Len())
	for key, c := range p.All() {
		entries[key] = c
	}
	return toml.Marshal(map[string]map[string]string{name: entries})
}
