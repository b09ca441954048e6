// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shelter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/someonegg/petmatch"
	"gopkg.in/yaml.v3"
)

// Load reads a dataset file, YAML for .yaml/.yml and JSON otherwise.
func Load(file string) (*Dataset, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

func DecodeJSON(data []byte) (*Dataset, error) {
	var ds Dataset

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

func DecodeYAML(data []byte) (*Dataset, error) {
	var ds Dataset

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

func (l *SpeciesList) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch v := v.(type) {
	case nil:
		*l = nil
	case string:
		*l = SpeciesList{v}
	case []interface{}:
		ss := make(SpeciesList, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return petmatch.Invalid("species list", fmt.Sprintf("item %d must be a string, got %v", i, item))
			}
			ss[i] = s
		}
		*l = ss
	default:
		return petmatch.Invalid("species list", fmt.Sprintf("must be a string or a list of strings, got %v", v))
	}
	return nil
}

func (l *SpeciesList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() != "!!str" {
			return petmatch.Invalid("species list", fmt.Sprintf("line %d: must be a string or a list of strings", value.Line))
		}
		*l = SpeciesList{value.Value}
	case yaml.SequenceNode:
		ss := make(SpeciesList, len(value.Content))
		for i, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				return petmatch.Invalid("species list", fmt.Sprintf("line %d: item %d must be a string", item.Line, i))
			}
			ss[i] = item.Value
		}
		*l = ss
	default:
		return petmatch.Invalid("species list", fmt.Sprintf("line %d: must be a string or a list of strings", value.Line))
	}
	return nil
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var v []interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return petmatch.Invalid("location", "must be a list of 2 numbers")
	}
	if len(v) != 2 {
		return petmatch.Invalid("location", fmt.Sprintf("must be 2 items long, got %d", len(v)))
	}
	for i, item := range v {
		f, ok := item.(float64)
		if !ok {
			return petmatch.Invalid("location", fmt.Sprintf("item %d must be a number, got %v", i, item))
		}
		p[i] = f
	}
	return nil
}

func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return petmatch.Invalid("location", fmt.Sprintf("line %d: must be a list of 2 numbers", value.Line))
	}
	if len(value.Content) != 2 {
		return petmatch.Invalid("location", fmt.Sprintf("line %d: must be 2 items long, got %d", value.Line, len(value.Content)))
	}
	for i, item := range value.Content {
		if tag := item.ShortTag(); tag != "!!int" && tag != "!!float" {
			return petmatch.Invalid("location", fmt.Sprintf("line %d: item %d must be a number", item.Line, i))
		}
		if err := item.Decode(&p[i]); err != nil {
			return err
		}
	}
	return nil
}

// MarshalYAML keeps points on one line, [x, y].
func (p Point) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, f := range p {
		var item yaml.Node
		if err := item.Encode(f); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &item)
	}
	return node, nil
}
