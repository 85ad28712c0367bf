// Copyright 2025 Patrick J. Scruggs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonpath

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Value wraps a decoded JSON document (maps, slices, and scalars as produced
// by encoding/json into an any). The zero Value is the missing node.
type Value struct {
	raw     any
	present bool
}

// Missing is the node returned for paths that do not resolve.
var Missing = Value{}

// Of wraps an already-decoded JSON value.
func Of(v any) Value {
	return Value{raw: v, present: true}
}

// Decode reads a single JSON document from r.
func Decode(r io.Reader) (Value, error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Missing, fmt.Errorf("decode json document: %w", err)
	}
	return Of(raw), nil
}

// Parse decodes a JSON document held in memory.
func Parse(data []byte) (Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Missing, fmt.Errorf("parse json document: %w", err)
	}
	return Of(raw), nil
}

// Field implements Tree.
func (v Value) Field(name string) (Value, bool) {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return Missing, false
	}
	child, ok := obj[name]
	if !ok {
		return Missing, false
	}
	return Of(child), true
}

// Index implements Tree.
func (v Value) Index(i int) (Value, bool) {
	seq, ok := v.raw.([]any)
	if !ok || i < 0 || i >= len(seq) {
		return Missing, false
	}
	return Of(seq[i]), true
}

// Get is shorthand for Lookup(v, keys, Missing).
func (v Value) Get(keys ...string) Value {
	return Lookup(v, keys, Missing)
}

// Present reports whether the node exists. A JSON null is present.
func (v Value) Present() bool { return v.present }

// AsString returns the node's value when it is a JSON string.
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// Raw returns the underlying decoded value.
func (v Value) Raw() any { return v.raw }
