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

// Package jsonpath walks JSON-like value trees by a sequence of keys.
package jsonpath

import (
	"errors"
	"math"
	"strconv"
)

// Tree is a node in a JSON-like document. Objects answer Field, sequences
// answer Index; every other node answers neither.
type Tree[T any] interface {
	Field(name string) (T, bool)
	Index(i int) (T, bool)
}

// Lookup follows keys from root and returns the node found at the end of the
// path. A key that parses as a non-negative integer indexes a sequence; any
// other key selects an object field. If any step is missing or the node has
// the wrong shape, def is returned. An empty key list returns root.
func Lookup[T Tree[T]](root T, keys []string, def T) T {
	if len(keys) == 0 {
		return root
	}

	var (
		next T
		ok   bool
	)
	switch idx, err := strconv.ParseUint(keys[0], 10, 64); {
	case err == nil && idx <= math.MaxInt:
		next, ok = root.Index(int(idx))
	case err == nil, errors.Is(err, strconv.ErrRange):
		// A numeric key too large for any sequence.
		return def
	default:
		next, ok = root.Field(keys[0])
	}
	if !ok {
		return def
	}
	return Lookup(next, keys[1:], def)
}
