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

package resourcemapping

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/attribute"
)

// Labels are not embedded in HTML, so '<', '>' and '&' stay literal.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// encodeValue renders an attribute value as a label string. Strings pass
// through; scalars use their shortest decimal form; slices become compact
// JSON arrays.
func encodeValue(v attribute.Value) string {
	switch v.Type() {
	case attribute.STRING:
		return v.AsString()
	case attribute.BOOL:
		return strconv.FormatBool(v.AsBool())
	case attribute.INT64:
		return strconv.FormatInt(v.AsInt64(), 10)
	case attribute.FLOAT64:
		return formatFloat(v.AsFloat64())
	case attribute.STRINGSLICE:
		return marshalSlice(v.AsStringSlice(), v)
	case attribute.BOOLSLICE:
		return marshalSlice(v.AsBoolSlice(), v)
	case attribute.INT64SLICE:
		return marshalSlice(v.AsInt64Slice(), v)
	case attribute.FLOAT64SLICE:
		return formatFloatSlice(v.AsFloat64Slice())
	default:
		return v.Emit()
	}
}

func marshalSlice(s any, v attribute.Value) string {
	b, err := json.Marshal(s)
	if err != nil {
		return v.Emit()
	}
	return string(b)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatFloatSlice keeps elements in the same notation as scalar floats,
// which jsoniter would switch to exponent form for large magnitudes.
func formatFloatSlice(fs []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range fs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatFloat(f))
	}
	b.WriteByte(']')
	return b.String()
}
