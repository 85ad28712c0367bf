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
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestNonStringValuesAreEncoded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value attribute.KeyValue
		want  string
	}{
		{"int", attribute.Int("host.id", 123), "123"},
		{"float", attribute.Float64("host.id", 123.4), "123.4"},
		{"bool", attribute.Bool("host.id", true), "true"},
		{"int slice", attribute.IntSlice("host.id", []int{1, 2, 3, 4}), "[1,2,3,4]"},
		{"float slice", attribute.Float64Slice("host.id", []float64{1.1, 2.2, 3.3, 4.4}), "[1.1,2.2,3.3,4.4]"},
		{"string slice", attribute.StringSlice("host.id", []string{"a", "b", "c", "d"}), `["a","b","c","d"]`},
		{"bool slice", attribute.BoolSlice("host.id", []bool{true, false}), "[true,false]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResourceAttributesToMonitoredResource(set(tt.value))
			if got.Labels["node_id"] != tt.want {
				t.Fatalf("node_id = %q, want %q", got.Labels["node_id"], tt.want)
			}
		})
	}
}

func TestEncodeValueLargeFloatAvoidsExponent(t *testing.T) {
	t.Parallel()

	if got := encodeValue(attribute.Float64Value(1e21)); got != "1000000000000000000000" {
		t.Fatalf("encodeValue(1e21) = %q, want %q", got, "1000000000000000000000")
	}
}

func TestEncodeValueSlicesStayLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value attribute.Value
		want  string
	}{
		{"html characters", attribute.StringSliceValue([]string{"a<b", "c&d", "e>f"}), `["a<b","c&d","e>f"]`},
		{"quotes escaped", attribute.StringSliceValue([]string{`say "hi"`}), `["say \"hi\""]`},
		{"large float element", attribute.Float64SliceValue([]float64{1.1, 1e21}), "[1.1,1000000000000000000000]"},
		{"empty float slice", attribute.Float64SliceValue(nil), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := encodeValue(tt.value); got != tt.want {
				t.Fatalf("encodeValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
