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

package gcp

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{envMetadataTimeoutMS, envDisable, envNamespaceFile, envLogLevel} {
		t.Setenv(key, "")
	}

	got := LoadConfig()
	want := Config{
		MetadataTimeout: DefaultMetadataTimeout,
		NamespaceFile:   DefaultNamespaceFile,
		LogLevel:        slog.LevelWarn,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv(envMetadataTimeoutMS, "750")
	t.Setenv(envDisable, "yes")
	t.Setenv(envNamespaceFile, " /tmp/ns ")
	t.Setenv(envLogLevel, "debug")

	got := LoadConfig()
	want := Config{
		MetadataTimeout: 750 * time.Millisecond,
		Disabled:        true,
		NamespaceFile:   "/tmp/ns",
		LogLevel:        slog.LevelDebug,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv(envMetadataTimeoutMS, "0")
	t.Setenv(envDisable, "maybe")
	t.Setenv(envNamespaceFile, "   ")
	t.Setenv(envLogLevel, "verbose")

	got := LoadConfig()
	if got.MetadataTimeout != DefaultMetadataTimeout {
		t.Fatalf("MetadataTimeout = %v, want %v", got.MetadataTimeout, DefaultMetadataTimeout)
	}
	if got.Disabled {
		t.Fatalf("Disabled = true, want false")
	}
	if got.NamespaceFile != DefaultNamespaceFile {
		t.Fatalf("NamespaceFile = %q, want %q", got.NamespaceFile, DefaultNamespaceFile)
	}
	if got.LogLevel != slog.LevelWarn {
		t.Fatalf("LogLevel = %v, want %v", got.LogLevel, slog.LevelWarn)
	}
}

// TestParseLevelEnv verifies the logic for parsing level strings with fallback.
func TestParseLevelEnv(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want slog.Level
	}{
		{"Empty string uses default", "", slog.LevelWarn},
		{"Whitespace uses default", "  ", slog.LevelWarn},
		{"Debug lowercase", "debug", slog.LevelDebug},
		{"Info mixed case", "Info", slog.LevelInfo},
		{"Warning alias", "warning", slog.LevelWarn},
		{"Error uppercase", "ERROR", slog.LevelError},
		{"Numeric level", "-4", slog.Level(-4)},
		{"Invalid uses default", "verbose", slog.LevelWarn},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseLevelEnv(tc.in, slog.LevelWarn); got != tc.want {
				t.Fatalf("parseLevelEnv(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseBoolEnv(t *testing.T) {
	testCases := []struct {
		in   string
		def  bool
		want bool
	}{
		{"", true, true},
		{"true", false, true},
		{"ON", false, true},
		{"0", true, false},
		{"no", true, false},
		{"sometimes", true, true},
	}
	for _, tc := range testCases {
		if got := parseBoolEnv(tc.in, tc.def); got != tc.want {
			t.Fatalf("parseBoolEnv(%q, %v) = %v, want %v", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestParseDurationPtrEnvMS(t *testing.T) {
	if got := parseDurationPtrEnvMS(""); got != nil {
		t.Fatalf("parseDurationPtrEnvMS(\"\") = %v, want nil", *got)
	}
	if got := parseDurationPtrEnvMS("-5"); got != nil {
		t.Fatalf("parseDurationPtrEnvMS(\"-5\") = %v, want nil", *got)
	}
	if got := parseDurationPtrEnvMS("abc"); got != nil {
		t.Fatalf("parseDurationPtrEnvMS(\"abc\") = %v, want nil", *got)
	}
	got := parseDurationPtrEnvMS(" 250 ")
	if got == nil || *got != 250*time.Millisecond {
		t.Fatalf("parseDurationPtrEnvMS(\" 250 \") = %v, want 250ms", got)
	}
}
