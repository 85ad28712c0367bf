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

package gcpresource

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"
)

func TestNewDetectorDefaultsFromEnvironment(t *testing.T) {
	t.Setenv("GCPRESOURCE_METADATA_TIMEOUT_MS", "150")
	t.Setenv("GCPRESOURCE_NAMESPACE_FILE", "/etc/podinfo/namespace")
	t.Setenv("GCPRESOURCE_DISABLE", "")

	det := NewDetector()
	if det.timeout != 150*time.Millisecond {
		t.Fatalf("timeout = %v, want %v", det.timeout, 150*time.Millisecond)
	}
	if det.env.namespaceFile != "/etc/podinfo/namespace" {
		t.Fatalf("namespaceFile = %q, want %q", det.env.namespaceFile, "/etc/podinfo/namespace")
	}
	if det.disabled {
		t.Fatalf("disabled = true, want false")
	}
	if _, ok := det.env.Environment.(OSEnvironment); !ok {
		t.Fatalf("environment = %T, want OSEnvironment", det.env.Environment)
	}
	if det.client == nil {
		t.Fatalf("default metadata client not created")
	}
}

func TestOptionsOverrideEnvironment(t *testing.T) {
	t.Setenv("GCPRESOURCE_METADATA_TIMEOUT_MS", "150")
	t.Setenv("GCPRESOURCE_NAMESPACE_FILE", "/etc/podinfo/namespace")
	t.Setenv("GCPRESOURCE_DISABLE", "true")

	logger := slog.New(slog.DiscardHandler)
	client := &stubMetadataClient{}
	env := MapEnvironment{}

	det := NewDetector(
		WithTimeout(3*time.Second),
		WithNamespaceFile("/custom/ns"),
		WithDisabled(false),
		WithLogger(logger),
		WithMetadataClient(client),
		WithEnvironment(env),
		WithTracerProvider(noop.NewTracerProvider()),
		nil,
	)

	if det.timeout != 3*time.Second {
		t.Fatalf("timeout = %v, want %v", det.timeout, 3*time.Second)
	}
	if det.env.namespaceFile != "/custom/ns" {
		t.Fatalf("namespaceFile = %q, want %q", det.env.namespaceFile, "/custom/ns")
	}
	if det.disabled {
		t.Fatalf("disabled = true, want false")
	}
	if det.logger != logger {
		t.Fatalf("logger option not applied")
	}
	if det.client != client {
		t.Fatalf("metadata client option not applied")
	}
}

func TestWithTimeoutIgnoresNonPositive(t *testing.T) {
	t.Setenv("GCPRESOURCE_METADATA_TIMEOUT_MS", "")

	det := NewDetector(WithTimeout(0), WithTimeout(-time.Second), WithDisabled(true))
	if det.timeout != 2*time.Second {
		t.Fatalf("timeout = %v, want default %v", det.timeout, 2*time.Second)
	}
}

func TestWithLoggerNilSilences(t *testing.T) {
	det := NewDetector(WithLogger(nil), WithDisabled(true))
	if det.logger == nil {
		t.Fatalf("logger = nil, want discard logger")
	}
	if det.logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatalf("nil logger option produced an enabled logger")
	}
}

func TestWithHTTPClientBuildsMetadataClient(t *testing.T) {
	det := NewDetector(WithHTTPClient(&http.Client{Timeout: time.Second}), WithDisabled(true))
	if det.client == nil {
		t.Fatalf("metadata client not created from HTTP client")
	}
}
