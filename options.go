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
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/pjscruggs/gcpresource/internal/gcp"
)

// MetadataClient fetches raw values from the metadata server. It is an
// alias for the internal gcp.MetadataClient type and is satisfied by
// *metadata.Client from cloud.google.com/go/compute/metadata.
type MetadataClient = gcp.MetadataClient

// Option configures a Detector during construction via NewDetector.
// Options are applied sequentially and override settings derived from
// environment variables.
type Option func(*options)

// options holds the configurable settings for a Detector. Fields are pointers
// or interfaces so an unset option can fall back to environment variables or
// defaults.
type options struct {
	logger         *slog.Logger
	timeout        *time.Duration
	metadataClient MetadataClient
	httpClient     *http.Client
	env            Environment
	namespaceFile  *string
	disabled       *bool
	tracerProvider trace.TracerProvider
}

// WithLogger sets the logger used for detection diagnostics. The default is
// slog.Default(). A nil logger silences diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}

// WithTimeout bounds the metadata fetch. It overrides
// GCPRESOURCE_METADATA_TIMEOUT_MS. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d <= 0 {
			return
		}
		o.timeout = &d
	}
}

// WithMetadataClient supplies the client used to fetch the metadata
// document, replacing the default instrumented client.
func WithMetadataClient(client MetadataClient) Option {
	return func(o *options) {
		o.metadataClient = client
	}
}

// WithHTTPClient sets the HTTP client underneath the default metadata client.
// Its transport is wrapped for tracing. Ignored when WithMetadataClient is
// also supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithEnvironment replaces the process environment consulted by the probes.
func WithEnvironment(env Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithNamespaceFile overrides the path of the Kubernetes service-account
// namespace file. It takes precedence over GCPRESOURCE_NAMESPACE_FILE.
func WithNamespaceFile(path string) Option {
	return func(o *options) {
		p := path
		o.namespaceFile = &p
	}
}

// WithDisabled turns detection off, so Detect returns the empty set without
// touching the network. It overrides GCPRESOURCE_DISABLE.
func WithDisabled(disabled bool) Option {
	return func(o *options) {
		d := disabled
		o.disabled = &d
	}
}

// WithTracerProvider sets the provider used for the detection span and the
// metadata HTTP client spans. The default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}
