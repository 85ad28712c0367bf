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
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pjscruggs/gcpresource/internal/gcp"
)

const instrumentationName = "github.com/pjscruggs/gcpresource"

// Detection is the memoised outcome of a Detector run.
type Detection struct {
	// Attributes is the detected attribute set, empty when nothing matched.
	Attributes attribute.Set
	// Platform names the probe that matched: "gke", "cloud_run",
	// "cloud_functions" or "gce". Empty when nothing matched.
	Platform string
	// Err explains an empty result. It wraps ErrFetchFailure, or is
	// ErrNoPlatform or ErrDetectionDisabled.
	Err error
}

// Detector discovers the Google Cloud platform the process runs on. The
// metadata document is fetched at most once per Detector; every later call
// returns the same immutable result. A Detector is safe for concurrent use.
type Detector struct {
	logger   *slog.Logger
	timeout  time.Duration
	client   MetadataClient
	env      probeEnv
	disabled bool
	tracer   trace.Tracer

	once   sync.Once
	result Detection
}

// NewDetector builds a Detector from environment configuration and opts.
func NewDetector(opts ...Option) *Detector {
	cfg := gcp.LoadConfig()

	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	d := &Detector{
		logger:   slog.Default(),
		timeout:  cfg.MetadataTimeout,
		disabled: cfg.Disabled,
		env:      probeEnv{Environment: OSEnvironment{}, namespaceFile: cfg.NamespaceFile},
	}
	if o.logger != nil {
		d.logger = o.logger
	}
	if o.timeout != nil {
		d.timeout = *o.timeout
	}
	if o.disabled != nil {
		d.disabled = *o.disabled
	}
	if o.env != nil {
		d.env.Environment = o.env
	}
	if o.namespaceFile != nil {
		d.env.namespaceFile = *o.namespaceFile
	}

	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	d.tracer = tp.Tracer(instrumentationName, trace.WithInstrumentationVersion(Version))

	d.client = o.metadataClient
	if d.client == nil {
		d.client = gcp.NewMetadataClient(o.httpClient, UserAgent, d.logger, otelhttp.WithTracerProvider(tp))
	}
	return d
}

// Detect returns the detected attribute set. The first call performs
// detection using ctx; concurrent callers wait for it to finish.
func (d *Detector) Detect(ctx context.Context) attribute.Set {
	return d.Detection(ctx).Attributes
}

// Detection returns the full memoised outcome, including the matched
// platform and the reason for an empty result.
func (d *Detector) Detection(ctx context.Context) Detection {
	d.once.Do(func() {
		d.result = d.detect(ctx)
	})
	return d.result
}

// detect fetches the metadata document and runs the probes in order,
// returning the first match.
func (d *Detector) detect(ctx context.Context) Detection {
	if d.disabled {
		logDiagnostic(d.logger, slog.LevelDebug, "gcpresource detection disabled")
		return Detection{Attributes: *attribute.EmptySet(), Err: ErrDetectionDisabled}
	}

	ctx, span := d.tracer.Start(ctx, "gcpresource.Detect", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	fetchCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	md, err := gcp.FetchDocument(fetchCtx, d.client)
	if err != nil {
		logDiagnostic(d.logger, slog.LevelWarn, "failed to fetch GCP metadata document",
			slog.Any("error", err),
			slog.Duration("timeout", d.timeout),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "metadata fetch failed")
		return Detection{Attributes: *attribute.EmptySet(), Err: err}
	}

	for _, p := range platformProbes {
		attrs, err := p.detect(md, d.env)
		if err != nil {
			logDiagnostic(d.logger, slog.LevelDebug, "platform probe did not match",
				slog.String("platform", p.platform),
				slog.Any("error", err),
			)
			continue
		}
		span.SetAttributes(attribute.String("gcpresource.platform", p.platform))
		logDiagnostic(d.logger, slog.LevelDebug, "detected GCP platform",
			slog.String("platform", p.platform),
			slog.Int("attributes", len(attrs)),
		)
		return Detection{Attributes: attribute.NewSet(attrs...), Platform: p.platform}
	}

	logDiagnostic(d.logger, slog.LevelWarn, "no supported GCP platform detected")
	return Detection{Attributes: *attribute.EmptySet(), Err: ErrNoPlatform}
}

var (
	defaultDetector     *Detector
	defaultDetectorOnce sync.Once
)

// DefaultDetector returns the process-wide Detector configured from the
// environment.
func DefaultDetector() *Detector {
	defaultDetectorOnce.Do(func() {
		defaultDetector = NewDetector()
	})
	return defaultDetector
}

// DetectAttributes runs detection once per process and returns the cached
// attribute set on every later call.
func DetectAttributes(ctx context.Context) attribute.Set {
	return DefaultDetector().Detect(ctx)
}

// logDiagnostic emits an internal diagnostic message when a logger is
// configured.
func logDiagnostic(logger *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}
