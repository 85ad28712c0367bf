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

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// resourceDetector adapts a Detector to resource.Detector.
type resourceDetector struct {
	d *Detector
}

var _ resource.Detector = resourceDetector{}

// NewResourceDetector returns an OpenTelemetry SDK resource detector backed
// by a new Detector built from opts. Pass it to resource.New with
// resource.WithDetectors.
func NewResourceDetector(opts ...Option) resource.Detector {
	return resourceDetector{d: NewDetector(opts...)}
}

// ResourceDetector exposes d as an OpenTelemetry SDK resource detector that
// shares d's memoised result.
func (d *Detector) ResourceDetector() resource.Detector {
	return resourceDetector{d: d}
}

// Detect implements resource.Detector. Detection failures are not reported
// as errors; an empty resource is returned instead.
func (r resourceDetector) Detect(ctx context.Context) (*resource.Resource, error) {
	attrs := r.d.Detect(ctx)
	if attrs.Len() == 0 {
		return resource.Empty(), nil
	}
	return resource.NewWithAttributes(semconv.SchemaURL, attrs.ToSlice()...), nil
}
