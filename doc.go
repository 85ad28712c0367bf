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

// Package gcpresource detects the Google Cloud environment a process runs in
// and describes it as OpenTelemetry resource attributes.
//
// Detection fetches the metadata server's recursive document once and tries
// the platform probes from most to least specific: Google Kubernetes Engine,
// Cloud Run, Cloud Functions and finally Compute Engine. The first probe
// whose required fields are all present wins. When the metadata server is
// unreachable or nothing matches, detection logs a warning and yields an
// empty attribute set; it never fails the caller.
//
// # Quick Start
//
// The package-level helpers share one process-wide Detector:
//
//	attrs := gcpresource.DetectAttributes(ctx)
//	mr := gcpresource.MonitoredResource(ctx) // e.g. k8s_container with labels
//
// To feed the OpenTelemetry SDK, use the resource detector adapter:
//
//	res, err := resource.New(ctx,
//	    resource.WithDetectors(gcpresource.NewResourceDetector()),
//	)
//
// # Configuration
//
// Environment variables provide the base configuration:
// GCPRESOURCE_METADATA_TIMEOUT_MS, GCPRESOURCE_DISABLE,
// GCPRESOURCE_NAMESPACE_FILE and GCPRESOURCE_LOG_LEVEL (the last one is read
// by the command-line tool). GCE_METADATA_HOST redirects metadata requests.
// Functional options such as [WithTimeout], [WithLogger] and
// [WithMetadataClient] override them.
//
// The [github.com/pjscruggs/gcpresource/resourcemapping] subpackage converts
// any attribute set into a Cloud Monitoring monitored resource.
package gcpresource
