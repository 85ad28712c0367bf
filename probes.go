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
	"strings"

	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/pjscruggs/gcpresource/internal/jsonpath"
)

// Attribute keys emitted by the probes that have no semantic-convention
// constant.
const (
	CloudZoneKey       = attribute.Key("cloud.zone")
	GCPResourceTypeKey = attribute.Key("gcp.resource_type")
)

// probeFunc inspects the metadata document and environment for one platform.
// A *MissingFieldError means the platform does not apply.
type probeFunc func(md jsonpath.Value, env probeEnv) ([]attribute.KeyValue, error)

type probe struct {
	platform string
	detect   probeFunc
}

// platformProbes is ordered from most to least specialized. GKE nodes are
// also Compute Engine instances, so GCE must come last.
var platformProbes = []probe{
	{platform: "gke", detect: detectGKE},
	{platform: "cloud_run", detect: detectCloudRun},
	{platform: "cloud_functions", detect: detectCloudFunctions},
	{platform: "gce", detect: detectGCE},
}

// commonAttributes returns the account and provider attributes shared by
// every Google Cloud platform. It requires project.projectId and
// instance.zone.
func commonAttributes(md jsonpath.Value) ([]attribute.KeyValue, error) {
	projectID, err := requireString(md, "project", "projectId")
	if err != nil {
		return nil, err
	}
	if _, err := requireString(md, "instance", "zone"); err != nil {
		return nil, err
	}
	return []attribute.KeyValue{
		semconv.CloudAccountID(projectID),
		semconv.CloudProviderGCP,
	}, nil
}

// requireString looks up a string leaf or reports which path was missing.
func requireString(md jsonpath.Value, keys ...string) (string, error) {
	v, ok := md.Get(keys...).AsString()
	if !ok {
		return "", &MissingFieldError{Field: strings.Join(keys, ".")}
	}
	return v, nil
}
