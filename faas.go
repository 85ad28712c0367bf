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
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/pjscruggs/gcpresource/internal/jsonpath"
)

// detectCloudRun recognises a Cloud Run service, gated on K_CONFIGURATION.
func detectCloudRun(md jsonpath.Value, env probeEnv) ([]attribute.KeyValue, error) {
	return detectServerless(md, env, "K_CONFIGURATION", semconv.CloudPlatformGCPCloudRun, "cloud_run")
}

// detectCloudFunctions recognises a Cloud Function, gated on FUNCTION_TARGET.
func detectCloudFunctions(md jsonpath.Value, env probeEnv) ([]attribute.KeyValue, error) {
	return detectServerless(md, env, "FUNCTION_TARGET", semconv.CloudPlatformGCPCloudFunctions, "cloud_functions")
}

// detectServerless holds the logic shared by Cloud Run and Cloud Functions,
// which expose the same metadata and Knative-style variables.
func detectServerless(md jsonpath.Value, env probeEnv, gate string, platform attribute.KeyValue, resourceType string) ([]attribute.KeyValue, error) {
	if _, ok := env.LookupEnv(gate); !ok {
		return nil, &MissingFieldError{Field: "env." + gate}
	}

	attrs, err := commonAttributes(md)
	if err != nil {
		return nil, err
	}

	if name, ok := env.LookupEnv("K_SERVICE"); ok {
		attrs = append(attrs, semconv.FaaSName(name))
	}
	if version, ok := env.LookupEnv("K_REVISION"); ok {
		attrs = append(attrs, semconv.FaaSVersion(version))
	}

	region, err := requireString(md, "instance", "region")
	if err != nil {
		return nil, err
	}
	attrs = append(attrs, semconv.CloudRegion(lastSegment(region)))

	zone, err := requireString(md, "instance", "zone")
	if err != nil {
		return nil, err
	}
	attrs = append(attrs, CloudZoneKey.String(lastSegment(zone)))

	instanceID, err := requireString(md, "instance", "id")
	if err != nil {
		return nil, err
	}
	attrs = append(attrs,
		semconv.FaaSInstance(instanceID),
		platform,
		GCPResourceTypeKey.String(resourceType),
	)
	return attrs, nil
}
