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

// detectGCE recognises a Compute Engine VM. It has no environment gate and
// is the last probe tried.
//
// See https://cloud.google.com/compute/docs/storing-retrieving-metadata
func detectGCE(md jsonpath.Value, _ probeEnv) ([]attribute.KeyValue, error) {
	attrs, err := commonAttributes(md)
	if err != nil {
		return nil, err
	}

	hostID, err := requireString(md, "instance", "id")
	if err != nil {
		return nil, err
	}
	machineType, err := requireString(md, "instance", "machineType")
	if err != nil {
		return nil, err
	}
	zone, err := requireString(md, "instance", "zone")
	if err != nil {
		return nil, err
	}
	hostName, err := requireString(md, "instance", "name")
	if err != nil {
		return nil, err
	}

	zr := parseZone(zone)
	attrs = append(attrs,
		semconv.CloudPlatformGCPComputeEngine,
		semconv.CloudAvailabilityZone(zr.zone),
		semconv.CloudRegion(zr.region),
		semconv.HostType(machineType),
		semconv.HostID(hostID),
		semconv.HostName(hostName),
	)
	return attrs, nil
}
