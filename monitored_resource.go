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

	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/pjscruggs/gcpresource/resourcemapping"
)

// MonitoredResource maps the detected attributes to a monitored-resource
// descriptor.
func (d *Detector) MonitoredResource(ctx context.Context) *resourcemapping.MonitoredResource {
	attrs := d.Detect(ctx)
	return resourcemapping.ResourceAttributesToMonitoredResource(&attrs)
}

// MonitoredResource detects the process-wide attributes and maps them to a
// monitored-resource descriptor.
func MonitoredResource(ctx context.Context) *resourcemapping.MonitoredResource {
	return DefaultDetector().MonitoredResource(ctx)
}

// MonitoredResourceProto is MonitoredResource in the protobuf form accepted
// by the Cloud Logging and Cloud Monitoring clients.
func MonitoredResourceProto(ctx context.Context) *mrpb.MonitoredResource {
	return MonitoredResource(ctx).Proto()
}
