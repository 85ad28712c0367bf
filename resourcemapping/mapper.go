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

package resourcemapping

import (
	"maps"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"
)

// ReadOnlyAttributes abstracts the attribute container being mapped.
// *attribute.Set satisfies it, as does the set of an SDK resource.
type ReadOnlyAttributes interface {
	Value(key attribute.Key) (attribute.Value, bool)
}

// MonitoredResource is a monitored-resource type and its labels. All
// declared labels are present; values may be empty. It must not be modified
// after creation.
type MonitoredResource struct {
	Type   string
	Labels map[string]string
}

// Proto converts the descriptor to the protobuf message used by the Cloud
// Logging and Cloud Monitoring APIs.
func (mr *MonitoredResource) Proto() *mrpb.MonitoredResource {
	if mr == nil {
		return nil
	}
	return &mrpb.MonitoredResource{
		Type:   mr.Type,
		Labels: maps.Clone(mr.Labels),
	}
}

// ResourceAttributesToMonitoredResource converts a set of OpenTelemetry
// resource attributes into a monitored-resource type and label set, for
// example a gce_instance with zone and instance_id. It never returns nil;
// attributes that identify no platform produce a generic_node.
func ResourceAttributesToMonitoredResource(attrs ReadOnlyAttributes) *MonitoredResource {
	if attrs == nil {
		attrs = attribute.EmptySet()
	}
	return createMonitoredResource(Classify(attrs), attrs)
}

// Classify picks the monitored-resource type for attrs.
func Classify(attrs ReadOnlyAttributes) ResourceType {
	has := func(k attribute.Key) bool {
		_, ok := attrs.Value(k)
		return ok
	}

	var platform string
	if v, ok := attrs.Value(semconv.CloudPlatformKey); ok && v.Type() == attribute.STRING {
		platform = v.AsString()
	}

	switch platform {
	case semconv.CloudPlatformGCPComputeEngine.Value.AsString():
		return GCEInstance
	case semconv.CloudPlatformGCPKubernetesEngine.Value.AsString():
		// Most to least specific.
		switch {
		case has(semconv.K8SContainerNameKey):
			return K8sContainer
		case has(semconv.K8SPodNameKey):
			return K8sPod
		case has(semconv.K8SNodeNameKey):
			return K8sNode
		default:
			return K8sCluster
		}
	case semconv.CloudPlatformAWSEC2.Value.AsString():
		return AWSEC2Instance
	}

	hasJob := has(semconv.ServiceNameKey) || has(semconv.FaaSNameKey)
	hasTask := has(semconv.ServiceInstanceIDKey) || has(semconv.FaaSInstanceKey)
	if hasJob && hasTask {
		return GenericTask
	}
	return GenericNode
}

func createMonitoredResource(rt ResourceType, attrs ReadOnlyAttributes) *MonitoredResource {
	mappings := monitoredResourceMappings[rt]
	labels := make(map[string]string, len(mappings))
	for label, mapping := range mappings {
		labels[label] = resolveLabel(mapping, attrs)
	}
	return &MonitoredResource{
		Type:   string(rt),
		Labels: labels,
	}
}

// resolveLabel coalesces the candidate keys in order. A service.name that
// carries UnknownServicePrefix is passed over, but is still used when no
// other candidate is present.
func resolveLabel(mapping labelMapping, attrs ReadOnlyAttributes) string {
	var (
		placeholder    string
		hasPlaceholder bool
	)
	for _, key := range mapping.attributeKeys {
		v, ok := attrs.Value(key)
		if !ok {
			continue
		}
		s := encodeValue(v)
		if key == semconv.ServiceNameKey && strings.HasPrefix(s, UnknownServicePrefix) {
			if !hasPlaceholder {
				placeholder, hasPlaceholder = s, true
			}
			continue
		}
		return s
	}
	if hasPlaceholder {
		return placeholder
	}
	return mapping.fallbackLiteral
}
