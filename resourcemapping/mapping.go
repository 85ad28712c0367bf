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

// Package resourcemapping translates OpenTelemetry resource attributes into
// Cloud Monitoring monitored-resource descriptors.
//
// The platform is classified from cloud.platform and the presence of a few
// discriminating attributes, then each label of the chosen monitored-resource
// type is filled from an ordered list of candidate attribute keys.
package resourcemapping

import (
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// ResourceType names a Cloud Monitoring monitored-resource type.
type ResourceType string

// Monitored-resource types produced by the mapper.
const (
	GCEInstance    ResourceType = "gce_instance"
	K8sContainer   ResourceType = "k8s_container"
	K8sPod         ResourceType = "k8s_pod"
	K8sNode        ResourceType = "k8s_node"
	K8sCluster     ResourceType = "k8s_cluster"
	AWSEC2Instance ResourceType = "aws_ec2_instance"
	GenericTask    ResourceType = "generic_task"
	GenericNode    ResourceType = "generic_node"
)

// Monitored-resource label names.
const (
	awsAccount    = "aws_account"
	clusterName   = "cluster_name"
	containerName = "container_name"
	instanceID    = "instance_id"
	job           = "job"
	location      = "location"
	namespace     = "namespace"
	namespaceName = "namespace_name"
	nodeID        = "node_id"
	nodeName      = "node_name"
	podName       = "pod_name"
	region        = "region"
	taskID        = "task_id"
	zone          = "zone"
)

// UnknownServicePrefix starts the service.name OpenTelemetry SDKs generate
// when none is configured, such as "unknown_service:go".
const UnknownServicePrefix = "unknown_service"

// labelMapping fills one monitored-resource label.
type labelMapping struct {
	// Attribute keys tried in order; the first present value wins.
	attributeKeys []attribute.Key
	// Used when none of attributeKeys is present.
	fallbackLiteral string
}

var locationKeys = []attribute.Key{
	semconv.CloudAvailabilityZoneKey,
	semconv.CloudRegionKey,
}

// monitoredResourceMappings is built once and never modified. Every
// ResourceType has an entry.
var monitoredResourceMappings = map[ResourceType]map[string]labelMapping{
	GCEInstance: {
		zone:       {attributeKeys: []attribute.Key{semconv.CloudAvailabilityZoneKey}},
		instanceID: {attributeKeys: []attribute.Key{semconv.HostIDKey}},
	},
	K8sContainer: {
		location:      {attributeKeys: locationKeys},
		clusterName:   {attributeKeys: []attribute.Key{semconv.K8SClusterNameKey}},
		namespaceName: {attributeKeys: []attribute.Key{semconv.K8SNamespaceNameKey}},
		podName:       {attributeKeys: []attribute.Key{semconv.K8SPodNameKey}},
		containerName: {attributeKeys: []attribute.Key{semconv.K8SContainerNameKey}},
	},
	K8sPod: {
		location:      {attributeKeys: locationKeys},
		clusterName:   {attributeKeys: []attribute.Key{semconv.K8SClusterNameKey}},
		namespaceName: {attributeKeys: []attribute.Key{semconv.K8SNamespaceNameKey}},
		podName:       {attributeKeys: []attribute.Key{semconv.K8SPodNameKey}},
	},
	K8sNode: {
		location:    {attributeKeys: locationKeys},
		clusterName: {attributeKeys: []attribute.Key{semconv.K8SClusterNameKey}},
		nodeName:    {attributeKeys: []attribute.Key{semconv.K8SNodeNameKey}},
	},
	K8sCluster: {
		location:    {attributeKeys: locationKeys},
		clusterName: {attributeKeys: []attribute.Key{semconv.K8SClusterNameKey}},
	},
	AWSEC2Instance: {
		instanceID: {attributeKeys: []attribute.Key{semconv.HostIDKey}},
		region:     {attributeKeys: locationKeys},
		awsAccount: {attributeKeys: []attribute.Key{semconv.CloudAccountIDKey}},
	},
	GenericTask: {
		location:  {attributeKeys: locationKeys, fallbackLiteral: "global"},
		namespace: {attributeKeys: []attribute.Key{semconv.ServiceNamespaceKey}},
		job:       {attributeKeys: []attribute.Key{semconv.ServiceNameKey, semconv.FaaSNameKey}},
		taskID:    {attributeKeys: []attribute.Key{semconv.ServiceInstanceIDKey, semconv.FaaSInstanceKey}},
	},
	GenericNode: {
		location:  {attributeKeys: locationKeys, fallbackLiteral: "global"},
		namespace: {attributeKeys: []attribute.Key{semconv.ServiceNamespaceKey}},
		nodeID:    {attributeKeys: []attribute.Key{semconv.HostIDKey, semconv.HostNameKey}},
	},
}

// ResourceTypes lists every monitored-resource type the mapper can produce.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		GCEInstance, K8sContainer, K8sPod, K8sNode, K8sCluster,
		AWSEC2Instance, GenericTask, GenericNode,
	}
}

// LabelNames returns the sorted label names populated for rt, or nil for an
// unknown type.
func LabelNames(rt ResourceType) []string {
	mappings, ok := monitoredResourceMappings[rt]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(mappings))
}
