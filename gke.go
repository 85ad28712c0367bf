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

// detectGKE recognises a container running on Google Kubernetes Engine.
//
// Namespace and pod name never fail the probe: when neither the environment
// nor the namespace file supplies them they are emitted as "".
func detectGKE(md jsonpath.Value, env probeEnv) ([]attribute.KeyValue, error) {
	if _, ok := env.LookupEnv("KUBERNETES_SERVICE_HOST"); !ok {
		return nil, &MissingFieldError{Field: "env.KUBERNETES_SERVICE_HOST"}
	}

	attrs, err := commonAttributes(md)
	if err != nil {
		return nil, err
	}

	if container, ok := env.LookupEnv("CONTAINER_NAME"); ok {
		attrs = append(attrs, semconv.ContainerName(container))
	}

	namespace, ok := env.LookupEnv("NAMESPACE")
	if !ok {
		namespace = env.readNamespace()
	}
	attrs = append(attrs, semconv.K8SNamespaceName(namespace))

	pod, _ := env.firstSet("POD_NAME", "HOSTNAME")
	attrs = append(attrs, semconv.K8SPodName(pod))

	cluster, err := requireString(md, "instance", "attributes", "cluster-name")
	if err != nil {
		return nil, err
	}
	attrs = append(attrs, semconv.K8SClusterName(cluster))

	if location, ok := md.Get("instance", "attributes", "cluster-location").AsString(); ok {
		switch len(strings.Split(location, "-")) {
		case 2: // us-east4
			attrs = append(attrs, semconv.CloudRegion(location))
		case 3: // us-east4-b
			attrs = append(attrs, semconv.CloudAvailabilityZone(location))
		}
	}

	zone, err := requireString(md, "instance", "zone")
	if err != nil {
		return nil, err
	}
	attrs = append(attrs, CloudZoneKey.String(lastSegment(zone)))

	hostID, err := requireString(md, "instance", "id")
	if err != nil {
		return nil, err
	}
	attrs = append(attrs,
		semconv.HostID(hostID),
		GCPResourceTypeKey.String("gke_container"),
		semconv.CloudPlatformGCPKubernetesEngine,
	)
	return attrs, nil
}
