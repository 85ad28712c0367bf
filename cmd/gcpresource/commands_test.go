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

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/pjscruggs/gcpresource"
)

type fakeMetadata string

func (f fakeMetadata) GetWithContext(context.Context, string) (string, error) {
	return string(f), nil
}

const gceDoc = `{
  "project": {"projectId": "proj"},
  "instance": {
    "id": "99", "name": "vm-a", "machineType": "e2-small",
    "zone": "projects/5/zones/us-central1-f"
  }
}`

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out,
		gcpresource.WithMetadataClient(fakeMetadata(gceDoc)),
		gcpresource.WithEnvironment(gcpresource.MapEnvironment{}),
		gcpresource.WithDisabled(false),
	)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

func TestDetectCommand(t *testing.T) {
	var got detectOutput
	if err := json.Unmarshal([]byte(run(t, "detect")), &got); err != nil {
		t.Fatalf("decode detect output: %v", err)
	}
	if got.Platform != "gce" {
		t.Fatalf("platform = %q, want %q", got.Platform, "gce")
	}
	if got.Attributes["host.name"] != "vm-a" {
		t.Fatalf("host.name = %q, want %q", got.Attributes["host.name"], "vm-a")
	}
	if got.Error != "" {
		t.Fatalf("error = %q, want empty", got.Error)
	}
}

func TestResourceCommand(t *testing.T) {
	var got mrpb.MonitoredResource
	if err := protojson.Unmarshal([]byte(run(t, "resource")), &got); err != nil {
		t.Fatalf("decode resource output: %v", err)
	}
	want := &mrpb.MonitoredResource{Type: "gce_instance", Labels: map[string]string{
		"zone":        "us-central1-f",
		"instance_id": "99",
	}}
	if diff := cmp.Diff(want, &got, protocmp.Transform()); diff != "" {
		t.Fatalf("resource output mismatch (-want +got):\n%s", diff)
	}
}

func TestMapCommand(t *testing.T) {
	out := run(t, "map",
		"--attr", "cloud.platform=gcp_kubernetes_engine",
		"--attr", "cloud.region=us-east4",
		"--attr", "k8s.cluster.name=prod",
		"--attr", "k8s.node.name=node-1",
	)
	var got mrpb.MonitoredResource
	if err := protojson.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode map output: %v", err)
	}
	want := &mrpb.MonitoredResource{Type: "k8s_node", Labels: map[string]string{
		"location":     "us-east4",
		"cluster_name": "prod",
		"node_name":    "node-1",
	}}
	if diff := cmp.Diff(want, &got, protocmp.Transform()); diff != "" {
		t.Fatalf("map output mismatch (-want +got):\n%s", diff)
	}
}

func TestMapCommandRejectsMalformedAttribute(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"map", "--attr", "novalue"})
	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "want key=value") {
		t.Fatalf("error = %v, want key=value complaint", err)
	}
}

func TestParseAttributesKeepsEmptyValues(t *testing.T) {
	kvs, err := parseAttributes([]string{"service.name=", "a=b=c"})
	if err != nil {
		t.Fatalf("parseAttributes() returned %v", err)
	}
	got := attributesToMap(kvs)
	want := map[string]string{"service.name": "", "a": "b=c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parseAttributes() mismatch (-want +got):\n%s", diff)
	}
}
