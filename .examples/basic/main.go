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

// Command basic merges the detected Google Cloud resource into an
// OpenTelemetry SDK resource and prints the matching monitored resource.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/pjscruggs/gcpresource"
	"github.com/pjscruggs/gcpresource/resourcemapping"
)

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Fatalf("basic: %v", err)
	}
}

func run(ctx context.Context, out io.Writer, opts ...gcpresource.Option) error {
	res, err := resource.New(ctx, resource.WithDetectors(gcpresource.NewResourceDetector(opts...)))
	if err != nil {
		return fmt.Errorf("build resource: %w", err)
	}

	mr := resourcemapping.ResourceAttributesToMonitoredResource(res.Set())
	fmt.Fprintf(out, "type=%s\n", mr.Type)
	for _, name := range resourcemapping.LabelNames(resourcemapping.ResourceType(mr.Type)) {
		fmt.Fprintf(out, "%s=%s\n", name, mr.Labels[name])
	}
	return nil
}
