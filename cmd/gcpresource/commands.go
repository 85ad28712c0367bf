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
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/pjscruggs/gcpresource"
	"github.com/pjscruggs/gcpresource/internal/gcp"
	"github.com/pjscruggs/gcpresource/resourcemapping"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootFlags struct {
	timeout time.Duration
	verbose bool
}

// newRootCmd builds the command tree. extra options are appended to every
// Detector the commands create.
func newRootCmd(out io.Writer, extra ...gcpresource.Option) *cobra.Command {
	flags := &rootFlags{}

	newDetector := func() *gcpresource.Detector {
		cfg := gcp.LoadConfig()
		level := cfg.LogLevel
		if flags.verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		opts := []gcpresource.Option{gcpresource.WithLogger(logger)}
		if flags.timeout > 0 {
			opts = append(opts, gcpresource.WithTimeout(flags.timeout))
		}
		return gcpresource.NewDetector(append(opts, extra...)...)
	}

	cmd := &cobra.Command{
		Use:           "gcpresource",
		Short:         "Detect the Google Cloud environment of this process.",
		Long:          "gcpresource queries the metadata server once and reports the detected platform attributes and Cloud Monitoring monitored resource.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       gcpresource.GetVersion(),
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "metadata fetch timeout (overrides GCPRESOURCE_METADATA_TIMEOUT_MS)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log probe diagnostics to stderr")

	cmd.AddCommand(
		newDetectCmd(newDetector),
		newResourceCmd(newDetector),
		newMapCmd(),
	)
	return cmd
}

type detectOutput struct {
	Platform   string            `json:"platform,omitempty"`
	Attributes map[string]string `json:"attributes"`
	Error      string            `json:"error,omitempty"`
}

func newDetectCmd(newDetector func() *gcpresource.Detector) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Print the detected resource attributes as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			detection := newDetector().Detection(cmd.Context())
			result := detectOutput{
				Platform:   detection.Platform,
				Attributes: attributesToMap(detection.Attributes.ToSlice()),
			}
			if detection.Err != nil {
				result.Error = detection.Err.Error()
			}
			b, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode attributes: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}

func newResourceCmd(newDetector func() *gcpresource.Detector) *cobra.Command {
	return &cobra.Command{
		Use:   "resource",
		Short: "Print the monitored resource for this process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mr := newDetector().MonitoredResource(cmd.Context())
			return printMonitoredResource(cmd.OutOrStdout(), mr)
		},
	}
}

func newMapCmd() *cobra.Command {
	var pairs []string
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map the given attributes to a monitored resource",
		Example: `  gcpresource map --attr cloud.platform=gcp_kubernetes_engine \
    --attr k8s.cluster.name=prod --attr k8s.pod.name=web-0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kvs, err := parseAttributes(pairs)
			if err != nil {
				return err
			}
			set := attribute.NewSet(kvs...)
			mr := resourcemapping.ResourceAttributesToMonitoredResource(&set)
			return printMonitoredResource(cmd.OutOrStdout(), mr)
		},
	}
	cmd.Flags().StringArrayVar(&pairs, "attr", nil, "resource attribute as key=value (repeatable)")
	return cmd
}

func printMonitoredResource(w io.Writer, mr *resourcemapping.MonitoredResource) error {
	b, err := protojson.MarshalOptions{Multiline: true}.Marshal(mr.Proto())
	if err != nil {
		return fmt.Errorf("encode monitored resource: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// parseAttributes turns key=value pairs into string attributes.
func parseAttributes(pairs []string) ([]attribute.KeyValue, error) {
	kvs := make([]attribute.KeyValue, 0, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q: want key=value", p)
		}
		kvs = append(kvs, attribute.String(key, value))
	}
	return kvs, nil
}

func attributesToMap(kvs []attribute.KeyValue) map[string]string {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value.Emit()
	}
	return out
}
