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

package gcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"cloud.google.com/go/compute/metadata"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/pjscruggs/gcpresource/internal/jsonpath"
)

// documentSuffix requests the whole metadata tree as one JSON object.
const documentSuffix = "?recursive=true"

// MetadataClient is the subset of *metadata.Client used to fetch the
// metadata document. Tests substitute their own implementation.
type MetadataClient interface {
	GetWithContext(ctx context.Context, suffix string) (string, error)
}

// NewMetadataClient builds a metadata client whose requests are traced by
// otelhttp and carry userAgent. A nil httpClient uses a fresh client with the
// default transport. The GCE_METADATA_HOST environment variable is honoured
// by the underlying library. opts are passed to otelhttp.NewTransport.
func NewMetadataClient(httpClient *http.Client, userAgent string, logger *slog.Logger, opts ...otelhttp.Option) *metadata.Client {
	hc := &http.Client{}
	if httpClient != nil {
		copied := *httpClient
		hc = &copied
	}
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	opts = append([]otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "metadata " + r.Method
		}),
	}, opts...)
	hc.Transport = otelhttp.NewTransport(userAgentTransport{base: base, userAgent: userAgent}, opts...)
	return metadata.NewWithOptions(&metadata.Options{Client: hc, Logger: logger})
}

// FetchDocument retrieves and decodes the recursive metadata document.
func FetchDocument(ctx context.Context, client MetadataClient) (jsonpath.Value, error) {
	if client == nil {
		return jsonpath.Missing, fmt.Errorf("nil metadata client: %w", ErrMetadataFetch)
	}
	body, err := client.GetWithContext(ctx, documentSuffix)
	if err != nil {
		return jsonpath.Missing, fmt.Errorf("%w: %w", ErrMetadataFetch, err)
	}
	doc, err := jsonpath.Parse([]byte(body))
	if err != nil {
		return jsonpath.Missing, fmt.Errorf("%w: %w", ErrMetadataFetch, err)
	}
	return doc, nil
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

// RoundTrip overrides the library's User-Agent header.
func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" {
		return t.base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}
