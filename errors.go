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
	"errors"

	"github.com/pjscruggs/gcpresource/internal/gcp"
)

// ErrMissingField indicates that a value a platform probe requires was absent
// from the metadata document or was not a string. Probes use it to signal
// "not this platform"; it never aborts detection.
var ErrMissingField = errors.New("gcpresource: required metadata field missing")

// ErrFetchFailure indicates that the metadata document could not be fetched
// or decoded. Detection degrades to an empty attribute set.
var ErrFetchFailure = gcp.ErrMetadataFetch

// ErrNoPlatform indicates that the metadata document was fetched but no
// platform probe matched it.
var ErrNoPlatform = errors.New("gcpresource: no supported platform detected")

// ErrDetectionDisabled is reported when detection was switched off through
// WithDisabled or GCPRESOURCE_DISABLE.
var ErrDetectionDisabled = errors.New("gcpresource: detection disabled")

// MissingFieldError names the dotted metadata path that a probe required.
// It matches ErrMissingField under errors.Is.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return "gcpresource: required metadata field missing: " + e.Field
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
