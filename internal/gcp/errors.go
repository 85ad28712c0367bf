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

import "errors"

// ErrMetadataFetch indicates that the metadata document could not be
// retrieved from the metadata server or could not be decoded as JSON. The
// underlying transport or decode error is wrapped alongside it.
var ErrMetadataFetch = errors.New("gcp: metadata document fetch failed")
