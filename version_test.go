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

package gcpresource_test

import (
	"testing"

	"github.com/pjscruggs/gcpresource"
)

func TestGetVersionFollowsOverride(t *testing.T) {
	original := gcpresource.Version
	gcpresource.Version = "v9.9.9-dev"
	t.Cleanup(func() { gcpresource.Version = original })

	if got := gcpresource.GetVersion(); got != "v9.9.9-dev" {
		t.Fatalf("GetVersion() = %q, want %q", got, "v9.9.9-dev")
	}
}

func TestUserAgentCarriesVersion(t *testing.T) {
	want := "gcpresource/" + gcpresource.Version
	if gcpresource.UserAgent != want {
		t.Fatalf("UserAgent = %q, want %q", gcpresource.UserAgent, want)
	}
}
