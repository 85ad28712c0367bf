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
	"regexp"
	"strings"
)

// zoneRegionPattern matches fully qualified zone names such as
// "projects/123456/zones/us-central1-a".
var zoneRegionPattern = regexp.MustCompile(`projects/\d+/zones/((\w+-\w+)-\w+)`)

// zoneRegion is a zone split into its region and full zone name.
type zoneRegion struct {
	region string
	zone   string
}

// parseZone extracts region and zone from a fully qualified zone name. Text
// that does not match yields empty fields.
func parseZone(text string) zoneRegion {
	m := zoneRegionPattern.FindStringSubmatch(text)
	if m == nil {
		return zoneRegion{}
	}
	return zoneRegion{region: m[2], zone: m[1]}
}

// lastSegment returns the part of s after its final '/'.
func lastSegment(s string) string {
	return s[strings.LastIndex(s, "/")+1:]
}
