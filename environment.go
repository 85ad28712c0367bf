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
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Environment is the process state consulted by the platform probes: the
// environment variables and the service-account namespace file.
type Environment interface {
	// LookupEnv reports the value of key and whether it is set at all.
	LookupEnv(key string) (string, bool)
	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)
}

// OSEnvironment reads from the real process environment and filesystem.
type OSEnvironment struct{}

// LookupEnv implements Environment.
func (OSEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// ReadFile implements Environment.
func (OSEnvironment) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// MapEnvironment is a fixed Environment, useful in tests and for replaying a
// captured environment.
type MapEnvironment struct {
	Vars  map[string]string
	Files map[string][]byte
}

// LookupEnv implements Environment.
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m.Vars[key]
	return v, ok
}

// ReadFile implements Environment.
func (m MapEnvironment) ReadFile(name string) ([]byte, error) {
	data, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return data, nil
}

// probeEnv pairs an Environment with the namespace file location.
type probeEnv struct {
	Environment
	namespaceFile string
}

// readNamespace reads the Kubernetes namespace from the serviceaccount
// secret. Any read failure or invalid UTF-8 yields "".
func (e probeEnv) readNamespace() string {
	data, err := e.ReadFile(e.namespaceFile)
	if err != nil || !utf8.Valid(data) {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// firstSet returns the value of the first key that is set, even if empty.
func (e probeEnv) firstSet(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := e.LookupEnv(key); ok {
			return v, true
		}
	}
	return "", false
}
