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
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names used for configuration.
const (
	envMetadataTimeoutMS = "GCPRESOURCE_METADATA_TIMEOUT_MS" // Metadata fetch deadline in milliseconds
	envDisable           = "GCPRESOURCE_DISABLE"             // Skip detection entirely
	envNamespaceFile     = "GCPRESOURCE_NAMESPACE_FILE"      // Override for the service-account namespace path
	envLogLevel          = "GCPRESOURCE_LOG_LEVEL"           // Minimum level for diagnostics
)

// Exported names so callers and tests can refer to the variables.
const (
	EnvMetadataTimeoutMS = envMetadataTimeoutMS
	EnvDisable           = envDisable
	EnvNamespaceFile     = envNamespaceFile
	EnvLogLevel          = envLogLevel
)

// Default values used if environment variables are missing or invalid.
const (
	DefaultMetadataTimeout = 2 * time.Second
	DefaultNamespaceFile   = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"
	defaultLogLevel        = slog.LevelWarn
)

// Config holds the detection settings resolved from defaults and the
// environment. Programmatic options are layered on top by the caller.
type Config struct {
	MetadataTimeout time.Duration // Deadline applied to the metadata fetch
	Disabled        bool          // When true detection returns an empty set without I/O
	NamespaceFile   string        // Path read for the GKE namespace fallback
	LogLevel        slog.Level    // Minimum diagnostic level
}

// LoadConfig resolves configuration in this order of precedence:
//  1. Hard-coded defaults
//  2. Environment variables
//
// Invalid values produce a warning on stderr and leave the default in place.
func LoadConfig() Config {
	cfg := Config{
		MetadataTimeout: DefaultMetadataTimeout,
		NamespaceFile:   DefaultNamespaceFile,
		LogLevel:        defaultLogLevel,
	}

	if d := parseDurationPtrEnvMS(os.Getenv(envMetadataTimeoutMS)); d != nil {
		if *d > 0 {
			cfg.MetadataTimeout = *d
		} else {
			fmt.Fprintf(os.Stderr, "[gcpresource config] WARNING: %s must be positive, keeping %v\n", envMetadataTimeoutMS, cfg.MetadataTimeout)
		}
	}
	cfg.Disabled = parseBoolEnv(os.Getenv(envDisable), false)
	if path := strings.TrimSpace(os.Getenv(envNamespaceFile)); path != "" {
		cfg.NamespaceFile = path
	}
	cfg.LogLevel = parseLevelEnv(os.Getenv(envLogLevel), cfg.LogLevel)

	return cfg
}

// parseLevelEnv converts a level string from the environment into a slog.Level.
// Named levels and numeric values are accepted. Falls back to the provided
// default if the string is empty or invalid.
func parseLevelEnv(levelStr string, defaultLvl slog.Level) slog.Level {
	trimmed := strings.ToLower(strings.TrimSpace(levelStr))
	if trimmed == "" {
		return defaultLvl
	}

	switch trimmed {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		if levelVal, err := strconv.Atoi(trimmed); err == nil {
			return slog.Level(levelVal)
		}
		fmt.Fprintf(os.Stderr, "[gcpresource config] WARNING: Invalid log level value %q in env var, defaulting to %v\n", levelStr, defaultLvl)
		return defaultLvl
	}
}

// parseBoolEnv converts a boolean string from the environment into a bool.
// It understands true/false, yes/no, 1/0 and on/off.
func parseBoolEnv(boolStr string, defaultVal bool) bool {
	trimmed := strings.ToLower(strings.TrimSpace(boolStr))
	if trimmed == "" {
		return defaultVal
	}
	switch trimmed {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		fmt.Fprintf(os.Stderr, "[gcpresource config] WARNING: Invalid boolean value %q in env var, defaulting to %v\n", boolStr, defaultVal)
		return defaultVal
	}
}

// parseDurationPtrEnvMS converts a millisecond value from the environment into
// a *time.Duration. Returns nil if the string is empty, invalid or negative.
func parseDurationPtrEnvMS(valStr string) *time.Duration {
	trimmed := strings.TrimSpace(valStr)
	if trimmed == "" {
		return nil
	}
	if ms, err := strconv.Atoi(trimmed); err == nil && ms >= 0 {
		d := time.Duration(ms) * time.Millisecond
		return &d
	}
	fmt.Fprintf(os.Stderr, "[gcpresource config] WARNING: Invalid non-negative millisecond value %q in env var, ignoring\n", valStr)
	return nil
}
