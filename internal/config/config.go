// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// intake-form application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Submission holds the intake endpoint address and timeout settings used
	// by the submission transport.
	Submission Submission `envPrefix:"SUBMISSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown alongside build info in startup output.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Submission holds network and timeout settings for the outbound intake
// transport.
type Submission struct {
	// Endpoint is the address of the intake collection endpoint, either a
	// full URL or "host:port" (an http:// scheme is assumed for the latter).
	// Env: SUBMISSION_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout is the maximum duration allowed for a single submission
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: SUBMISSION_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
