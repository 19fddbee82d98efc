package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSubmissionConfigs indicates invalid submission transport
	// settings (for example, missing endpoint or non-positive timeout).
	ErrInvalidSubmissionConfigs = errors.New("invalid submission configuration")
)
