// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured view carries no hard requirements of its own: every field
// may be supplied later by another source or defaulted by the client view.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Submission.Endpoint == "" || cfg.Submission.RequestTimeout <= 0 {
		return ErrInvalidSubmissionConfigs
	}

	return nil
}
