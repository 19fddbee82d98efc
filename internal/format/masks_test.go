// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// TestSSN
// ---------------------------------------------------------------------------

func TestSSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"full digit run", "123456789", "123-45-6789"},
		{"strips separators and letters", "123-45-6789abc", "123-45-6789"},
		{"truncates extra digits", "1234567890123", "123-45-6789"},
		{"partial first group", "12", "12"},
		{"partial second group", "1234", "123-4"},
		{"partial last group", "12345678", "123-45-678"},
		{"only junk", "---abc..", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SSN(tt.in))
		})
	}
}

// ---------------------------------------------------------------------------
// TestPhone
// ---------------------------------------------------------------------------

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"full digit run", "5551234567", "555-123-4567"},
		{"strips punctuation", "(555) 123-4567", "555-123-4567"},
		{"truncates extra digits", "555123456789", "555-123-4567"},
		{"partial groups", "55512", "555-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.in))
		})
	}
}

// ---------------------------------------------------------------------------
// TestMasksIdempotent
// ---------------------------------------------------------------------------

func TestMasksIdempotent(t *testing.T) {
	inputs := []string{"", "1", "12345", "123456789", "5551234567", "12-3a4b5"}

	for _, in := range inputs {
		once := SSN(in)
		assert.Equal(t, once, SSN(once), "ssn mask not idempotent for %q", in)

		once = Phone(in)
		assert.Equal(t, once, Phone(once), "phone mask not idempotent for %q", in)
	}
}
