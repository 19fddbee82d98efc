// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the per-field validation rules of the intake form.
//
// Core concepts:
//   - predicates: one pure function per field, evaluated against the field's
//     current formatted value. A predicate never mutates state and never
//     returns an error; "invalid" is an ordinary boolean result.
//   - Snapshot: the explicit cross-field dependency. The two rules that need
//     a sibling's value (password must not equal the user ID, confirmation
//     must equal the password) read it from a Snapshot argument instead of
//     reaching into ambient form state.
//   - rules table: the static, ordered registry mapping field identifiers to
//     (predicate, message producer, required flag, optional input mask), plus
//     the registry of required radio groups.
//
// The validation engine owns all mutable state; this package stays replayable
// so the review pass can re-run every rule against current values at any time.
package validators

import "github.com/MKhiriev/go-intake-form/models"

// Snapshot is a read-only view of the current form values. Predicates with a
// cross-field rule receive one at call time; implementations must return the
// live value of the named field.
type Snapshot interface {

	// Value returns the current value of the given field, or "" if the field
	// is unknown or empty.
	Value(fieldID models.FieldID) string
}
