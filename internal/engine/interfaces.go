// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine implements the validation state engine of the intake form:
// it owns the live error map, evaluates fields and radio groups against the
// static rules table, derives the aggregate "form submittable" flag, and
// drives the review/confirm state machine.
//
// The engine is written for a single-goroutine, event-serialized caller (the
// TUI update loop): every handler runs to completion before the next event is
// accepted, each validation call touches exactly one error-map key, and masks
// are applied strictly before validation within the same change event. There
// is therefore no locking anywhere in this package; a second goroutine
// calling into an Engine would violate its contract.
package engine

import (
	"context"

	"github.com/MKhiriev/go-intake-form/models"
)

// Display is the rendering collaborator the engine notifies. The engine only
// pushes state into it and never reads rendered state back.
type Display interface {

	// ShowFieldError marks the field (or radio group, passed by its name) as
	// failing with the given message.
	ShowFieldError(fieldID models.FieldID, message string)

	// ShowFieldSuccess clears any error marking from the field or group.
	ShowFieldSuccess(fieldID models.FieldID)

	// SetSubmitEnabled pushes the latest aggregate readiness value.
	SetSubmitEnabled(enabled bool)

	// RenderReviewSummary displays the structured pre-submit summary.
	RenderReviewSummary(summary models.ReviewSummary)

	// ScrollToReview moves the user's viewport to the rendered summary.
	ScrollToReview()
}

// FormSource is the engine's read-only view of the physical form. It also
// satisfies [validators.Snapshot], so cross-field predicates read sibling
// values through the same source.
type FormSource interface {

	// Value returns the current (formatted) value of the field, or "".
	Value(fieldID models.FieldID) string

	// SelectedRadioValue returns the selected option of the radio group, or
	// "" when nothing is selected.
	SelectedRadioValue(group models.GroupName) string

	// CheckedCheckboxValues returns the checked options of the checkbox
	// group in form order.
	CheckedCheckboxValues(group models.GroupName) []string
}

// Submitter receives the final normalized submission. It is invoked only
// when the error map is empty at confirm time.
type Submitter interface {

	// Submit transports the record to the intake endpoint.
	Submit(ctx context.Context, sub models.Submission) error
}
