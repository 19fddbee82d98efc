package models

import "time"

// Submission is the final normalized intake record handed to the submission
// collaborator once the form passes confirmation. UserID and Email are
// lower-cased; all other values are submitted exactly as entered.
type Submission struct {
	// SubmissionID is a client-generated unique identifier for this attempt.
	SubmissionID string `json:"submission_id"`

	// SubmittedAt is the client-side confirmation timestamp.
	SubmittedAt time.Time `json:"submitted_at"`

	// Fields maps every form field identifier to its final value.
	Fields map[FieldID]string `json:"fields"`

	// Selections maps every radio group to its selected option value.
	Selections map[GroupName]string `json:"selections"`

	// Checked maps each checkbox group to its checked option values in form
	// order.
	Checked map[GroupName][]string `json:"checked,omitempty"`
}
