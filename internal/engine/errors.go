package engine

import "errors"

var (
	// ErrSubmitBlocked is returned by Confirm when the pre-submit
	// re-validation leaves entries in the error map. The state machine stays
	// in Reviewing.
	ErrSubmitBlocked = errors.New("submission blocked: form has validation errors")

	// ErrNotReviewing is returned by Confirm when it is triggered outside the
	// Reviewing state.
	ErrNotReviewing = errors.New("confirm is only valid while reviewing")

	// ErrAlreadySubmitted is returned once the form has entered Submitted.
	ErrAlreadySubmitted = errors.New("form already submitted")
)
