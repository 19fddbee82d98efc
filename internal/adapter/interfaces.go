// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport for completed intake forms.
//
// The primary abstraction is [Submitter], which decouples the validation
// engine from the submission protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSubmitter]) that POSTs the normalized record as
// JSON to the configured intake endpoint.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRejected] for 422, [ErrUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-intake-form/models"
)

// Submitter delivers a finalized submission to the intake endpoint. The
// caller guarantees the record has passed full validation; implementations
// are responsible for serialisation and for mapping transport-level errors to
// the sentinel values defined in this package.
type Submitter interface {

	// Submit sends the record. Returns nil once the endpoint has accepted it,
	// or an error describing why delivery failed.
	Submit(ctx context.Context, sub models.Submission) error
}
