package adapter

import "errors"

var (
	ErrRejected            = errors.New("submission rejected by intake endpoint")
	ErrUnavailable         = errors.New("intake endpoint unavailable")
	ErrInternalServerError = errors.New("intake endpoint internal error")
)
