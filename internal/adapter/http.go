package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-intake-form/internal/config"
	"github.com/MKhiriev/go-intake-form/internal/logger"
	"github.com/MKhiriev/go-intake-form/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

type httpSubmitter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPSubmitter constructs an HTTP/REST implementation of [Submitter].
// It normalises and validates the endpoint URL from cfg.Endpoint and
// configures the underlying client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.Endpoint is empty or cannot be parsed as a valid
// URL.
func NewHTTPSubmitter(cfg config.ClientSubmission, log *logger.Logger) (Submitter, error) {
	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid submission endpoint: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpSubmitter{client: cli, logger: log}, nil
}

// Submit implements [Submitter]. It POSTs the submission as JSON to
// POST /api/intake/. Returns an error if the request fails or the endpoint
// responds with a non-2xx status.
func (h *httpSubmitter) Submit(ctx context.Context, sub models.Submission) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sub).
		Post("/api/intake/")
	if err != nil {
		return fmt.Errorf("intake request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Info().
		Str("submission_id", sub.SubmissionID).
		Int("status", resp.StatusCode()).
		Msg("intake form delivered")

	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnprocessableEntity || code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrRejected, body)
	case code == http.StatusServiceUnavailable || code == http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrUnavailable, body)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
}
