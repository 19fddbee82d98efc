package config

import (
	"fmt"
	"time"
)

// Default submission transport settings applied when neither environment,
// flags, nor the JSON file provide a value.
const (
	defaultEndpoint       = "http://localhost:8080"
	defaultRequestTimeout = 15 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version string shown at startup.
	Version string
}

// ClientSubmission holds network settings used by the submission transport.
type ClientSubmission struct {
	// Endpoint is the intake collection endpoint address.
	Endpoint string
	// RequestTimeout is the timeout for outbound submission requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Submission contains the intake endpoint address and timeout.
	Submission ClientSubmission
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Missing submission settings fall back to
// local defaults so the form is usable out of the box.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Submission: ClientSubmission{
			Endpoint:       cfg.Submission.Endpoint,
			RequestTimeout: cfg.Submission.RequestTimeout,
		},
	}

	if clientCfg.Submission.Endpoint == "" {
		clientCfg.Submission.Endpoint = defaultEndpoint
	}
	if clientCfg.Submission.RequestTimeout == 0 {
		clientCfg.Submission.RequestTimeout = defaultRequestTimeout
	}

	return clientCfg, clientCfg.validate()
}
