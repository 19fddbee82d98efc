package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    NetAddress
		wantErr bool
	}{
		{"localhost", "localhost:8080", NetAddress{Host: "localhost", Port: 8080}, false},
		{"ip address", "127.0.0.1:9090", NetAddress{Host: "127.0.0.1", Port: 9090}, false},
		{"missing port", "localhost", NetAddress{}, true},
		{"non-numeric port", "localhost:abc", NetAddress{}, true},
		{"zero port", "localhost:0", NetAddress{}, true},
		{"bad host", "not-an-ip:8080", NetAddress{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}

func TestClientConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &ClientConfig{Submission: ClientSubmission{Endpoint: "localhost:8080", RequestTimeout: defaultRequestTimeout}}
		assert.NoError(t, cfg.validate())
	})

	t.Run("missing endpoint", func(t *testing.T) {
		cfg := &ClientConfig{Submission: ClientSubmission{RequestTimeout: defaultRequestTimeout}}
		assert.ErrorIs(t, cfg.validate(), ErrInvalidSubmissionConfigs)
	})

	t.Run("zero timeout", func(t *testing.T) {
		cfg := &ClientConfig{Submission: ClientSubmission{Endpoint: "localhost:8080"}}
		assert.ErrorIs(t, cfg.validate(), ErrInvalidSubmissionConfigs)
	})
}
