// Package network builds the HTTP clients used to talk to the player API.
package network

import (
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/vidsel/vidsel/key"
)

// New returns a client configured from the network.* settings.
// Each call gets its own client; callers may share it freely.
func New() *http.Client {
	var transport http.RoundTripper = newTransport()
	if viper.GetBool(key.NetworkTLSFingerprint) {
		transport = NewFingerprintTransport()
	}

	return &http.Client{
		Timeout:   Timeout(),
		Transport: transport,
	}
}

// Timeout returns the configured per-request timeout. Zero or less disables it.
func Timeout() time.Duration {
	seconds := viper.GetInt(key.NetworkTimeout)
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
