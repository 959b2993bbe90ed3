package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vidsel/vidsel/log"
)

// Endpoint is the player API every attempt is sent to.
const Endpoint = "https://www.youtube.com/youtubei/v1/player"

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Attempter performs a single player API call under one identity.
type Attempter interface {
	Attempt(ctx context.Context, id string, identity Identity) (*StreamResponse, error)
}

// Negotiator talks to the player API. It holds no per-call state and is
// safe for concurrent use.
type Negotiator struct {
	client   Doer
	endpoint string
}

// NegotiatorOption customizes a Negotiator.
type NegotiatorOption func(*Negotiator)

// WithEndpoint overrides the player API URL.
func WithEndpoint(endpoint string) NegotiatorOption {
	return func(n *Negotiator) {
		n.endpoint = endpoint
	}
}

// NewNegotiator returns a Negotiator sending requests through client.
// A nil client means http.DefaultClient.
func NewNegotiator(client Doer, options ...NegotiatorOption) *Negotiator {
	if client == nil {
		client = http.DefaultClient
	}

	n := &Negotiator{
		client:   client,
		endpoint: Endpoint,
	}

	for _, option := range options {
		option(n)
	}

	return n
}

// Attempt asks the player API about id while posing as identity.
//
// The id is sent unchanged. A response without streaming data is a success.
// HTTP status codes are not inspected: the body is decoded either way.
func (n *Negotiator) Attempt(ctx context.Context, id string, identity Identity) (*StreamResponse, error) {
	body, err := json.Marshal(identity.payload(id))
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", identity, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", identity, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", identity.UserAgent())

	log.Debugf("player request for %q as %s", id, identity)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, transportError(ctx, identity, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(ctx, identity, err)
	}

	log.Debugf("player response for %q as %s: status %d, %d bytes", id, identity, resp.StatusCode, len(data))

	var decoded StreamResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", identity, ErrDecode, err)
	}

	return &decoded, nil
}
