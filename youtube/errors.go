package youtube

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks transport failures: DNS, refused connections, TLS, timeouts.
	ErrNetwork = errors.New("network failure")

	// ErrDecode marks response bodies that do not match the expected shape.
	ErrDecode = errors.New("decode failure")

	// ErrCancelled marks calls aborted through their context.
	ErrCancelled = errors.New("cancelled")

	// ErrNoPlayableStream is returned by callers when the selector finds nothing.
	// The resolver itself never returns it.
	ErrNoPlayableStream = errors.New("no playable stream")
)

// transportError classifies an error from the HTTP round trip or body read.
func transportError(ctx context.Context, identity Identity, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w: %w", identity, ErrCancelled, ctxErr)
	}
	return fmt.Errorf("%s: %w: %w", identity, ErrNetwork, err)
}

func cancelled(err error) error {
	return fmt.Errorf("%w: %w", ErrCancelled, err)
}
