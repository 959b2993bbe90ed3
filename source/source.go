// Package source turns player API answers into videos a player can open.
package source

import (
	"context"
	"fmt"

	"github.com/vidsel/vidsel/youtube"
)

// Resolver fetches stream information for a video identifier.
// *youtube.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, id string) (*youtube.StreamResponse, error)
}

// Resolve asks r about id and selects the best stream.
// The raw response is returned whenever the resolver produced one, even when
// nothing in it is playable; in that case the error is youtube.ErrNoPlayableStream.
func Resolve(ctx context.Context, r Resolver, id string) (*Video, *youtube.StreamResponse, error) {
	resp, err := r.Resolve(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	selection, ok := youtube.Select(resp).Get()
	if !ok {
		return nil, resp, fmt.Errorf("%s: %w", id, youtube.ErrNoPlayableStream)
	}

	return NewVideo(id, selection), resp, nil
}
