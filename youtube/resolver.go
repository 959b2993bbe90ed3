package youtube

import (
	"context"

	"github.com/vidsel/vidsel/log"
)

// Resolver tries the Primary identity and falls back to the Fallback one.
type Resolver struct {
	attempter Attempter
}

// NewResolver returns a Resolver issuing its calls through attempter.
func NewResolver(attempter Attempter) *Resolver {
	return &Resolver{attempter: attempter}
}

// Resolve fetches stream information for id.
//
// A Primary answer with streaming data is returned as is. Any other Primary
// outcome, failures included, is dropped and the Fallback outcome is returned
// verbatim. Fallback is never sent once ctx is done.
func (r *Resolver) Resolve(ctx context.Context, id string) (*StreamResponse, error) {
	resp, err := r.attempter.Attempt(ctx, id, Primary)
	switch {
	case err != nil:
		log.Debugf("%s attempt for %q failed: %v", Primary, id, err)
	case resp.HasStreamingData():
		return resp, nil
	default:
		log.Debugf("%s attempt for %q returned no streaming data%s", Primary, id, reasonSuffix(resp))
	}

	if err := ctx.Err(); err != nil {
		return nil, cancelled(err)
	}

	return r.attempter.Attempt(ctx, id, Fallback)
}

func reasonSuffix(resp *StreamResponse) string {
	if resp == nil || resp.PlayabilityStatus == nil {
		return ""
	}

	status := resp.PlayabilityStatus
	switch {
	case status.Reason != nil:
		return " (" + deref(status.Status) + ": " + *status.Reason + ")"
	case status.Status != nil:
		return " (" + *status.Status + ")"
	default:
		return ""
	}
}
