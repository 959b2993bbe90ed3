package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/vidsel/vidsel/log"
	"github.com/vidsel/vidsel/query"
	"github.com/vidsel/vidsel/source"
	"github.com/vidsel/vidsel/util"
	"golang.org/x/sync/errgroup"
)

// Run resolves every id in options and writes the results in input order.
// In plain mode failures are logged and reported together after the
// successful URLs are written. In JSON mode they are embedded per result.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	results := resolveAll(ctx, options)

	if options.Json {
		return writeJson(options.Out, results)
	}

	for _, r := range results {
		if r.Video != nil {
			if _, err := fmt.Fprintln(options.Out, r.Video.URL); err != nil {
				return err
			}
		}
	}

	failed := lo.Filter(results, func(r *Result, _ int) bool {
		return r.err != nil
	})

	switch len(failed) {
	case 0:
		return nil
	case 1:
		return failed[0].err
	default:
		return fmt.Errorf("%d of %s could not be resolved", len(failed), util.Quantify(len(results), "video", "videos"))
	}
}

func resolveAll(ctx context.Context, options *Options) []*Result {
	results := make([]*Result, len(options.IDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(options.Parallel, 1))

	for i, id := range options.IDs {
		i, id := i, id
		g.Go(func() error {
			results[i] = resolveOne(ctx, options, id)
			return nil
		})
	}

	// resolveOne never fails the group, so Wait only synchronizes.
	_ = g.Wait()
	return results
}

func resolveOne(ctx context.Context, options *Options, id string) *Result {
	result := &Result{ID: id}

	video, resp, err := source.Resolve(ctx, options.Resolver, id)
	if options.Full {
		result.Response = resp
	}

	if err != nil {
		log.Warnf("resolve %s: %v", id, err)
		result.err = err
		result.Error = err.Error()
		return result
	}

	log.Infof("resolved %s to %s stream", id, video.Kind)
	result.Video = video

	if options.Remember {
		if err := query.Remember(id); err != nil {
			log.Warnf("remember %s: %v", id, err)
		}
	}

	return result
}
