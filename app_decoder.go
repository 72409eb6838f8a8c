package droid

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type AppDecoder interface {
	App(context.Context) (*App, error)
	Close() error
}

// DecodeEach calls fn with each of decoders, at most concurrency at a
// time, returning the results in the same order. A concurrency <= 0
// means no limit. The first error cancels the remaining calls and is
// returned.
func DecodeEach[D, T any](ctx context.Context, concurrency int, decoders []D, fn func(context.Context, D) (T, error)) ([]T, error) {
	var (
		results   = make([]T, len(decoders))
		eg, egctx = errgroup.WithContext(ctx)
	)

	if concurrency > 0 {
		eg.SetLimit(concurrency)
	}

	for i, decoder := range decoders {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}

			result, err := fn(egctx, decoder)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// DecodeApps decodes each of appDecoders with DecodeEach.
func DecodeApps(ctx context.Context, concurrency int, appDecoders ...AppDecoder) ([]App, error) {
	return DecodeEach(ctx, concurrency, appDecoders, func(ctx context.Context, appDecoder AppDecoder) (App, error) {
		app, err := appDecoder.App(ctx)
		if err != nil {
			return App{}, err
		}

		return *app, nil
	})
}
