// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package service

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-retry"
)

// refreshFunc fetches one resource from the transport and applies it.
type refreshFunc func(ctx context.Context) error

// revalidateLater launches the stale-while-revalidate task for one cached
// resource: fn is retried at the configured interval until it succeeds or
// the engine shuts down. The task is fire-and-forget — no caller ever awaits
// it, and its failures are reported through the logger only. The snapshot is
// marked fresh once every scheduled resource has revalidated, not on the
// first success.
func (e *syncEngine) revalidateLater(resource string, fn refreshFunc) {
	e.wg.Add(1)

	go func() {
		defer e.wg.Done()

		backoff := retry.NewConstant(e.revalidateInterval)
		err := retry.Do(e.lifecycleCtx, backoff, func(ctx context.Context) error {
			if err := fn(ctx); err != nil {
				e.logger.Warn().Err(err).Str("resource", resource).Msg("background revalidation attempt failed")
				return retry.RetryableError(err)
			}
			return nil
		})
		if err != nil {
			e.logger.Debug().Err(err).Str("resource", resource).Msg("background revalidation stopped")
			return
		}

		if e.staleResources.Add(-1) == 0 {
			e.markFresh()
		}
	}()
}

func (e *syncEngine) refreshClient(ctx context.Context) error {
	client, err := e.transport.GetClient(ctx)
	if err != nil {
		return fmt.Errorf("fetch client: %w", err)
	}
	if client != nil {
		e.applyClient(client)
	}
	return nil
}

func (e *syncEngine) refreshEnvironment(ctx context.Context) error {
	env, err := e.transport.GetEnvironment(ctx)
	if err != nil {
		return fmt.Errorf("fetch environment: %w", err)
	}
	e.state.ReplaceEnvironment(env)
	return nil
}
