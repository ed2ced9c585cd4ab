package api

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Request names one call of a batch.
type Request struct {
	Operation string
	Args      Args
}

// Result is the outcome of one batch request. Exactly one of Value and Err is set.
type Result struct {
	Operation string
	Value     any
	Err       error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

type batchOptions struct {
	limit    int
	failFast bool
}

// BatchOption configures one CallMany.
type BatchOption func(*batchOptions)

// WithFailFast cancels the rest of the batch after the first failure.
// Requests cancelled this way report a TransportError wrapping context.Canceled.
func WithFailFast() BatchOption {
	return func(o *batchOptions) {
		o.failFast = true
	}
}

// WithLimit caps the number of requests in flight for one batch.
func WithLimit(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.limit = n
		}
	}
}

// CallMany issues every request without waiting on the others and returns
// once all of them have resolved. Results are in request order. By default
// every request runs to completion regardless of sibling failures.
func (c *Client) CallMany(ctx context.Context, reqs []Request, opts ...BatchOption) []Result {
	o := batchOptions{limit: c.concurrency}
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]Result, len(reqs))
	if len(reqs) == 0 {
		return results
	}

	start := time.Now()
	var succeeded, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit)

	for i, req := range reqs {
		g.Go(func() error {
			results[i].Operation = req.Operation

			if o.failFast && gctx.Err() != nil {
				results[i].Err = &Error{
					Kind:      KindTransportError,
					Operation: req.Operation,
					Message:   "cancelled after an earlier failure in the batch",
					Cause:     context.Canceled,
				}
				failed.Add(1)
				return nil
			}

			callCtx := ctx
			if o.failFast {
				callCtx = gctx
			}

			v, err := c.dispatch(callCtx, req.Operation, req.Args)
			if err != nil {
				results[i].Err = err
				failed.Add(1)
				if o.failFast {
					return err
				}
				return nil
			}

			results[i].Value = v
			succeeded.Add(1)
			return nil
		})
	}

	_ = g.Wait()

	c.logger.Debug("batch complete",
		"requests", len(reqs),
		"succeeded", succeeded.Load(),
		"failed", failed.Load(),
		"fail_fast", o.failFast,
		"duration", time.Since(start),
	)

	return results
}

// Future is the pending result of one call started with Go.
type Future[T any] struct {
	done  chan struct{}
	value *T
	err   error
}

// Go starts fn in its own goroutine and returns a Future for its result.
//
//	f := api.Go(ctx, func(ctx context.Context) (*api.BondResponse, error) {
//		return client.BondBy(ctx, model.FIGI("BBG004730N88"))
//	})
//	bond, err := f.Wait()
func Go[T any](ctx context.Context, fn func(context.Context) (*T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn(ctx)
	}()
	return f
}

// Wait blocks until the call resolves.
func (f *Future[T]) Wait() (*T, error) {
	<-f.done
	return f.value, f.err
}

// Done is closed when the call resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
