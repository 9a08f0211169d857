// Package parallel provides a generic, order-preserving bounded worker
// pool, used by the scheduler's plugin phase to run one goroutine per
// work item under a fixed concurrency cap.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Result represents the outcome of processing a single item.
type Result[T any] struct {
	Index   int   // Original index in input slice
	Input   T     // The input item
	Success bool  // Whether processing succeeded
	Error   error // Error if processing failed
}

// WorkFunc is the function type for processing items.
type WorkFunc[T any] func(item T) error

// Execute processes items under a bounded worker pool of the given
// concurrency, via an errgroup.Group gated by a weighted semaphore.
// Returns results in the same order as input items.
func Execute[T any](items []T, parallelism int, work WorkFunc[T]) []Result[T] {
	if len(items) == 0 {
		return nil
	}
	if parallelism < 1 {
		parallelism = 1
	}

	results := make([]Result[T], len(items))
	sem := semaphore.NewWeighted(int64(parallelism))
	g, ctx := errgroup.WithContext(context.Background())

	for i, item := range items {
		i, item := i, item
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context already cancelled; record nothing further and stop.
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			err := work(item)
			results[i] = Result[T]{Index: i, Input: item, Success: err == nil, Error: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ExecuteWithCallback processes items under the same bounded pool as
// Execute and additionally invokes callback for each result as it
// completes. Callback invocation order is not guaranteed.
func ExecuteWithCallback[T any](items []T, parallelism int, work WorkFunc[T], callback func(Result[T])) []Result[T] {
	if len(items) == 0 {
		return nil
	}
	if parallelism < 1 {
		parallelism = 1
	}

	results := make([]Result[T], len(items))
	sem := semaphore.NewWeighted(int64(parallelism))
	g, ctx := errgroup.WithContext(context.Background())

	for i, item := range items {
		i, item := i, item
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			err := work(item)
			r := Result[T]{Index: i, Input: item, Success: err == nil, Error: err}
			results[i] = r
			if callback != nil {
				callback(r)
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// CountSuccesses returns the number of successful results.
func CountSuccesses[T any](results []Result[T]) int {
	count := 0
	for _, r := range results {
		if r.Success {
			count++
		}
	}
	return count
}

// Errors returns all errors from the results.
func Errors[T any](results []Result[T]) []error {
	var errs []error
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, r.Error)
		}
	}
	return errs
}
