package service

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// offload runs work on its own goroutine so the caller can stop waiting for
// a slow key derivation. The caller must hold one unit of busy.
//
// If ctx ends before work returns, offload returns ctx.Err() and handedOff
// is true: the goroutine now owns the busy unit and releases it when work
// finally returns. Otherwise the caller still owns it.
func offload[T any](ctx context.Context, busy *semaphore.Weighted, work func() (T, error)) (value T, handedOff bool, err error) {
	type result struct {
		value T
		err   error
	}

	done := make(chan result, 1)
	var (
		mu        sync.Mutex
		abandoned bool
	)

	go func() {
		value, err := work()

		mu.Lock()
		defer mu.Unlock()
		if abandoned {
			busy.Release(1)
			return
		}
		done <- result{value: value, err: err}
	}()

	select {
	case r := <-done:
		return r.value, false, r.err
	case <-ctx.Done():
		mu.Lock()
		defer mu.Unlock()
		select {
		case <-done:
			// finished in the meantime, the caller keeps the unit
			return value, false, ctx.Err()
		default:
		}
		abandoned = true
		return value, true, ctx.Err()
	}
}
