// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pending provides a settle-once asynchronous result.
package pending

import (
	"context"
	"errors"
	"sync"
)

// ErrNilRejection is stored when Reject is called with a nil error.
var ErrNilRejection = errors.New("rejected without an error")

// Result is the eventual outcome of an asynchronous operation.
// It is settled exactly once, by Resolve or Reject; later calls are ignored.
// The zero value is not usable, create one with New.
type Result[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// New returns an unsettled Result.
func New[T any]() *Result[T] {
	return &Result[T]{done: make(chan struct{})}
}

// Resolve settles r with v. It reports whether this call settled r.
func (r *Result[T]) Resolve(v T) bool {
	return r.settle(v, nil)
}

// Reject settles r with err. It reports whether this call settled r.
func (r *Result[T]) Reject(err error) bool {
	if err == nil {
		err = ErrNilRejection
	}

	var zero T

	return r.settle(zero, err)
}

func (r *Result[T]) settle(v T, err error) bool {
	settled := false

	r.once.Do(func() {
		r.value = v
		r.err = err
		settled = true

		close(r.done)
	})

	return settled
}

// Done is closed once r is settled.
func (r *Result[T]) Done() <-chan struct{} {
	return r.done
}

// Settled reports whether r has been resolved or rejected.
func (r *Result[T]) Settled() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Wait blocks until r is settled or ctx is done.
// Giving up on ctx does not affect the operation behind r.
func (r *Result[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
