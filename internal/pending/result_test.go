// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pending

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestResult_Resolve(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := New[int]()
	assert.False(t, r.Settled())

	go func() {
		time.Sleep(10 * time.Millisecond)
		r.Resolve(7)
	}()

	v, err := r.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, r.Settled())
}

func TestResult_Reject(t *testing.T) {
	boom := errors.New("boom")
	r := New[string]()
	assert.True(t, r.Reject(boom))

	v, err := r.Wait(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, v)
}

func TestResult_RejectNil(t *testing.T) {
	r := New[int]()
	r.Reject(nil)

	_, err := r.Wait(context.Background())
	require.ErrorIs(t, err, ErrNilRejection)
}

func TestResult_FirstSettleWins(t *testing.T) {
	t.Run("resolve then reject", func(t *testing.T) {
		r := New[int]()
		assert.True(t, r.Resolve(1))
		assert.False(t, r.Reject(errors.New("late")))
		assert.False(t, r.Resolve(2))

		v, err := r.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, v)
	})

	t.Run("reject then resolve", func(t *testing.T) {
		boom := errors.New("boom")
		r := New[int]()
		assert.True(t, r.Reject(boom))
		assert.False(t, r.Resolve(1))

		_, err := r.Wait(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("concurrent settles", func(t *testing.T) {
		r := New[int]()

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)

		for i := range 50 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				if r.Resolve(i) {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, 1, wins)
	})
}

func TestResult_WaitContext(t *testing.T) {
	r := New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, r.Settled(), "abandoning Wait must not settle the result")

	r.Resolve(3)

	v, err := r.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestResult_DoneClosedOnResolve(t *testing.T) {
	r := New[string]()
	r.Resolve("192.168.1.1")

	select {
	case <-r.Done():
	default:
		t.Fatal("Done must be closed once the result is resolved")
	}

	v, err := r.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1", v)
}
