// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_Zero(t *testing.T) {
	id := Compose[int]()
	for _, x := range []int{-3, 0, 1, 42} {
		assert.Equal(t, x, id(x))
	}

	assert.Equal(t, "unchanged", Compose[string]()("unchanged"))
}

func TestCompose_One(t *testing.T) {
	double := func(x int) int { return x * 2 }
	composed := Compose(double)

	for _, x := range []int{-3, 0, 1, 42} {
		assert.Equal(t, double(x), composed(x))
	}
}

func TestCompose_RightToLeft(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }

	for _, x := range []int{-3, 0, 1, 42} {
		assert.Equal(t, inc(double(x)), Compose(inc, double)(x), "f(g(x))")
		assert.Equal(t, double(inc(x)), Compose(double, inc)(x), "g(f(x))")
	}

	var order []string

	tag := func(name string) func(string) string {
		return func(s string) string {
			order = append(order, name)
			return s + name
		}
	}

	got := Compose(tag("a"), tag("b"), tag("c"))("")
	assert.Equal(t, "cba", got)
	assert.Equal(t, []string{"c", "b", "a"}, order, "the last function receives the input first")
}

func TestChain_ValidatorRunsFirst(t *testing.T) {
	var calls []string

	validator := func(args ...any) (int, error) {
		calls = append(calls, "validate")
		return strconv.Atoi(args[0].(string))
	}
	variant := func(_ context.Context, n int) (string, error) {
		calls = append(calls, "variant")
		return strings.Repeat("x", n), nil
	}

	got, err := Chain(variant, validator)(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "xxx", got)
	assert.Equal(t, []string{"validate", "variant"}, calls)
}

func TestChain_ValidatorErrorShortCircuits(t *testing.T) {
	invalid := errors.New("invalid")
	called := false

	cmd := Chain(
		func(context.Context, string) (int, error) {
			called = true
			return 1, nil
		},
		func(...any) (string, error) { return "", invalid },
	)

	v, err := cmd(context.Background(), "anything")
	require.ErrorIs(t, err, invalid)
	assert.Zero(t, v)
	assert.False(t, called, "the variant must not see rejected arguments")
}

func TestChain_IdentityPassesArgsUnchanged(t *testing.T) {
	var seen []any

	cmd := Chain(func(_ context.Context, args []any) (int, error) {
		seen = args
		return len(args), nil
	}, Identity)

	cb := func(int) {}
	n, err := cmd(context.Background(), "a", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []any{"a", 2, nil}, seen)

	_, err = cmd(context.Background(), cb)
	require.NoError(t, err)
	require.Len(t, seen, 1)
}

func TestFail(t *testing.T) {
	boom := errors.New("boom")
	v, err := Fail[*int](boom)(context.Background(), "ignored")
	require.ErrorIs(t, err, boom)
	assert.Nil(t, v)
}

func TestErase(t *testing.T) {
	t.Run("success keeps the value", func(t *testing.T) {
		cmd := Erase(Command[int](func(context.Context, ...any) (int, error) { return 5, nil }))
		v, err := cmd(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 5, v)
	})

	t.Run("failure yields untyped nil", func(t *testing.T) {
		cmd := Erase(Fail[*int](errors.New("boom")))
		v, err := cmd(context.Background())
		require.Error(t, err)
		assert.True(t, v == nil)
	})
}
