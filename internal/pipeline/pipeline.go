// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pipeline composes validators and platform variants into commands.
//
// A command is always validator first, variant second. The variant only ever
// receives the validator's normalized output, never the raw call arguments.
package pipeline

import "context"

// Validator normalizes raw call arguments into T, or rejects them.
type Validator[T any] func(args ...any) (T, error)

// Variant performs the platform effect for normalized arguments T.
type Variant[T, R any] func(ctx context.Context, args T) (R, error)

// Command is a validator and variant composed into a single callable.
type Command[R any] func(ctx context.Context, args ...any) (R, error)

// Compose returns the right-to-left composition of fns: Compose(f, g)(x) == f(g(x)).
// With no functions it returns the identity, with one it returns that function.
func Compose[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return func(v T) T { return v }
	case 1:
		return fns[0]
	}

	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}

		return v
	}
}

// Chain composes variant after validator. A validator error is returned as is
// and the variant is not called.
func Chain[T, R any](
	variant func(ctx context.Context, args T) (R, error),
	validator func(args ...any) (T, error),
) Command[R] {
	return func(ctx context.Context, args ...any) (R, error) {
		normalized, err := validator(args...)
		if err != nil {
			var zero R
			return zero, err
		}

		return variant(ctx, normalized)
	}
}

// Identity is the validator used by commands that define none.
// It returns the raw arguments unchanged.
func Identity(args ...any) ([]any, error) {
	return args, nil
}

// Fail returns a command that always fails with err and never runs anything.
func Fail[R any](err error) Command[R] {
	return func(context.Context, ...any) (R, error) {
		var zero R
		return zero, err
	}
}

// Erase converts cmd into a Command[any]. Failed calls yield a nil result
// rather than a typed nil.
func Erase[R any](cmd Command[R]) Command[any] {
	return func(ctx context.Context, args ...any) (any, error) {
		v, err := cmd(ctx, args...)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}
