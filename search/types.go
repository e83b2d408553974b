// Package search provides tunable options and error definitions for the
// array-searching algorithms.
package search

import (
	"context"
	"errors"
)

// Sentinel errors for search execution.
var (
	// ErrNotFound is returned when the target does not occur in the slice.
	ErrNotFound = errors.New("search: target not found")

	// ErrNotSorted is returned by the sorted searches when WithVerifySorted
	// detects a descending adjacent pair.
	ErrNotSorted = errors.New("search: slice is not in ascending order")

	// ErrOptionViolation is returned when an invalid Option is supplied,
	// such as a nil context or a nil probe hook.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search run.
type Options struct {
	// Ctx allows cancellation of long linear scans.
	Ctx context.Context

	// OnProbe is called with every index the algorithm inspects and the
	// value found there, in inspection order. Useful for visualising
	// probe traces.
	OnProbe func(i int, v any)

	// VerifySorted makes the sorted searches check ascending order first,
	// trading O(n) time for an explicit ErrNotSorted.
	VerifySorted bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op probe hook
//   - no sortedness verification.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnProbe:      func(int, any) {},
		VerifySorted: false,
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
// A nil ctx is a violation and fails the search with ErrOptionViolation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = ErrOptionViolation

			return
		}
		o.Ctx = ctx
	}
}

// WithOnProbe registers a callback invoked for every inspected index and
// the value at it. A nil fn is a violation and fails the search with
// ErrOptionViolation.
func WithOnProbe(fn func(i int, v any)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation

			return
		}
		o.OnProbe = fn
	}
}

// WithVerifySorted enables the O(n) ascending-order precheck on the
// sorted searches (Binary, Jump, Exponential).
func WithVerifySorted() Option {
	return func(o *Options) {
		o.VerifySorted = true
	}
}

// buildOptions folds opts over DefaultOptions and surfaces any violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
