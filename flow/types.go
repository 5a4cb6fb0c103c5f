// Package flow provides tunable options and error definitions for the
// max-flow and min-cut routines over a core.Network.
package flow

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for flow computation.
var (
	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("flow: network is nil")

	// ErrInvalidNode is returned when source or sink is outside [0, N).
	ErrInvalidNode = errors.New("flow: source or sink out of range")

	// ErrSourceEqualsSink is returned when source and sink coincide.
	ErrSourceEqualsSink = errors.New("flow: source equals sink")

	// ErrNotSaturated is returned by MinCut when the network still has an
	// augmenting path, so the returned partition is not a genuine minimum
	// cut. The partition is returned alongside this sentinel.
	ErrNotSaturated = errors.New("flow: network not saturated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")
)

// Option configures flow routines via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the routine is invoked.
type Option func(*Options)

// Options holds parameters shared by MaxFlow, Dinic and MinCut.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per round.
	Ctx context.Context

	// Logger receives one Debug entry per augmentation. Defaults to a nop
	// logger.
	Logger *zap.Logger

	// OnAugment is called after each successful augmentation with the
	// 1-based round number and the bottleneck pushed that round.
	OnAugment func(round int, bottleneck int64)

	// LevelRebuildInterval, if > 0, makes Dinic rebuild its level graph
	// every N blocking-flow pushes. Ignored by MaxFlow and MinCut.
	LevelRebuildInterval int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with production-safe defaults:
//   - context.Background()
//   - zap.NewNop() logger
//   - no-op OnAugment hook
//   - no forced level rebuilds (LevelRebuildInterval == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:                  context.Background(),
		Logger:               zap.NewNop(),
		OnAugment:            func(int, int64) {},
		LevelRebuildInterval: 0,
		err:                  nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes per-augmentation Debug logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAugment registers a callback to run after each augmentation.
func WithOnAugment(fn func(round int, bottleneck int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithLevelRebuildInterval makes Dinic rebuild its level graph every n
// pushes.
//
//	n > 0:  rebuild every n pushes
//	n == 0: explicit "only when the blocking flow is exhausted"
//	n < 0:  invalid option → ErrOptionViolation
func WithLevelRebuildInterval(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: LevelRebuildInterval cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.LevelRebuildInterval = n
		}
	}
}

// buildOptions folds opts over DefaultOptions and surfaces any recorded
// option violation.
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
