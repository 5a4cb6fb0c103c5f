package flow

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowcut/core"
)

// MaxFlow computes the maximum flow from source to sink, mutating n in
// place: after it returns, n holds the saturated residual network and
// core.FlowOn reads off the per-edge flow decomposition.
//
// Augmenting paths are selected breadth-first (the Edmonds–Karp rule), so
// the number of rounds is bounded by O(V·E) for any finite integer
// capacities. A source disconnected from the sink is a legitimate input
// and yields 0, not an error.
//
// Errors: ErrNetworkNil, ErrInvalidNode, ErrSourceEqualsSink,
// ErrOptionViolation, or context cancellation (the accumulated flow so far
// is returned alongside the cancellation error).
//
// Complexity: O(V·E²). Memory: O(V) per round.
func MaxFlow(n *core.Network, source, sink int, opts ...Option) (int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = validateEndpoints(n, source, sink); err != nil {
		return 0, err
	}

	var total int64
	for round := 1; ; round++ {
		// cancellation check (once per round)
		select {
		case <-o.Ctx.Done():
			return total, o.Ctx.Err()
		default:
		}

		parent := findAugmentingPath(n, source, sink)
		if parent == nil {
			// sink unreachable: the network is saturated
			break
		}
		bottleneck, err := augment(n, parent, source, sink)
		if err != nil {
			return total, err
		}
		total += bottleneck

		o.Logger.Debug("augmented",
			zap.Int("round", round),
			zap.Int64("bottleneck", bottleneck),
			zap.Int64("total", total),
		)
		o.OnAugment(round, bottleneck)
	}
	return total, nil
}

// EdmondsKarp is MaxFlow under its textbook name.
func EdmondsKarp(n *core.Network, source, sink int, opts ...Option) (int64, error) {
	return MaxFlow(n, source, sink, opts...)
}

// validateEndpoints rejects nil networks, out-of-range ids, and
// coinciding source/sink before any mutation happens.
func validateEndpoints(n *core.Network, source, sink int) error {
	if n == nil {
		return ErrNetworkNil
	}
	if source < 0 || source >= n.NodeCount() {
		return fmt.Errorf("source %d: %w", source, ErrInvalidNode)
	}
	if sink < 0 || sink >= n.NodeCount() {
		return fmt.Errorf("sink %d: %w", sink, ErrInvalidNode)
	}
	if source == sink {
		return ErrSourceEqualsSink
	}
	return nil
}
