package flow

import "github.com/katalvlaran/flowcut/core"

// Cut is an s-t partition of the network's nodes.
type Cut struct {
	// S holds the nodes reachable from the source in the residual
	// network, ascending. The source is always in S.
	S []int

	// T holds the remaining nodes, ascending. On a saturated network the
	// sink is always in T.
	T []int

	// Capacity is the sum of original capacities of the declared edges
	// crossing from S to T. On a saturated network this equals the
	// maximum flow (max-flow/min-cut duality).
	Capacity int64

	// Edges lists the declared S→T crossing edges in declaration order;
	// on a saturated network each one carries flow equal to its capacity.
	Edges []core.Edge
}

// MinCut partitions the nodes by one reachability pass over the current
// residual capacities and reports the crossing declared edges.
//
// It is intended to run after MaxFlow or Dinic has saturated the network.
// If an augmenting path still exists, the partition is computed all the
// same and returned together with ErrNotSaturated, so the caller can
// decide whether to treat it as authoritative. The pass is read-only and
// idempotent: repeated calls on an unchanged network return equal cuts.
//
// Errors: ErrNetworkNil, ErrInvalidNode, ErrSourceEqualsSink,
// ErrOptionViolation, ErrNotSaturated (with a usable partition).
//
// Complexity: O(V + E).
func MinCut(n *core.Network, source, sink int, opts ...Option) (*Cut, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateEndpoints(n, source, sink); err != nil {
		return nil, err
	}
	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}

	reach := reachable(n, source)

	cut := &Cut{}
	for v := 0; v < n.NodeCount(); v++ {
		if reach[v] {
			cut.S = append(cut.S, v)
		} else {
			cut.T = append(cut.T, v)
		}
	}
	for _, e := range n.Edges() {
		if reach[e.From] && !reach[e.To] {
			cut.Capacity += e.Capacity
			cut.Edges = append(cut.Edges, e)
		}
	}

	if reach[sink] {
		return cut, ErrNotSaturated
	}
	return cut, nil
}
