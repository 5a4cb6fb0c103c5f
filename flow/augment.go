package flow

import (
	"math"

	"github.com/katalvlaran/flowcut/core"
)

// augment applies one augmenting path to the network.
//
// It walks the parent map backward from sink to source twice: the first
// walk computes the bottleneck (minimum residual capacity on the path),
// the second decreases every forward residual by the bottleneck and
// increases the paired reverse residual by the same amount. The bottleneck
// is strictly positive for any path produced by findAugmentingPath.
//
// Complexity: O(path length).
func augment(g *core.Network, parent []int, source, sink int) (int64, error) {
	bottleneck := int64(math.MaxInt64)
	for v := sink; v != source; v = parent[v] {
		u := parent[v]
		if r := g.Residual(u, v); r < bottleneck {
			bottleneck = r
		}
	}

	for v := sink; v != source; v = parent[v] {
		u := parent[v]
		if err := g.SetResidual(u, v, g.Residual(u, v)-bottleneck); err != nil {
			return 0, err
		}
		if err := g.SetResidual(v, u, g.Residual(v, u)+bottleneck); err != nil {
			return 0, err
		}
	}
	return bottleneck, nil
}
