package flow

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/flowcut/core"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows), mutating n in place exactly
// like MaxFlow. It produces the same flow value and the same saturated
// residual network semantics; only the augmentation order differs.
//
// Steps per phase:
//  1. BFS from the source assigns each node its level (edge distance)
//     over positive-residual edges.
//  2. If the sink has no level, the network is saturated: done.
//  3. DFS pushes blocking flow along level-increasing edges, with one
//     iteration cursor per node so saturated branches are never rescanned.
//     WithLevelRebuildInterval forces an early return to step 1.
//
// Errors: as MaxFlow.
//
// Complexity: O(V²·E) in general, O(E·√V) on unit-capacity networks.
func Dinic(n *core.Network, source, sink int, opts ...Option) (int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = validateEndpoints(n, source, sink); err != nil {
		return 0, err
	}

	var total int64
	pushes := 0
	for {
		// cancellation check before each level-graph rebuild
		if err = o.Ctx.Err(); err != nil {
			return total, err
		}

		level := buildLevels(n, source)
		if level[sink] < 0 {
			break
		}

		iter := make([]int, n.NodeCount())
		for {
			if err = o.Ctx.Err(); err != nil {
				return total, err
			}
			pushed, err := dinicPush(n, level, iter, source, sink, math.MaxInt64)
			if err != nil {
				return total, err
			}
			if pushed == 0 {
				break
			}
			total += pushed
			pushes++

			o.Logger.Debug("blocking flow push",
				zap.Int("push", pushes),
				zap.Int64("amount", pushed),
				zap.Int64("total", total),
			)
			o.OnAugment(pushes, pushed)

			if o.LevelRebuildInterval > 0 && pushes%o.LevelRebuildInterval == 0 {
				break
			}
		}
	}
	return total, nil
}

// buildLevels runs BFS over positive-residual edges and returns each
// node's level (edge distance from source), -1 when unreachable.
func buildLevels(g *core.Network, source int) []int {
	level := make([]int, g.NodeCount())
	for i := range level {
		level[i] = -1
	}
	level[source] = 0

	queue := make([]int, 0, g.NodeCount())
	queue = append(queue, source)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range g.Neighbors(u) {
			if level[v] < 0 && g.Residual(u, v) > 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return level
}

// dinicPush sends at most available flow from u toward sink along
// level-increasing edges, updating residual capacities in place.
// iter[u] remembers how far u's neighbor list has been consumed within
// the current phase.
func dinicPush(g *core.Network, level, iter []int, u, sink int, available int64) (int64, error) {
	if u == sink {
		return available, nil
	}
	nbrs := g.Neighbors(u)
	for ; iter[u] < len(nbrs); iter[u]++ {
		v := nbrs[iter[u]]
		capUV := g.Residual(u, v)
		if capUV <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		pushed, err := dinicPush(g, level, iter, v, sink, send)
		if err != nil {
			return 0, err
		}
		if pushed > 0 {
			if err = g.SetResidual(u, v, g.Residual(u, v)-pushed); err != nil {
				return 0, err
			}
			if err = g.SetResidual(v, u, g.Residual(v, u)+pushed); err != nil {
				return 0, err
			}
			return pushed, nil
		}
	}
	return 0, nil
}
