package flow

import "github.com/katalvlaran/flowcut/core"

// noParent marks a node not yet discovered by the current search.
const noParent = -1

// findAugmentingPath runs one breadth-first pass over edges with positive
// residual capacity and returns a fresh parent map (parent[v] = first
// discovering predecessor of v, noParent if undiscovered) when the sink is
// reachable, nil otherwise.
//
// BFS is deliberate: shortest (fewest-edge) augmenting paths bound the
// number of augmentation rounds to O(V·E) (Edmonds–Karp), which a
// depth-first variant does not guarantee. The pass only reads residual
// capacities; the network is never mutated here.
//
// Complexity: O(V + E) per call. Memory: O(V) for the parent map.
func findAugmentingPath(g *core.Network, source, sink int) []int {
	n := g.NodeCount()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = noParent
	}
	visited := make([]bool, n)
	visited[source] = true

	queue := make([]int, 0, n)
	queue = append(queue, source)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if visited[v] || g.Residual(u, v) <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return parent
			}
			queue = append(queue, v)
		}
	}
	return nil
}

// reachable returns the set of nodes with a positive-residual path from
// source, as a boolean slice indexed by node id. Read-only on g.
//
// Complexity: O(V + E).
func reachable(g *core.Network, source int) []bool {
	visited := make([]bool, g.NodeCount())
	visited[source] = true

	queue := make([]int, 0, g.NodeCount())
	queue = append(queue, source)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if visited[v] || g.Residual(u, v) <= 0 {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}
	return visited
}
