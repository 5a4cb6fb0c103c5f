package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/flowcut/core"
)

// textbookNodes maps the classic 6-node example ids to names:
// s=0, w=1, x=2, z=3, y=4, t=5.
const (
	nodeS = 0
	nodeW = 1
	nodeX = 2
	nodeZ = 3
	nodeY = 4
	nodeT = 5
)

// textbookEdges is the classic 6-node network with max flow 19 and
// minimum cut S = {s, z}.
func textbookEdges() []core.Edge {
	return []core.Edge{
		{From: nodeS, To: nodeW, Capacity: 4},
		{From: nodeS, To: nodeX, Capacity: 7},
		{From: nodeS, To: nodeZ, Capacity: 10},
		{From: nodeW, To: nodeY, Capacity: 2},
		{From: nodeW, To: nodeT, Capacity: 10},
		{From: nodeX, To: nodeW, Capacity: 2},
		{From: nodeX, To: nodeZ, Capacity: 2},
		{From: nodeX, To: nodeY, Capacity: 10},
		{From: nodeZ, To: nodeY, Capacity: 2},
		{From: nodeZ, To: nodeT, Capacity: 6},
		{From: nodeY, To: nodeT, Capacity: 7},
	}
}

// textbookNetwork builds the classic 6-node network.
func textbookNetwork(t testing.TB) *core.Network {
	t.Helper()
	n, err := core.New(6, textbookEdges())
	require.NoError(t, err)
	return n
}

// randomNetwork generates a directed network with nodeCount nodes, an
// edge for each ordered pair with probability p, and capacities uniform
// in [1, maxCap]. Deterministic for a given seed.
func randomNetwork(t testing.TB, nodeCount int, p float64, maxCap int64, seed uint64) *core.Network {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var edges []core.Edge
	for u := 0; u < nodeCount; u++ {
		for v := 0; v < nodeCount; v++ {
			if u == v {
				continue
			}
			if rng.Float64() < p {
				edges = append(edges, core.Edge{From: u, To: v, Capacity: rng.Int63n(maxCap) + 1})
			}
		}
	}
	n, err := core.New(nodeCount, edges)
	require.NoError(t, err)
	return n
}

// checkFlowInvariants asserts, on a post-run network, that every declared
// edge respects 0 ≤ FlowOn ≤ Capacity and that every node other than
// source and sink conserves flow.
func checkFlowInvariants(t *testing.T, n *core.Network, source, sink int, total int64) {
	t.Helper()

	in := make([]int64, n.NodeCount())
	out := make([]int64, n.NodeCount())
	for _, e := range n.Edges() {
		f := n.FlowOn(e.From, e.To)
		require.GreaterOrEqual(t, f, int64(0), "flow on %d→%d below zero", e.From, e.To)
		require.LessOrEqual(t, f, e.Capacity, "flow on %d→%d above capacity", e.From, e.To)
		out[e.From] += f
		in[e.To] += f
	}
	for v := 0; v < n.NodeCount(); v++ {
		if v == source || v == sink {
			continue
		}
		require.Equal(t, in[v], out[v], "conservation violated at node %d", v)
	}
	require.Equal(t, total, out[source]-in[source], "net flow out of source")
	require.Equal(t, total, in[sink]-out[sink], "net flow into sink")
}
