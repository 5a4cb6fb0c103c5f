package flow_test

import (
	"fmt"

	"github.com/katalvlaran/flowcut/core"
	"github.com/katalvlaran/flowcut/flow"
)

// ExampleMaxFlow computes the maximum flow of the classic 6-node network
// (s=0, w=1, x=2, z=3, y=4, t=5).
func ExampleMaxFlow() {
	n, _ := core.New(6, []core.Edge{
		{From: 0, To: 1, Capacity: 4},
		{From: 0, To: 2, Capacity: 7},
		{From: 0, To: 3, Capacity: 10},
		{From: 1, To: 4, Capacity: 2},
		{From: 1, To: 5, Capacity: 10},
		{From: 2, To: 1, Capacity: 2},
		{From: 2, To: 3, Capacity: 2},
		{From: 2, To: 4, Capacity: 10},
		{From: 3, To: 4, Capacity: 2},
		{From: 3, To: 5, Capacity: 6},
		{From: 4, To: 5, Capacity: 7},
	})

	maxFlow, _ := flow.MaxFlow(n, 0, 5)
	fmt.Println(maxFlow)
	// Output:
	// 19
}

// ExampleMinCut reads off the minimum cut once the network is saturated.
func ExampleMinCut() {
	n, _ := core.New(6, []core.Edge{
		{From: 0, To: 1, Capacity: 4},
		{From: 0, To: 2, Capacity: 7},
		{From: 0, To: 3, Capacity: 10},
		{From: 1, To: 4, Capacity: 2},
		{From: 1, To: 5, Capacity: 10},
		{From: 2, To: 1, Capacity: 2},
		{From: 2, To: 3, Capacity: 2},
		{From: 2, To: 4, Capacity: 10},
		{From: 3, To: 4, Capacity: 2},
		{From: 3, To: 5, Capacity: 6},
		{From: 4, To: 5, Capacity: 7},
	})

	_, _ = flow.MaxFlow(n, 0, 5)
	cut, _ := flow.MinCut(n, 0, 5)
	fmt.Println(cut.S, cut.T, cut.Capacity)
	// Output:
	// [0 3] [1 2 4 5] 19
}

// ExampleDinic runs the alternative engine on a small two-path network.
// Graph:
//
//	0→1(5)→3(4)
//	0→2(3)→3(6)
//
// Expected max-flow = 4 + 3 = 7
func ExampleDinic() {
	n, _ := core.New(4, []core.Edge{
		{From: 0, To: 1, Capacity: 5},
		{From: 1, To: 3, Capacity: 4},
		{From: 0, To: 2, Capacity: 3},
		{From: 2, To: 3, Capacity: 6},
	})

	maxFlow, _ := flow.Dinic(n, 0, 3)
	fmt.Println(maxFlow)
	// Output:
	// 7
}
