// Package flow implements max-flow and min-cut computation over a
// core.Network: a residual network with dense integer node ids and
// guaranteed reverse (undo) records.
//
// The engine is the Ford–Fulkerson method with breadth-first augmenting
// path selection (the Edmonds–Karp refinement):
//
//   - findAugmentingPath: one BFS over positive-residual edges, producing
//     a fresh, round-scoped parent map; side-effect free.
//
//   - augment: backward bottleneck walk plus backward apply walk —
//     forward residuals decrease, paired reverse residuals increase.
//
//   - MaxFlow: repeats search + augment until the sink is unreachable and
//     accumulates the total; EdmondsKarp is the same routine under its
//     textbook name.
//
//   - MinCut: one reachability pass over the saturated residual network;
//     reachable nodes form S, the rest T, and the declared S→T edges are
//     the minimum cut (max-flow/min-cut duality). Invoked before
//     saturation it still returns the partition, flagged ErrNotSaturated.
//
//   - Dinic: level graph + blocking flow over the same Network, for dense
//     or high-capacity inputs.
//
// # API
//
// All routines share the endpoint validation and option surface:
//
//	func MaxFlow(n *core.Network, source, sink int, opts ...Option) (int64, error)
//	func Dinic(n *core.Network, source, sink int, opts ...Option) (int64, error)
//	func MinCut(n *core.Network, source, sink int, opts ...Option) (*Cut, error)
//
// Use DefaultOptions() semantics via functional options:
//
//	flow.WithContext(ctx)                  // cancellation, checked per round
//	flow.WithLogger(log)                   // zap Debug entry per augmentation
//	flow.WithOnAugment(fn)                 // hook per augmentation
//	flow.WithLevelRebuildInterval(n)       // Dinic phase tuning
//
// MaxFlow and Dinic mutate the network in place; a Network instance is
// exclusively owned by one computation (clone first to fan out). There is
// no internal synchronization and no blocking: the computation is
// CPU-bound and runs to completion unless the context is canceled.
//
// # Errors
//
//	ErrNetworkNil       - nil *core.Network.
//	ErrInvalidNode      - source or sink outside [0, N).
//	ErrSourceEqualsSink - source == sink.
//	ErrNotSaturated     - MinCut before saturation (partition still returned).
//	ErrOptionViolation  - invalid functional option.
//	context.Canceled / context.DeadlineExceeded - if the context ends.
//
// Complexity: MaxFlow O(V·E²), Dinic O(V²·E) general / O(E·√V) unit
// capacities, MinCut O(V + E).
package flow
