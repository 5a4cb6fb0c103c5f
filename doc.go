// Package flowcut computes maximum flows and minimum edge cuts on
// capacitated directed networks.
//
// 🚀 What is flowcut?
//
//	A small, focused engine built around one data structure and one method:
//		• core/ — the residual network: per-ordered-pair capacity records
//		  with synthetic reverse (undo) edges guaranteed by construction
//		• flow/ — breadth-first augmenting-path search (Edmonds–Karp),
//		  flow augmentation, and min-cut extraction; Dinic as the
//		  high-throughput alternative
//
// ✨ Why choose flowcut?
//
//   - Dense integer node ids 0..N-1 — no name registry in the hot path
//   - Eager, all-or-nothing construction with sentinel errors
//   - Side-effect-free path finder, round-scoped parent maps
//   - BFS path selection guarantees the polynomial Edmonds–Karp bound
//
// Quick ASCII example:
//
//	    0───▶1
//	    │    │
//	    ▼    ▼
//	    2───▶3
//
//	four nodes, four capacitated edges; MaxFlow(n, 0, 3) saturates the
//	network and MinCut(n, 0, 3) reads off the partition.
//
// Dive into the core/ and flow/ package docs for the full API, complexity
// notes, and worked examples.
package flowcut
