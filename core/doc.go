// Package core defines the Network type: the residual network a single
// max-flow computation owns and mutates.
//
// A Network addresses capacity records by ordered node pair (u,v) over a
// dense id space 0..N-1. Each record carries a fixed original capacity and
// a mutable residual capacity. For every caller-declared edge the reverse
// record is materialized at construction with zero capacity, so the flow
// engine can always push undo capacity without an insertion path in the
// hot loop.
//
// Construction is all-or-nothing: New validates every declared edge before
// any record is created and never returns a partially built network.
//
// Errors:
//
//	ErrInvalidNode      - node id outside [0, nodeCount).
//	ErrSelfLoop         - declared edge with From == To.
//	ErrNegativeCapacity - declared edge with Capacity < 0.
//	ErrDuplicateEdge    - the same ordered pair declared twice.
//	ErrUnknownEdge      - SetResidual on a pair with no record.
//	ErrNegativeResidual - SetResidual with a negative value.
//
// A Network instance is exclusively owned by one computation; concurrent
// use of the same instance is not supported. Use Clone to fan one topology
// out to independent computations.
package core
