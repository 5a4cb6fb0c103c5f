package core

import "errors"

// Sentinel errors for network construction and mutation.
var (
	// ErrInvalidNode indicates a node id outside the dense id space [0, N).
	ErrInvalidNode = errors.New("core: node id out of range")

	// ErrSelfLoop indicates a declared edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeCapacity indicates a declared edge with negative capacity.
	ErrNegativeCapacity = errors.New("core: negative edge capacity")

	// ErrDuplicateEdge indicates the same ordered pair was declared twice.
	// Parallel edges must be pre-merged by the caller.
	ErrDuplicateEdge = errors.New("core: duplicate edge declaration")

	// ErrUnknownEdge indicates a mutation on an ordered pair that has no
	// capacity record.
	ErrUnknownEdge = errors.New("core: no record for edge")

	// ErrNegativeResidual indicates an attempt to set a residual capacity
	// below zero. Residual capacities are non-negative at all times.
	ErrNegativeResidual = errors.New("core: negative residual capacity")
)

// Edge is one caller-declared capacity triple From→To.
type Edge struct {
	// From is the tail node id.
	From int

	// To is the head node id.
	To int

	// Capacity is the fixed original capacity of the edge.
	Capacity int64
}
