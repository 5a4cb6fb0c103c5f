package core

import "fmt"

// arc is an ordered node pair addressing one capacity record.
type arc struct {
	from, to int
}

// record holds the fixed original capacity and the mutable residual
// capacity of one ordered pair. declared marks caller-supplied edges;
// a synthetic reverse record keeps declared == false.
type record struct {
	original int64
	residual int64
	declared bool
}

// Network is the residual network one max-flow computation operates on.
//
// Records exist for every declared edge and for the reverse of every
// declared edge; any other ordered pair behaves as a zero-capacity record.
// Original capacities never change after New returns; residual capacities
// are mutated by the flow engine via SetResidual.
type Network struct {
	n       int
	records map[arc]*record

	// adj[u] lists every v with an addressable record (u,v), in record
	// creation order: declared edges first, then synthetic reverses.
	adj [][]int

	// edges keeps declared edges in declaration order.
	edges []Edge
}

// New builds a Network over nodeCount nodes from the declared edges.
//
// Validation is eager and construction is all-or-nothing: on any
// ErrInvalidNode, ErrSelfLoop, ErrNegativeCapacity or ErrDuplicateEdge the
// returned network is nil. For every declared edge (u,v) the residual
// capacity starts at the original capacity; the reverse record (v,u) starts
// at zero unless the caller declares it separately.
//
// Complexity: O(N + E). Memory: O(N + E).
func New(nodeCount int, edges []Edge) (*Network, error) {
	if nodeCount <= 0 {
		return nil, fmt.Errorf("node count %d: %w", nodeCount, ErrInvalidNode)
	}

	// Validate every edge before touching any storage.
	seen := make(map[arc]struct{}, len(edges))
	for _, e := range edges {
		if e.From < 0 || e.From >= nodeCount {
			return nil, fmt.Errorf("edge %d→%d: from node: %w", e.From, e.To, ErrInvalidNode)
		}
		if e.To < 0 || e.To >= nodeCount {
			return nil, fmt.Errorf("edge %d→%d: to node: %w", e.From, e.To, ErrInvalidNode)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("edge %d→%d: %w", e.From, e.To, ErrSelfLoop)
		}
		if e.Capacity < 0 {
			return nil, fmt.Errorf("edge %d→%d capacity %d: %w", e.From, e.To, e.Capacity, ErrNegativeCapacity)
		}
		a := arc{e.From, e.To}
		if _, dup := seen[a]; dup {
			return nil, fmt.Errorf("edge %d→%d: %w", e.From, e.To, ErrDuplicateEdge)
		}
		seen[a] = struct{}{}
	}

	g := &Network{
		n:       nodeCount,
		records: make(map[arc]*record, 2*len(edges)),
		adj:     make([][]int, nodeCount),
		edges:   make([]Edge, len(edges)),
	}
	copy(g.edges, edges)

	for _, e := range edges {
		r := g.ensure(e.From, e.To)
		r.original = e.Capacity
		r.residual = e.Capacity
		r.declared = true
	}
	// Guarantee the undo direction for every declared edge.
	for _, e := range edges {
		g.ensure(e.To, e.From)
	}

	return g, nil
}

// ensure returns the record for (u,v), creating a zero record and the
// adjacency entry on first touch.
func (g *Network) ensure(u, v int) *record {
	a := arc{u, v}
	if r, ok := g.records[a]; ok {
		return r
	}
	r := &record{}
	g.records[a] = r
	g.adj[u] = append(g.adj[u], v)
	return r
}

// valid reports whether id is inside the dense id space.
func (g *Network) valid(id int) bool { return id >= 0 && id < g.n }

// NodeCount returns N, the size of the dense id space.
func (g *Network) NodeCount() int { return g.n }

// Capacity returns the original capacity of (u,v); zero for any pair
// without a declared edge or with ids out of range.
func (g *Network) Capacity(u, v int) int64 {
	if r, ok := g.records[arc{u, v}]; ok {
		return r.original
	}
	return 0
}

// Residual returns the current residual capacity of (u,v); zero for any
// pair without a record or with ids out of range.
func (g *Network) Residual(u, v int) int64 {
	if r, ok := g.records[arc{u, v}]; ok {
		return r.residual
	}
	return 0
}

// FlowOn returns the flow currently carried by the declared edge (u,v),
// defined as originalCapacity − residualCapacity and clamped at zero so
// that 0 ≤ FlowOn ≤ Capacity holds even when the opposite direction is
// also declared and carries flow.
func (g *Network) FlowOn(u, v int) int64 {
	r, ok := g.records[arc{u, v}]
	if !ok {
		return 0
	}
	if f := r.original - r.residual; f > 0 {
		return f
	}
	return 0
}

// Declared reports whether (u,v) was supplied by the caller at New.
func (g *Network) Declared(u, v int) bool {
	r, ok := g.records[arc{u, v}]
	return ok && r.declared
}

// Edges returns the declared edges in declaration order.
// The returned slice is a copy and safe to retain.
func (g *Network) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns every node v with an addressable record (u,v),
// i.e. all candidates for residual traversal from u. The returned slice
// is internal storage: callers must not modify it.
func (g *Network) Neighbors(u int) []int {
	if !g.valid(u) {
		return nil
	}
	return g.adj[u]
}

// SetResidual sets the residual capacity of (u,v) to value.
//
// Returns ErrInvalidNode for ids out of range, ErrUnknownEdge when (u,v)
// has no record, and ErrNegativeResidual for value < 0. Passing a negative
// value is a programming error in the caller, not a runtime input
// condition; it is rejected rather than clamped.
func (g *Network) SetResidual(u, v int, value int64) error {
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("edge %d→%d: %w", u, v, ErrInvalidNode)
	}
	if value < 0 {
		return fmt.Errorf("edge %d→%d value %d: %w", u, v, value, ErrNegativeResidual)
	}
	r, ok := g.records[arc{u, v}]
	if !ok {
		return fmt.Errorf("edge %d→%d: %w", u, v, ErrUnknownEdge)
	}
	r.residual = value
	return nil
}

// Clone returns a deep copy of the network, including current residual
// state. The copy is independently owned: mutations on either side are
// invisible to the other.
func (g *Network) Clone() *Network {
	out := &Network{
		n:       g.n,
		records: make(map[arc]*record, len(g.records)),
		adj:     make([][]int, g.n),
		edges:   make([]Edge, len(g.edges)),
	}
	copy(out.edges, g.edges)
	for a, r := range g.records {
		cp := *r
		out.records[a] = &cp
	}
	for u, nbrs := range g.adj {
		out.adj[u] = append([]int(nil), nbrs...)
	}
	return out
}
