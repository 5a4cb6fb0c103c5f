package core

import "gonum.org/v1/gonum/mat"

// CapacityMatrix exports the original capacities as a dense N×N matrix:
// entry (u,v) is Capacity(u,v). Useful for matrix-based post-processing
// and for cross-checking cut capacities.
//
// Complexity: O(N²) allocation, O(E) fill.
func (g *Network) CapacityMatrix() *mat.Dense {
	m := mat.NewDense(g.n, g.n, nil)
	for a, r := range g.records {
		if r.declared {
			m.Set(a.from, a.to, float64(r.original))
		}
	}
	return m
}

// ResidualMatrix exports the current residual capacities as a dense N×N
// matrix: entry (u,v) is Residual(u,v), including synthetic reverse
// records.
//
// Complexity: O(N²) allocation, O(E) fill.
func (g *Network) ResidualMatrix() *mat.Dense {
	m := mat.NewDense(g.n, g.n, nil)
	for a, r := range g.records {
		m.Set(a.from, a.to, float64(r.residual))
	}
	return m
}
