// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/metagraph/core"
)

// Closure computes the transitive closure A* of g's adjacency matrix: cell
// (i, j) of A* holds one Triple per distinct simple edge chain from i to j.
// The fixpoint iterates Aⁿ⁺¹ = Aⁿ×A at most |GS| times; chains there compose
// as
//
//	Coinputs'  = (CI1 ∪ CI2) − ({i} ∪ CO1)
//	Cooutputs' = (CO1 ∪ CO2 ∪ {k}) − {j}
//	Chain'     = Chain1 ++ Chain2
//
// where k is the intermediate element joining the two legs. Chains that
// revisit an edge collapse onto the shorter chain over the same edge set, so
// the iteration terminates on cyclic inputs too.
//
// Complexity: O(|GS|⁴·t²) worst case. Pass WithContext to make the loop
// cancellable; it checks the context once per iteration.
func Closure(g *core.Metagraph, opts ...Option) (*TripleMatrix, error) {
	if g == nil {
		return nil, ErrNilMetagraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	adj, err := Adjacency(g)
	if err != nil {
		return nil, err
	}

	star := adj.Clone()
	prev := adj
	for it := 0; it < g.Size(); it++ {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		next := multiply(prev, adj)
		if !merge(star, next) && next.Equal(prev) {
			break
		}
		prev = next
	}
	return star, nil
}

// Multiply composes two matrices over the same element ordering, cell (i, j)
// of the result collecting the compositions of a's (i, k) triples with b's
// (k, j) triples for every intermediate k. Both operands stay untouched.
func Multiply(a, b *TripleMatrix) (*TripleMatrix, error) {
	if a == nil || b == nil {
		return nil, ErrShapeMismatch
	}
	if len(a.order) != len(b.order) {
		return nil, ErrShapeMismatch
	}
	for i, el := range a.order {
		if b.order[i] != el {
			return nil, ErrShapeMismatch
		}
	}
	return multiply(a, b), nil
}

func multiply(a, b *TripleMatrix) *TripleMatrix {
	out := newTripleMatrix(a.order)
	n := len(a.order)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			left := a.cells[i][k]
			if len(left) == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				right := b.cells[k][j]
				if len(right) == 0 {
					continue
				}
				for _, t1 := range left {
					for _, t2 := range right {
						out.add(i, j, compose(t1, t2, a.order[i], a.order[j], a.order[k]))
					}
				}
			}
		}
	}
	return out
}

// compose joins an i→k triple with a k→j triple into an i→j triple.
func compose(t1, t2 Triple, xi, xj, xk core.Element) Triple {
	coin := t1.Coinputs.Union(t2.Coinputs).Diff(t1.Cooutputs.Union(core.NewSet(xi)))
	coout := t1.Cooutputs.Union(t2.Cooutputs).Union(core.NewSet(xk)).Diff(core.NewSet(xj))
	return Triple{
		Coinputs:  normalize(coin),
		Cooutputs: normalize(coout),
		Chain:     concatChains(t1.Chain, t2.Chain),
	}
}

// concatChains appends both chains, keeping the first occurrence of each
// edge so cyclic compositions do not grow without bound.
func concatChains(a, b []*core.Edge) []*core.Edge {
	out := make([]*core.Edge, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, chain := range [2][]*core.Edge{a, b} {
		for _, e := range chain {
			key := e.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// merge folds src into dst cell-wise and reports whether dst grew.
func merge(dst, src *TripleMatrix) bool {
	grew := false
	for i := range src.cells {
		for j := range src.cells[i] {
			for _, t := range src.cells[i][j] {
				if !dst.cells[i][j].contains(t) {
					dst.cells[i][j] = append(dst.cells[i][j], t)
					grew = true
				}
			}
		}
	}
	return grew
}
