package transform

import (
	"errors"

	"github.com/katalvlaran/metagraph/core"
	"github.com/katalvlaran/metagraph/matrix"
	"github.com/katalvlaran/metagraph/metapath"
)

// Union builds a fresh metagraph over the combined generating sets carrying
// every edge of a and b, deduplicated. Neither input is mutated.
func Union(a, b *core.Metagraph) (*core.Metagraph, error) {
	if a == nil || b == nil {
		return nil, ErrNilMetagraph
	}
	out, err := core.New(a.GeneratingSet().Union(b.GeneratingSet()))
	if err != nil {
		return nil, err
	}
	if err := out.AddEdgesFrom(a.Edges()); err != nil {
		return nil, err
	}
	if err := out.AddEdgesFrom(b.Edges()); err != nil {
		return nil, err
	}
	return out, nil
}

// Product multiplies the adjacency matrices of a and b, which must share a
// generating set, and builds a fresh metagraph from the edges participating
// in the composed relations: an edge survives when some a-edge chain can be
// extended by some b-edge chain through a shared element.
func Product(a, b *core.Metagraph) (*core.Metagraph, error) {
	if a == nil || b == nil {
		return nil, ErrNilMetagraph
	}
	if !a.GeneratingSet().Equal(b.GeneratingSet()) {
		return nil, ErrGeneratingSetMismatch
	}
	adjA, err := matrix.Adjacency(a)
	if err != nil {
		return nil, err
	}
	adjB, err := matrix.Adjacency(b)
	if err != nil {
		return nil, err
	}
	composed, err := matrix.Multiply(adjA, adjB)
	if err != nil {
		return nil, err
	}

	out, err := core.New(a.GeneratingSet())
	if err != nil {
		return nil, err
	}
	n := composed.Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cell, err := composed.At(i, j)
			if err != nil {
				return nil, err
			}
			for _, t := range cell {
				if err := out.AddEdgesFrom(t.Edges()); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// Dominates reports whether a subsumes b's connectivity: every dominant
// metapath of b between single elements is matched or dominated by one of
// a's. The pairwise scan over ordered element pairs keeps the comparison
// tractable; combination budgets apply per pair and a truncated pair
// surfaces ErrCombinationBudget.
func Dominates(a, b *core.Metagraph, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilMetagraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return false, o.err
	}

	mpsA, err := pairwiseMetapaths(a, o)
	if err != nil {
		return false, err
	}
	mpsB, err := pairwiseMetapaths(b, o)
	if err != nil {
		return false, err
	}
	for _, mpB := range mpsB {
		matched := false
		for _, mpA := range mpsA {
			if mpA.Equal(mpB) || mpA.Dominates(mpB) {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// Equivalent reports whether a and b dominate each other.
func Equivalent(a, b *core.Metagraph, opts ...Option) (bool, error) {
	forward, err := Dominates(a, b, opts...)
	if err != nil || !forward {
		return false, err
	}
	return Dominates(b, a, opts...)
}

// pairwiseMetapaths enumerates the dominant metapaths between every ordered
// pair of distinct single elements, reusing one closure per graph.
func pairwiseMetapaths(g *core.Metagraph, o options) ([]metapath.Metapath, error) {
	star, err := matrix.Closure(g, matrix.WithContext(o.ctx))
	if err != nil {
		return nil, err
	}
	var out []metapath.Metapath
	for _, x := range g.Order() {
		for _, y := range g.Order() {
			if x == y {
				continue
			}
			mps, err := metapath.All(g, core.NewSet(x), core.NewSet(y),
				metapath.WithContext(o.ctx),
				metapath.WithClosure(star),
				metapath.WithMaxCandidates(o.max))
			if err != nil {
				if errors.Is(err, metapath.ErrCandidateBudget) {
					return nil, ErrCombinationBudget
				}
				return nil, err
			}
			out = append(out, mps...)
		}
	}
	return out, nil
}
