package metapath

import (
	"errors"
	"sort"

	"github.com/katalvlaran/metagraph/core"
)

// IsCutset reports whether removing every edge in edges from g leaves target
// unreachable from source.
func IsCutset(g *core.Metagraph, edges []*core.Edge, source, target core.Set) (bool, error) {
	if g == nil {
		return false, ErrNilMetagraph
	}
	if err := g.ValidateInput("source", source); err != nil {
		return false, err
	}
	if err := g.ValidateInput("target", target); err != nil {
		return false, err
	}
	reduced := g.WithoutEdges(edges)
	return !Connects(reduced.Edges(), source, target), nil
}

// IsBridge reports whether edges is a single edge whose removal disconnects
// source from target.
func IsBridge(g *core.Metagraph, edges []*core.Edge, source, target core.Set) (bool, error) {
	if g == nil {
		return false, ErrNilMetagraph
	}
	if err := g.ValidateInput("source", source); err != nil {
		return false, err
	}
	if err := g.ValidateInput("target", target); err != nil {
		return false, err
	}
	if len(edges) != 1 {
		return false, nil
	}
	return IsCutset(g, edges, source, target)
}

// MinimalCutset returns a smallest edge set whose removal disconnects source
// from target, or nil when they are not connected in the first place. Ties
// resolve to the lexicographically first set over the canonical edge
// ordering, so the result is stable for identical input.
func MinimalCutset(g *core.Metagraph, source, target core.Set, opts ...Option) ([]*core.Edge, error) {
	if g == nil {
		return nil, ErrNilMetagraph
	}
	if err := g.ValidateInput("source", source); err != nil {
		return nil, err
	}
	if err := g.ValidateInput("target", target); err != nil {
		return nil, err
	}
	if !Connects(g.Edges(), source, target) {
		return nil, nil
	}

	// Only edges participating in some metapath can matter; a truncated
	// enumeration still yields a valid (possibly non-minimal) pool.
	mps, err := All(g, source, target, append(opts, WithAllMetapaths())...)
	if err != nil && !errors.Is(err, ErrCandidateBudget) {
		return nil, err
	}
	var pool []*core.Edge
	for _, mp := range mps {
		pool = append(pool, mp.Edges...)
	}
	pool = dedupEdges(pool)
	sort.Slice(pool, func(a, b int) bool { return pool[a].Key() < pool[b].Key() })

	for k := 1; k <= len(pool); k++ {
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			subset := make([]*core.Edge, k)
			for i, p := range idx {
				subset[i] = pool[p]
			}
			cut, err := IsCutset(g, subset, source, target)
			if err != nil {
				return nil, err
			}
			if cut {
				return subset, nil
			}
			if !nextCombination(idx, len(pool)) {
				break
			}
		}
	}
	// Connected, yet no pool subset cuts: the pool was truncated.
	return nil, ErrCandidateBudget
}
