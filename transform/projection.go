package transform

import (
	"sort"
	"strings"

	"github.com/katalvlaran/metagraph/core"
	"github.com/katalvlaran/metagraph/matrix"
)

// Projection builds a metagraph over subset whose edges stand for the
// connections g realizes between subset members, with elements outside the
// subset folded away. Candidate edge sets come from the closure triples
// relating subset elements: single edges already rooted in the subset, plus
// triple combinations whose outside requirement (co-inputs not produced
// within the combination) stays inside the subset. Each candidate becomes an
// edge (net inputs ∩ subset) → (net outputs ∩ subset); candidates subsumed
// by a smaller candidate with at least the same subset outputs are dropped.
// The output is identical across runs for identical input; edge labels carry
// the originating edge list.
func Projection(g *core.Metagraph, subset core.Set, opts ...Option) (*core.Metagraph, error) {
	if g == nil {
		return nil, ErrNilMetagraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.ValidateInput("subset", subset); err != nil {
		return nil, err
	}

	star, err := matrix.Closure(g, matrix.WithContext(o.ctx))
	if err != nil {
		return nil, err
	}
	triples, err := subsetTriples(star, subset)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		edges []*core.Edge
		keys  map[string]struct{}
		in    core.Set
		out   core.Set
	}
	var cands []candidate
	seen := make(map[string]struct{})
	add := func(edges []*core.Edge) {
		edges = dedupEdges(edges)
		key := edgeSetKey(edges)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		allIn, allOut := matrix.NetInputs(edges), matrix.NetOutputs(edges)
		cands = append(cands, candidate{
			edges: edges,
			keys:  edgeKeySet(edges),
			in:    allIn.Diff(allOut).Intersect(subset),
			out:   allOut.Intersect(subset),
		})
	}

	// Single edges already rooted in the subset.
	for _, t := range triples {
		for _, e := range t.Chain {
			if e.Invertex().SubsetOf(subset) {
				add([]*core.Edge{e})
			}
		}
	}

	// Combinations of triples whose joint co-input requirement is covered by
	// the subset (or produced within the combination itself).
	truncated := false
	inspected := 0
combinations:
	for k := 1; k <= len(triples); k++ {
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if err := o.ctx.Err(); err != nil {
				return nil, err
			}
			if o.max > 0 && inspected == o.max {
				truncated = true
				break combinations
			}
			inspected++

			coin, coout := core.NewSet(), core.NewSet()
			var edges []*core.Edge
			for _, p := range idx {
				coin = coin.Union(triples[p].Coinputs)
				coout = coout.Union(triples[p].Cooutputs)
				edges = append(edges, triples[p].Chain...)
			}
			if coin.Diff(coout).SubsetOf(subset) {
				add(edges)
			}
			if !nextCombination(idx, len(triples)) {
				break
			}
		}
	}

	// Drop candidates with no footprint in the subset, then candidates
	// subsumed by a smaller edge set with at least the same outputs.
	kept := cands[:0]
	for _, c := range cands {
		if !c.in.IsEmpty() && !c.out.IsEmpty() {
			kept = append(kept, c)
		}
	}
	cands = kept
	survivors := make([]candidate, 0, len(cands))
	for i, ci := range cands {
		subsumed := false
		for j, cj := range cands {
			if i == j || len(cj.keys) >= len(ci.keys) {
				continue
			}
			if keysSubset(cj.keys, ci.keys) && ci.out.SubsetOf(cj.out) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			survivors = append(survivors, ci)
		}
	}

	sort.Slice(survivors, func(a, b int) bool {
		if survivors[a].in.Key() != survivors[b].in.Key() {
			return survivors[a].in.Key() < survivors[b].in.Key()
		}
		return survivors[a].out.Key() < survivors[b].out.Key()
	})

	out, err := core.New(subset)
	if err != nil {
		return nil, err
	}
	for _, c := range survivors {
		e, err := core.NewEdge(c.in, c.out, core.WithLabel(edgeListLabel(c.edges)))
		if err != nil {
			return nil, err
		}
		if err := out.AddEdge(e); err != nil {
			return nil, err
		}
	}
	if truncated {
		return out, ErrCombinationBudget
	}
	return out, nil
}

// subsetTriples collects the distinct closure triples relating subset
// elements, sorted by key for determinism.
func subsetTriples(star *matrix.TripleMatrix, subset core.Set) ([]matrix.Triple, error) {
	var triples []matrix.Triple
	seen := make(map[string]struct{})
	for _, i := range subset.Sorted() {
		for _, j := range subset.Sorted() {
			cell, err := star.AtElements(i, j)
			if err != nil {
				return nil, err
			}
			for _, t := range cell {
				key := t.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				triples = append(triples, t)
			}
		}
	}
	sort.Slice(triples, func(a, b int) bool { return triples[a].Key() < triples[b].Key() })
	return triples, nil
}

// edgeListLabel renders a provenance label like
// "[Edge({1}, {3, 4}), Edge({3}, {6})]".
func edgeListLabel(edges []*core.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func edgeKeySet(edges []*core.Edge) map[string]struct{} {
	out := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		out[e.Key()] = struct{}{}
	}
	return out
}

func keysSubset(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func edgeSetKey(edges []*core.Edge) string {
	keys := make([]string, len(edges))
	for i, e := range edges {
		keys[i] = e.Key()
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x1e")
}

func dedupEdges(edges []*core.Edge) []*core.Edge {
	out := make([]*core.Edge, 0, len(edges))
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		key := e.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}

// nextCombination advances idx to the lexicographically next k-combination
// of {0..n-1}, reporting false when idx was the last one.
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}
