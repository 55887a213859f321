package metapath

import (
	"sort"

	"github.com/katalvlaran/metagraph/core"
	"github.com/katalvlaran/metagraph/matrix"
)

// IsMetapath reports whether mp is a valid metapath in g: every edge belongs
// to g, the edges' outside requirement (net inputs minus net outputs) is
// covered by mp.Source, mp.Target is covered by the net outputs, and every
// edge fires in some forward order starting from mp.Source.
func IsMetapath(g *core.Metagraph, mp Metapath) (bool, error) {
	if g == nil {
		return false, ErrNilMetagraph
	}
	if len(mp.Edges) == 0 {
		return false, ErrNilMetapath
	}
	if err := g.ValidateInput("source", mp.Source); err != nil {
		return false, err
	}
	if err := g.ValidateInput("target", mp.Target); err != nil {
		return false, err
	}
	for _, e := range mp.Edges {
		if !g.HasEdge(e) {
			return false, nil
		}
	}
	return coversNet(mp.Edges, mp.Source, mp.Target), nil
}

// coversNet is the closed-world validity rule shared by IsMetapath and the
// edge-dominance subset test. The firing clause rejects circular edge sets
// whose inputs only feed each other: they balance the net equation without
// ever being reachable from the source.
func coversNet(edges []*core.Edge, source, target core.Set) bool {
	if len(edges) == 0 {
		return false
	}
	netOut := matrix.NetOutputs(edges)
	return matrix.NetInputs(edges).Diff(netOut).SubsetOf(source) &&
		target.SubsetOf(netOut) &&
		executable(edges, source)
}

// Enumerator produces metapaths lazily. Obtain one from Enumerate, then call
// Next until it reports false; Err explains an early stop (cancellation or
// ErrCandidateBudget). Enumerators are single-use and not safe for
// concurrent access.
type Enumerator struct {
	source core.Set
	target core.Set
	opts   Options

	cands     [][]*core.Edge
	size      int
	idx       []int
	seen      map[string]struct{}
	inspected int

	err  error
	done bool
}

// Enumerate starts a metapath search from source to target in g. Candidate
// chains come from the closure cells relating source rows to target columns;
// combinations of chains are inspected in size-then-lexicographic order, so
// the output sequence is stable for identical input. Only dominant metapaths
// are produced unless WithAllMetapaths is given.
func Enumerate(g *core.Metagraph, source, target core.Set, opts ...Option) (*Enumerator, error) {
	if g == nil {
		return nil, ErrNilMetagraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.ValidateInput("source", source); err != nil {
		return nil, err
	}
	if err := g.ValidateInput("target", target); err != nil {
		return nil, err
	}

	star := o.Closure
	if star == nil {
		var err error
		star, err = matrix.Closure(g, matrix.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
	}

	cands, err := candidateChains(star, source, target)
	if err != nil {
		return nil, err
	}
	return &Enumerator{
		source: source.Clone(),
		target: target.Clone(),
		opts:   o,
		cands:  cands,
		size:   1,
		seen:   make(map[string]struct{}),
	}, nil
}

// candidateChains collects the distinct closure chains relating any source
// element to any target element, sorted by edge-set key for determinism.
// Chains with unsatisfied co-inputs are kept: a side branch from the source
// may provide them, so the combination stage decides which unions actually
// cover source and target.
func candidateChains(star *matrix.TripleMatrix, source, target core.Set) ([][]*core.Edge, error) {
	type cand struct {
		key   string
		chain []*core.Edge
	}
	var cands []cand
	seen := make(map[string]struct{})
	for _, i := range source.Sorted() {
		for _, j := range target.Sorted() {
			cell, err := star.AtElements(i, j)
			if err != nil {
				return nil, err
			}
			for _, t := range cell {
				key := edgeSetKey(t.Chain)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				cands = append(cands, cand{key: key, chain: t.Edges()})
			}
		}
	}
	sort.Slice(cands, func(a, b int) bool { return cands[a].key < cands[b].key })
	out := make([][]*core.Edge, len(cands))
	for i, c := range cands {
		out[i] = c.chain
	}
	return out, nil
}

// Next returns the next metapath, or false when the search is finished.
// Check Err after a false return to distinguish exhaustion from an early
// stop.
func (e *Enumerator) Next() (Metapath, bool) {
	for {
		if e.done {
			return Metapath{}, false
		}
		if err := e.opts.Ctx.Err(); err != nil {
			e.err = err
			e.done = true
			return Metapath{}, false
		}
		if !e.advance() {
			e.done = true
			return Metapath{}, false
		}
		if e.opts.MaxCandidates > 0 && e.inspected == e.opts.MaxCandidates {
			e.err = ErrCandidateBudget
			e.done = true
			return Metapath{}, false
		}
		e.inspected++

		var edges []*core.Edge
		for _, i := range e.idx {
			edges = append(edges, e.cands[i]...)
		}
		mp := Metapath{Source: e.source.Clone(), Target: e.target.Clone(), Edges: dedupEdges(edges)}
		if !coversNet(mp.Edges, mp.Source, mp.Target) {
			continue
		}
		if !e.opts.IncludeAll && !(inputDominant(mp) && edgeDominant(mp)) {
			continue
		}
		key := mp.Key()
		if _, dup := e.seen[key]; dup {
			continue
		}
		e.seen[key] = struct{}{}
		return mp, true
	}
}

// Err reports why the enumeration stopped early; nil after a normal
// exhaustion.
func (e *Enumerator) Err() error { return e.err }

// advance moves to the next combination of e.size candidate indices,
// growing the size when the current one is exhausted.
func (e *Enumerator) advance() bool {
	n := len(e.cands)
	if n == 0 {
		return false
	}
	for {
		if e.idx == nil {
			if e.size > n {
				return false
			}
			e.idx = make([]int, e.size)
			for i := range e.idx {
				e.idx[i] = i
			}
			return true
		}
		if nextCombination(e.idx, n) {
			return true
		}
		e.size++
		e.idx = nil
	}
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

// All runs a full enumeration and returns every metapath found. When the
// search stops early the metapaths found so far are returned together with
// the Enumerator's error.
func All(g *core.Metagraph, source, target core.Set, opts ...Option) ([]Metapath, error) {
	en, err := Enumerate(g, source, target, opts...)
	if err != nil {
		return nil, err
	}
	var out []Metapath
	for {
		mp, ok := en.Next()
		if !ok {
			break
		}
		out = append(out, mp)
	}
	return out, en.Err()
}
