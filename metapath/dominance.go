package metapath

import (
	"github.com/katalvlaran/metagraph/core"
)

// Connects reports whether target is reachable from source by repeatedly
// firing edges whose whole invertex is already available. It is the
// reachability primitive behind the redundancy and cutset tests.
// Complexity: O(|edges|²) set operations.
func Connects(edges []*core.Edge, source, target core.Set) bool {
	if target.IsEmpty() {
		return false
	}
	reached := source.Clone()
	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			if e.Invertex().SubsetOf(reached) && !e.Outvertex().SubsetOf(reached) {
				reached = reached.Union(e.Outvertex())
				changed = true
			}
		}
	}
	return target.SubsetOf(reached)
}

// executable reports whether repeatedly firing edges whose whole invertex is
// available from source eventually fires every edge. Unlike Connects it
// demands that all edges participate, not just that some target is reached.
func executable(edges []*core.Edge, source core.Set) bool {
	reached := source.Clone()
	fired := make([]bool, len(edges))
	remaining := len(edges)
	for changed := true; changed && remaining > 0; {
		changed = false
		for i, e := range edges {
			if fired[i] || !e.Invertex().SubsetOf(reached) {
				continue
			}
			fired[i] = true
			remaining--
			reached = reached.Union(e.Outvertex())
			changed = true
		}
	}
	return remaining == 0
}

// IsInputDominant reports whether no proper non-empty subset of mp.Source
// reaches mp.Target using mp's own edges.
func IsInputDominant(g *core.Metagraph, mp Metapath) (bool, error) {
	if err := validateMetapath(g, mp); err != nil {
		return false, err
	}
	return inputDominant(mp), nil
}

// IsEdgeDominant reports whether no proper subset of mp.Edges is itself a
// valid metapath from mp.Source to mp.Target.
func IsEdgeDominant(g *core.Metagraph, mp Metapath) (bool, error) {
	if err := validateMetapath(g, mp); err != nil {
		return false, err
	}
	return edgeDominant(mp), nil
}

// IsDominant reports whether mp is both input- and edge-dominant.
func IsDominant(g *core.Metagraph, mp Metapath) (bool, error) {
	if err := validateMetapath(g, mp); err != nil {
		return false, err
	}
	return inputDominant(mp) && edgeDominant(mp), nil
}

// IsRedundantEdge reports whether dropping edge from mp still leaves target
// reachable from source, i.e. the edge adds nothing the rest cannot do.
func IsRedundantEdge(g *core.Metagraph, edge *core.Edge, mp Metapath, source, target core.Set) (bool, error) {
	if g == nil {
		return false, ErrNilMetagraph
	}
	if edge == nil || len(mp.Edges) == 0 {
		return false, ErrNilMetapath
	}
	if err := g.ValidateInput("source", source); err != nil {
		return false, err
	}
	if err := g.ValidateInput("target", target); err != nil {
		return false, err
	}
	key := edge.Key()
	remaining := make([]*core.Edge, 0, len(mp.Edges))
	for _, e := range mp.Edges {
		if e.Key() != key {
			remaining = append(remaining, e)
		}
	}
	return Connects(remaining, source, target), nil
}

func validateMetapath(g *core.Metagraph, mp Metapath) error {
	if g == nil {
		return ErrNilMetagraph
	}
	if len(mp.Edges) == 0 {
		return ErrNilMetapath
	}
	if err := g.ValidateInput("source", mp.Source); err != nil {
		return err
	}
	return g.ValidateInput("target", mp.Target)
}

// inputDominant enumerates the proper non-empty subsets of the source and
// fails on the first one that still reaches the target.
func inputDominant(mp Metapath) bool {
	elements := mp.Source.Sorted()
	n := len(elements)
	if n <= 1 {
		return true
	}
	for mask := 1; mask < (1<<n)-1; mask++ {
		subset := core.NewSet()
		for i, el := range elements {
			if mask&(1<<i) != 0 {
				subset[el] = struct{}{}
			}
		}
		if Connects(mp.Edges, subset, mp.Target) {
			return false
		}
	}
	return true
}

// edgeDominant enumerates the proper non-empty subsets of the edge list and
// fails on the first one that is itself a valid metapath.
func edgeDominant(mp Metapath) bool {
	n := len(mp.Edges)
	if n <= 1 {
		return true
	}
	for mask := 1; mask < (1<<n)-1; mask++ {
		subset := make([]*core.Edge, 0, n)
		for i, e := range mp.Edges {
			if mask&(1<<i) != 0 {
				subset = append(subset, e)
			}
		}
		if coversNet(subset, mp.Source, mp.Target) {
			return false
		}
	}
	return true
}
