package metapath

import (
	"sort"
	"strings"

	"github.com/katalvlaran/metagraph/core"
)

// Metapath is an edge subset connecting a source element set to a target
// element set. Values are immutable once built; Edges lists every edge once,
// in discovery order.
type Metapath struct {
	Source core.Set
	Target core.Set
	Edges  []*core.Edge
}

// Key returns a canonical serialization of (source, target, edge set); two
// metapaths have equal keys iff they are Equal.
func (m Metapath) Key() string {
	var b strings.Builder
	b.WriteString(m.Source.Key())
	b.WriteByte('\x1d')
	b.WriteString(m.Target.Key())
	b.WriteByte('\x1d')
	b.WriteString(edgeSetKey(m.Edges))
	return b.String()
}

// Equal reports structural equality: same source, same target, same edge
// set regardless of order.
func (m Metapath) Equal(other Metapath) bool {
	return m.Key() == other.Key()
}

// Dominates reports whether m is at least as strict as other: m reaches at
// least other's targets from at most other's sources using at most other's
// edges, with at least one of the three containments proper.
func (m Metapath) Dominates(other Metapath) bool {
	if !m.Source.SubsetOf(other.Source) {
		return false
	}
	if !other.Target.SubsetOf(m.Target) {
		return false
	}
	mine, theirs := edgeKeySet(m.Edges), edgeKeySet(other.Edges)
	for k := range mine {
		if _, ok := theirs[k]; !ok {
			return false
		}
	}
	return m.Source.ProperSubsetOf(other.Source) ||
		other.Target.ProperSubsetOf(m.Target) ||
		len(mine) < len(theirs)
}

// String renders the metapath as
// "Metapath({1}, {7}, Edge({1}, {2, 3}), Edge({3}, {6, 7}))"; the form is
// stable and complete, so equality-based tests may rely on it.
func (m Metapath) String() string {
	var b strings.Builder
	b.WriteString("Metapath(")
	b.WriteString(m.Source.String())
	b.WriteString(", ")
	b.WriteString(m.Target.String())
	for _, e := range m.Edges {
		b.WriteString(", ")
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// edgeKeySet indexes edges by identity key.
func edgeKeySet(edges []*core.Edge) map[string]struct{} {
	out := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		out[e.Key()] = struct{}{}
	}
	return out
}

// edgeSetKey serializes an edge list as an order-insensitive set key.
func edgeSetKey(edges []*core.Edge) string {
	keys := make([]string, len(edges))
	for i, e := range edges {
		keys[i] = e.Key()
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x1e")
}

// dedupEdges keeps the first occurrence of every edge.
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
