// SPDX-License-Identifier: MIT

package matrix

import (
	"sort"
	"strings"

	"github.com/katalvlaran/metagraph/core"
)

// Triple summarizes one edge's (or edge chain's) contribution to an
// element-to-element relation in a matrix cell indexed by row element i and
// column element j:
//
//   - Coinputs: the invertex elements required together with i to traverse
//     the chain; nil when i alone suffices.
//   - Cooutputs: the elements produced alongside j; nil when there are none.
//   - Chain: the ordered edges realizing the relation. Direct adjacency
//     entries carry a single edge; closure entries carry the whole path.
//
// Triples are immutable values; identity is (Coinputs, Cooutputs, edge set
// of Chain), matching how downstream consumers deduplicate paths.
type Triple struct {
	Coinputs  core.Set
	Cooutputs core.Set
	Chain     []*core.Edge
}

// NewTriple builds a Triple, normalizing empty co-sets to nil.
// Returns ErrEmptyChain when no edge is supplied.
func NewTriple(coinputs, cooutputs core.Set, chain ...*core.Edge) (Triple, error) {
	if len(chain) == 0 {
		return Triple{}, ErrEmptyChain
	}
	return Triple{
		Coinputs:  normalize(coinputs),
		Cooutputs: normalize(cooutputs),
		Chain:     append([]*core.Edge(nil), chain...),
	}, nil
}

// normalize maps empty sets to nil so "no co-requirement" has one spelling.
func normalize(s core.Set) core.Set {
	if s.IsEmpty() {
		return nil
	}
	return s.Clone()
}

// Key returns a canonical serialization of the triple. Chains compare as
// edge sets: two routes through the same edges in different discovery order
// are the same path for every downstream consumer.
func (t Triple) Key() string {
	keys := make([]string, len(t.Chain))
	for i, e := range t.Chain {
		keys[i] = e.Key()
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(t.Coinputs.Key())
	b.WriteByte('\x1d')
	b.WriteString(t.Cooutputs.Key())
	b.WriteByte('\x1d')
	b.WriteString(strings.Join(keys, "\x1e"))
	return b.String()
}

// Equal reports whether two triples have the same co-inputs, co-outputs and
// edge set.
func (t Triple) Equal(other Triple) bool {
	return t.Key() == other.Key()
}

// Edges returns a copy of the chain in traversal order.
func (t Triple) Edges() []*core.Edge {
	return append([]*core.Edge(nil), t.Chain...)
}

// String renders the triple as "Triple(none, {3}, Edge({1}, {2, 3}))"; nil
// co-sets print as "none". The form is stable for equality-based testing.
func (t Triple) String() string {
	var b strings.Builder
	b.WriteString("Triple(")
	b.WriteString(setOrNone(t.Coinputs))
	b.WriteString(", ")
	b.WriteString(setOrNone(t.Cooutputs))
	for _, e := range t.Chain {
		b.WriteString(", ")
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

func setOrNone(s core.Set) string {
	if s.IsEmpty() {
		return "none"
	}
	return s.String()
}

// NetInputs returns every invertex element across an edge list; together
// with NetOutputs it yields what the list requires from the outside
// (NetInputs − NetOutputs) and what it makes available.
func NetInputs(edges []*core.Edge) core.Set {
	out := core.NewSet()
	for _, e := range edges {
		out = out.Union(e.Invertex())
	}
	return out
}

// NetOutputs returns every outvertex element across an edge list.
func NetOutputs(edges []*core.Edge) core.Set {
	out := core.NewSet()
	for _, e := range edges {
		out = out.Union(e.Outvertex())
	}
	return out
}
