package core

import (
	"fmt"
	"strings"
)

// Metagraph is a generating set together with a duplicate-free, insertion-
// ordered edge collection. Every element referenced by any edge must belong
// to the generating set.
//
// The edge collection is the only mutable part and is meant to be populated
// before analysis starts; all accessors return copies, so derived matrices
// and enumerations always operate on snapshots.
type Metagraph struct {
	generating Set
	order      []Element       // canonical lexicographic order
	index      map[Element]int // element -> position in order
	edges      []*Edge         // insertion order
	edgeIndex  map[string]int  // Edge.Key -> position in edges
}

// New creates an empty metagraph over the given generating set.
// Returns ErrInvalidGeneratingSet when the set is empty.
// Complexity: O(n log n) for the canonical ordering.
func New(generating Set) (*Metagraph, error) {
	if generating.IsEmpty() {
		return nil, fmt.Errorf("%w: empty", ErrInvalidGeneratingSet)
	}
	order := generating.Sorted()
	index := make(map[Element]int, len(order))
	for i, el := range order {
		index[el] = i
	}
	return &Metagraph{
		generating: generating.Clone(),
		order:      order,
		index:      index,
		edgeIndex:  make(map[string]int),
	}, nil
}

// GeneratingSet returns a copy of the generating set.
func (g *Metagraph) GeneratingSet() Set { return g.generating.Clone() }

// Order returns the canonical element ordering shared by all matrix
// operations over this metagraph.
func (g *Metagraph) Order() []Element {
	out := make([]Element, len(g.order))
	copy(out, g.order)
	return out
}

// Index returns the canonical position of el, or false when el is not a
// generating-set member.
func (g *Metagraph) Index(el Element) (int, bool) {
	i, ok := g.index[el]
	return i, ok
}

// Size returns the cardinality of the generating set.
func (g *Metagraph) Size() int { return len(g.order) }

// Contains reports whether el belongs to the generating set.
func (g *Metagraph) Contains(el Element) bool { return g.generating.Contains(el) }

// AddEdge appends e to the edge collection. A duplicate (same invertex,
// outvertex and attributes) is silently ignored, keeping set semantics.
// Returns ErrInvalidEdge when e references elements outside the generating
// set.
func (g *Metagraph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	referenced := e.invertex.Union(e.outvertex).Union(e.attributes)
	if out := referenced.Diff(g.generating); !out.IsEmpty() {
		return fmt.Errorf("%w: %s references %s outside the generating set", ErrInvalidEdge, e, out)
	}
	key := e.Key()
	if _, dup := g.edgeIndex[key]; dup {
		return nil
	}
	g.edgeIndex[key] = len(g.edges)
	g.edges = append(g.edges, e.Clone())
	return nil
}

// AddEdgesFrom appends every edge in the list, failing fast on the first
// invalid one.
func (g *Metagraph) AddEdgesFrom(edges []*Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// Edges returns a copy of the edge collection in insertion order.
func (g *Metagraph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeCount returns the number of edges.
func (g *Metagraph) EdgeCount() int { return len(g.edges) }

// HasEdge reports whether an edge equal to e is in the collection.
func (g *Metagraph) HasEdge(e *Edge) bool {
	if e == nil {
		return false
	}
	_, ok := g.edgeIndex[e.Key()]
	return ok
}

// EdgesProducing returns, in insertion order, the edges whose outvertex
// contains el.
func (g *Metagraph) EdgesProducing(el Element) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Produces(el) {
			out = append(out, e)
		}
	}
	return out
}

// EdgesConsuming returns, in insertion order, the edges whose invertex
// contains el.
func (g *Metagraph) EdgesConsuming(el Element) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Consumes(el) {
			out = append(out, e)
		}
	}
	return out
}

// WithoutEdges derives a new metagraph over the same generating set holding
// every edge of g except those equal to a member of excluded. The receiver
// is never mutated.
func (g *Metagraph) WithoutEdges(excluded []*Edge) *Metagraph {
	drop := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		if e != nil {
			drop[e.Key()] = struct{}{}
		}
	}
	out, _ := New(g.generating) // generating set already validated
	for _, e := range g.edges {
		if _, skip := drop[e.Key()]; !skip {
			_ = out.AddEdge(e) // e was already accepted by g
		}
	}
	return out
}

// Nodes returns the distinct vertex sets appearing as an invertex or an
// outvertex, in first-appearance order (invertex before outvertex per edge).
func (g *Metagraph) Nodes() []Set {
	seen := make(map[string]struct{})
	var out []Set
	add := func(s Set) {
		key := s.Key()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s.Clone())
	}
	for _, e := range g.edges {
		add(e.invertex)
		add(e.outvertex)
	}
	return out
}

// ValidateInput checks a source or target set passed to a reachability
// operation: it must be non-empty and a subset of the generating set.
// Returns ErrInvalidInput naming the offending elements otherwise.
func (g *Metagraph) ValidateInput(name string, subset Set) error {
	if subset.IsEmpty() {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, name)
	}
	if out := subset.Diff(g.generating); !out.IsEmpty() {
		return fmt.Errorf("%w: %s contains %s outside the generating set", ErrInvalidInput, name, out)
	}
	return nil
}

// String renders the metagraph as "Metagraph(Edge(...), Edge(...))" in edge
// insertion order.
func (g *Metagraph) String() string {
	var b strings.Builder
	b.WriteString("Metagraph(")
	for i, e := range g.edges {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}
