package core

import (
	"fmt"
	"strings"
)

// ConditionalMetagraph is a metagraph whose generating set is partitioned
// into variables and propositions. It composes a plain Metagraph rather than
// extending it: the underlying metagraph carries the full generating set
// (variables ∪ propositions), while the partition and the attribute rules
// live here.
type ConditionalMetagraph struct {
	mg           *Metagraph
	variables    Set
	propositions Set
}

// NewConditional creates an empty conditional metagraph over the given
// partition. Returns ErrInvalidGeneratingSet when either half is empty or
// the halves overlap.
func NewConditional(variables, propositions Set) (*ConditionalMetagraph, error) {
	if variables.IsEmpty() {
		return nil, fmt.Errorf("%w: empty variable set", ErrInvalidGeneratingSet)
	}
	if propositions.IsEmpty() {
		return nil, fmt.Errorf("%w: empty proposition set", ErrInvalidGeneratingSet)
	}
	if overlap := variables.Intersect(propositions); !overlap.IsEmpty() {
		return nil, fmt.Errorf("%w: variables and propositions share %s", ErrInvalidGeneratingSet, overlap)
	}
	mg, err := New(variables.Union(propositions))
	if err != nil {
		return nil, err
	}
	return &ConditionalMetagraph{
		mg:           mg,
		variables:    variables.Clone(),
		propositions: propositions.Clone(),
	}, nil
}

// Variables returns a copy of the variable partition.
func (c *ConditionalMetagraph) Variables() Set { return c.variables.Clone() }

// Propositions returns a copy of the proposition partition.
func (c *ConditionalMetagraph) Propositions() Set { return c.propositions.Clone() }

// GeneratingSet returns a copy of the full generating set
// (variables ∪ propositions).
func (c *ConditionalMetagraph) GeneratingSet() Set { return c.mg.GeneratingSet() }

// Underlying exposes the plain metagraph capability for matrix and metapath
// analysis. Callers must not add edges through it; use AddEdge here so the
// conditional rules keep holding.
func (c *ConditionalMetagraph) Underlying() *Metagraph { return c.mg }

// Edges returns a copy of the edge collection in insertion order.
func (c *ConditionalMetagraph) Edges() []*Edge { return c.mg.Edges() }

// EdgeCount returns the number of edges.
func (c *ConditionalMetagraph) EdgeCount() int { return c.mg.EdgeCount() }

// Nodes returns the distinct vertex sets in first-appearance order.
func (c *ConditionalMetagraph) Nodes() []Set { return c.mg.Nodes() }

// AddEdge validates the conditional rules and appends e to the collection:
// attributes must be drawn from the propositions, and an outvertex that
// contains a proposition must contain nothing else.
func (c *ConditionalMetagraph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if out := e.attributes.Diff(c.propositions); !out.IsEmpty() {
		return fmt.Errorf("%w: %s carries non-proposition attributes %s", ErrInvalidEdge, e, out)
	}
	if props := e.outvertex.Intersect(c.propositions); !props.IsEmpty() && e.outvertex.Len() > 1 {
		return fmt.Errorf("%w: %s outvertex mixes propositions %s with other elements", ErrInvalidEdge, e, props)
	}
	return c.mg.AddEdge(e)
}

// AddEdgesFrom appends every edge in the list, failing fast on the first
// invalid one.
func (c *ConditionalMetagraph) AddEdgesFrom(edges []*Edge) error {
	for _, e := range edges {
		if err := c.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVariables checks a source or target set against the variable
// partition (reachability queries on conditional metagraphs address
// variables, never propositions).
func (c *ConditionalMetagraph) ValidateVariables(name string, subset Set) error {
	if subset.IsEmpty() {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, name)
	}
	if out := subset.Diff(c.variables); !out.IsEmpty() {
		return fmt.Errorf("%w: %s contains %s outside the variable set", ErrInvalidInput, name, out)
	}
	return nil
}

// String renders the conditional metagraph with its edges in insertion
// order.
func (c *ConditionalMetagraph) String() string {
	var b strings.Builder
	b.WriteString("ConditionalMetagraph(")
	for i, e := range c.mg.edges {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}
