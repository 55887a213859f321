package core

import (
	"fmt"
	"strings"
)

// Edge is a directed hyper-connection from a non-empty invertex to a
// non-empty, disjoint outvertex. A conditional edge additionally carries an
// attribute set of propositions that must hold true for the edge to be
// active; an empty attribute set means the edge is unconditional.
//
// Edges compare equal by (invertex, outvertex, attributes); Label is
// provenance only and never participates in identity.
type Edge struct {
	invertex   Set
	outvertex  Set
	attributes Set
	label      string
}

// EdgeOption configures optional edge properties at construction.
type EdgeOption func(*Edge)

// WithAttributes attaches the given attribute set (propositional guard).
func WithAttributes(attributes Set) EdgeOption {
	return func(e *Edge) { e.attributes = attributes.Clone() }
}

// WithLabel attaches a provenance label. Labels do not affect edge identity.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) { e.label = label }
}

// NewEdge builds a validated edge. It returns ErrInvalidEdge when the
// invertex or outvertex is empty or when the two overlap. Membership in a
// generating set is checked later, by the owning metagraph.
func NewEdge(invertex, outvertex Set, opts ...EdgeOption) (*Edge, error) {
	if invertex.IsEmpty() {
		return nil, fmt.Errorf("%w: empty invertex", ErrInvalidEdge)
	}
	if outvertex.IsEmpty() {
		return nil, fmt.Errorf("%w: empty outvertex", ErrInvalidEdge)
	}
	if overlap := invertex.Intersect(outvertex); !overlap.IsEmpty() {
		return nil, fmt.Errorf("%w: invertex and outvertex share %s", ErrInvalidEdge, overlap)
	}
	e := &Edge{invertex: invertex.Clone(), outvertex: outvertex.Clone()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Invertex returns a copy of the edge's input vertex set.
func (e *Edge) Invertex() Set { return e.invertex.Clone() }

// Outvertex returns a copy of the edge's output vertex set.
func (e *Edge) Outvertex() Set { return e.outvertex.Clone() }

// Attributes returns a copy of the edge's attribute set (nil-safe, possibly
// empty).
func (e *Edge) Attributes() Set { return e.attributes.Clone() }

// Label returns the provenance label, if any.
func (e *Edge) Label() string { return e.label }

// Consumes reports whether el belongs to the invertex.
func (e *Edge) Consumes(el Element) bool { return e.invertex.Contains(el) }

// Produces reports whether el belongs to the outvertex.
func (e *Edge) Produces(el Element) bool { return e.outvertex.Contains(el) }

// Coinputs returns the invertex elements other than el, or nil when el alone
// drives the edge. Returns nil when el is not an invertex member.
func (e *Edge) Coinputs(el Element) Set {
	if !e.invertex.Contains(el) || e.invertex.Len() == 1 {
		return nil
	}
	return e.invertex.Diff(NewSet(el))
}

// Cooutputs returns the outvertex elements other than el, or nil when el is
// the sole output. Returns nil when el is not an outvertex member.
func (e *Edge) Cooutputs(el Element) Set {
	if !e.outvertex.Contains(el) || e.outvertex.Len() == 1 {
		return nil
	}
	return e.outvertex.Diff(NewSet(el))
}

// Equal reports structural equality by (invertex, outvertex, attributes).
func (e *Edge) Equal(other *Edge) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.invertex.Equal(other.invertex) &&
		e.outvertex.Equal(other.outvertex) &&
		e.attributes.Equal(other.attributes)
}

// Key returns the canonical serialization of (invertex, outvertex,
// attributes). Two edges have equal keys iff they are Equal, so the key is
// safe for map/set membership and for treating edges as generating-set
// elements in the inverse transform.
func (e *Edge) Key() string {
	var b strings.Builder
	b.WriteString(e.invertex.Key())
	b.WriteByte('\x1e')
	b.WriteString(e.outvertex.Key())
	b.WriteByte('\x1e')
	b.WriteString(e.attributes.Key())
	return b.String()
}

// Clone returns an independent copy of the edge.
func (e *Edge) Clone() *Edge {
	return &Edge{
		invertex:   e.invertex.Clone(),
		outvertex:  e.outvertex.Clone(),
		attributes: e.attributes.Clone(),
		label:      e.label,
	}
}

// String renders the edge as "Edge({1}, {2, 3})", with the attribute set
// appended when present. The form is stable and complete, so equality-based
// tests may rely on it.
func (e *Edge) String() string {
	if e.attributes.IsEmpty() {
		return fmt.Sprintf("Edge(%s, %s)", e.invertex, e.outvertex)
	}
	return fmt.Sprintf("Edge(%s, %s, %s)", e.invertex, e.outvertex, e.attributes)
}
