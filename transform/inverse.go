package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/metagraph/core"
)

// Boundary elements of the inverse metagraph: Alpha stands for the external
// source feeding root edges, Beta for the external sink fed by leaf edges.
const (
	Alpha core.Element = "alpha"
	Beta  core.Element = "beta"
)

// Inverse builds the edge-centric dual of g: its elements are g's edges
// (named by their canonical string form) plus Alpha and Beta. Every edge
// consuming an element produced elsewhere gets an inverse edge from the set
// of its producers; inverse edges with the same producers and the same
// provenance label merge their consumers. Edges consuming never-produced
// elements hang off Alpha, edges producing never-consumed elements feed
// Beta. Labels carry <element, producer> provenance.
func Inverse(g *core.Metagraph) (*core.Metagraph, error) {
	if g == nil {
		return nil, ErrNilMetagraph
	}
	if g.EdgeCount() == 0 {
		return nil, ErrNoEdges
	}

	type protoEdge struct {
		in    core.Set
		out   core.Set
		label string
	}
	var protos []protoEdge

	// One inverse edge per consumer, from the union of its producers.
	for _, consumer := range g.Edges() {
		in := core.NewSet()
		var pairs []string
		for _, x := range consumer.Invertex().Sorted() {
			for _, producer := range g.EdgesProducing(x) {
				in[elementFor(producer)] = struct{}{}
				pair := fmt.Sprintf("<%s, %s>", x, producer)
				if !contains(pairs, pair) {
					pairs = append(pairs, pair)
				}
			}
		}
		if in.IsEmpty() {
			continue
		}
		protos = append(protos, protoEdge{
			in:    in,
			out:   core.NewSet(elementFor(consumer)),
			label: strings.Join(pairs, ", "),
		})
	}

	// Merge inverse edges sharing producers and provenance.
	merged := make(map[string]*protoEdge)
	var order []string
	for _, p := range protos {
		key := p.in.Key() + "\x1d" + p.label
		if have, ok := merged[key]; ok {
			have.out = have.out.Union(p.out)
			continue
		}
		cp := p
		merged[key] = &cp
		order = append(order, key)
	}
	sort.Strings(order)

	var edges []*core.Edge
	for _, key := range order {
		p := merged[key]
		e, err := core.NewEdge(p.in, p.out, core.WithLabel(p.label))
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	// Boundary edges: Alpha feeds consumers of never-produced elements,
	// producers of never-consumed elements feed Beta.
	for _, x := range g.Order() {
		consumers, producers := g.EdgesConsuming(x), g.EdgesProducing(x)
		switch {
		case len(producers) == 0 && len(consumers) > 0:
			for _, c := range consumers {
				e, err := core.NewEdge(
					core.NewSet(Alpha),
					core.NewSet(elementFor(c)),
					core.WithLabel(fmt.Sprintf("<%s, alpha>", x)),
				)
				if err != nil {
					return nil, err
				}
				edges = append(edges, e)
			}
		case len(consumers) == 0 && len(producers) > 0:
			for _, p := range producers {
				e, err := core.NewEdge(
					core.NewSet(elementFor(p)),
					core.NewSet(Beta),
					core.WithLabel(fmt.Sprintf("<%s, %s>", x, p)),
				)
				if err != nil {
					return nil, err
				}
				edges = append(edges, e)
			}
		}
	}

	return fromEdges(edges)
}

// elementFor names an edge as a generating-set element of a derived
// metagraph.
func elementFor(e *core.Edge) core.Element {
	return core.Element(e.String())
}

// fromEdges builds a metagraph whose generating set is exactly the elements
// the edges touch.
func fromEdges(edges []*core.Edge) (*core.Metagraph, error) {
	gen := core.NewSet()
	for _, e := range edges {
		gen = gen.Union(e.Invertex()).Union(e.Outvertex()).Union(e.Attributes())
	}
	if gen.IsEmpty() {
		return nil, ErrNoEdges
	}
	out, err := core.New(gen)
	if err != nil {
		return nil, err
	}
	if err := out.AddEdgesFrom(edges); err != nil {
		return nil, err
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, have := range list {
		if have == s {
			return true
		}
	}
	return false
}
