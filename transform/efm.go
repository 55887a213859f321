package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/metagraph/core"
	"github.com/katalvlaran/metagraph/matrix"
)

// EFM builds the element-flow metagraph of g over subset: for every element
// y outside the subset, the subset elements co-feeding y's producer edges
// become invertices and the subset elements co-feeding y's consumer edges
// become outvertices, so each resulting edge describes flow between subset
// members carried by an excluded element. Labels record the carrier and the
// producer/consumer edges.
func EFM(g *core.Metagraph, subset core.Set, opts ...Option) (*core.Metagraph, error) {
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
	if g.EdgeCount() == 0 {
		return nil, ErrNoEdges
	}

	inc, err := matrix.Incidence(g)
	if err != nil {
		return nil, err
	}
	edges := inc.Edges()
	xs := subset.Sorted()

	var derived []*core.Edge
	seen := make(map[string]struct{})
	for _, y := range g.Order() {
		if subset.Contains(y) {
			continue
		}
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		yRow, err := inc.RowOf(y)
		if err != nil {
			return nil, err
		}

		// For each subset element, the producer/consumer columns it shares
		// with the carrier y: x co-feeds an edge producing y (invertex side)
		// or an edge consuming y (outvertex side).
		prod := make(map[core.Element]map[int]struct{})
		cons := make(map[core.Element]map[int]struct{})
		for _, x := range xs {
			xRow, err := inc.RowOf(x)
			if err != nil {
				return nil, err
			}
			for col := range yRow {
				if xRow[col] != -1 {
					continue
				}
				switch yRow[col] {
				case 1:
					if prod[x] == nil {
						prod[x] = make(map[int]struct{})
					}
					prod[x][col] = struct{}{}
				case -1:
					if cons[x] == nil {
						cons[x] = make(map[int]struct{})
					}
					cons[x][col] = struct{}{}
				}
			}
		}

		invertices := groupByCoverage(xs, prod)
		outvertices := groupByCoverage(xs, cons)
		for _, inv := range invertices {
			for _, out := range outvertices {
				label := fmt.Sprintf("%s <%s; %s>", y,
					flowEdges(inv.cols, edges), flowEdges(out.cols, edges))
				e, err := core.NewEdge(inv.set, out.set, core.WithLabel(label))
				if err != nil {
					return nil, err
				}
				if _, dup := seen[e.Key()]; dup {
					continue
				}
				seen[e.Key()] = struct{}{}
				derived = append(derived, e)
			}
		}
	}

	if len(derived) == 0 {
		return nil, ErrNoEdges
	}
	return fromEdges(derived)
}

type vertexGroup struct {
	set  core.Set
	cols map[int]struct{}
}

// groupByCoverage turns per-element column sets into vertex groups: each
// element with columns seeds a group of every element covering at least
// those columns, so elements co-feeding the same flow stay together.
func groupByCoverage(xs []core.Element, colsOf map[core.Element]map[int]struct{}) []vertexGroup {
	var groups []vertexGroup
	seen := make(map[string]struct{})
	for _, x := range xs {
		base := colsOf[x]
		if len(base) == 0 {
			continue
		}
		group := core.NewSet()
		cols := make(map[int]struct{})
		for _, other := range xs {
			if colsSubset(base, colsOf[other]) {
				group[other] = struct{}{}
				for c := range colsOf[other] {
					cols[c] = struct{}{}
				}
			}
		}
		key := group.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		groups = append(groups, vertexGroup{set: group, cols: cols})
	}
	return groups
}

func colsSubset(a, b map[int]struct{}) bool {
	for c := range a {
		if _, ok := b[c]; !ok {
			return false
		}
	}
	return true
}

// flowEdges renders the edges behind a flow side, in column order.
func flowEdges(cols map[int]struct{}, edges []*core.Edge) string {
	var parts []string
	for col, e := range edges {
		if _, ok := cols[col]; ok {
			parts = append(parts, e.String())
		}
	}
	return strings.Join(parts, ", ")
}
