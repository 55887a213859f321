// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/metagraph/core"
)

// IncidenceMatrix is the |GS|×|E| element-versus-edge view of a metagraph:
// entry (i, j) is -1 when element i is consumed by edge j, +1 when produced,
// 0 otherwise. Rows follow the canonical element ordering, columns follow
// edge insertion order.
type IncidenceMatrix struct {
	order []core.Element
	index map[core.Element]int
	edges []*core.Edge
	cells [][]int8
}

// Incidence builds the incidence matrix of g.
// Complexity: O(|GS|·|E|).
func Incidence(g *core.Metagraph) (*IncidenceMatrix, error) {
	if g == nil {
		return nil, ErrNilMetagraph
	}
	order := g.Order()
	index := make(map[core.Element]int, len(order))
	for i, el := range order {
		index[el] = i
	}
	edges := g.Edges()
	cells := make([][]int8, len(order))
	for i := range cells {
		cells[i] = make([]int8, len(edges))
	}
	for j, e := range edges {
		for el := range e.Invertex() {
			cells[index[el]][j] = -1
		}
		for el := range e.Outvertex() {
			cells[index[el]][j] = +1
		}
	}
	return &IncidenceMatrix{order: order, index: index, edges: edges, cells: cells}, nil
}

// Rows returns the number of rows (|GS|).
func (m *IncidenceMatrix) Rows() int { return len(m.order) }

// Cols returns the number of columns (|E|).
func (m *IncidenceMatrix) Cols() int { return len(m.edges) }

// Order returns the canonical row ordering.
func (m *IncidenceMatrix) Order() []core.Element {
	return append([]core.Element(nil), m.order...)
}

// Edges returns the column ordering.
func (m *IncidenceMatrix) Edges() []*core.Edge {
	return append([]*core.Edge(nil), m.edges...)
}

// At returns the entry at (i, j).
func (m *IncidenceMatrix) At(i, j int) (int8, error) {
	if i < 0 || i >= len(m.order) || j < 0 || j >= len(m.edges) {
		return 0, ErrOutOfRange
	}
	return m.cells[i][j], nil
}

// Row returns a copy of row i.
func (m *IncidenceMatrix) Row(i int) ([]int8, error) {
	if i < 0 || i >= len(m.order) {
		return nil, ErrOutOfRange
	}
	return append([]int8(nil), m.cells[i]...), nil
}

// RowOf returns the row addressed by element.
func (m *IncidenceMatrix) RowOf(el core.Element) ([]int8, error) {
	i, ok := m.index[el]
	if !ok {
		return nil, ErrUnknownElement
	}
	return m.Row(i)
}

// Col returns a copy of column j.
func (m *IncidenceMatrix) Col(j int) ([]int8, error) {
	if j < 0 || j >= len(m.edges) {
		return nil, ErrOutOfRange
	}
	out := make([]int8, len(m.order))
	for i := range m.cells {
		out[i] = m.cells[i][j]
	}
	return out, nil
}
