// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/metagraph/core"
)

// Cell is the content of one matrix position: zero or more Triples, since
// several edges (or paths) may realize the same row→column relation.
type Cell []Triple

// contains reports membership by Triple identity.
func (c Cell) contains(t Triple) bool {
	key := t.Key()
	for _, have := range c {
		if have.Key() == key {
			return true
		}
	}
	return false
}

// clone returns an independent copy of the cell.
func (c Cell) clone() Cell {
	if c == nil {
		return nil
	}
	return append(Cell(nil), c...)
}

// TripleMatrix is a dense |GS|×|GS| grid of Cells indexed by the canonical
// element ordering of the originating metagraph. It backs both the
// adjacency matrix and the closure A*.
type TripleMatrix struct {
	order []core.Element
	index map[core.Element]int
	cells [][]Cell
}

// newTripleMatrix allocates an empty matrix over the given ordering.
func newTripleMatrix(order []core.Element) *TripleMatrix {
	index := make(map[core.Element]int, len(order))
	for i, el := range order {
		index[el] = i
	}
	cells := make([][]Cell, len(order))
	for i := range cells {
		cells[i] = make([]Cell, len(order))
	}
	return &TripleMatrix{order: append([]core.Element(nil), order...), index: index, cells: cells}
}

// Size returns the matrix dimension (|GS|).
func (m *TripleMatrix) Size() int { return len(m.order) }

// Order returns the canonical element ordering of rows and columns.
func (m *TripleMatrix) Order() []core.Element {
	return append([]core.Element(nil), m.order...)
}

// Index returns the row/column position of el.
func (m *TripleMatrix) Index(el core.Element) (int, bool) {
	i, ok := m.index[el]
	return i, ok
}

// At returns the cell at (i, j). Complexity: O(1).
func (m *TripleMatrix) At(i, j int) (Cell, error) {
	if i < 0 || i >= len(m.order) || j < 0 || j >= len(m.order) {
		return nil, ErrOutOfRange
	}
	return m.cells[i][j].clone(), nil
}

// AtElements returns the cell relating row element a to column element b.
func (m *TripleMatrix) AtElements(a, b core.Element) (Cell, error) {
	i, ok := m.index[a]
	if !ok {
		return nil, ErrUnknownElement
	}
	j, ok := m.index[b]
	if !ok {
		return nil, ErrUnknownElement
	}
	return m.cells[i][j].clone(), nil
}

// Row returns a copy of row i.
func (m *TripleMatrix) Row(i int) ([]Cell, error) {
	if i < 0 || i >= len(m.order) {
		return nil, ErrOutOfRange
	}
	out := make([]Cell, len(m.order))
	for j := range m.cells[i] {
		out[j] = m.cells[i][j].clone()
	}
	return out, nil
}

// Col returns a copy of column j.
func (m *TripleMatrix) Col(j int) ([]Cell, error) {
	if j < 0 || j >= len(m.order) {
		return nil, ErrOutOfRange
	}
	out := make([]Cell, len(m.order))
	for i := range m.cells {
		out[i] = m.cells[i][j].clone()
	}
	return out, nil
}

// RowOf returns the row addressed by element.
func (m *TripleMatrix) RowOf(el core.Element) ([]Cell, error) {
	i, ok := m.index[el]
	if !ok {
		return nil, ErrUnknownElement
	}
	return m.Row(i)
}

// ColOf returns the column addressed by element.
func (m *TripleMatrix) ColOf(el core.Element) ([]Cell, error) {
	j, ok := m.index[el]
	if !ok {
		return nil, ErrUnknownElement
	}
	return m.Col(j)
}

// Clone returns a deep-enough copy: cells are fresh slices, Triples are
// shared immutable values. Complexity: O(n²·t).
func (m *TripleMatrix) Clone() *TripleMatrix {
	out := newTripleMatrix(m.order)
	for i := range m.cells {
		for j := range m.cells[i] {
			out.cells[i][j] = m.cells[i][j].clone()
		}
	}
	return out
}

// Equal reports whether both matrices hold the same Triples in every cell,
// ignoring intra-cell order. This is the fixpoint test of the closure.
func (m *TripleMatrix) Equal(other *TripleMatrix) bool {
	if other == nil || len(m.order) != len(other.order) {
		return false
	}
	for i, el := range m.order {
		if other.order[i] != el {
			return false
		}
	}
	for i := range m.cells {
		for j := range m.cells[i] {
			a, b := m.cells[i][j], other.cells[i][j]
			if len(a) != len(b) {
				return false
			}
			for _, t := range a {
				if !b.contains(t) {
					return false
				}
			}
		}
	}
	return true
}

// add inserts t into cell (i, j) unless an identical triple is present.
func (m *TripleMatrix) add(i, j int, t Triple) {
	if !m.cells[i][j].contains(t) {
		m.cells[i][j] = append(m.cells[i][j], t)
	}
}
