// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/metagraph/core"
)

// Adjacency builds the adjacency matrix of g: cell (i, j) holds one Triple
// per edge whose invertex contains i and outvertex contains j, with
// Coinputs = invertex−{i} and Cooutputs = outvertex−{j} (nil when empty).
// Every edge therefore appears in exactly |invertex|×|outvertex| cells.
// Complexity: O(|E|·|in|·|out|); deterministic for identical input.
func Adjacency(g *core.Metagraph) (*TripleMatrix, error) {
	if g == nil {
		return nil, ErrNilMetagraph
	}
	m := newTripleMatrix(g.Order())
	for _, e := range g.Edges() {
		for _, i := range e.Invertex().Sorted() {
			row := m.index[i]
			for _, j := range e.Outvertex().Sorted() {
				col := m.index[j]
				t, err := NewTriple(e.Coinputs(i), e.Cooutputs(j), e)
				if err != nil {
					return nil, err
				}
				m.add(row, col, t)
			}
		}
	}
	return m, nil
}
