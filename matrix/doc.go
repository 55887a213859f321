// SPDX-License-Identifier: MIT

// Package matrix builds the set-valued matrix representations of a
// metagraph: the adjacency matrix, its transitive closure A*, and the
// vertex-by-edge incidence matrix.
//
// What:
//
//   - Triple: one cell entry - the co-inputs required besides the row
//     element, the co-outputs produced besides the column element, and the
//     chain of edges realizing the row→column relation.
//   - TripleMatrix: a dense |GS|×|GS| grid of Triple lists over the
//     canonical (lexicographic) element ordering, with single-cell indexing
//     and row/column slicing.
//   - Adjacency: direct edges only; every edge occupies exactly
//     |invertex|×|outvertex| cells.
//   - Closure: fixpoint A* = A ∪ A² ∪ ... capturing every multi-edge path,
//     with co-requirements accumulated by set union and edge chains by
//     concatenation.
//   - Incidence: |GS|×|E| grid of -1 (input) / +1 (output) / 0.
//
// Why:
//
//   - The closure is the reachability oracle behind metapath discovery,
//     dominance analysis and the structural transforms.
//
// Determinism:
//
//   - Rows and columns follow core.Set.Sorted order; cell contents follow
//     edge insertion order, so identical inputs always produce identical
//     matrices.
//
// Complexity:
//
//   - Adjacency: O(|E|·|in|·|out|). Closure: at most |GS| compose/add
//     rounds, each O(|GS|³·t²) for t triples per cell; worst case is
//     super-linear but finite, and cancellable via WithContext.
//
// Errors:
//
//   - ErrNilMetagraph, ErrOutOfRange, ErrUnknownElement, plus context
//     cancellation from the closure fixpoint.
package matrix
