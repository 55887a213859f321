// Package transform derives new metagraphs from existing ones.
//
// What
//
//   - Projection: restricts a metagraph to a generating subset, replacing
//     multi-hop connections through dropped elements with direct edges.
//   - Inverse: the edge-centric dual, whose elements are the original edges
//     plus the Alpha/Beta boundary markers.
//   - EFM: the element-flow metagraph, tracing how excluded elements carry
//     flow between subset members.
//   - Union, Product: metagraph composition by edge union and by adjacency
//     multiplication.
//   - Dominates, Equivalent: connectivity-based comparison of two
//     metagraphs.
//
// Every function returns a freshly built metagraph and never mutates its
// inputs; derived edges carry provenance in their labels.
//
// Complexity
//
// Projection and the comparisons enumerate combinations and are budgeted via
// WithMaxCombinations; hitting the budget surfaces ErrCombinationBudget.
// Inverse and EFM are polynomial in |GS|·|E|.
//
// Errors
//
// Invalid subsets surface core.ErrInvalidInput, nil inputs ErrNilMetagraph,
// edgeless inputs to Inverse/EFM ErrNoEdges, and Product over different
// generating sets ErrGeneratingSetMismatch.
package transform
