// Package metapath discovers and classifies metapaths: edge subsets that
// connect a source element set to a target element set inside a
// core.Metagraph.
//
// What
//
//   - Metapath: the (source, target, edges) value with structural equality
//     and the Dominates relation.
//   - Enumerate / All: lazy and eager discovery of metapaths between a
//     source and a target, seeded by the closure matrix and filtered to
//     dominant results unless WithAllMetapaths is given.
//   - IsMetapath, IsInputDominant, IsEdgeDominant, IsDominant: validity and
//     minimality predicates.
//   - IsRedundantEdge, IsCutset, IsBridge, MinimalCutset, Connects:
//     reachability-based structure tests.
//
// Why
//
// Metapaths generalize paths: a target may need several edges at once, and
// an edge may need several elements at once. Discovery therefore searches
// combinations of closure chains instead of walking adjacency lists, and
// minimality (dominance) replaces shortest-path as the notion of a "good"
// answer.
//
// Complexity
//
// Enumeration inspects combinations of candidate chains and is exponential
// in the candidate count; WithMaxCandidates bounds the work, and enumeration
// stops with ErrCandidateBudget once the bound is hit. The predicates run in
// time polynomial in |edges| except the dominance tests, which enumerate
// subsets of one metapath's (small) source and edge list.
//
// Errors
//
// Invalid source/target sets surface core.ErrInvalidInput; malformed options
// surface ErrOptionViolation; a nil metagraph surfaces ErrNilMetagraph. All
// operations are read-only on the metagraph.
package metapath
