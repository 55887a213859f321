// Package core defines the central Metagraph, ConditionalMetagraph, Edge and
// Set types, and provides validated constructors for building metagraphs.
//
// What:
//
//   - Element / Set: the atomic members of a generating set and the set
//     algebra every analysis package relies on.
//   - Edge: a directed hyper-connection from one non-empty element subset
//     (invertex) to another (outvertex), optionally guarded by an attribute
//     set of propositions.
//   - Metagraph: a generating set plus a duplicate-free edge collection.
//   - ConditionalMetagraph: a Metagraph whose generating set is partitioned
//     into variables and propositions, by composition.
//
// Why:
//
//   - Every derived structure (adjacency matrix, closure, metapath,
//     projection, inverse, element-flow metagraph, context) is a pure
//     function of these values.
//
// Determinism:
//
//   - Set.Sorted fixes the one canonical (lexicographic) element ordering
//     that all matrix and enumeration code reuses. Edge.Key is a canonical
//     serialization of (invertex, outvertex, attributes), so edges can act
//     as map keys and as generating-set elements of the inverse transform.
//
// Concurrency:
//
//   - Values are immutable once built, except the edge collection, which is
//     appended to via AddEdge/AddEdgesFrom before analysis begins. Accessors
//     return copies, so analysis packages always work on snapshots.
//
// Errors:
//
//   - ErrInvalidGeneratingSet: empty set, or variables/propositions overlap
//     or either partition empty.
//   - ErrInvalidEdge: empty invertex/outvertex, overlapping vertex sets, or
//     elements outside the generating set.
//   - ErrInvalidInput: source/target empty or referencing out-of-set
//     elements.
package core
