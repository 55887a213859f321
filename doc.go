// Package metagraph is an in-memory toolkit for building and analyzing
// metagraphs — directed graphs whose edges connect sets of elements to
// sets of elements instead of single vertices.
//
// 🚀 What is metagraph?
//
//	A small, deterministic analysis library that brings together:
//		• Core primitives: generating sets, set-valued edges, conditional partitions
//		• Matrix views: adjacency & incidence matrices of Triple cells, closure A*
//		• Metapaths: lazy enumeration, input/edge dominance, cutsets & bridges
//		• Transforms: projection, inverse, element-flow, union & product
//		• Conditional layer: contexts, quantified connectivity, redundancy
//
// ✨ Why choose metagraph?
//
//   - Predictable – canonical element ordering makes every result reproducible
//   - Bounded – iteration budgets and contexts tame the combinatorial searches
//   - Explicit – sentinel errors name exactly what went wrong and where
//
// Under the hood, everything is organized under six subpackages:
//
//	core/     — Element, Set, Edge, Metagraph, ConditionalMetagraph
//	matrix/   — Triple, adjacency, incidence, closure, multiplication
//	metapath/ — enumeration, dominance predicates, cutsets, bridges
//	transform/— projection, inverse, element-flow metagraph, union, product
//	cond/     — contexts and interpretation-quantified connectivity
//	logic/    — the propositional expression evaluator the cond layer consumes
//
// Quick ASCII example:
//
//	    {1}───e1───▶{2, 3}
//	                   │
//	    {1, 4}──e2──▶{5}   {3}───e3───▶{6, 7}
//
//	three edges over the generating set {1..7}; e1 followed by e3 is the
//	single dominant metapath from {1} to {7}.
//
// Dive into the package docs for the algorithms and their complexity, and
// into cmd/metagraph for the YAML-driven command line front end.
//
//	go get github.com/katalvlaran/metagraph
package metagraph
