// Package cond analyzes conditional metagraphs: metagraphs whose edges
// carry propositional guards and whose behaviour therefore depends on an
// interpretation assigning truth values to the propositions.
//
// What
//
//   - Context: resolve a conditional metagraph against a set of true and
//     false propositions, dropping edges whose guard fails and stripping
//     satisfied guards.
//   - IsConnected / IsFullyConnected: existential and universal
//     source-to-target connectivity over a list of interpretations.
//   - IsRedundantlyConnected / IsNonRedundant: redundancy of dominant
//     metapaths under the same quantification.
//   - AllMetapaths, HasConflicts, HasRedundancies: pairwise metapath
//     discovery and metapath-level conflict and redundancy checks.
//
// Why
//
// A conditional metagraph describes a family of plain metagraphs, one per
// interpretation of its propositions. Every connectivity question therefore
// quantifies over interpretations: first the supplied logical expressions
// filter the interpretations (an interpretation that fails them is skipped,
// never an error), then each surviving interpretation is resolved to a
// context and the plain reachability machinery from package metapath runs
// on it.
//
// Complexity
//
// Context resolution is linear in the edge count. The connectivity
// predicates run one forward-chaining reachability pass per satisfying
// interpretation. The redundancy predicates enumerate dominant metapaths
// per interpretation and inherit the combinatorial cost of package
// metapath; WithMaxCandidates bounds that work.
//
// Errors
//
// A nil conditional metagraph surfaces ErrNilConditional; an empty
// interpretation list surfaces ErrNoInterpretations; propositions outside
// the partition surface core.ErrInvalidInput; malformed options surface
// ErrOptionViolation. Evaluator failures (malformed expressions, unassigned
// propositions) propagate unchanged.
package cond
