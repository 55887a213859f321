// Package logic evaluates the propositional guard expressions of a
// conditional metagraph against interpretations.
//
// An Interpretation assigns truth values to propositions; Eval parses and
// evaluates one expression over one interpretation. The grammar is tiny:
// identifiers, '!' (not), '.' (and), '|' (or) and parentheses, with '.'
// binding tighter than '|'. Whitespace is ignored.
//
// The cond package consumes evaluators through the Evaluator type, so
// callers may substitute their own engine; Eval is the reference
// implementation.
//
// Errors: ErrSyntax for malformed expressions, ErrUnknownProposition for an
// identifier the interpretation does not assign.
package logic
