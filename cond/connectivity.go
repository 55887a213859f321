package cond

import (
	"fmt"

	"github.com/katalvlaran/metagraph/core"
	"github.com/katalvlaran/metagraph/logic"
	"github.com/katalvlaran/metagraph/matrix"
	"github.com/katalvlaran/metagraph/metapath"
)

// IsConnected reports whether at least one satisfying interpretation yields
// a context in which source reaches target. An interpretation satisfies the
// query when every expression in exprs evaluates to true under it;
// interpretations that fail the expressions are skipped.
//
// With an empty exprs list every interpretation satisfies. Returns
// ErrNoInterpretations when interps is empty and core.ErrInvalidInput when
// source or target leave the variable partition or an interpretation
// assigns a non-proposition.
func IsConnected(cmg *core.ConditionalMetagraph, source, target core.Set, exprs []string, interps []logic.Interpretation, opts ...Option) (bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if err := validateQuery(cmg, source, target, interps); err != nil {
		return false, err
	}
	for _, interp := range interps {
		ctx, sat, err := resolve(cmg, exprs, interp, o)
		if err != nil {
			return false, err
		}
		if !sat {
			continue
		}
		if metapath.Connects(ctx.Edges(), source, target) {
			return true, nil
		}
	}
	return false, nil
}

// IsFullyConnected reports whether every satisfying interpretation yields a
// context in which source reaches target. It is vacuously true when no
// interpretation satisfies the expressions.
func IsFullyConnected(cmg *core.ConditionalMetagraph, source, target core.Set, exprs []string, interps []logic.Interpretation, opts ...Option) (bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if err := validateQuery(cmg, source, target, interps); err != nil {
		return false, err
	}
	for _, interp := range interps {
		ctx, sat, err := resolve(cmg, exprs, interp, o)
		if err != nil {
			return false, err
		}
		if !sat {
			continue
		}
		if !metapath.Connects(ctx.Edges(), source, target) {
			return false, nil
		}
	}
	return true, nil
}

// IsRedundantlyConnected reports whether some satisfying interpretation
// yields a context holding more than one dominant metapath from source to
// target.
func IsRedundantlyConnected(cmg *core.ConditionalMetagraph, source, target core.Set, exprs []string, interps []logic.Interpretation, opts ...Option) (bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if err := validateQuery(cmg, source, target, interps); err != nil {
		return false, err
	}
	for _, interp := range interps {
		ctx, sat, err := resolve(cmg, exprs, interp, o)
		if err != nil {
			return false, err
		}
		if !sat {
			continue
		}
		mps, err := metapath.All(ctx.Underlying(), source, target, o.enumOptions()...)
		if len(mps) > 1 {
			return true, nil
		}
		if err != nil {
			return false, err
		}
	}
	return false, nil
}

// IsNonRedundant reports whether under every satisfying interpretation
// every connected ordered pair of variables admits at most one dominant
// metapath.
func IsNonRedundant(cmg *core.ConditionalMetagraph, exprs []string, interps []logic.Interpretation, opts ...Option) (bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if cmg == nil {
		return false, ErrNilConditional
	}
	if len(interps) == 0 {
		return false, ErrNoInterpretations
	}
	if err := validateInterps(cmg, interps); err != nil {
		return false, err
	}
	vars := cmg.Variables().Sorted()
	for _, interp := range interps {
		ctx, sat, err := resolve(cmg, exprs, interp, o)
		if err != nil {
			return false, err
		}
		if !sat {
			continue
		}
		under := ctx.Underlying()
		star, err := matrix.Closure(under, matrix.WithContext(o.ctx))
		if err != nil {
			return false, err
		}
		enumOpts := append(o.enumOptions(), metapath.WithClosure(star))
		for _, x := range vars {
			for _, y := range vars {
				if x == y {
					continue
				}
				mps, err := metapath.All(under, core.NewSet(x), core.NewSet(y), enumOpts...)
				if len(mps) > 1 {
					return false, nil
				}
				if err != nil {
					return false, err
				}
			}
		}
	}
	return true, nil
}

// resolve evaluates the expressions under interp and, when they hold,
// derives the interpretation's context.
func resolve(cmg *core.ConditionalMetagraph, exprs []string, interp logic.Interpretation, o options) (*core.ConditionalMetagraph, bool, error) {
	sat, err := satisfies(o.eval, exprs, interp)
	if err != nil || !sat {
		return nil, false, err
	}
	ctx, err := Context(cmg, interp.TrueSet(), interp.FalseSet())
	if err != nil {
		return nil, false, err
	}
	return ctx, true, nil
}

// satisfies reports whether every expression evaluates to true under the
// interpretation. Evaluation errors propagate; a plain false result is not
// an error.
func satisfies(eval logic.Evaluator, exprs []string, interp logic.Interpretation) (bool, error) {
	for _, expr := range exprs {
		ok, err := eval(expr, interp)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func validateQuery(cmg *core.ConditionalMetagraph, source, target core.Set, interps []logic.Interpretation) error {
	if cmg == nil {
		return ErrNilConditional
	}
	if err := cmg.ValidateVariables("source", source); err != nil {
		return err
	}
	if err := cmg.ValidateVariables("target", target); err != nil {
		return err
	}
	if len(interps) == 0 {
		return ErrNoInterpretations
	}
	return validateInterps(cmg, interps)
}

func validateInterps(cmg *core.ConditionalMetagraph, interps []logic.Interpretation) error {
	props := cmg.Propositions()
	for _, interp := range interps {
		assigned := interp.TrueSet().Union(interp.FalseSet())
		if out := assigned.Diff(props); !out.IsEmpty() {
			return fmt.Errorf("%w: interpretation assigns %s outside the proposition set", core.ErrInvalidInput, out)
		}
	}
	return nil
}

// enumOptions translates the local settings into package metapath options.
func (o options) enumOptions() []metapath.Option {
	opts := []metapath.Option{metapath.WithContext(o.ctx)}
	if o.max > 0 {
		opts = append(opts, metapath.WithMaxCandidates(o.max))
	}
	return opts
}
