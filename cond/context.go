package cond

import (
	"fmt"

	"github.com/katalvlaran/metagraph/core"
)

// Context resolves cmg against a (possibly partial) truth assignment: every
// edge whose attribute set meets falseProps is dropped, and trueProps are
// stripped from the attribute sets of the edges that remain. Propositions
// mentioned in neither set stay as guards. The source metagraph is never
// mutated.
//
// Returns ErrNilConditional on a nil receiver argument and
// core.ErrInvalidInput when trueProps or falseProps reach outside the
// proposition partition or overlap each other.
func Context(cmg *core.ConditionalMetagraph, trueProps, falseProps core.Set) (*core.ConditionalMetagraph, error) {
	if cmg == nil {
		return nil, ErrNilConditional
	}
	props := cmg.Propositions()
	if out := trueProps.Diff(props); !out.IsEmpty() {
		return nil, fmt.Errorf("%w: true propositions contain %s outside the proposition set", core.ErrInvalidInput, out)
	}
	if out := falseProps.Diff(props); !out.IsEmpty() {
		return nil, fmt.Errorf("%w: false propositions contain %s outside the proposition set", core.ErrInvalidInput, out)
	}
	if both := trueProps.Intersect(falseProps); !both.IsEmpty() {
		return nil, fmt.Errorf("%w: propositions %s assigned both true and false", core.ErrInvalidInput, both)
	}

	out, err := core.NewConditional(cmg.Variables(), props)
	if err != nil {
		return nil, err
	}
	for _, e := range cmg.Edges() {
		attrs := e.Attributes()
		if !attrs.Intersect(falseProps).IsEmpty() {
			continue
		}
		opts := []core.EdgeOption{core.WithLabel(e.Label())}
		if remaining := attrs.Diff(trueProps); !remaining.IsEmpty() {
			opts = append(opts, core.WithAttributes(remaining))
		}
		resolved, err := core.NewEdge(e.Invertex(), e.Outvertex(), opts...)
		if err != nil {
			return nil, err
		}
		if err := out.AddEdge(resolved); err != nil {
			return nil, err
		}
	}
	return out, nil
}
