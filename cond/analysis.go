package cond

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/metagraph/core"
	"github.com/katalvlaran/metagraph/matrix"
	"github.com/katalvlaran/metagraph/metapath"
)

// AllMetapaths scans every ordered pair of distinct variables and collects
// the dominant metapaths between them, deduplicated, stopping once limit
// results are gathered. A limit of zero or less means no cap. The closure
// is computed once and shared across pairs.
func AllMetapaths(cmg *core.ConditionalMetagraph, limit int, opts ...Option) ([]metapath.Metapath, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if cmg == nil {
		return nil, ErrNilConditional
	}
	under := cmg.Underlying()
	star, err := matrix.Closure(under, matrix.WithContext(o.ctx))
	if err != nil {
		return nil, err
	}
	enumOpts := append(o.enumOptions(), metapath.WithClosure(star))

	var (
		found []metapath.Metapath
		seen  = make(map[string]struct{})
		vars  = cmg.Variables().Sorted()
	)
	for _, x := range vars {
		for _, y := range vars {
			if x == y {
				continue
			}
			mps, err := metapath.All(under, core.NewSet(x), core.NewSet(y), enumOpts...)
			if err != nil {
				return found, err
			}
			for _, mp := range mps {
				key := mp.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				found = append(found, mp)
				if limit > 0 && len(found) == limit {
					return found, nil
				}
			}
		}
	}
	return found, nil
}

// actionPrefix marks attribute values that name an action a policy edge
// performs, e.g. "action=permit".
const actionPrefix = "action="

// HasConflicts reports whether the metapath's edges prescribe more than one
// distinct action, i.e. carry "action=..." attributes with differing
// values. mp must be a valid metapath of cmg; otherwise
// core.ErrInvalidInput is returned.
func HasConflicts(cmg *core.ConditionalMetagraph, mp metapath.Metapath) (bool, error) {
	if cmg == nil {
		return false, ErrNilConditional
	}
	if err := requireMetapath(cmg, mp); err != nil {
		return false, err
	}
	props := cmg.Propositions()
	actions := make(map[string]struct{})
	for _, e := range mp.Edges {
		for _, attr := range e.Attributes().Intersect(props).Sorted() {
			name := string(attr)
			if strings.HasPrefix(name, actionPrefix) {
				actions[strings.TrimPrefix(name, actionPrefix)] = struct{}{}
			}
		}
	}
	return len(actions) > 1, nil
}

// HasRedundancies reports whether the metapath carries more inputs or edges
// than needed, i.e. is not dominant. mp must be a valid metapath of cmg;
// otherwise core.ErrInvalidInput is returned.
func HasRedundancies(cmg *core.ConditionalMetagraph, mp metapath.Metapath) (bool, error) {
	if cmg == nil {
		return false, ErrNilConditional
	}
	if err := requireMetapath(cmg, mp); err != nil {
		return false, err
	}
	dominant, err := metapath.IsDominant(cmg.Underlying(), mp)
	if err != nil {
		return false, err
	}
	return !dominant, nil
}

func requireMetapath(cmg *core.ConditionalMetagraph, mp metapath.Metapath) error {
	ok, err := metapath.IsMetapath(cmg.Underlying(), mp)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s is not a metapath of the conditional metagraph", core.ErrInvalidInput, mp)
	}
	return nil
}
