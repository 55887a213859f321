package metapath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metagraph/core"
	"github.com/katalvlaran/metagraph/metapath"
)

func mustEdge(t *testing.T, in, out []core.Element) *core.Edge {
	t.Helper()
	e, err := core.NewEdge(core.NewSet(in...), core.NewSet(out...))
	require.NoError(t, err)
	return e
}

// buildExample returns the running example over {1..7} with edges
// ({1},{2,3}), ({1,4},{5}) and ({3},{6,7}).
func buildExample(t *testing.T) (*core.Metagraph, []*core.Edge) {
	t.Helper()
	g, err := core.New(core.NewSet("1", "2", "3", "4", "5", "6", "7"))
	require.NoError(t, err)
	edges := []*core.Edge{
		mustEdge(t, []core.Element{"1"}, []core.Element{"2", "3"}),
		mustEdge(t, []core.Element{"1", "4"}, []core.Element{"5"}),
		mustEdge(t, []core.Element{"3"}, []core.Element{"6", "7"}),
	}
	require.NoError(t, g.AddEdgesFrom(edges))
	return g, edges
}

func TestAll_SingleDominantMetapath(t *testing.T) {
	g, edges := buildExample(t)

	mps, err := metapath.All(g, core.NewSet("1"), core.NewSet("7"))
	require.NoError(t, err)
	require.Len(t, mps, 1)

	want := metapath.Metapath{
		Source: core.NewSet("1"),
		Target: core.NewSet("7"),
		Edges:  []*core.Edge{edges[0], edges[2]},
	}
	assert.True(t, mps[0].Equal(want), "got %s", mps[0])
}

func TestAll_Unreachable(t *testing.T) {
	g, _ := buildExample(t)

	// Nothing produces 4.
	mps, err := metapath.All(g, core.NewSet("1"), core.NewSet("4"))
	require.NoError(t, err)
	assert.Empty(t, mps)
}

func TestAll_SideBranchCoinput(t *testing.T) {
	// ({2,3},{4}) needs 3, produced by ({1},{3}) off the 1→2→4 chain; the
	// union of both chains is the single dominant metapath from {1} to {4}.
	g, err := core.New(core.NewSet("1", "2", "3", "4"))
	require.NoError(t, err)
	e1 := mustEdge(t, []core.Element{"1"}, []core.Element{"2"})
	e2 := mustEdge(t, []core.Element{"2", "3"}, []core.Element{"4"})
	e3 := mustEdge(t, []core.Element{"1"}, []core.Element{"3"})
	require.NoError(t, g.AddEdgesFrom([]*core.Edge{e1, e2, e3}))
	source, target := core.NewSet("1"), core.NewSet("4")

	require.True(t, metapath.Connects(g.Edges(), source, target))

	mps, err := metapath.All(g, source, target)
	require.NoError(t, err)
	require.Len(t, mps, 1, "the side-branch union must be found")

	want := metapath.Metapath{Source: source, Target: target, Edges: []*core.Edge{e1, e2, e3}}
	assert.True(t, mps[0].Equal(want), "got %s", mps[0])

	ok, err := metapath.IsMetapath(g, want)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAll_InvalidInput(t *testing.T) {
	g, _ := buildExample(t)

	_, err := metapath.All(g, core.NewSet(), core.NewSet("7"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = metapath.All(g, core.NewSet("1"), core.NewSet("9"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = metapath.All(nil, core.NewSet("1"), core.NewSet("7"))
	assert.ErrorIs(t, err, metapath.ErrNilMetagraph)
}

func TestAll_DominantFilter(t *testing.T) {
	g, _ := buildExample(t)
	// A second route to 7 gives two dominant metapaths plus one loose union.
	require.NoError(t, g.AddEdge(mustEdge(t, []core.Element{"2"}, []core.Element{"7"})))

	dominant, err := metapath.All(g, core.NewSet("1"), core.NewSet("7"))
	require.NoError(t, err)
	assert.Len(t, dominant, 2)

	all, err := metapath.All(g, core.NewSet("1"), core.NewSet("7"), metapath.WithAllMetapaths())
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, mp := range dominant {
		ok, err := metapath.IsDominant(g, mp)
		require.NoError(t, err)
		assert.True(t, ok, "%s", mp)
	}
}

func TestAll_BudgetTruncation(t *testing.T) {
	g, _ := buildExample(t)
	require.NoError(t, g.AddEdge(mustEdge(t, []core.Element{"2"}, []core.Element{"7"})))

	mps, err := metapath.All(g, core.NewSet("1"), core.NewSet("7"),
		metapath.WithMaxCandidates(1))
	assert.ErrorIs(t, err, metapath.ErrCandidateBudget)
	assert.Len(t, mps, 1, "the single inspected combination is still produced")

	_, err = metapath.All(g, core.NewSet("1"), core.NewSet("7"),
		metapath.WithMaxCandidates(-1))
	assert.ErrorIs(t, err, metapath.ErrOptionViolation)
}

func TestEnumerate_Lazy(t *testing.T) {
	g, _ := buildExample(t)

	en, err := metapath.Enumerate(g, core.NewSet("1"), core.NewSet("7"))
	require.NoError(t, err)

	mp, ok := en.Next()
	require.True(t, ok)
	assert.Equal(t, core.NewSet("1"), mp.Source)
	assert.Equal(t, core.NewSet("7"), mp.Target)
	assert.Len(t, mp.Edges, 2)

	_, ok = en.Next()
	assert.False(t, ok)
	assert.NoError(t, en.Err())
}

func TestIsMetapath(t *testing.T) {
	g, edges := buildExample(t)
	source, target := core.NewSet("1"), core.NewSet("7")

	ok, err := metapath.IsMetapath(g, metapath.Metapath{
		Source: source, Target: target,
		Edges: []*core.Edge{edges[0], edges[2]},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	// ({3},{6,7}) alone needs 3, which the source does not provide.
	ok, err = metapath.IsMetapath(g, metapath.Metapath{
		Source: source, Target: target,
		Edges: []*core.Edge{edges[2]},
	})
	require.NoError(t, err)
	assert.False(t, ok)

	// An edge outside the metagraph invalidates the candidate.
	ok, err = metapath.IsMetapath(g, metapath.Metapath{
		Source: source, Target: core.NewSet("2"),
		Edges: []*core.Edge{mustEdge(t, []core.Element{"1"}, []core.Element{"2"})},
	})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = metapath.IsMetapath(g, metapath.Metapath{Source: source, Target: target})
	assert.ErrorIs(t, err, metapath.ErrNilMetapath)
}

func TestIsMetapath_RejectsCircular(t *testing.T) {
	// ({2},{3}) and ({3},{2}) feed each other, so their net equation balances
	// and the target lies in their outputs, yet neither can ever fire from
	// {1}.
	g, err := core.New(core.NewSet("1", "2", "3"))
	require.NoError(t, err)
	a := mustEdge(t, []core.Element{"2"}, []core.Element{"3"})
	b := mustEdge(t, []core.Element{"3"}, []core.Element{"2"})
	require.NoError(t, g.AddEdgesFrom([]*core.Edge{a, b}))
	source, target := core.NewSet("1"), core.NewSet("2")

	require.False(t, metapath.Connects(g.Edges(), source, target))

	ok, err := metapath.IsMetapath(g, metapath.Metapath{
		Source: source, Target: target,
		Edges: []*core.Edge{a, b},
	})
	require.NoError(t, err)
	assert.False(t, ok, "a self-feeding circular edge set is not a metapath")

	mps, err := metapath.All(g, source, target)
	require.NoError(t, err)
	assert.Empty(t, mps)
}

func TestDominancePredicates(t *testing.T) {
	g, _ := buildExample(t)

	mps, err := metapath.All(g, core.NewSet("1"), core.NewSet("7"))
	require.NoError(t, err)
	require.Len(t, mps, 1)
	mp := mps[0]

	ok, err := metapath.IsEdgeDominant(g, mp)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = metapath.IsInputDominant(g, mp)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = metapath.IsDominant(g, mp)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsInputDominant_Fails(t *testing.T) {
	g, edges := buildExample(t)

	// {1,4}→{2,3} needs only 1; the 4 is dead weight in the source.
	mp := metapath.Metapath{
		Source: core.NewSet("1", "4"),
		Target: core.NewSet("2"),
		Edges:  []*core.Edge{edges[0]},
	}
	ok, err := metapath.IsInputDominant(g, mp)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsEdgeDominant_Fails(t *testing.T) {
	g, edges := buildExample(t)

	// ({1,4},{5}) adds nothing on the way from 1 to 7.
	mp := metapath.Metapath{
		Source: core.NewSet("1", "4"),
		Target: core.NewSet("7"),
		Edges:  []*core.Edge{edges[0], edges[1], edges[2]},
	}
	ok, err := metapath.IsEdgeDominant(g, mp)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsEdgeDominant_CircularSubset(t *testing.T) {
	// The subset {({2},{3,4}), ({3},{2,6})} balances its net equation and
	// covers the target, but it cannot fire without ({1},{2}); the metapath
	// is genuinely edge-dominant.
	g, err := core.New(core.NewSet("1", "2", "3", "4", "6"))
	require.NoError(t, err)
	e := mustEdge(t, []core.Element{"1"}, []core.Element{"2"})
	a := mustEdge(t, []core.Element{"2"}, []core.Element{"3", "4"})
	b := mustEdge(t, []core.Element{"3"}, []core.Element{"2", "6"})
	require.NoError(t, g.AddEdgesFrom([]*core.Edge{e, a, b}))

	mp := metapath.Metapath{
		Source: core.NewSet("1"),
		Target: core.NewSet("4", "6"),
		Edges:  []*core.Edge{e, a, b},
	}
	ok, err := metapath.IsMetapath(g, mp)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = metapath.IsEdgeDominant(g, mp)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = metapath.IsDominant(g, mp)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDominates_Antisymmetry(t *testing.T) {
	_, edges := buildExample(t)

	strict := metapath.Metapath{
		Source: core.NewSet("1"),
		Target: core.NewSet("7"),
		Edges:  []*core.Edge{edges[0], edges[2]},
	}
	loose := metapath.Metapath{
		Source: core.NewSet("1", "4"),
		Target: core.NewSet("7"),
		Edges:  []*core.Edge{edges[0], edges[1], edges[2]},
	}
	assert.True(t, strict.Dominates(loose))
	assert.False(t, loose.Dominates(strict))
	assert.False(t, strict.Dominates(strict), "dominance is irreflexive")
}

func TestIsRedundantEdge(t *testing.T) {
	g, edges := buildExample(t)
	source, target := core.NewSet("1"), core.NewSet("7")

	mps, err := metapath.All(g, source, target)
	require.NoError(t, err)
	require.Len(t, mps, 1)

	ok, err := metapath.IsRedundantEdge(g, edges[0], mps[0], source, target)
	require.NoError(t, err)
	assert.False(t, ok, "({1},{2,3}) is the only way to reach 3")

	// With a bypass in the metapath the first edge becomes redundant.
	bypass := mustEdge(t, []core.Element{"1"}, []core.Element{"3"})
	require.NoError(t, g.AddEdge(bypass))
	mp := metapath.Metapath{
		Source: source, Target: target,
		Edges: []*core.Edge{edges[0], edges[2], bypass},
	}
	ok, err = metapath.IsRedundantEdge(g, edges[0], mp, source, target)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCutsetAndBridge(t *testing.T) {
	g, edges := buildExample(t)
	source, target := core.NewSet("1"), core.NewSet("7")

	cut, err := metapath.IsCutset(g, []*core.Edge{edges[0]}, source, target)
	require.NoError(t, err)
	assert.True(t, cut)

	bridge, err := metapath.IsBridge(g, []*core.Edge{edges[0]}, source, target)
	require.NoError(t, err)
	assert.True(t, bridge, "every singleton cutset is a bridge")

	// Supersets of a cutset stay cutsets.
	cut, err = metapath.IsCutset(g, []*core.Edge{edges[0], edges[1]}, source, target)
	require.NoError(t, err)
	assert.True(t, cut)

	// ({1,4},{5}) is off the 1→7 route, so alone it cuts nothing.
	cut, err = metapath.IsCutset(g, []*core.Edge{edges[1]}, source, target)
	require.NoError(t, err)
	assert.False(t, cut)

	bridge, err = metapath.IsBridge(g, []*core.Edge{edges[0], edges[2]}, source, target)
	require.NoError(t, err)
	assert.False(t, bridge, "a bridge is a singleton")
}

func TestIsBridge_InvalidInput(t *testing.T) {
	g, edges := buildExample(t)

	// Validation fires before the singleton check.
	_, err := metapath.IsBridge(g, []*core.Edge{edges[0], edges[1]}, core.NewSet("1"), core.NewSet("9"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = metapath.IsBridge(g, []*core.Edge{edges[0], edges[1]}, core.NewSet(), core.NewSet("7"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	_, err = metapath.IsBridge(nil, []*core.Edge{edges[0]}, core.NewSet("1"), core.NewSet("7"))
	assert.ErrorIs(t, err, metapath.ErrNilMetagraph)
}

func TestMinimalCutset(t *testing.T) {
	g, edges := buildExample(t)
	source, target := core.NewSet("1"), core.NewSet("7")

	cut, err := metapath.MinimalCutset(g, source, target)
	require.NoError(t, err)
	require.Len(t, cut, 1)
	assert.True(t, cut[0].Equal(edges[0]))

	// Disconnected pairs have no cutset to find.
	cut, err = metapath.MinimalCutset(g, core.NewSet("1"), core.NewSet("4"))
	require.NoError(t, err)
	assert.Nil(t, cut)
}

func TestConnects(t *testing.T) {
	_, edges := buildExample(t)

	assert.True(t, metapath.Connects(edges, core.NewSet("1"), core.NewSet("6", "7")))
	assert.True(t, metapath.Connects(edges, core.NewSet("1", "4"), core.NewSet("5")))
	assert.False(t, metapath.Connects(edges, core.NewSet("1"), core.NewSet("5")), "5 needs 4 as well")
	assert.False(t, metapath.Connects(edges, core.NewSet("1"), core.NewSet()))
}
