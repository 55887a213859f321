package cond_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metagraph/cond"
	"github.com/katalvlaran/metagraph/core"
	"github.com/katalvlaran/metagraph/logic"
	"github.com/katalvlaran/metagraph/metapath"
)

func mustEdge(t *testing.T, in, out []core.Element, attrs ...core.Element) *core.Edge {
	t.Helper()
	var opts []core.EdgeOption
	if len(attrs) > 0 {
		opts = append(opts, core.WithAttributes(core.NewSet(attrs...)))
	}
	e, err := core.NewEdge(core.NewSet(in...), core.NewSet(out...), opts...)
	require.NoError(t, err)
	return e
}

// buildGuarded returns the conditional metagraph over variables {1..7} and
// propositions {p1, p2} with four guarded edges.
func buildGuarded(t *testing.T) *core.ConditionalMetagraph {
	t.Helper()
	cmg, err := core.NewConditional(
		core.NewSet("1", "2", "3", "4", "5", "6", "7"),
		core.NewSet("p1", "p2"),
	)
	require.NoError(t, err)
	require.NoError(t, cmg.AddEdgesFrom([]*core.Edge{
		mustEdge(t, []core.Element{"1", "2"}, []core.Element{"3", "4"}, "p1"),
		mustEdge(t, []core.Element{"2"}, []core.Element{"4", "6"}, "p2"),
		mustEdge(t, []core.Element{"3", "4"}, []core.Element{"5"}, "p1", "p2"),
		mustEdge(t, []core.Element{"4", "6"}, []core.Element{"5", "7"}, "p1"),
	}))
	return cmg
}

// buildDiamond returns a conditional metagraph with two independent routes
// from 1 to 3: a direct edge and a two-edge chain through 2.
func buildDiamond(t *testing.T) *core.ConditionalMetagraph {
	t.Helper()
	cmg, err := core.NewConditional(
		core.NewSet("1", "2", "3"),
		core.NewSet("p1"),
	)
	require.NoError(t, err)
	require.NoError(t, cmg.AddEdgesFrom([]*core.Edge{
		mustEdge(t, []core.Element{"1"}, []core.Element{"2"}),
		mustEdge(t, []core.Element{"2"}, []core.Element{"3"}),
		mustEdge(t, []core.Element{"1"}, []core.Element{"3"}),
	}))
	return cmg
}

func interp(assigns ...logic.Assignment) logic.Interpretation {
	return logic.Interpretation(assigns)
}

func assign(p core.Element, v bool) logic.Assignment {
	return logic.Assignment{Proposition: p, Value: v}
}

func TestContext_FullAssignment(t *testing.T) {
	cmg := buildGuarded(t)

	ctx, err := cond.Context(cmg, core.NewSet("p1"), core.NewSet("p2"))
	require.NoError(t, err)

	// Edges guarded by p2 are gone; the survivors are unconditional.
	require.Equal(t, 2, ctx.EdgeCount())
	assert.Len(t, ctx.Nodes(), 4)
	for _, e := range ctx.Edges() {
		assert.True(t, e.Attributes().IsEmpty(), "edge %s still guarded", e)
	}
	assert.True(t, ctx.Edges()[0].Invertex().Equal(core.NewSet("1", "2")))
	assert.True(t, ctx.Edges()[1].Invertex().Equal(core.NewSet("4", "6")))

	// The source metagraph is untouched.
	assert.Equal(t, 4, cmg.EdgeCount())
}

func TestContext_PartialAssignment(t *testing.T) {
	cmg := buildGuarded(t)

	// Only p1 resolved: nothing is dropped, p1 is stripped, p2 stays.
	ctx, err := cond.Context(cmg, core.NewSet("p1"), core.NewSet())
	require.NoError(t, err)
	require.Equal(t, 4, ctx.EdgeCount())

	guarded := 0
	for _, e := range ctx.Edges() {
		assert.False(t, e.Attributes().Contains("p1"))
		if e.Attributes().Contains("p2") {
			guarded++
		}
	}
	assert.Equal(t, 2, guarded)
}

func TestContext_Errors(t *testing.T) {
	cmg := buildGuarded(t)

	_, err := cond.Context(nil, core.NewSet("p1"), core.NewSet())
	assert.ErrorIs(t, err, cond.ErrNilConditional)

	_, err = cond.Context(cmg, core.NewSet("p9"), core.NewSet())
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = cond.Context(cmg, core.NewSet("p1"), core.NewSet("p1"))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestIsConnected(t *testing.T) {
	cmg := buildGuarded(t)
	exprs := []string{"p1 | p2"}
	onlyP1 := interp(assign("p1", true), assign("p2", false))
	onlyP2 := interp(assign("p1", false), assign("p2", true))

	// Under onlyP1 the edge {2} -> {4, 6} is dropped.
	ok, err := cond.IsConnected(cmg, core.NewSet("2"), core.NewSet("4"), exprs, []logic.Interpretation{onlyP1})
	require.NoError(t, err)
	assert.False(t, ok)

	// onlyP2 keeps it, so the existential quantifier succeeds.
	ok, err = cond.IsConnected(cmg, core.NewSet("2"), core.NewSet("4"), exprs, []logic.Interpretation{onlyP1, onlyP2})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsFullyConnected(t *testing.T) {
	cmg := buildGuarded(t)
	onlyP1 := interp(assign("p1", true), assign("p2", false))
	onlyP2 := interp(assign("p1", false), assign("p2", true))
	both := []logic.Interpretation{onlyP1, onlyP2}

	// onlyP2 drops {1, 2} -> {3, 4}, so the universal quantifier fails.
	ok, err := cond.IsFullyConnected(cmg, core.NewSet("1", "2"), core.NewSet("3", "4"), []string{"p1 | p2"}, both)
	require.NoError(t, err)
	assert.False(t, ok)

	// Requiring p1 filters onlyP2 out; the remaining interpretation connects.
	ok, err = cond.IsFullyConnected(cmg, core.NewSet("1", "2"), core.NewSet("3", "4"), []string{"p1"}, both)
	require.NoError(t, err)
	assert.True(t, ok)

	// No interpretation satisfies p1 . p2: vacuously true, and the
	// existential twin is false.
	ok, err = cond.IsFullyConnected(cmg, core.NewSet("1", "2"), core.NewSet("3", "4"), []string{"p1 . p2"}, both)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = cond.IsConnected(cmg, core.NewSet("1", "2"), core.NewSet("3", "4"), []string{"p1 . p2"}, both)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsConnected_Errors(t *testing.T) {
	cmg := buildGuarded(t)
	valid := interp(assign("p1", true), assign("p2", true))

	_, err := cond.IsConnected(nil, core.NewSet("1"), core.NewSet("2"), nil, []logic.Interpretation{valid})
	assert.ErrorIs(t, err, cond.ErrNilConditional)

	_, err = cond.IsConnected(cmg, core.NewSet("1"), core.NewSet("2"), nil, nil)
	assert.ErrorIs(t, err, cond.ErrNoInterpretations)

	// Source addressing a proposition leaves the variable partition.
	_, err = cond.IsConnected(cmg, core.NewSet("p1"), core.NewSet("2"), nil, []logic.Interpretation{valid})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	// Interpretation assigning an unknown proposition.
	bad := interp(assign("p9", true))
	_, err = cond.IsConnected(cmg, core.NewSet("1"), core.NewSet("2"), nil, []logic.Interpretation{bad})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	// Expression referencing a proposition the interpretation leaves open.
	partial := interp(assign("p2", true))
	_, err = cond.IsConnected(cmg, core.NewSet("1"), core.NewSet("2"), []string{"p1"}, []logic.Interpretation{partial})
	assert.ErrorIs(t, err, logic.ErrUnknownProposition)

	_, err = cond.IsConnected(cmg, core.NewSet("1"), core.NewSet("2"), nil, []logic.Interpretation{valid}, cond.WithEvaluator(nil))
	assert.ErrorIs(t, err, cond.ErrOptionViolation)

	_, err = cond.IsConnected(cmg, core.NewSet("1"), core.NewSet("2"), nil, []logic.Interpretation{valid}, cond.WithMaxCandidates(-1))
	assert.ErrorIs(t, err, cond.ErrOptionViolation)
}

func TestIsRedundantlyConnected(t *testing.T) {
	trueP1 := []logic.Interpretation{interp(assign("p1", true))}

	diamond := buildDiamond(t)
	ok, err := cond.IsRedundantlyConnected(diamond, core.NewSet("1"), core.NewSet("3"), nil, trueP1)
	require.NoError(t, err)
	assert.True(t, ok, "direct edge and chain through 2 are both dominant")

	ok, err = cond.IsRedundantlyConnected(diamond, core.NewSet("1"), core.NewSet("2"), nil, trueP1)
	require.NoError(t, err)
	assert.False(t, ok)

	cmg := buildGuarded(t)
	bothTrue := []logic.Interpretation{interp(assign("p1", true), assign("p2", true))}
	ok, err = cond.IsRedundantlyConnected(cmg, core.NewSet("2"), core.NewSet("4"), nil, bothTrue)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsNonRedundant(t *testing.T) {
	onlyP1 := []logic.Interpretation{interp(assign("p1", true), assign("p2", false))}

	cmg := buildGuarded(t)
	ok, err := cond.IsNonRedundant(cmg, nil, onlyP1)
	require.NoError(t, err)
	assert.True(t, ok)

	diamond := buildDiamond(t)
	ok, err = cond.IsNonRedundant(diamond, nil, []logic.Interpretation{interp(assign("p1", true))})
	require.NoError(t, err)
	assert.False(t, ok, "pair (1, 3) has two dominant metapaths")
}

func TestAllMetapaths(t *testing.T) {
	diamond := buildDiamond(t)

	mps, err := cond.AllMetapaths(diamond, 0)
	require.NoError(t, err)
	// (1,2), (2,3) one each; (1,3) two.
	assert.Len(t, mps, 4)

	capped, err := cond.AllMetapaths(diamond, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)

	_, err = cond.AllMetapaths(nil, 0)
	assert.ErrorIs(t, err, cond.ErrNilConditional)
}

func TestHasConflicts(t *testing.T) {
	cmg, err := core.NewConditional(
		core.NewSet("1", "2", "3"),
		core.NewSet("action=permit", "action=deny", "p1"),
	)
	require.NoError(t, err)
	permit := mustEdge(t, []core.Element{"1"}, []core.Element{"2"}, "action=permit")
	deny := mustEdge(t, []core.Element{"2"}, []core.Element{"3"}, "action=deny")
	require.NoError(t, cmg.AddEdgesFrom([]*core.Edge{permit, deny}))

	mixed := metapath.Metapath{
		Source: core.NewSet("1"),
		Target: core.NewSet("3"),
		Edges:  []*core.Edge{permit, deny},
	}
	ok, err := cond.HasConflicts(cmg, mixed)
	require.NoError(t, err)
	assert.True(t, ok)

	uniform := metapath.Metapath{
		Source: core.NewSet("1"),
		Target: core.NewSet("2"),
		Edges:  []*core.Edge{permit},
	}
	ok, err = cond.HasConflicts(cmg, uniform)
	require.NoError(t, err)
	assert.False(t, ok)

	stranger := metapath.Metapath{
		Source: core.NewSet("3"),
		Target: core.NewSet("1"),
		Edges:  []*core.Edge{permit},
	}
	_, err = cond.HasConflicts(cmg, stranger)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestHasRedundancies(t *testing.T) {
	diamond := buildDiamond(t)
	edges := diamond.Edges()

	bloated := metapath.Metapath{
		Source: core.NewSet("1"),
		Target: core.NewSet("3"),
		Edges:  edges, // direct edge plus the whole chain
	}
	ok, err := cond.HasRedundancies(diamond, bloated)
	require.NoError(t, err)
	assert.True(t, ok)

	lean := metapath.Metapath{
		Source: core.NewSet("1"),
		Target: core.NewSet("3"),
		Edges:  []*core.Edge{edges[2]},
	}
	ok, err = cond.HasRedundancies(diamond, lean)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = cond.HasRedundancies(nil, lean)
	assert.ErrorIs(t, err, cond.ErrNilConditional)
}
