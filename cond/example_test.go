package cond_test

import (
	"fmt"

	"github.com/katalvlaran/metagraph/cond"
	"github.com/katalvlaran/metagraph/core"
)

// ExampleContext resolves a guarded metagraph against p1=true, p2=false:
// edges guarded by p2 disappear and the survivors become unconditional.
func ExampleContext() {
	cmg, _ := core.NewConditional(
		core.NewSet("1", "2", "3", "4", "5", "6", "7"),
		core.NewSet("p1", "p2"),
	)
	e1, _ := core.NewEdge(core.NewSet("1", "2"), core.NewSet("3", "4"),
		core.WithAttributes(core.NewSet("p1")))
	e2, _ := core.NewEdge(core.NewSet("2"), core.NewSet("4", "6"),
		core.WithAttributes(core.NewSet("p2")))
	e3, _ := core.NewEdge(core.NewSet("4", "6"), core.NewSet("5", "7"),
		core.WithAttributes(core.NewSet("p1")))
	_ = cmg.AddEdgesFrom([]*core.Edge{e1, e2, e3})

	resolved, _ := cond.Context(cmg, core.NewSet("p1"), core.NewSet("p2"))
	for _, e := range resolved.Edges() {
		fmt.Println(e)
	}
	// Output:
	// Edge({1, 2}, {3, 4})
	// Edge({4, 6}, {5, 7})
}
