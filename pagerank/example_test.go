// Package pagerank_test provides runnable examples for the PageRank
// solver, each executable via "go test -run Example".
package pagerank_test

import (
	"fmt"

	"github.com/gravelib/gravel/pagerank"
	"github.com/gravelib/gravel/pgraph"
)

// ExampleRun demonstrates ranking a two-node cycle; full symmetry gives
// both nodes exactly half the rank mass.
func ExampleRun() {
	// 1) Build the topology: 0 ⇄ 1. PageRank reads structure only, so no
	//    edge columns are needed.
	b := pgraph.NewBuilder(2)
	b.AddEdge(0, 1)
	b.AddEdge(1, 0)
	g := b.Finish()

	// 2) Run with defaults (residual strategy, α = 0.85).
	if _, err := pagerank.Run(g); err != nil {
		fmt.Println("error:", err)

		return
	}

	// 3) Read the rank column back.
	col, _ := g.NodeProperty("rank")
	ranks, _ := pgraph.Data[float64](col)
	fmt.Printf("rank[0]=%.2f rank[1]=%.2f\n", ranks[0], ranks[1])

	// Output:
	// rank[0]=0.50 rank[1]=0.50
}

// ExampleRun_topological selects the topological strategy and reports the
// mass statistics.
func ExampleRun_topological() {
	b := pgraph.NewBuilder(3)
	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 0)
	g := b.Finish()

	iters, err := pagerank.Run(g, pagerank.WithStrategy(pagerank.Topological))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	st, _ := pagerank.ComputeStatistics(g)
	fmt.Printf("converged after %d round(s), total mass %.2f\n", iters, st.TotalMass)

	// Output:
	// converged after 1 round(s), total mass 1.00
}
