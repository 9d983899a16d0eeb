// Package sssp_test provides runnable examples for the shortest-path
// solver family, each executable via "go test -run Example".
package sssp_test

import (
	"fmt"

	"github.com/gravelib/gravel/pgraph"
	"github.com/gravelib/gravel/sssp"
)

// ExampleRun demonstrates a solve over the four-node diamond
//
//	0 →(1) 1 →(2) 3
//	0 →(4) 2 →(5) 3
//
// using the default delta-stepping strategy.
func ExampleRun() {
	// 1) Accumulate the edge list against a fixed node count.
	b := pgraph.NewBuilder(4)
	type edge struct {
		u, v pgraph.NodeID
		w    uint32
	}
	edges := []edge{{0, 1, 1}, {0, 2, 4}, {1, 3, 2}, {2, 3, 5}}
	idx := make([]int, len(edges))
	for i, e := range edges {
		idx[i], _ = b.AddEdge(e.u, e.v)
	}

	// 2) Finalize into CSR form and attach the weight column; CSRIndex maps
	//    each insertion back to its final edge handle.
	g := b.Finish()
	col, _ := g.ConstructEdgeProperty("weight", pgraph.Uint32)
	ws, _ := pgraph.Data[uint32](col)
	for i, e := range edges {
		ws[b.CSRIndex(idx[i])] = e.w
	}

	// 3) Solve from node 0 and read the distance column back.
	if err := sssp.Run(g, 0); err != nil {
		fmt.Println("error:", err)

		return
	}
	dcol, _ := g.NodeProperty("distance")
	dist, _ := pgraph.Data[uint32](dcol)
	fmt.Printf("distances from 0: %v\n", dist)

	// Output:
	// distances from 0: [0 1 4 3]
}

// ExampleRun_algorithm selects the exact serial baseline explicitly and
// validates the result afterwards.
func ExampleRun_algorithm() {
	b := pgraph.NewBuilder(3)
	i0, _ := b.AddEdge(0, 1)
	i1, _ := b.AddEdge(1, 2)
	g := b.Finish()
	col, _ := g.ConstructEdgeProperty("weight", pgraph.Uint32)
	ws, _ := pgraph.Data[uint32](col)
	ws[b.CSRIndex(i0)] = 3
	ws[b.CSRIndex(i1)] = 4

	if err := sssp.Run(g, 0, sssp.WithAlgorithm(sssp.Dijkstra)); err != nil {
		fmt.Println("error:", err)

		return
	}
	if err := sssp.AssertValid(g, 0); err != nil {
		fmt.Println("inconsistent:", err)

		return
	}

	st, _ := sssp.ComputeStatistics(g)
	fmt.Printf("reached=%d max=%.0f\n", st.ReachedNodes, st.MaxDistance)

	// Output:
	// reached=3 max=7
}
