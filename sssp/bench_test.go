package sssp_test

import (
	"math/rand"
	"testing"

	"github.com/gravelib/gravel/pgraph"
	"github.com/gravelib/gravel/sssp"
)

// buildRandomWeighted constructs a directed graph with n nodes and m
// uniformly random edges, weights uniform in [1, maxWeight].
func buildRandomWeighted(n, m int, maxWeight uint32, seed int64) *pgraph.Graph {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	b := pgraph.NewBuilder(n)
	idx := make([]int, m)
	ws := make([]uint32, m)
	for i := 0; i < m; i++ {
		idx[i], _ = b.AddEdge(pgraph.NodeID(r.Intn(n)), pgraph.NodeID(r.Intn(n)))
		ws[i] = r.Uint32()%maxWeight + 1
	}
	g := b.Finish()
	col, _ := g.ConstructEdgeProperty("weight", pgraph.Uint32)
	out, _ := pgraph.Data[uint32](col)
	for i := 0; i < m; i++ {
		out[b.CSRIndex(idx[i])] = ws[i]
	}

	return g
}

// BenchmarkSolverStrategies measures each scheduling strategy on graphs of
// increasing size, one sub-benchmark per (size, strategy) pair.
func BenchmarkSolverStrategies(b *testing.B) {
	cases := []struct {
		name  string
		nodes int
		edges int
		seed  int64
	}{
		{"Small", 1_000, 8_000, 42},
		{"Medium", 10_000, 80_000, 4242},
		{"Large", 50_000, 400_000, 424242},
	}
	strategies := []sssp.Algorithm{
		sssp.DeltaStep,
		sssp.DeltaTile,
		sssp.DeltaStepBarrier,
		sssp.SerialDelta,
		sssp.Dijkstra,
		sssp.Topological,
	}

	for _, tc := range cases {
		tc := tc
		// Build the test graph once per case to isolate algorithmic cost.
		g := buildRandomWeighted(tc.nodes, tc.edges, 1000, tc.seed)
		for _, algo := range strategies {
			algo := algo
			b.Run(tc.name+"/"+algo.String(), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if err := sssp.Run(g, 0, sssp.WithAlgorithm(algo)); err != nil {
						b.Fatalf("Run: %v", err)
					}
				}
			})
		}
	}
}
