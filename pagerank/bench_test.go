package pagerank_test

import (
	"math/rand"
	"testing"

	"github.com/gravelib/gravel/pagerank"
	"github.com/gravelib/gravel/pgraph"
)

// buildRandomTopology constructs a directed graph with n nodes and m
// uniformly random edges.
func buildRandomTopology(n, m int, seed int64) *pgraph.Graph {
	r := rand.New(rand.NewSource(seed))
	b := pgraph.NewBuilder(n)
	for i := 0; i < m; i++ {
		_, _ = b.AddEdge(pgraph.NodeID(r.Intn(n)), pgraph.NodeID(r.Intn(n)))
	}

	return b.Finish()
}

// BenchmarkStrategies measures both rank strategies on graphs of
// increasing size. The in-edge view is rebuilt inside the loop because it
// is part of each Run.
func BenchmarkStrategies(b *testing.B) {
	cases := []struct {
		name  string
		nodes int
		edges int
		seed  int64
	}{
		{"Small", 1_000, 10_000, 7},
		{"Medium", 10_000, 100_000, 77},
	}

	for _, tc := range cases {
		tc := tc
		g := buildRandomTopology(tc.nodes, tc.edges, tc.seed)
		for _, st := range []pagerank.Strategy{pagerank.Topological, pagerank.Residual} {
			st := st
			b.Run(tc.name+"/"+st.String(), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := pagerank.Run(g, pagerank.WithStrategy(st)); err != nil {
						b.Fatalf("Run: %v", err)
					}
				}
			})
		}
	}
}
