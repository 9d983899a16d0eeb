// Package pgraph_test contains unit tests for the CSR property graph:
// builder finalization, edge-handle mapping, property-column registry and
// per-node adjacency sorting.
package pgraph_test

import (
	"errors"
	"testing"

	"github.com/gravelib/gravel/pgraph"
)

// mustAdd is a test helper that fails fast on unexpected AddEdge errors.
func mustAdd(t *testing.T, b *pgraph.Builder, u, v pgraph.NodeID) int {
	t.Helper()
	i, err := b.AddEdge(u, v)
	if err != nil {
		t.Fatalf("AddEdge(%d, %d): %v", u, v, err)
	}

	return i
}

func TestBuilder_CSRLayout(t *testing.T) {
	// Edges are inserted interleaved across sources; Finish must group them
	// by source while keeping per-source insertion order.
	b := pgraph.NewBuilder(4)
	mustAdd(t, b, 2, 0)
	mustAdd(t, b, 0, 1)
	mustAdd(t, b, 2, 3)
	mustAdd(t, b, 0, 2)
	mustAdd(t, b, 2, 1)
	g := b.Finish()

	if g.NumNodes() != 4 || g.NumEdges() != 5 {
		t.Fatalf("got %d nodes / %d edges, want 4 / 5", g.NumNodes(), g.NumEdges())
	}

	wantDeg := []int{2, 0, 3, 0}
	wantAdj := [][]pgraph.NodeID{{1, 2}, {}, {0, 3, 1}, {}}
	for u := 0; u < 4; u++ {
		if d := g.OutDegree(pgraph.NodeID(u)); d != wantDeg[u] {
			t.Fatalf("OutDegree(%d) = %d, want %d", u, d, wantDeg[u])
		}
		begin, end := g.OutEdges(pgraph.NodeID(u))
		for k, e := 0, begin; e < end; k, e = k+1, e+1 {
			if got := g.EdgeDst(e); got != wantAdj[u][k] {
				t.Fatalf("EdgeDst of edge %d of node %d = %d, want %d", k, u, got, wantAdj[u][k])
			}
		}
	}
}

func TestBuilder_AddEdgeOutOfRange(t *testing.T) {
	b := pgraph.NewBuilder(2)
	if _, err := b.AddEdge(0, 2); !errors.Is(err, pgraph.ErrNodeOutOfRange) {
		t.Fatalf("expected ErrNodeOutOfRange, got %v", err)
	}
	if _, err := b.AddEdge(5, 0); !errors.Is(err, pgraph.ErrNodeOutOfRange) {
		t.Fatalf("expected ErrNodeOutOfRange, got %v", err)
	}
}

func TestBuilder_CSRIndexMapsInsertionOrder(t *testing.T) {
	// Fill a weight column through CSRIndex and verify each weight landed
	// next to the destination it was inserted with.
	type edge struct {
		u, v pgraph.NodeID
		w    uint32
	}
	edges := []edge{{1, 0, 10}, {0, 2, 20}, {1, 2, 30}, {0, 1, 40}}

	b := pgraph.NewBuilder(3)
	idx := make([]int, len(edges))
	for i, e := range edges {
		idx[i] = mustAdd(t, b, e.u, e.v)
	}
	g := b.Finish()

	col, err := g.ConstructEdgeProperty("weight", pgraph.Uint32)
	if err != nil {
		t.Fatalf("ConstructEdgeProperty: %v", err)
	}
	ws, err := pgraph.Data[uint32](col)
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	for i, e := range edges {
		ws[b.CSRIndex(idx[i])] = e.w
	}

	for i, e := range edges {
		h := b.CSRIndex(idx[i])
		if got := g.EdgeDst(h); got != e.v {
			t.Fatalf("edge %d: CSR handle %d has dst %d, want %d", i, h, got, e.v)
		}
		if ws[h] != e.w {
			t.Fatalf("edge %d: CSR handle %d has weight %d, want %d", i, h, ws[h], e.w)
		}
	}
}

func TestBuilder_CSRIndexBeforeFinishPanics(t *testing.T) {
	b := pgraph.NewBuilder(2)
	mustAdd(t, b, 0, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from CSRIndex before Finish")
		}
	}()
	b.CSRIndex(0)
}

func TestGraph_PropertyRegistry(t *testing.T) {
	g := pgraph.NewBuilder(3).Finish()

	if _, err := g.ConstructNodeProperty("rank", pgraph.Float64); err != nil {
		t.Fatalf("ConstructNodeProperty: %v", err)
	}
	if _, err := g.ConstructNodeProperty("rank", pgraph.Float64); !errors.Is(err, pgraph.ErrPropertyExists) {
		t.Fatalf("duplicate construct: expected ErrPropertyExists, got %v", err)
	}
	if _, err := g.NodeProperty("absent"); !errors.Is(err, pgraph.ErrPropertyNotFound) {
		t.Fatalf("missing lookup: expected ErrPropertyNotFound, got %v", err)
	}

	col, err := g.NodeProperty("rank")
	if err != nil {
		t.Fatalf("NodeProperty: %v", err)
	}
	if col.Kind() != pgraph.Float64 || col.Len() != 3 {
		t.Fatalf("got kind %s len %d, want float64 len 3", col.Kind(), col.Len())
	}
	if _, err := pgraph.Data[uint32](col); !errors.Is(err, pgraph.ErrKindMismatch) {
		t.Fatalf("wrong-kind access: expected ErrKindMismatch, got %v", err)
	}
}

func TestGraph_EnsureNodeProperty(t *testing.T) {
	g := pgraph.NewBuilder(2).Finish()

	first, err := g.EnsureNodeProperty("distance", pgraph.Uint32)
	if err != nil {
		t.Fatalf("EnsureNodeProperty (create): %v", err)
	}
	again, err := g.EnsureNodeProperty("distance", pgraph.Uint32)
	if err != nil {
		t.Fatalf("EnsureNodeProperty (reuse): %v", err)
	}
	if first != again {
		t.Fatal("EnsureNodeProperty must return the existing column on reuse")
	}
	if _, err := g.EnsureNodeProperty("distance", pgraph.Float64); !errors.Is(err, pgraph.ErrKindMismatch) {
		t.Fatalf("kind conflict: expected ErrKindMismatch, got %v", err)
	}
}

func TestGraph_DataAliasesColumn(t *testing.T) {
	g := pgraph.NewBuilder(2).Finish()
	col, _ := g.ConstructNodeProperty("x", pgraph.Int64)

	a, _ := pgraph.Data[int64](col)
	b, _ := pgraph.Data[int64](col)
	a[1] = 42
	if b[1] != 42 {
		t.Fatal("Data must alias the column's backing storage, not copy it")
	}
}

func TestGraph_SortOutEdgesCarriesColumns(t *testing.T) {
	// One node with shuffled adjacency; sorting by dst must drag the weight
	// column through the same permutation.
	b := pgraph.NewBuilder(4)
	dsts := []pgraph.NodeID{3, 1, 2}
	idx := make([]int, len(dsts))
	for i, v := range dsts {
		idx[i] = mustAdd(t, b, 0, v)
	}
	g := b.Finish()

	col, _ := g.ConstructEdgeProperty("weight", pgraph.Uint32)
	ws, _ := pgraph.Data[uint32](col)
	for i, v := range dsts {
		// weight = 10 * dst, so pairing survives any permutation check
		ws[b.CSRIndex(idx[i])] = uint32(v) * 10
	}

	if err := g.SortOutEdges(0, func(a, b pgraph.NodeID) bool { return a < b }); err != nil {
		t.Fatalf("SortOutEdges: %v", err)
	}

	begin, end := g.OutEdges(0)
	prev := pgraph.NodeID(0)
	for e := begin; e < end; e++ {
		v := g.EdgeDst(e)
		if v < prev {
			t.Fatalf("adjacency not sorted: %d after %d", v, prev)
		}
		if ws[e] != uint32(v)*10 {
			t.Fatalf("weight desynchronized: dst %d carries weight %d", v, ws[e])
		}
		prev = v
	}
}

func TestKindOf(t *testing.T) {
	if k := pgraph.KindOf[uint32](); k != pgraph.Uint32 {
		t.Fatalf("KindOf[uint32] = %s", k)
	}
	if k := pgraph.KindOf[float64](); k != pgraph.Float64 {
		t.Fatalf("KindOf[float64] = %s", k)
	}
	if k := pgraph.KindOf[int64](); k != pgraph.Int64 {
		t.Fatalf("KindOf[int64] = %s", k)
	}
}
