package sssp

import (
	"github.com/gravelib/gravel/par"
	"github.com/gravelib/gravel/pgraph"
	"github.com/gravelib/gravel/stats"
)

// topological runs Bellman-Ford-style fixed-point relaxation: each round
// scans all nodes in parallel, and a node whose stored distance dropped
// since the last round it was seen re-relaxes all its outgoing edges. A
// shared logical-OR reducer records whether the round changed anything;
// the loop ends on the first unchanged round. No priority structure and no
// auxiliary worklist, at the cost of potentially many rounds on graphs
// with long shortest-path chains.
func (s *solver[W]) topological() {
	n := s.g.NumNodes()
	oldDist := make([]W, n)
	par.For(n, func(i int) { oldDist[i] = s.inf }, par.WithChunkSize(s.opts.ChunkSize))

	var changed par.LogicalOr
	var rounds int64
	for {
		rounds++
		changed.Reset()
		par.For(n, func(i int) {
			// oldDist[i] is written only by the task owning index i, so the
			// comparison needs no synchronization; dist is read atomically.
			sd := s.dist[i].Load()
			if oldDist[i] > sd {
				oldDist[i] = sd
				changed.Update(true)
				begin, end := s.g.OutEdges(pgraph.NodeID(i))
				s.relaxRange(sd, begin, end, nil)
			}
		}, par.WithChunkSize(s.opts.ChunkSize))
		if !changed.Reduce() {
			break
		}
	}
	stats.ReportSingle("SSSP-Topo", "rounds", rounds)
}

// topologicalTile applies the same fixed-point discipline to edge tiles
// materialized once up front: every node's out-edges are split into
// EdgeTileSize ranges, and each tile remembers the source distance it last
// saw, re-relaxing only when that distance has since improved.
func (s *solver[W]) topologicalTile() {
	var bag par.Bag[edgeTile[W]]
	par.For(s.g.NumNodes(), func(i int) {
		s.forEachTile(pgraph.NodeID(i), s.inf, func(t edgeTile[W]) { bag.Push(t) })
	}, par.WithChunkSize(s.opts.ChunkSize))
	tiles := bag.Slice()

	var changed par.LogicalOr
	var rounds int64
	for {
		rounds++
		changed.Reset()
		par.For(len(tiles), func(i int) {
			t := &tiles[i]
			sd := s.dist[t.src].Load()
			if t.dist > sd {
				t.dist = sd
				changed.Update(true)
				s.relaxRange(sd, t.beg, t.end, nil)
			}
		}, par.WithChunkSize(s.opts.ChunkSize))
		if !changed.Reduce() {
			break
		}
	}
	stats.ReportSingle("SSSP-Topo", "rounds", rounds)
}
