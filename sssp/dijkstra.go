package sssp

import (
	"container/heap"

	"github.com/gravelib/gravel/par"
	"github.com/gravelib/gravel/pgraph"
	"github.com/gravelib/gravel/stats"
)

// dijkstra runs the classical serial algorithm over a global min-heap with
// the lazy-decrease-key strategy: improvements push duplicate entries, and
// stale entries are dropped on pop via the shared staleness check. Exact;
// this is the correctness baseline the concurrent strategies are validated
// against.
//
// Complexity: O((V + E) log V) time, O(V + E) heap space worst case.
func (s *solver[W]) dijkstra(source pgraph.NodeID, tiled bool) {
	var iter int64
	if tiled {
		pq := make(tilePQ[W], 0, s.g.NumNodes())
		heap.Init(&pq)
		s.forEachTile(source, 0, func(t edgeTile[W]) { heap.Push(&pq, t) })
		for pq.Len() > 0 {
			iter++
			t := heap.Pop(&pq).(edgeTile[W])
			d := s.dist[t.src].Load()
			if d < t.dist {
				continue // stale entry
			}
			s.relaxRange(d, t.beg, t.end, func(dst pgraph.NodeID, nd W) {
				s.forEachTile(dst, nd, func(nt edgeTile[W]) { heap.Push(&pq, nt) })
			})
		}
	} else {
		pq := make(requestPQ[W], 0, s.g.NumNodes())
		heap.Init(&pq)
		heap.Push(&pq, request[W]{src: source, dist: 0})
		for pq.Len() > 0 {
			iter++
			r := heap.Pop(&pq).(request[W])
			d := s.dist[r.src].Load()
			if d < r.dist {
				continue // stale entry
			}
			begin, end := s.g.OutEdges(r.src)
			s.relaxRange(d, begin, end, func(dst pgraph.NodeID, nd W) {
				heap.Push(&pq, request[W]{src: dst, dist: nd})
			})
		}
	}
	stats.ReportSingle("SSSP-Dijkstra", "Iterations", iter)
}

// requestPQ is a min-heap of requests ordered by distance ascending, used
// with the lazy-decrease-key pattern: outdated entries stay in the heap
// and are ignored when popped.
type requestPQ[W par.Scalar] []request[W]

func (pq requestPQ[W]) Len() int            { return len(pq) }
func (pq requestPQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq requestPQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *requestPQ[W]) Push(x interface{}) { *pq = append(*pq, x.(request[W])) }

func (pq *requestPQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// tilePQ is the tiled analogue of requestPQ.
type tilePQ[W par.Scalar] []edgeTile[W]

func (pq tilePQ[W]) Len() int            { return len(pq) }
func (pq tilePQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq tilePQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *tilePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(edgeTile[W])) }

func (pq *tilePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
