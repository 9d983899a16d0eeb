package sssp

import (
	"github.com/gravelib/gravel/par"
	"github.com/gravelib/gravel/pgraph"
	"github.com/gravelib/gravel/stats"
)

// deltaStep runs concurrent delta-stepping: requests are dispatched into a
// priority-bucket worklist keyed by floor(dist / 2^shift), buckets drain
// strictly in increasing order, and requests inside one bucket relax in
// parallel. New requests land in the same or a later bucket, never an
// earlier one, since distances are non-decreasing along non-negative
// edges.
//
// tiled batches each node's out-edges into fixed-size ranges; barrier
// inserts a full synchronization wave between refills of the same bucket.
func (s *solver[W]) deltaStep(source pgraph.NodeID, tiled, barrier bool) {
	// Self-defined work counters: badWork counts improvements that
	// overwrote an already-finite distance (wasted earlier effort),
	// emptyWork counts stale requests dropped on dequeue.
	var badWork, emptyWork par.Counter

	opts := []par.Option{par.WithChunkSize(s.opts.ChunkSize)}
	if barrier {
		opts = append(opts, par.WithBarrier())
	}

	if tiled {
		var init []edgeTile[W]
		s.forEachTile(source, 0, func(t edgeTile[W]) { init = append(init, t) })
		par.ForEachBucketed(init,
			func(t edgeTile[W]) uint64 { return s.bucketKey(t.dist) },
			func(t edgeTile[W], push func(edgeTile[W])) {
				d := s.dist[t.src].Load()
				if d < t.dist {
					emptyWork.Add(1)

					return
				}
				s.relaxTracked(d, t.beg, t.end, &badWork, func(dst pgraph.NodeID, nd W) {
					s.forEachTile(dst, nd, push)
				})
			}, opts...)
	} else {
		init := []request[W]{{src: source, dist: 0}}
		par.ForEachBucketed(init,
			func(r request[W]) uint64 { return s.bucketKey(r.dist) },
			func(r request[W], push func(request[W])) {
				d := s.dist[r.src].Load()
				if d < r.dist {
					emptyWork.Add(1)

					return
				}
				begin, end := s.g.OutEdges(r.src)
				s.relaxTracked(d, begin, end, &badWork, func(dst pgraph.NodeID, nd W) {
					push(request[W]{src: dst, dist: nd})
				})
			}, opts...)
	}

	stats.ReportSingle("SSSP", "BadWork", badWork.Reduce())
	stats.ReportSingle("SSSP", "WLEmptyWork", emptyWork.Reduce())
}

// relaxTracked is relaxRange plus the BadWork tally: an improvement whose
// previous value was already finite means earlier work on dst is wasted.
func (s *solver[W]) relaxTracked(d W, beg, end int, badWork *par.Counter, push func(pgraph.NodeID, W)) {
	for e := beg; e < end; e++ {
		dst := s.g.EdgeDst(e)
		nd := d + s.ws[e]
		if old := s.dist[dst].Min(nd); nd < old {
			if old != s.inf {
				badWork.Add(1)
			}
			push(dst, nd)
		}
	}
}

// serialDelta drains the same bucket structure single-threaded, applying
// the identical relaxation rule — the deterministic reference for the
// delta-stepping discipline.
func (s *solver[W]) serialDelta(source pgraph.NodeID, tiled bool) {
	var iter int64
	if tiled {
		q := par.NewBucketQueue[edgeTile[W]]()
		s.forEachTile(source, 0, func(t edgeTile[W]) { q.Push(t, s.bucketKey(t.dist)) })
		for {
			batch, ok := q.PopCurrent(1)
			if !ok {
				if q.TryAdvance() {
					continue
				}

				break
			}
			iter++
			t := batch[0]
			if d := s.dist[t.src].Load(); d >= t.dist {
				s.relaxRange(d, t.beg, t.end, func(dst pgraph.NodeID, nd W) {
					s.forEachTile(dst, nd, func(nt edgeTile[W]) { q.Push(nt, s.bucketKey(nd)) })
				})
			}
			q.Done()
		}
	} else {
		q := par.NewBucketQueue[request[W]]()
		q.Push(request[W]{src: source, dist: 0}, 0)
		for {
			batch, ok := q.PopCurrent(1)
			if !ok {
				if q.TryAdvance() {
					continue
				}

				break
			}
			iter++
			r := batch[0]
			if d := s.dist[r.src].Load(); d >= r.dist {
				begin, end := s.g.OutEdges(r.src)
				s.relaxRange(d, begin, end, func(dst pgraph.NodeID, nd W) {
					q.Push(request[W]{src: dst, dist: nd}, s.bucketKey(nd))
				})
			}
			q.Done()
		}
	}
	stats.ReportSingle("SSSP-Serial-Delta", "Iterations", iter)
}
