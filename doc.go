// Package gravel is an in-memory toolkit for parallel graph analytics —
// compact CSR property graphs plus a family of shared-memory kernels
// tuned for multicore machines.
//
// 🚀 What is gravel?
//
//	A focused, concurrency-first library that brings together:
//		• Storage: adjacency-array (CSR) graphs with typed property columns
//		• Adapters: in/out-edge views for pull-direction traversal
//		• Substrate: chunked parallel-for, reducers, atomic-min, bucket worklists
//		• Shortest paths: delta-stepping (plain/tiled/barrier), serial delta,
//		  Dijkstra, topological Bellman-Ford — one relaxation rule, ten schedules
//		• Ranking: pull-style PageRank, topological & residual strategies
//
// ✨ Why choose gravel?
//
//   - Deterministic results – every schedule of a kernel computes the same answer
//   - Lock-free hot paths – atomic-min relaxation, CAS reducers, no mutexes per edge
//   - Typed property columns – uint32 through float64, dispatched once per solve
//   - Tunable – functional options for strategy, bucket width, tiling, chunking
//
// Under the hood, everything is organized under six subpackages:
//
//	pgraph/   — CSR topology, property columns & the edge-list builder
//	inout/    — in-edge views: aliased (symmetric) or materialized transpose
//	par/      — the execution substrate the kernels run on
//	sssp/     — the single-source shortest-path solver family
//	pagerank/ — pull-style PageRank
//	stats/    — phase timers & stat reporting (silent by default)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a diamond of four nodes; sssp from node 0 labels the far corner with
//	the cheaper of the two two-hop paths.
//
// Dive into the per-package docs for the iteration protocols, the
// relaxation rule, and the convergence semantics of each kernel.
//
//	go get github.com/gravelib/gravel
package gravel
