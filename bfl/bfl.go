// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package bfl implements the Bloom Formula Labeling reachability index: a
// discovery/finish interval test backed by a Bloom-style bitset filter,
// with a pruned DFS fallback for pairs the filter cannot decide.
package bfl

import (
	"fmt"

	"github.com/open-dag/tredux"
	"github.com/open-dag/tredux/metrics"
)

// Index answers reaches(u, v) queries. Its interval and label arrays are
// computed once by Build from a topologically sorted, adjacency-ordered
// graph and are never updated; the DFS fallback in Reaches walks g's
// current adjacency, so an edge removed from g after Build is no longer
// followed. Reaches allocates its own visited set per call, so
// concurrent queries are safe as long as g is not mutated meanwhile.
type Index struct {
	g    *graph.Graph
	disc []int
	fin  []int
	lout []label
	lin  []label
	k    int
	sink metrics.Sink
}

// Build constructs an Index for g using topological order `to`/`toRev`
// (as returned by graph.Kahn, with SortAdjacency already applied), a
// pluggable hash function h whose value is reduced modulo the hash range
// k to a bucket in [0, k), and a merge-vertex partition fan-out d. sink receives the three
// reachability-query counters; pass metrics.NoOp() when diagnostics
// aren't needed. Build returns graph.ErrNotADag if g contains a cycle.
func Build(g *graph.Graph, to, toRev []graph.NI, h HashFunc, k, d int, sink metrics.Sink) (*Index, error) {
	if sink == nil {
		sink = metrics.NoOp()
	}
	if k <= 0 || d <= 0 {
		return nil, fmt.Errorf("%w: hash range and partition fan-out must be positive", graph.ErrInvalidArgument)
	}
	if g.Size() > 0 && len(toRev) == 0 {
		return nil, graph.ErrNotADag
	}

	fr := forestDFS(g, toRev)
	rep := mergeVertices(fr.postOrder, d)

	n := g.Order()
	words := (k + 63) / 64
	idx := &Index{g: g, disc: fr.disc, fin: fr.fin, k: k, sink: sink}
	idx.lout = make([]label, n)
	idx.lin = make([]label, n)
	for i := range idx.lout {
		idx.lout[i] = newLabel(words * 64)
		idx.lin[i] = newLabel(words * 64)
	}

	bucketOf := make([]int, n)
	for v := 0; v < n; v++ {
		bucketOf[v] = bucket(h, rep[v], k)
	}

	// lout[n] = own bucket bit, unioned over every out-neighbor's lout.
	// Processed in reverse topological order so every out-neighbor's
	// label is final before n is computed.
	for i := len(toRev) - 1; i >= 0; i-- {
		u := toRev[i]
		idx.lout[u].set(bucketOf[u])
		for _, w := range g.Out(u) {
			idx.lout[u].orWith(idx.lout[w])
		}
	}

	// lin[n] is symmetrical over in-edges, processed in forward
	// topological order.
	for _, u := range toRev {
		idx.lin[u].set(bucketOf[u])
		for _, w := range g.In(u) {
			idx.lin[u].orWith(idx.lin[w])
		}
	}

	return idx, nil
}
