// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package tr implements the three transitive-reduction drivers: TR-B,
// TR-O, and TR-O+. All three remove the same edge set from any given
// DAG; they differ only in the order edges are inspected and in how
// aggressively they prune the inner witness scan.
package tr

import (
	"github.com/open-dag/tredux"
	"github.com/open-dag/tredux/bfl"
)

type edge struct {
	u, v graph.NI
}

// TRB removes every edge (u, v) for which some other outgoing neighbor
// w of u (w != v) reaches v. Edges are inspected node by node in id
// order, each node's edges in its current outgoing-list order.
// idx must be built over g before any edges are removed; it is not
// refreshed during the run, which is sound because edge removal never
// creates new reachability.
func TRB(g *graph.Graph, idx *bfl.Index) {
	queue := make([]edge, 0, g.Size())
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Out(graph.NI(u)) {
			queue = append(queue, edge{graph.NI(u), v})
		}
	}

	for _, e := range queue {
		if isRedundantB(g, idx, e.u, e.v) {
			g.RemoveEdge(e.u, e.v)
		}
	}
}

func isRedundantB(g *graph.Graph, idx *bfl.Index, u, v graph.NI) bool {
	for _, w := range g.Out(u) {
		if w == v {
			continue
		}
		if idx.Reaches(w, v) {
			return true
		}
	}
	return false
}
