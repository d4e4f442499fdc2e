// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package tr

import (
	"github.com/open-dag/tredux"
	"github.com/open-dag/tredux/bfl"
)

// TRO removes redundant edges after topological ordering and adjacency
// sort. For each edge (u, v) it walks u's outgoing list in ascending
// topological order and tests reaches(w, v) only while to[w] < to[v];
// it breaks, not continues, on the first w with to[w] >= to[v], since
// every later w in the ascending list is >= as well.
func TRO(g *graph.Graph, idx *bfl.Index, to []graph.NI) {
	queue := make([]edge, 0, g.Size())
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Out(graph.NI(u)) {
			queue = append(queue, edge{graph.NI(u), v})
		}
	}

	for _, e := range queue {
		if isRedundantO(g, idx, to, e.u, e.v) {
			g.RemoveEdge(e.u, e.v)
		}
	}
}

func isRedundantO(g *graph.Graph, idx *bfl.Index, to []graph.NI, u, v graph.NI) bool {
	for _, w := range g.Out(u) {
		if to[w] >= to[v] {
			break
		}
		if idx.Reaches(w, v) {
			return true
		}
	}
	return false
}
