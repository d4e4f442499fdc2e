// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package tr

import (
	"sort"

	"github.com/open-dag/tredux"
	"github.com/open-dag/tredux/bfl"
)

type entry struct {
	n  graph.NI
	up bool // true: UP role (degree = |incoming|); false: DOWN role (degree = |outgoing|)
}

// TROPlus queues edges in order of increasing endpoint degree so that
// edges touching sparsely-connected nodes are proven redundant (and
// removed) before densely-connected hubs are scanned, shrinking
// adjacency lists ahead of the expensive part of the run.
func TROPlus(g *graph.Graph, idx *bfl.Index, to []graph.NI) {
	n := g.Order()
	entries := make([]entry, 0, 2*n)
	for v := 0; v < n; v++ {
		entries = append(entries, entry{graph.NI(v), true})
		entries = append(entries, entry{graph.NI(v), false})
	}
	degreeOf := func(e entry) int {
		if e.up {
			return len(g.In(e.n))
		}
		return len(g.Out(e.n))
	}
	sort.SliceStable(entries, func(i, j int) bool { return degreeOf(entries[i]) < degreeOf(entries[j]) })

	seen := make(map[edge]struct{}, g.Size())
	queue := make([]edge, 0, g.Size())
	enqueue := func(e edge) {
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		queue = append(queue, e)
	}

	for _, ent := range entries {
		if ent.up {
			for _, w := range g.In(ent.n) { // stored descending
				enqueue(edge{w, ent.n})
			}
		} else {
			for _, w := range g.Out(ent.n) { // stored ascending
				enqueue(edge{ent.n, w})
			}
		}
	}

	for _, e := range queue {
		if isRedundantOPlus(g, idx, to, e.u, e.v) {
			g.RemoveEdge(e.u, e.v)
		}
	}
}

func isRedundantOPlus(g *graph.Graph, idx *bfl.Index, to []graph.NI, u, v graph.NI) bool {
	if len(g.Out(u)) > len(g.In(v)) {
		for _, w := range g.In(v) { // stored descending
			if to[w] <= to[u] {
				break
			}
			if idx.Reaches(u, w) {
				return true
			}
		}
		return false
	}
	for _, w := range g.Out(u) { // stored ascending
		if to[w] >= to[v] {
			break
		}
		if idx.Reaches(w, v) {
			return true
		}
	}
	return false
}
