// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph

import "sort"

// SortAdjacency stably sorts every node's outgoing list ascending and
// incoming list descending by to[neighbor]. This orientation lets the
// TR-O and TR-O+ drivers break out of a witness scan as soon as the
// index guard fails, instead of continuing to the end of the list.
//
// to must be a valid topological order for g, as returned by Kahn.
func SortAdjacency(g *Graph, to []NI) {
	for n := range g.out {
		o := g.out[n]
		sort.SliceStable(o, func(i, j int) bool { return to[o[i]] < to[o[j]] })
		in := g.in[n]
		sort.SliceStable(in, func(i, j int) bool { return to[in[i]] > to[in[j]] })
	}
}
