// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bfl

import "github.com/open-dag/tredux"

// Reaches reports whether v is reachable from u.
//
// The decision proceeds in three stages, cheapest first:
//  1. Interval test: if u's discovery/finish interval contains v's, v is
//     a descendant of u in the DFS forest and is trivially reachable.
//  2. Label test: the BFL necessary condition is lout[v] ⊆ lout[u] and
//     lin[u] ⊆ lin[v]; if either subset relation fails, v cannot be
//     reachable from u and the answer is false without any graph walk.
//  3. DFS fallback: the label test only rules negatives out, so a
//     bounded DFS from u re-checks both label directions at every
//     frontier node, short-circuiting whenever a node's own labels
//     already rule out reaching v.
func (idx *Index) Reaches(u, v graph.NI) bool {
	if u == v {
		return true
	}
	if idx.disc[u] < idx.disc[v] && idx.fin[v] < idx.fin[u] {
		idx.sink.IncNoDFS()
		return true
	}
	if !idx.lout[v].subset(idx.lout[u]) || !idx.lin[u].subset(idx.lin[v]) {
		idx.sink.IncNoDFS()
		return false
	}
	idx.sink.IncWithDFS()
	idx.sink.IncDFSStarted()
	visited := make(map[graph.NI]bool, idx.g.Order())
	return idx.reachesDFS(u, v, visited)
}

func (idx *Index) reachesDFS(u, v graph.NI, visited map[graph.NI]bool) bool {
	if u == v {
		return true
	}
	visited[u] = true
	for _, w := range idx.g.Out(u) {
		if visited[w] {
			continue
		}
		if w == v {
			return true
		}
		if idx.disc[w] < idx.disc[v] && idx.fin[v] < idx.fin[w] {
			return true
		}
		if !idx.lout[v].subset(idx.lout[w]) || !idx.lin[w].subset(idx.lin[v]) {
			continue
		}
		if idx.reachesDFS(w, v, visited) {
			return true
		}
	}
	return false
}
