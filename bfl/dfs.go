// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bfl

import (
	"sort"

	"github.com/open-dag/tredux"
	"github.com/soniakeys/bits"
)

// forestResult holds the discovery/finish intervals produced by a DFS
// forest traversal in topological order, plus the post-order sequence
// derived from them.
type forestResult struct {
	disc, fin []int
	postOrder []graph.NI
}

// forestDFS walks g in the given topological order, recursively, the
// same style as the ancestor package's dfTopo. disc and fin are 1-based
// as in the original tool's output.
func forestDFS(g *graph.Graph, order []graph.NI) forestResult {
	n := g.Order()
	r := forestResult{disc: make([]int, n), fin: make([]int, n)}
	visited := bits.New(n)
	clock := 0

	var visit func(u graph.NI)
	visit = func(u graph.NI) {
		clock++
		r.disc[u] = clock
		visited.SetBit(int(u), 1)
		for _, w := range g.Out(u) {
			if visited.Bit(int(w)) == 0 {
				visit(w)
			}
		}
		clock++
		r.fin[u] = clock
	}

	for _, u := range order {
		if visited.Bit(int(u)) == 0 {
			visit(u)
		}
	}

	r.postOrder = make([]graph.NI, n)
	for i := range r.postOrder {
		r.postOrder[i] = graph.NI(i)
	}
	sort.Slice(r.postOrder, func(i, j int) bool {
		return r.fin[r.postOrder[i]] < r.fin[r.postOrder[j]]
	})
	return r
}

// forestDFSIterative is the non-recursive twin of forestDFS, used when
// the caller needs to bound stack depth explicitly (deep or adversarial
// graphs). It produces identical disc/fin values.
func forestDFSIterative(g *graph.Graph, order []graph.NI) forestResult {
	n := g.Order()
	r := forestResult{disc: make([]int, n), fin: make([]int, n)}
	visited := bits.New(n)
	clock := 0

	type frame struct {
		u   graph.NI
		pos int
	}

	for _, root := range order {
		if visited.Bit(int(root)) != 0 {
			continue
		}
		stack := []frame{{root, 0}}
		clock++
		r.disc[root] = clock
		visited.SetBit(int(root), 1)

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj := g.Out(top.u)
			advanced := false
			for top.pos < len(adj) {
				w := adj[top.pos]
				top.pos++
				if visited.Bit(int(w)) == 0 {
					clock++
					r.disc[w] = clock
					visited.SetBit(int(w), 1)
					stack = append(stack, frame{w, 0})
					advanced = true
					break
				}
			}
			if advanced {
				continue
			}
			clock++
			r.fin[top.u] = clock
			stack = stack[:len(stack)-1]
		}
	}

	r.postOrder = make([]graph.NI, n)
	for i := range r.postOrder {
		r.postOrder[i] = graph.NI(i)
	}
	sort.Slice(r.postOrder, func(i, j int) bool {
		return r.fin[r.postOrder[i]] < r.fin[r.postOrder[j]]
	})
	return r
}
