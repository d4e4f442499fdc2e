// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph

import "fmt"

// NI is a "node index": a node number used directly as a slice index.
// Node numbers are assigned at construction time and never change.
type NI int32

// Graph is a directed graph stored as parallel outgoing/incoming
// adjacency lists indexed by NI. Nodes are never addressable structs;
// a node is simply its index into these slices.
//
// Parallel edges are not modeled. Callers must not insert duplicate
// edges; AddEdge does not check for them.
type Graph struct {
	out [][]NI
	in  [][]NI
	m   int
}

// New returns a Graph with n nodes (numbered 0..n-1) and no edges.
func New(n int) *Graph {
	return &Graph{out: make([][]NI, n), in: make([][]NI, n)}
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.out) }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.m }

// Out returns n's outgoing neighbors. The caller must not retain or
// mutate the returned slice across a later AddEdge/RemoveEdge on n.
func (g *Graph) Out(n NI) []NI { return g.out[n] }

// In returns n's incoming neighbors, with the same aliasing caveat as Out.
func (g *Graph) In(n NI) []NI { return g.in[n] }

func (g *Graph) checkRange(ids ...NI) error {
	for _, id := range ids {
		if id < 0 || int(id) >= len(g.out) {
			return fmt.Errorf("%w: node %d", ErrOutOfRange, id)
		}
	}
	return nil
}

// AddEdge appends v to u's outgoing list and u to v's incoming list.
func (g *Graph) AddEdge(u, v NI) error {
	if err := g.checkRange(u, v); err != nil {
		return err
	}
	g.out[u] = append(g.out[u], v)
	g.in[v] = append(g.in[v], u)
	g.m++
	return nil
}

// RemoveEdge removes the first occurrence of (u, v) from u's outgoing
// list and from v's incoming list. It returns ErrNoSuchEdge if the edge
// is not present.
func (g *Graph) RemoveEdge(u, v NI) error {
	if err := g.checkRange(u, v); err != nil {
		return err
	}
	out, ok := removeFirst(g.out[u], v)
	if !ok {
		return fmt.Errorf("%w: %d->%d", ErrNoSuchEdge, u, v)
	}
	g.out[u] = out
	if in, ok := removeFirst(g.in[v], u); ok {
		g.in[v] = in
	}
	g.m--
	return nil
}

func removeFirst(s []NI, x NI) ([]NI, bool) {
	for i, v := range s {
		if v == x {
			return append(s[:i], s[i+1:]...), true
		}
	}
	return s, false
}

// Equal reports whether g and h have the same order and, for every
// node, identical outgoing and incoming adjacency sequences.
func (g *Graph) Equal(h *Graph) bool {
	if g.Order() != h.Order() || g.m != h.m {
		return false
	}
	for n := range g.out {
		if !equalNI(g.out[n], h.out[n]) || !equalNI(g.in[n], h.in[n]) {
			return false
		}
	}
	return true
}

func equalNI(a, b []NI) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
