// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package pk2 maintains a topological order incrementally as batches of
// new edges are inserted into an already-ordered DAG, following Pearce
// and Kelly's discover/shift scheme rather than resorting from scratch.
package pk2

import (
	"sort"

	"github.com/open-dag/tredux"
	"github.com/soniakeys/bits"
)

// Order tracks a topological numbering that can be updated in place.
// invOrder[position] is the node at that position; position[node] is
// its inverse.
type Order struct {
	invOrder []graph.NI
	position []int
}

// NewOrder builds an Order from toRev, the position-indexed node
// sequence returned by graph.Kahn.
func NewOrder(toRev []graph.NI) *Order {
	inv := make([]graph.NI, len(toRev))
	copy(inv, toRev)
	pos := make([]int, len(toRev))
	for p, n := range inv {
		pos[n] = p
	}
	return &Order{invOrder: inv, position: pos}
}

// Position returns n's current position.
func (o *Order) Position(n graph.NI) int { return o.position[n] }

// NodeAt returns the node currently at position p.
func (o *Order) NodeAt(p int) graph.NI { return o.invOrder[p] }

// ToRev returns the current position-indexed node sequence. The caller
// must not mutate the returned slice.
func (o *Order) ToRev() []graph.NI { return o.invOrder }

// Edge is a directed edge to insert.
type Edge struct {
	X, Y graph.NI
}

type pair struct {
	v        graph.NI
	boundary graph.NI
}

// InsertEdges appends edges to g and restores a valid topological order
// in o. Edges whose tail already precedes its head keep the order
// unchanged; edges that invalidate the order trigger a discover/shift
// pass per affected region. InsertEdges returns graph.ErrCycleDetected
// if the batch would create a cycle; in that case both g and o must be
// treated as corrupted and discarded by the caller.
func InsertEdges(g *graph.Graph, o *Order, edges []Edge) error {
	var invalidating []Edge
	for _, e := range edges {
		if err := g.AddEdge(e.X, e.Y); err != nil {
			return err
		}
		if o.position[e.X] >= o.position[e.Y] {
			invalidating = append(invalidating, e)
		}
	}
	if len(invalidating) == 0 {
		return nil
	}

	sort.SliceStable(invalidating, func(i, j int) bool {
		return o.position[invalidating[i].X] > o.position[invalidating[j].X]
	})

	regions := groupRegions(o, invalidating)

	n := g.Order()
	for _, r := range regions {
		vacant := bits.New(n)
		frontier, err := discover(g, o, r.edges, vacant)
		if err != nil {
			return err
		}
		shift(o, r.lower, r.upper, vacant, frontier)
	}
	return nil
}

type region struct {
	edges []Edge
	lower int
	upper int
}

// groupRegions sorts invalidating edges (already sorted descending by
// position(X) by the caller) into affected regions. A new region opens
// whenever the current edge's position(X) falls below the running
// minimum position(Y) seen so far; that running minimum is a single
// accumulator carried across the whole batch, never reset when a
// region closes — only a new region's own bounds are computed fresh.
func groupRegions(o *Order, invalidating []Edge) []region {
	var regions []region
	var cur []Edge
	runningMin := int(^uint(0) >> 1) // max int, never reset across regions

	flush := func() {
		if len(cur) == 0 {
			return
		}
		lower, upper := o.position[cur[0].Y], o.position[cur[0].X]
		for _, e := range cur {
			if p := o.position[e.Y]; p < lower {
				lower = p
			}
			if p := o.position[e.X]; p > upper {
				upper = p
			}
		}
		regions = append(regions, region{edges: cur, lower: lower, upper: upper})
		cur = nil
	}

	for _, e := range invalidating {
		if len(cur) > 0 && o.position[e.X] < runningMin {
			flush()
		}
		cur = append(cur, e)
		if p := o.position[e.Y]; p < runningMin {
			runningMin = p
		}
	}
	flush()
	return regions
}

// discover runs a bounded DFS from each region edge's head, marking
// every node that must move (because it lies, by position, before the
// edge's tail) vacant, and recording where each should be reinserted.
func discover(g *graph.Graph, o *Order, edges []Edge, vacant bits.Bits) ([]pair, error) {
	onStack := bits.New(g.Order())
	var frontier []pair
	for _, e := range edges {
		if vacant.Bit(o.position[e.Y]) != 0 {
			continue
		}
		if err := dfsDiscover(g, o, e.Y, e.X, o.position[e.X], vacant, onStack, &frontier); err != nil {
			return nil, err
		}
	}
	return frontier, nil
}

// dfsDiscover walks forward from node looking for everything that must
// move ahead of edgeTail (the tail of the invalidating edge that
// triggered this call). Every frontier pair produced by this call, no
// matter how deep the recursion, is boundary-stamped with edgeTail
// itself rather than the immediate caller: edgeTail's position is the
// upper bound of the whole walk, so it never moves during discover, and
// shift later drains a node's dependents by looking them up under that
// one fixed key. Reaching edgeTail again means edgeTail was already
// reachable from node before the edge edgeTail->edgeHead was added, so
// inserting it closes a cycle.
func dfsDiscover(g *graph.Graph, o *Order, node, edgeTail graph.NI, xPos int, vacant, onStack bits.Bits, frontier *[]pair) error {
	if onStack.Bit(int(node)) != 0 {
		return graph.ErrCycleDetected
	}
	pos := o.position[node]
	if pos >= xPos || vacant.Bit(pos) != 0 {
		return nil
	}
	onStack.SetBit(int(node), 1)
	vacant.SetBit(pos, 1)
	for _, w := range g.Out(node) {
		if w == edgeTail {
			return graph.ErrCycleDetected
		}
		if o.position[w] < xPos {
			if err := dfsDiscover(g, o, w, edgeTail, xPos, vacant, onStack, frontier); err != nil {
				return err
			}
		}
	}
	onStack.SetBit(int(node), 0)
	*frontier = append(*frontier, pair{v: node, boundary: edgeTail})
	return nil
}

// shift walks positions [lower, upper] left to right. A vacant slot's
// occupant has already been absorbed into the frontier and is skipped;
// a non-vacant node is relocated to the next free slot, and every
// frontier entry whose boundary equals it is placed immediately behind,
// recursively draining any entries chained off of those in turn.
func shift(o *Order, lower, upper int, vacant bits.Bits, frontier []pair) {
	original := append([]graph.NI(nil), o.invOrder[lower:upper+1]...)
	byBoundary := make(map[graph.NI][]graph.NI, len(frontier))
	for _, p := range frontier {
		byBoundary[p.boundary] = append(byBoundary[p.boundary], p.v)
	}

	cursor := lower
	var place func(node graph.NI)
	place = func(node graph.NI) {
		o.invOrder[cursor] = node
		o.position[node] = cursor
		cursor++
		deps := byBoundary[node]
		for len(deps) > 0 {
			v := deps[len(deps)-1]
			deps = deps[:len(deps)-1]
			byBoundary[node] = deps
			place(v)
		}
	}

	for i, node := range original {
		if vacant.Bit(lower+i) != 0 {
			continue
		}
		place(node)
	}
}
