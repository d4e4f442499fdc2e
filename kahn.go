// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph

// Kahn computes a topological order of g by Kahn's algorithm.
//
// to[id] is the position of node id; toRev[position] is the node at
// that position. The frontier of zero-remaining-in-degree nodes is
// processed LIFO, so among several ready nodes the one chosen next is
// unspecified — any valid topological order is acceptable.
//
// Kahn returns ErrNotADag if g contains a cycle; in that case to and
// toRev are both nil and no further computation should be attempted.
func Kahn(g *Graph) (to, toRev []NI, err error) {
	n := g.Order()
	rem := make([]int, n)
	var s []NI // LIFO frontier of nodes with no remaining incoming edges
	for v := 0; v < n; v++ {
		rem[v] = len(g.in[v])
		if rem[v] == 0 {
			s = append(s, NI(v))
		}
	}

	toRev = make([]NI, 0, n)
	visited := 0
	for len(s) > 0 {
		last := len(s) - 1
		u := s[last]
		s = s[:last]
		toRev = append(toRev, u)
		for _, w := range g.out[u] {
			visited++
			rem[w]--
			if rem[w] == 0 {
				s = append(s, w)
			}
		}
	}

	if visited < g.m {
		return nil, nil, ErrNotADag
	}

	to = make([]NI, n)
	for pos, node := range toRev {
		to[node] = NI(pos)
	}
	return to, toRev, nil
}
