// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bfl

import "github.com/open-dag/tredux"

// mergeVertices partitions postOrder into min(d, len(postOrder)) contiguous
// intervals of equal width floor(len(postOrder)/min(d, len(postOrder))),
// the remainder absorbed into the last interval. It returns g, where
// g[n] is the leading post-order node of the interval containing n.
//
// The width is floor(|V|/d). Written as `size() - 1 / d`, the width
// would parse as size() - (1/d), which for d > 1 is |V| itself and puts
// every node into a single interval; that form is not used.
func mergeVertices(postOrder []graph.NI, d int) []graph.NI {
	n := len(postOrder)
	if n == 0 {
		return nil
	}
	if d <= 0 {
		d = 1
	}
	dp := d
	if dp > n {
		dp = n
	}
	width := n / dp

	g := make([]graph.NI, n)
	for i := 0; i < n; i++ {
		interval := i / width
		if interval >= dp {
			interval = dp - 1
		}
		lower := interval * width
		g[postOrder[i]] = postOrder[lower]
	}
	return g
}
