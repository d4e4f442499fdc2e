// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package bfl

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/open-dag/tredux"
)

// HashFunc maps a node id to a hash value; Build reduces that value
// modulo the hash range K it is given to pick the node's bucket in
// [0, K). The partition fan-out d and the hash
// range K are independent knobs; correctness of Reaches does not depend
// on which hash is used, since BFL labels are only a necessary filter
// ahead of a DFS fallback.
type HashFunc func(n graph.NI) uint64

// DefaultHash is backed by xxhash, a fast non-cryptographic hash well
// suited to small fixed-width keys like a node id.
func DefaultHash(n graph.NI) uint64 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(n))
	return xxhash.Sum64(buf[:])
}

func bucket(h HashFunc, n graph.NI, k int) int {
	return int(h(n) % uint64(k))
}
