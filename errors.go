// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package graph

import "errors"

// Sentinel errors shared by graph, bfl, tr, and pk2. Every fallible
// entry point returns one of these (possibly wrapped with %w for
// context) rather than panicking.
var (
	// ErrNotADag is returned by Kahn and by bfl.Build when the input
	// graph contains a cycle.
	ErrNotADag = errors.New("graph: not a dag")

	// ErrNoSuchEdge is returned by RemoveEdge when the edge is absent.
	ErrNoSuchEdge = errors.New("graph: no such edge")

	// ErrOutOfRange is returned when a node id is not in [0, Order()).
	ErrOutOfRange = errors.New("graph: node id out of range")

	// ErrInvalidArgument is returned for malformed caller input, such
	// as a non-positive partition fan-out or hash range.
	ErrInvalidArgument = errors.New("graph: invalid argument")

	// ErrCycleDetected is returned by pk2.InsertEdges when the batch
	// of new edges would create a cycle. The graph must be treated as
	// corrupted and discarded by the caller.
	ErrCycleDetected = errors.New("graph: cycle detected in edge insertion")
)
