// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package metrics provides an optional diagnostics sink for BFL
// reachability queries, passed explicitly into bfl.Build rather than
// living behind a process-wide singleton.
package metrics

// Sink receives the three reachability-query counters: calls resolved
// without a DFS fallback, calls that fell through to DFS, and DFS runs
// actually started. A nil Sink must never be passed; use NoOp().
type Sink interface {
	IncNoDFS()
	IncWithDFS()
	IncDFSStarted()
}

type noop struct{}

func (noop) IncNoDFS()      {}
func (noop) IncWithDFS()    {}
func (noop) IncDFSStarted() {}

// NoOp returns a Sink with zero cost, the default when no diagnostics
// are needed.
func NoOp() Sink { return noop{} }
