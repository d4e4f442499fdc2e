// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package metrics

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// LogSink logs a debug event every time one of its counters crosses a
// power of two, so high query volumes don't flood the log.
type LogSink struct {
	log        zerolog.Logger
	noDFS      uint64
	withDFS    uint64
	dfsStarted uint64
}

// NewLogSink returns a LogSink writing through log.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func logOnPowerOfTwo(log zerolog.Logger, name string, n uint64) {
	if n&(n-1) == 0 {
		log.Debug().Uint64("count", n).Msg(name)
	}
}

func (s *LogSink) IncNoDFS() {
	n := atomic.AddUint64(&s.noDFS, 1)
	logOnPowerOfTwo(s.log, "reachability query resolved without dfs", n)
}

func (s *LogSink) IncWithDFS() {
	n := atomic.AddUint64(&s.withDFS, 1)
	logOnPowerOfTwo(s.log, "reachability query fell through to dfs", n)
}

func (s *LogSink) IncDFSStarted() {
	n := atomic.AddUint64(&s.dfsStarted, 1)
	logOnPowerOfTwo(s.log, "dfs started", n)
}
