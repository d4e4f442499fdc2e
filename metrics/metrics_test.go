// Copyright 2014 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package metrics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/open-dag/tredux/metrics"
)

func TestNoOpDoesNothing(t *testing.T) {
	s := metrics.NoOp()
	s.IncNoDFS()
	s.IncWithDFS()
	s.IncDFSStarted()
}

// TestLogSinkOnlyLogsOnPowerOfTwo drives one counter past several
// power-of-two thresholds and checks that the number of lines the
// logger actually wrote equals the number of thresholds crossed, not
// the number of calls made.
func TestLogSinkOnlyLogsOnPowerOfTwo(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s := metrics.NewLogSink(log)

	const calls = 10 // crosses 1, 2, 4, 8 -> 4 expected log lines
	for i := 0; i < calls; i++ {
		s.IncNoDFS()
	}

	lines := strings.Count(strings.TrimRight(buf.String(), "\n"), "\n") + 1
	if want := 4; lines != want {
		t.Fatalf("got %d log lines for %d calls, want %d (logged on 1,2,4,8)", lines, calls, want)
	}
	if !strings.Contains(buf.String(), `"count":8`) {
		t.Errorf("expected the 8th call's count to be logged, log = %q", buf.String())
	}
	if strings.Contains(buf.String(), `"count":3`) || strings.Contains(buf.String(), `"count":5`) {
		t.Errorf("logged a non-power-of-two count, log = %q", buf.String())
	}
}

// TestLogSinkCountersAreIndependent checks that each of the three
// counters crosses its own power-of-two thresholds independently.
func TestLogSinkCountersAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	s := metrics.NewLogSink(zerolog.New(&buf))

	s.IncWithDFS()
	s.IncDFSStarted()
	s.IncDFSStarted()

	out := buf.String()
	if strings.Count(out, "reachability query fell through to dfs") != 1 {
		t.Errorf("withDFS should have logged once at count 1, log = %q", out)
	}
	if strings.Count(out, "dfs started") != 2 {
		t.Errorf("dfsStarted should have logged at counts 1 and 2, log = %q", out)
	}
}

func TestPrometheusSinkCollectorsRegistersAllThree(t *testing.T) {
	s := metrics.NewPrometheusSink("tredux", "bfl")
	collectors := s.Collectors()
	if len(collectors) != 3 {
		t.Fatalf("Collectors() returned %d collectors, want 3", len(collectors))
	}

	s.IncNoDFS()
	s.IncNoDFS()
	s.IncWithDFS()

	if got := testutil.ToFloat64(s.NoDFS); got != 2 {
		t.Errorf("NoDFS counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(s.WithDFS); got != 1 {
		t.Errorf("WithDFS counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(s.DFSStarted); got != 0 {
		t.Errorf("DFSStarted counter = %v, want 0", got)
	}
}
