package sim

import (
	"math"
	"testing"
)

func newStationFixture(e *Engine, outCap int, rate, retry float64) (*Station, *Store, *Store, *Resource) {
	machine := NewResource(e, "machine")
	intake := NewStore(e, "intake", math.MaxInt)
	out := NewStore(e, "out", outCap)
	st := NewStation("station", machine, intake, out, rate, retry)
	return st, intake, out, machine
}

func TestStation_PushesAfterServiceTime(t *testing.T) {
	// GIVEN a station at 2 units/min (0.5 min service) with one queued unit
	e := NewEngine()
	st, intake, out, _ := newStationFixture(e, 10, 2.0, 1.0)
	feed(e, intake, 1)
	e.Spawn("station", st.Run)

	var lens []int
	e.Spawn("probe", func(p *Process) {
		p.Wait(0.4)
		lens = append(lens, out.Len())
		p.Wait(0.2)
		lens = append(lens, out.Len())
	})
	keepAlive(e)

	// WHEN run past the service time
	if err := e.Run(2.0); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN the unit appeared downstream between t=0.4 and t=0.6
	if lens[0] != 0 || lens[1] != 1 {
		t.Errorf("downstream lens = %v, want [0 1]", lens)
	}
	if intake.Gets() != 1 {
		t.Errorf("intake gets = %d, want 1", intake.Gets())
	}
}

func TestStation_EmptyIntake_NeverProcesses(t *testing.T) {
	// GIVEN a station whose intake never receives a signal
	e := NewEngine()
	st, intake, out, _ := newStationFixture(e, 10, 2.0, 1.0)
	e.Spawn("station", st.Run)
	keepAlive(e)

	// WHEN run for a while
	if err := e.Run(5.0); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN the station stayed gated
	if out.Puts() != 0 || intake.Gets() != 0 {
		t.Errorf("puts=%d intake gets=%d, want 0/0", out.Puts(), intake.Gets())
	}
}

func TestStation_FullDownstream_RetriesWithoutProcessing(t *testing.T) {
	// GIVEN a station whose downstream can never accept a unit
	e := NewEngine()
	st, intake, out, machine := newStationFixture(e, 0, 1.0, 2.0)
	feed(e, intake, 1)
	e.Spawn("station", st.Run)

	// WHEN run through several retry cycles (the retries keep the queue alive)
	if err := e.Run(9.0); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN nothing was ever pushed, the candidate was taken exactly once, and
	// the machine is always released between polls
	if out.Puts() != 0 {
		t.Errorf("downstream puts = %d, want 0", out.Puts())
	}
	if intake.Gets() != 1 {
		t.Errorf("intake gets = %d, want 1 (candidate held, not re-taken)", intake.Gets())
	}
	if machine.Holder() != nil {
		t.Errorf("machine still held by %v during backoff", machine.Holder())
	}
}

func TestStation_HoldsCandidateAcrossRetries_ThenPushes(t *testing.T) {
	// GIVEN a full single-slot downstream that frees at t=2.5, a station
	// polling every minute with 0.5 min service
	e := NewEngine()
	st, intake, out, _ := newStationFixture(e, 1, 2.0, 1.0)
	feed(e, out, 1) // pre-fill downstream
	feed(e, intake, 1)
	e.Spawn("station", st.Run)
	e.Spawn("consumer", func(p *Process) {
		p.Wait(2.5)
		out.Get(p)
	})
	keepAlive(e)

	// WHEN run past the poll that finds space (t=3) plus the service time
	if err := e.Run(5.0); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN the held candidate was pushed on the first successful poll
	if out.Len() != 1 {
		t.Errorf("downstream len = %d, want 1", out.Len())
	}
	if out.Puts() != 2 {
		t.Errorf("downstream puts = %d, want 2 (pre-fill + station)", out.Puts())
	}
	if intake.Gets() != 1 {
		t.Errorf("intake gets = %d, want 1 (candidate held across retries)", intake.Gets())
	}
}
