// sim/engine.go
package sim

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// ErrStalled reports that the event queue drained while processes were still
// suspended before the horizon was reached. The production-line processes all
// run forever, so a drained queue means the wiring is defective, not that the
// simulation finished early.
var ErrStalled = errors.New("event queue drained before horizon")

// event pairs a wake-up time with the process to resume. seq breaks ties
// between events stamped with the same time: earlier scheduled, earlier run.
type event struct {
	time float64
	seq  uint64
	proc *Process
}

// eventQueue implements heap.Interface and orders events by timestamp.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventQueue []*event

func (eq eventQueue) Len() int { return len(eq) }
func (eq eventQueue) Less(i, j int) bool {
	if eq[i].time != eq[j].time {
		return eq[i].time < eq[j].time
	}
	return eq[i].seq < eq[j].seq
}
func (eq eventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) {
	*eq = append(*eq, x.(*event))
}

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Engine holds the virtual clock and the time-ordered queue of pending
// wake-ups, and drives suspended processes one at a time. Exactly one process
// executes at any instant; everything else is parked, so shared state touched
// by processes needs no locking.
type Engine struct {
	now    float64
	seq    uint64
	events eventQueue

	// yielded is signaled by the active process when it suspends or returns;
	// stop is closed when the run is over so parked goroutines can exit.
	yielded chan struct{}
	stop    chan struct{}

	live     int // spawned processes whose body has not returned
	finished bool
}

// NewEngine creates an engine with the clock at zero and no pending events.
func NewEngine() *Engine {
	return &Engine{
		events:  make(eventQueue, 0),
		yielded: make(chan struct{}),
		stop:    make(chan struct{}),
	}
}

// Now returns the current virtual time in minutes.
func (e *Engine) Now() float64 {
	return e.now
}

// Schedule inserts a wake-up for p at now + delay. A negative (or NaN) delay
// is a programming error and panics: the clock never goes backward.
func (e *Engine) Schedule(delay float64, p *Process) {
	if delay < 0 || math.IsNaN(delay) {
		panic(fmt.Sprintf("sim: negative delay %v scheduled for process %s", delay, p.name))
	}
	ev := &event{time: e.now + delay, seq: e.seq, proc: p}
	e.seq++
	heap.Push(&e.events, ev)
}

// Spawn creates a process running fn and schedules its first resumption at
// the current time. fn executes on its own goroutine but only while the
// engine has handed it control.
func (e *Engine) Spawn(name string, fn func(*Process)) *Process {
	p := &Process{engine: e, name: name, resume: make(chan struct{})}
	e.live++
	go func() {
		p.unpark()
		fn(p)
		e.live--
		e.yielded <- struct{}{}
	}()
	e.Schedule(0, p)
	return p
}

// Run pops events in time order, advancing the clock and resuming each
// event's process until it suspends again, and stops once the next event
// would land at or beyond the horizon. The clock never skips an event and
// never decreases. A queue that drains early with processes still parked
// returns ErrStalled.
//
// Run is single-use: when it returns, all parked process goroutines have
// been released.
func (e *Engine) Run(horizon float64) error {
	if e.finished {
		panic("sim: engine already ran")
	}
	defer func() {
		e.finished = true
		close(e.stop)
	}()

	for e.events.Len() > 0 {
		ev := heap.Pop(&e.events).(*event)
		if ev.time >= horizon {
			e.now = horizon
			return nil
		}
		e.now = ev.time
		logrus.Tracef("[%10.4f] resuming %s", e.now, ev.proc.name)
		e.dispatch(ev.proc)
	}

	if e.live > 0 {
		return fmt.Errorf("%w: %d processes still suspended at t=%.4f", ErrStalled, e.live, e.now)
	}
	return nil
}

// dispatch hands control to p and blocks until p suspends or returns. This
// handshake is what makes the interleaving deterministic: the engine and the
// process never run concurrently.
func (e *Engine) dispatch(p *Process) {
	p.resume <- struct{}{}
	<-e.yielded
}
