// sim/fleet.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Counter is the completed-units total. The Line owns it and shares it with
// the terminal workers by reference; it only ever increases.
type Counter struct {
	n int
}

// Inc adds one completed unit.
func (c *Counter) Inc() {
	c.n++
}

// Value returns the current total.
func (c *Counter) Value() int {
	return c.n
}

// TerminalFleet is the pool of parallel final-stage servers draining the last
// buffer. Workers hold no exclusive resource: their only shared mutable state
// is the completed counter, and the engine's one-process-at-a-time stepping
// serializes the increments.
type TerminalFleet struct {
	input     *Store
	procTime  float64
	workers   int
	completed *Counter
}

// NewTerminalFleet creates a fleet of the given size draining input.
func NewTerminalFleet(input *Store, rate float64, workers int, completed *Counter) *TerminalFleet {
	return &TerminalFleet{
		input:     input,
		procTime:  1.0 / rate,
		workers:   workers,
		completed: completed,
	}
}

// Spawn launches the worker processes on e.
func (f *TerminalFleet) Spawn(e *Engine) {
	for i := 0; i < f.workers; i++ {
		e.Spawn(fmt.Sprintf("terminal-%d", i), f.worker)
	}
}

func (f *TerminalFleet) worker(p *Process) {
	for {
		f.input.Get(p)
		p.Wait(f.procTime)
		f.completed.Inc()
		logrus.Debugf("[%10.4f] %s: unit finished, %d completed",
			p.Now(), p.Name(), f.completed.Value())
	}
}
