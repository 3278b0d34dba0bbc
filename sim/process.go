// sim/process.go
package sim

import "runtime"

// Process is a suspendable unit of sequential logic. Its body runs on a
// dedicated goroutine, but control strictly alternates with the engine: the
// body only executes between a resume and its next suspension point (a timed
// Wait, a Resource.Request, or a Store.Put/Get).
type Process struct {
	engine *Engine
	name   string
	resume chan struct{}
}

// Name returns the process name used in logs.
func (p *Process) Name() string {
	return p.name
}

// Now returns the current virtual time.
func (p *Process) Now() float64 {
	return p.engine.now
}

// Wait suspends p for delay minutes of virtual time.
func (p *Process) Wait(delay float64) {
	p.engine.Schedule(delay, p)
	p.park()
}

// park hands control back to the engine until something schedules p again.
// Callers must have arranged a future wake-up (a scheduled event or a spot in
// a resource/store waiter line) before parking.
func (p *Process) park() {
	p.engine.yielded <- struct{}{}
	p.unpark()
}

// unpark blocks until the engine resumes p. Once the run is over the
// goroutine exits instead, so suspended processes do not outlive the engine.
func (p *Process) unpark() {
	select {
	case <-p.resume:
	case <-p.engine.stop:
		runtime.Goexit()
	}
}
