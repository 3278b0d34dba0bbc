// sim/resource.go
package sim

import "fmt"

// Resource is a single-slot exclusive resource: at most one holder at any
// instant, with blocked requesters queued in arrival order. A release hands
// the slot to the earliest waiter and schedules its resumption at the current
// time, so acquisition order always equals request order.
type Resource struct {
	engine  *Engine
	name    string
	holder  *Process
	waiters []*Process
}

// NewResource creates a free resource.
func NewResource(e *Engine, name string) *Resource {
	return &Resource{engine: e, name: name}
}

// Request blocks p until it holds r. If r is free the caller becomes holder
// immediately without suspending.
func (r *Resource) Request(p *Process) {
	// holder == nil implies no waiters: Release hands off directly.
	if r.holder == nil {
		r.holder = p
		return
	}
	r.waiters = append(r.waiters, p)
	p.park()
	// Release made p the holder before waking it.
}

// Release frees r or passes it to the earliest waiter.
func (r *Resource) Release(p *Process) {
	if r.holder != p {
		panic(fmt.Sprintf("sim: process %s released %s without holding it", p.name, r.name))
	}
	if len(r.waiters) == 0 {
		r.holder = nil
		return
	}
	next := r.waiters[0]
	r.waiters = r.waiters[1:]
	r.holder = next
	r.engine.Schedule(0, next)
}

// Holder returns the current holder, or nil if r is free.
func (r *Resource) Holder() *Process {
	return r.holder
}

// QueueLen returns the number of blocked requesters.
func (r *Resource) QueueLen() int {
	return len(r.waiters)
}
