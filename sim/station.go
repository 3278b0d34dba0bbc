// sim/station.go
package sim

import "github.com/sirupsen/logrus"

// Station is a single-server processing stage. Its machine resource
// serializes all access to the stage; its service time is the reciprocal of
// the configured rate. When the downstream buffer is full the station backs
// off for a fixed retry delay and polls again, holding the candidate unit
// the whole time.
type Station struct {
	name       string
	machine    *Resource
	intake     *Store
	downstream *Store
	procTime   float64
	retryDelay float64
}

// NewStation creates a station draining intake into downstream. The rate must
// be positive; Config.Validate rejects zero rates before any station exists.
func NewStation(name string, machine *Resource, intake, downstream *Store, rate, retryDelay float64) *Station {
	return &Station{
		name:       name,
		machine:    machine,
		intake:     intake,
		downstream: downstream,
		procTime:   1.0 / rate,
		retryDelay: retryDelay,
	}
}

// Run takes one unit at a time from the intake and pushes it downstream,
// forever.
func (st *Station) Run(p *Process) {
	for {
		st.intake.Get(p)
		st.processUnit(p)
	}
}

// processUnit pushes one unit downstream. While the downstream buffer is at
// capacity the unit is held back and the station polls again after its fixed
// retry delay; this polling backpressure is the contractual behavior, not a
// stand-in for waking exactly when space frees.
func (st *Station) processUnit(p *Process) {
	for {
		st.machine.Request(p)
		if st.downstream.Full() {
			st.machine.Release(p)
			logrus.Debugf("[%10.4f] %s: %s full, retrying in %v min",
				p.Now(), st.name, st.downstream.name, st.retryDelay)
			p.Wait(st.retryDelay)
			continue
		}
		p.Wait(st.procTime)
		st.downstream.Put(p)
		st.machine.Release(p)
		logrus.Debugf("[%10.4f] %s: pushed a unit, %s at %d/%d",
			p.Now(), st.name, st.downstream.name, st.downstream.Len(), st.downstream.Cap())
		return
	}
}
