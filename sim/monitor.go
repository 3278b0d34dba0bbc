// sim/monitor.go
package sim

import "math"

// Monitor samples the line once per simulated minute: both buffer lengths and
// the completed-units total, tagged with the floor of the current virtual
// time. It wakes at exact one-minute intervals starting at 0, so the minute
// tags are contiguous with no gaps and no duplicates.
type Monitor struct {
	buffer1   *Store
	buffer2   *Store
	completed *Counter
	records   []Snapshot
}

// NewMonitor creates a monitor observing the two buffers and the counter.
func NewMonitor(buffer1, buffer2 *Store, completed *Counter) *Monitor {
	return &Monitor{buffer1: buffer1, buffer2: buffer2, completed: completed}
}

// Run appends one snapshot per wake, forever.
func (m *Monitor) Run(p *Process) {
	for {
		m.records = append(m.records, Snapshot{
			Minute:     int(math.Floor(p.Now())),
			Buffer1Len: m.buffer1.Len(),
			Buffer2Len: m.buffer2.Len(),
			Completed:  m.completed.Value(),
		})
		p.Wait(1.0)
	}
}

// Records returns the accumulated snapshot series.
func (m *Monitor) Records() []Snapshot {
	return m.records
}
