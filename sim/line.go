// sim/line.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Line wires the production line together: the engine, the two station
// machines, the intake and WIP stores, the completed counter, and every
// domain process. All entities live for exactly one run.
type Line struct {
	cfg       Config
	engine    *Engine
	intake    *Store
	buffer1   *Store
	buffer2   *Store
	completed *Counter
	monitor   *Monitor
}

// NewLine validates cfg and assembles a ready-to-run line.
func NewLine(cfg Config) (*Line, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	e := NewEngine()
	rng := NewPartitionedRNG(cfg.Seed).ForSubsystem(SubsystemArrivals)

	machineA := NewResource(e, "machine-a")
	machineB := NewResource(e, "machine-b")
	// Intake is effectively unbounded: orders are never refused, only queued.
	intake := NewStore(e, "intake", math.MaxInt)
	buffer1 := NewStore(e, "buffer-1", cfg.Buffer1Capacity)
	buffer2 := NewStore(e, "buffer-2", cfg.Buffer2Capacity)
	completed := &Counter{}

	arrivals := NewArrivalGenerator(cfg.ArrivalRate, rng, intake)
	stationA := NewStation("station-a", machineA, intake, buffer1, cfg.StationARate, cfg.StationARetry)
	stationB := NewStation("station-b", machineB, buffer1, buffer2, cfg.StationBRate, cfg.StationBRetry)
	fleet := NewTerminalFleet(buffer2, cfg.TerminalRate, cfg.TerminalWorkers, completed)
	monitor := NewMonitor(buffer1, buffer2, completed)

	// Spawn order fixes the FIFO tie-break among the t=0 wake-ups, which is
	// part of what the determinism guarantee rests on.
	e.Spawn("arrivals", arrivals.Run)
	e.Spawn("station-a", stationA.Run)
	e.Spawn("station-b", stationB.Run)
	fleet.Spawn(e)
	e.Spawn("monitor", monitor.Run)

	return &Line{
		cfg:       cfg,
		engine:    e,
		intake:    intake,
		buffer1:   buffer1,
		buffer2:   buffer2,
		completed: completed,
		monitor:   monitor,
	}, nil
}

// Run drives the line to the configured horizon and returns the per-minute
// snapshot series in minute order.
func (l *Line) Run() ([]Snapshot, error) {
	logrus.Infof("starting run: horizon %v min, seed %d", l.cfg.HorizonMinutes, l.cfg.Seed)
	if err := l.engine.Run(l.cfg.HorizonMinutes); err != nil {
		return nil, fmt.Errorf("simulation aborted: %w", err)
	}
	logrus.Infof("run complete at t=%.2f: %d units completed, WIP1=%d, WIP2=%d",
		l.engine.Now(), l.completed.Value(), l.buffer1.Len(), l.buffer2.Len())
	return l.monitor.Records(), nil
}

// Run executes one simulation end to end: validate, seed, wire, run to the
// horizon, and return the monitor's snapshot series. This is the single entry
// point external collaborators consume.
func Run(cfg Config) ([]Snapshot, error) {
	line, err := NewLine(cfg)
	if err != nil {
		return nil, err
	}
	return line.Run()
}
