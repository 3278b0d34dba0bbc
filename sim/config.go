// sim/config.go
package sim

import "fmt"

// Config holds the run parameters for one simulation. All fields are fixed
// for the duration of a run; the Line owns the Config and shares the derived
// values with each process at construction.
type Config struct {
	ArrivalRate     float64 `yaml:"arrival_rate"`          // order arrivals per minute
	Buffer1Capacity int     `yaml:"buffer1_capacity"`      // WIP slots between Station A and B
	Buffer2Capacity int     `yaml:"buffer2_capacity"`      // WIP slots between Station B and the terminal fleet
	StationARate    float64 `yaml:"station_a_rate"`        // Station A units per minute (k1)
	StationBRate    float64 `yaml:"station_b_rate"`        // Station B units per minute (k2)
	TerminalRate    float64 `yaml:"terminal_rate"`         // per-worker units per minute (k3)
	TerminalWorkers int     `yaml:"terminal_workers"`      // parallel terminal servers
	StationARetry   float64 `yaml:"station_a_retry_delay"` // minutes between full-downstream polls at Station A
	StationBRetry   float64 `yaml:"station_b_retry_delay"` // minutes between full-downstream polls at Station B
	HorizonMinutes  float64 `yaml:"horizon_minutes"`       // simulation cutoff
	Seed            int64   `yaml:"seed"`                  // master seed for the run's randomness
}

// DefaultConfig mirrors the reference production line: 30 orders/min, two
// 500-slot WIP areas, stations at 30 and 20 units/min with 10 and 5 minute
// retry delays, three terminal workers at 5 units/min each, a two hour
// horizon, and seed 42.
func DefaultConfig() Config {
	return Config{
		ArrivalRate:     30,
		Buffer1Capacity: 500,
		Buffer2Capacity: 500,
		StationARate:    30,
		StationBRate:    20,
		TerminalRate:    5,
		TerminalWorkers: 3,
		StationARetry:   10,
		StationBRetry:   5,
		HorizonMinutes:  120,
		Seed:            42,
	}
}

// Validate rejects configurations that cannot run: non-positive rates (a
// station's service time is the reciprocal of its rate), negative capacities,
// an empty terminal fleet, non-positive retry delays (a zero delay would spin
// the scheduler at a fixed instant), and a non-positive horizon. Validation
// is pure: the same configuration always yields the same result.
func (c Config) Validate() error {
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("arrival rate must be > 0, got %v", c.ArrivalRate)
	}
	if c.Buffer1Capacity < 0 {
		return fmt.Errorf("buffer 1 capacity must be >= 0, got %d", c.Buffer1Capacity)
	}
	if c.Buffer2Capacity < 0 {
		return fmt.Errorf("buffer 2 capacity must be >= 0, got %d", c.Buffer2Capacity)
	}
	if c.StationARate <= 0 {
		return fmt.Errorf("station A rate must be > 0, got %v", c.StationARate)
	}
	if c.StationBRate <= 0 {
		return fmt.Errorf("station B rate must be > 0, got %v", c.StationBRate)
	}
	if c.TerminalRate <= 0 {
		return fmt.Errorf("terminal rate must be > 0, got %v", c.TerminalRate)
	}
	if c.TerminalWorkers < 1 {
		return fmt.Errorf("terminal worker count must be >= 1, got %d", c.TerminalWorkers)
	}
	if c.StationARetry <= 0 {
		return fmt.Errorf("station A retry delay must be > 0, got %v", c.StationARetry)
	}
	if c.StationBRetry <= 0 {
		return fmt.Errorf("station B retry delay must be > 0, got %v", c.StationBRetry)
	}
	if c.HorizonMinutes <= 0 {
		return fmt.Errorf("horizon must be > 0 minutes, got %v", c.HorizonMinutes)
	}
	return nil
}
