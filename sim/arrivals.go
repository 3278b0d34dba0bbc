// sim/arrivals.go
package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// ArrivalGenerator produces the order renewal process: exponentially
// distributed inter-arrival gaps at the configured rate, one intake signal
// per order. It runs for the lifetime of the simulation.
type ArrivalGenerator struct {
	rate   float64
	rng    *rand.Rand
	intake *Store
}

// NewArrivalGenerator creates a generator signalling new orders into intake.
func NewArrivalGenerator(rate float64, rng *rand.Rand, intake *Store) *ArrivalGenerator {
	return &ArrivalGenerator{rate: rate, rng: rng, intake: intake}
}

// Run draws a gap, sleeps for it, and deposits an intake signal, forever.
// The intake store is effectively unbounded, so the deposit never suspends.
func (g *ArrivalGenerator) Run(p *Process) {
	for {
		gap := g.rng.ExpFloat64() / g.rate
		p.Wait(gap)
		g.intake.Put(p)
		logrus.Debugf("[%10.4f] order arrived, %d awaiting intake", p.Now(), g.intake.Len())
	}
}
