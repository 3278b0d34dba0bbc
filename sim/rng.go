// sim/rng.go
package sim

import (
	"hash/fnv"
	"math/rand"
)

// SubsystemArrivals is the RNG stream feeding the arrival generator. It
// consumes the master seed directly, so a run's seed maps 1:1 onto its
// arrival sequence.
const SubsystemArrivals = "arrivals"

// PartitionedRNG hands out deterministically-seeded math/rand streams per
// subsystem, so adding a consumer of randomness later cannot perturb the
// draws of existing ones.
//
// Derivation: the arrivals subsystem uses the master seed directly; any other
// subsystem uses masterSeed XOR fnv1a64(subsystemName).
//
// Not safe for concurrent use. The engine runs one process at a time, which
// is the only discipline needed here.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a run seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the deterministically-seeded RNG for the named
// subsystem. The same name always returns the same *rand.Rand instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derived := p.seed
	if name != SubsystemArrivals {
		derived ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derived))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed this PartitionedRNG was created with.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
