// sim/store.go
package sim

import "fmt"

// Store is a capacity-limited FIFO buffer of indistinguishable units. Put
// blocks while the store is full, Get blocks while it is empty, and blocked
// callers are served strictly in arrival order.
//
// Transfers for waiting parties are applied at trigger time: the operation
// that unblocks a waiter also applies the waiter's deposit or withdrawal, and
// the waiter is merely scheduled to continue. This keeps two invariants that
// make the fast paths fair: after any operation, a non-empty store has no
// waiting getters and a non-full store has no waiting putters, so a
// late-arriving caller can never overtake a blocked one.
type Store struct {
	engine   *Engine
	name     string
	capacity int
	length   int

	// lifetime totals, for conservation accounting
	puts uint64
	gets uint64

	putters []*Process
	getters []*Process
}

// NewStore creates an empty store. Capacity must be non-negative; a zero
// capacity store blocks every Put and Get forever, which models a stage that
// can never accept work.
func NewStore(e *Engine, name string, capacity int) *Store {
	if capacity < 0 {
		panic(fmt.Sprintf("sim: store %s created with negative capacity %d", name, capacity))
	}
	return &Store{engine: e, name: name, capacity: capacity}
}

// Len returns the number of units currently held. 0 <= Len() <= Cap() always.
func (s *Store) Len() int {
	return s.length
}

// Cap returns the store's capacity.
func (s *Store) Cap() int {
	return s.capacity
}

// Full reports whether the store is at capacity.
func (s *Store) Full() bool {
	return s.length >= s.capacity
}

// Puts returns the lifetime number of units deposited.
func (s *Store) Puts() uint64 {
	return s.puts
}

// Gets returns the lifetime number of units withdrawn.
func (s *Store) Gets() uint64 {
	return s.gets
}

// Put deposits one unit, suspending p while the store is full.
func (s *Store) Put(p *Process) {
	if s.Full() {
		s.putters = append(s.putters, p)
		p.park()
		// A Get applied this deposit before waking p.
		return
	}
	s.deposit()
	s.wakeGetters()
}

// Get withdraws the earliest unit, suspending p while the store is empty.
func (s *Store) Get(p *Process) {
	if s.length == 0 {
		s.getters = append(s.getters, p)
		p.park()
		// A Put applied this withdrawal before waking p.
		return
	}
	s.withdraw()
	s.wakePutters()
}

func (s *Store) deposit() {
	s.length++
	s.puts++
}

func (s *Store) withdraw() {
	s.length--
	s.gets++
}

// wakeGetters hands freshly deposited units to waiting getters, earliest
// first, applying each withdrawal now so the woken process only continues.
func (s *Store) wakeGetters() {
	for s.length > 0 && len(s.getters) > 0 {
		g := s.getters[0]
		s.getters = s.getters[1:]
		s.withdraw()
		s.engine.Schedule(0, g)
	}
}

// wakePutters fills freed slots with waiting putters' units, earliest first.
func (s *Store) wakePutters() {
	for s.length < s.capacity && len(s.putters) > 0 {
		w := s.putters[0]
		s.putters = s.putters[1:]
		s.deposit()
		s.engine.Schedule(0, w)
	}
}
