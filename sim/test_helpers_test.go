package sim

// Helpers shared by the station and fleet tests.

// keepAlive spawns a once-per-minute no-op process so isolated fixtures whose
// processes all suspend indefinitely still run to their horizon instead of
// draining the event queue.
func keepAlive(e *Engine) {
	e.Spawn("keepalive", func(p *Process) {
		for {
			p.Wait(1)
		}
	})
}

// feed deposits n units into s at t=0 and returns.
func feed(e *Engine, s *Store, n int) {
	e.Spawn("feeder", func(p *Process) {
		for i := 0; i < n; i++ {
			s.Put(p)
		}
	})
}
