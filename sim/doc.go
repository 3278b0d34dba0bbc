// Package sim provides a deterministic discrete-event simulation of a
// three-stage production line: stochastic order arrivals feed two
// single-server stations separated by bounded WIP buffers, and a pool of
// parallel terminal workers finishes units from the last buffer.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - engine.go: the virtual clock, the time-ordered event queue with its
//     FIFO tie-break, and the run loop
//   - process.go: the cooperative process abstraction (exactly one process
//     executes at any instant)
//   - store.go / resource.go: the blocking primitives processes suspend on
//
// The domain sits on top of the kernel:
//   - arrivals.go: exponential renewal process signalling Station A
//   - station.go: single-server stage with fixed-delay retry backpressure
//   - fleet.go: parallel terminal workers and the completed counter
//   - monitor.go: once-per-minute snapshots
//   - line.go: orchestration and the Run entry point
//
// Determinism: the same Config (seed included) always produces a bit-for-bit
// identical snapshot series. All randomness flows from the seed via rng.go,
// and all same-time interleavings are fixed by event insertion order.
package sim
