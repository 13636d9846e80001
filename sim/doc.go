// Package sim provides the deterministic discrete-time engine that simulates
// airplane boarding on a fixed grid: rows of six seats split by one aisle,
// with a boarding queue outside the cabin door.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - grid.go: cabin geometry and the core constants
//   - passenger.go: the per-passenger lifecycle (queued → walking →
//     stowing/seeking_bin → moving_to_seat → done) and the pure transition
//     function Propose
//   - simulator.go: the tick loop and the two-pass intent/yield
//     conflict-resolution protocol
//
// # Architecture
//
// The engine is compute-then-commit: within a sub-step every passenger's
// proposal is computed from the same immutable view of the world, contested
// destinations are arbitrated by queue index, and the winning updates are
// applied atomically. The Simulator exclusively owns all mutable passenger
// state and the shared overhead bins (bins.go); Propose only ever returns a
// Proposal for the scheduler to accept or discard.
//
// Boarding-order generation and late-arrival scheduling are input-data
// generators, external to the engine; they live in sim/boarding. Per-tick
// frame recording for external visualizers lives in sim/trace. The engine is
// driven one Tick at a time by the caller and exposes state only through
// Snapshot.
package sim
