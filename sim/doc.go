// Package sim provides the deterministic airplane boarding simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - passenger.go: Passenger identity and status (MOVING → WAITING/STANDING → SEATED)
//   - aisle.go: the single-file boarding line and its one-tick advancement
//   - simulator.go: BoardingSimulation, the Reset/Step/ActionMask controller
//
// # Tick Model
//
// A decision client releases one passenger per Step from a lobby row into the
// tail of the aisle. Each tick first offers every passenger level with a cabin
// row a seat in that row (stowing luggage costs one extra tick), then advances
// the aisle front to back so chain moves cascade within a single tick. Once
// the lobby is empty, Step keeps ticking until the aisle drains.
//
// # Sub-packages
//   - sim/policy/: built-in decision clients and the episode runner
//   - sim/trace/: per-decision trace recording and summaries
package sim
