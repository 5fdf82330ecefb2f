package sim

import "errors"

var (
	// ErrInvalidAction is returned by Step when the chosen row is out of range,
	// its lobby queue is empty, or the episode has already completed.
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidSeatAssignment signals a broken seating invariant: a passenger
	// offered a seat with a different id, or a seat that is already occupied.
	ErrInvalidSeatAssignment = errors.New("invalid seat assignment")

	// ErrInvalidConfiguration is returned by Reset for non-positive dimensions
	// or out-of-range tuning parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
