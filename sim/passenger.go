// Defines the Passenger struct that models a single traveller in the boarding simulation.
// Tracks the passenger's home row, seat identity, baggage and movement status.

package sim

import (
	"fmt"
)

// PassengerStatus represents the movement state of a passenger.
// The integer values are the status codes emitted in observations.
type PassengerStatus int

const (
	StatusMoving   PassengerStatus = 0 // advancing along the aisle
	StatusWaiting  PassengerStatus = 1 // blocked by the passenger in front
	StatusSeated   PassengerStatus = 2 // bound to its seat
	StatusStanding PassengerStatus = 3 // stowing luggage at its row
)

func (s PassengerStatus) String() string {
	switch s {
	case StatusMoving:
		return "MOVING"
	case StatusWaiting:
		return "WAITING"
	case StatusSeated:
		return "SEATED"
	case StatusStanding:
		return "STANDING"
	default:
		return fmt.Sprintf("PassengerStatus(%d)", int(s))
	}
}

// Passenger models one traveller. Passengers are created once per Reset,
// one per seat, and SeatID uniquely identifies them.
type Passenger struct {
	HomeRow         int             // 1-based cabin row holding the passenger's seat
	SeatID          int             // unique seat identity, see SeatID()
	CarryingBaggage bool            // true until the luggage has been stowed
	Status          PassengerStatus // MOVING, WAITING, STANDING or SEATED
}

// NewPassenger returns a MOVING passenger for the given seat.
func NewPassenger(homeRow, seatID int, carryingBaggage bool) *Passenger {
	return &Passenger{
		HomeRow:         homeRow,
		SeatID:          seatID,
		CarryingBaggage: carryingBaggage,
		Status:          StatusMoving,
	}
}

// SeatID encodes a row number and a 1-based position within the row
// into the unique seat identity shared by Seat and Passenger.
func SeatID(rowNo, pos, seatsPerRow int) int {
	return rowNo*seatsPerRow + pos
}

func (p Passenger) String() string {
	return fmt.Sprintf("%02d", p.SeatID)
}
