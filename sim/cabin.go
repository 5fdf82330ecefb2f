package sim

import (
	"fmt"
	"strings"
)

// Seat is one fixed slot in the cabin. Once Occupant is set it never changes
// for the rest of the episode.
type Seat struct {
	RowNo    int
	SeatID   int
	Occupant *Passenger
}

// AttemptSeat runs the seating transition for p.
// A passenger still carrying baggage spends this attempt stowing it: it becomes
// STANDING, drops the baggage flag and stays in the aisle for another tick.
// Otherwise the passenger is bound to the seat and becomes SEATED.
func (s *Seat) AttemptSeat(p *Passenger) (bool, error) {
	if p == nil {
		return false, fmt.Errorf("seat %d: nil passenger: %w", s.SeatID, ErrInvalidSeatAssignment)
	}
	if p.SeatID != s.SeatID {
		return false, fmt.Errorf("passenger %d offered seat %d: %w", p.SeatID, s.SeatID, ErrInvalidSeatAssignment)
	}
	if s.Occupant != nil {
		return false, fmt.Errorf("seat %d already occupied by passenger %d: %w", s.SeatID, s.Occupant.SeatID, ErrInvalidSeatAssignment)
	}
	if p.CarryingBaggage {
		p.Status = StatusStanding
		p.CarryingBaggage = false
		return false, nil
	}
	s.Occupant = p
	p.Status = StatusSeated
	return true, nil
}

// CabinRow holds the seats of a single cabin row in seat order.
type CabinRow struct {
	RowNo int
	Seats []*Seat
}

// NewCabinRow creates the seats of row rowNo.
func NewCabinRow(rowNo, seatsPerRow int) *CabinRow {
	row := &CabinRow{RowNo: rowNo, Seats: make([]*Seat, 0, seatsPerRow)}
	for pos := 1; pos <= seatsPerRow; pos++ {
		row.Seats = append(row.Seats, &Seat{RowNo: rowNo, SeatID: SeatID(rowNo, pos, seatsPerRow)})
	}
	return row
}

// TrySit offers p a seat in this row. A passenger with no seat here is
// rejected without side effects.
func (r *CabinRow) TrySit(p *Passenger) (bool, error) {
	for _, seat := range r.Seats {
		if seat.SeatID == p.SeatID {
			return seat.AttemptSeat(p)
		}
	}
	return false, nil
}

// SeatedCount returns the number of occupied seats in the row.
func (r *CabinRow) SeatedCount() int {
	n := 0
	for _, seat := range r.Seats {
		if seat.Occupant != nil {
			n++
		}
	}
	return n
}

// Cabin is the ordered list of rows; Rows[0] is row 1.
type Cabin struct {
	Rows []*CabinRow
}

// NewCabin builds an empty cabin of numRows rows with seatsPerRow seats each.
func NewCabin(numRows, seatsPerRow int) *Cabin {
	c := &Cabin{Rows: make([]*CabinRow, 0, numRows)}
	for rowNo := 1; rowNo <= numRows; rowNo++ {
		c.Rows = append(c.Rows, NewCabinRow(rowNo, seatsPerRow))
	}
	return c
}

// Row returns the 1-based row rowNo, or nil when out of range.
func (c *Cabin) Row(rowNo int) *CabinRow {
	if rowNo < 1 || rowNo > len(c.Rows) {
		return nil
	}
	return c.Rows[rowNo-1]
}

// SeatedCount returns the number of occupied seats in the whole cabin.
func (c *Cabin) SeatedCount() int {
	n := 0
	for _, row := range c.Rows {
		n += row.SeatedCount()
	}
	return n
}

func (c *Cabin) String() string {
	var sb strings.Builder
	for _, row := range c.Rows {
		fmt.Fprintf(&sb, "row %02d |", row.RowNo)
		for _, seat := range row.Seats {
			if seat.Occupant != nil {
				fmt.Fprintf(&sb, " %02d", seat.SeatID)
			} else {
				sb.WriteString(" --")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
