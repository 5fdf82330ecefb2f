package sim

import (
	"strings"
)

// Aisle is the single-file boarding line. Slot 0 is the front, next to row 1;
// slot i is level with row i+1. Slots at or beyond the cabin length hold
// passengers still walking towards the cabin. A nil slot is empty.
type Aisle struct {
	cabinLength int
	slots       []*Passenger
}

// NewAisle creates an aisle with cabinLength empty slots.
func NewAisle(cabinLength int) *Aisle {
	return &Aisle{
		cabinLength: cabinLength,
		slots:       make([]*Passenger, cabinLength),
	}
}

// Enqueue appends p at the tail of the line.
func (a *Aisle) Enqueue(p *Passenger) {
	p.Status = StatusMoving
	a.slots = append(a.slots, p)
}

// Len returns the current number of slots, empty or not.
func (a *Aisle) Len() int {
	return len(a.slots)
}

// CabinLength returns the number of slots level with a cabin row.
func (a *Aisle) CabinLength() int {
	return a.cabinLength
}

// At returns the passenger in slot i, or nil.
func (a *Aisle) At(i int) *Passenger {
	if i < 0 || i >= len(a.slots) {
		return nil
	}
	return a.slots[i]
}

// Clear empties slot i.
func (a *Aisle) Clear(i int) {
	if i >= 0 && i < len(a.slots) {
		a.slots[i] = nil
	}
}

// AdvanceOneTick moves the line forward by one tick.
//
// Slots are visited front to back so a move into slot i-1 frees slot i for
// the passenger behind within the same tick. A passenger only ever moves into
// an already visited slot, so nobody moves twice. The front slot and STANDING
// passengers stay put.
func (a *Aisle) AdvanceOneTick() {
	for i, p := range a.slots {
		if p == nil || i == 0 || p.Status == StatusStanding {
			continue
		}
		if (p.Status == StatusMoving || p.Status == StatusWaiting) && a.slots[i-1] == nil {
			p.Status = StatusMoving
			a.slots[i-1] = p
			a.slots[i] = nil
		} else {
			p.Status = StatusWaiting
		}
	}
	a.compact()
}

// compact drops trailing empty slots beyond the cabin length.
func (a *Aisle) compact() {
	n := len(a.slots)
	for n > a.cabinLength && a.slots[n-1] == nil {
		n--
	}
	clear(a.slots[n:])
	a.slots = a.slots[:n]
}

// IsActive reports whether any passenger is still in the line.
func (a *Aisle) IsActive() bool {
	if len(a.slots) == 0 {
		return true
	}
	return a.OccupiedCount() > 0
}

// Count returns the number of passengers in the line with the given status.
func (a *Aisle) Count(status PassengerStatus) int {
	n := 0
	for _, p := range a.slots {
		if p != nil && p.Status == status {
			n++
		}
	}
	return n
}

// OccupiedCount returns the number of non-empty slots.
func (a *Aisle) OccupiedCount() int {
	n := 0
	for _, p := range a.slots {
		if p != nil {
			n++
		}
	}
	return n
}

func (a *Aisle) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range a.slots {
		if i > 0 {
			sb.WriteString(" ")
		}
		if i == a.cabinLength {
			sb.WriteString("| ")
		}
		if p == nil {
			sb.WriteString("__")
		} else {
			sb.WriteString(p.String())
		}
	}
	sb.WriteString("]")
	return sb.String()
}
