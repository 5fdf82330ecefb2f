package sim

import (
	"fmt"
	"strings"
)

// Lobby holds one PassengerQueue per cabin row. Rows are 1-based.
type Lobby struct {
	rows []*PassengerQueue
}

// NewLobby creates an empty lobby with numRows row queues.
func NewLobby(numRows int) *Lobby {
	l := &Lobby{rows: make([]*PassengerQueue, numRows)}
	for i := range l.rows {
		l.rows[i] = &PassengerQueue{}
	}
	return l
}

// NumRows returns the number of row queues.
func (l *Lobby) NumRows() int {
	return len(l.rows)
}

// Add appends p to the queue of its home row.
func (l *Lobby) Add(p *Passenger) {
	l.rows[p.HomeRow-1].Enqueue(p)
}

// RemoveFront pops the head of row rowNo's queue.
// Returns nil if the row is empty or out of range.
func (l *Lobby) RemoveFront(rowNo int) *Passenger {
	if rowNo < 1 || rowNo > len(l.rows) {
		return nil
	}
	return l.rows[rowNo-1].Dequeue()
}

// Peek returns the head of row rowNo's queue without removing it.
// Returns nil if the row is empty or out of range.
func (l *Lobby) Peek(rowNo int) *Passenger {
	if rowNo < 1 || rowNo > len(l.rows) {
		return nil
	}
	return l.rows[rowNo-1].Peek()
}

// RowLen returns the number of passengers still queued for row rowNo.
func (l *Lobby) RowLen(rowNo int) int {
	if rowNo < 1 || rowNo > len(l.rows) {
		return 0
	}
	return l.rows[rowNo-1].Len()
}

// TotalRemaining returns the number of passengers across all row queues.
func (l *Lobby) TotalRemaining() int {
	n := 0
	for _, q := range l.rows {
		n += q.Len()
	}
	return n
}

func (l *Lobby) String() string {
	var sb strings.Builder
	for i, q := range l.rows {
		fmt.Fprintf(&sb, "lobby %02d %s\n", i+1, q)
	}
	return sb.String()
}
