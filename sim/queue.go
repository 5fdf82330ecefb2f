// Implements the PassengerQueue, which holds the passengers of one lobby row.
// Passengers are enqueued in seat order at reset and released front first.

package sim

import (
	"fmt"
	"strings"
)

// PassengerQueue represents a FIFO queue of passengers waiting in the lobby.
type PassengerQueue struct {
	queue []*Passenger // FIFO queue of passengers
}

// Enqueue adds a passenger to the back of the queue.
func (pq *PassengerQueue) Enqueue(p *Passenger) {
	pq.queue = append(pq.queue, p)
}

func (pq *PassengerQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range pq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(pq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of passengers in the queue.
func (pq *PassengerQueue) Len() int {
	return len(pq.queue)
}

// Peek returns the passenger at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (pq *PassengerQueue) Peek() *Passenger {
	if len(pq.queue) == 0 {
		return nil
	}
	return pq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (pq *PassengerQueue) Items() []*Passenger {
	return pq.queue
}

// Dequeue removes and returns the passenger at the front of the queue,
// or nil if the queue is empty.
func (pq *PassengerQueue) Dequeue() *Passenger {
	if len(pq.queue) == 0 {
		return nil
	}
	p := pq.queue[0]
	pq.queue = pq.queue[1:]
	return p
}
