package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLobby_RemoveFront_PopsRowHead(t *testing.T) {
	// GIVEN a two-row lobby with two passengers in row 2
	l := NewLobby(2)
	a := NewPassenger(2, 5, true)
	b := NewPassenger(2, 6, true)
	l.Add(a)
	l.Add(b)

	// WHEN the head of row 2 is removed
	got := l.RemoveFront(2)

	// THEN it is the first passenger added and one remains
	assert.Same(t, a, got)
	assert.Equal(t, 1, l.RowLen(2))
	assert.Equal(t, 1, l.TotalRemaining())
	assert.Same(t, b, l.Peek(2))
}

func TestLobby_RemoveFront_EmptyOrOutOfRange_ReturnsNil(t *testing.T) {
	l := NewLobby(2)
	l.Add(NewPassenger(1, 3, true))

	assert.Nil(t, l.RemoveFront(2), "empty row")
	assert.Nil(t, l.RemoveFront(0), "row 0")
	assert.Nil(t, l.RemoveFront(3), "row past the end")
	assert.Equal(t, 0, l.RowLen(7))
	assert.Nil(t, l.Peek(-1))
	assert.Equal(t, 1, l.TotalRemaining())
}
