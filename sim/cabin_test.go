package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeat_AttemptSeat_WithBaggage_StowsFirst(t *testing.T) {
	// GIVEN an empty seat and its passenger carrying luggage
	seat := &Seat{RowNo: 1, SeatID: 5}
	p := NewPassenger(1, 5, true)

	// WHEN the passenger first attempts the seat
	seated, err := seat.AttemptSeat(p)

	// THEN the passenger stands to stow and is not yet seated
	require.NoError(t, err)
	assert.False(t, seated)
	assert.Equal(t, StatusStanding, p.Status)
	assert.False(t, p.CarryingBaggage)
	assert.Nil(t, seat.Occupant)

	// WHEN the passenger attempts again
	seated, err = seat.AttemptSeat(p)

	// THEN the passenger is bound to the seat
	require.NoError(t, err)
	assert.True(t, seated)
	assert.Equal(t, StatusSeated, p.Status)
	assert.Same(t, p, seat.Occupant)
}

func TestSeat_AttemptSeat_Occupied_ReturnsInvalidSeatAssignment(t *testing.T) {
	seat := &Seat{RowNo: 1, SeatID: 5}
	p := NewPassenger(1, 5, false)
	_, err := seat.AttemptSeat(p)
	require.NoError(t, err)

	// WHEN the seat is offered again
	_, err = seat.AttemptSeat(p)

	// THEN it is a usage error and the occupant is unchanged
	assert.ErrorIs(t, err, ErrInvalidSeatAssignment)
	assert.Same(t, p, seat.Occupant)
}

func TestSeat_AttemptSeat_IDMismatch_ReturnsInvalidSeatAssignment(t *testing.T) {
	seat := &Seat{RowNo: 1, SeatID: 5}
	p := NewPassenger(1, 6, false)

	_, err := seat.AttemptSeat(p)

	assert.ErrorIs(t, err, ErrInvalidSeatAssignment)
	assert.Equal(t, StatusMoving, p.Status)
	assert.Nil(t, seat.Occupant)
}

func TestCabinRow_TrySit_ForeignPassenger_NoSideEffects(t *testing.T) {
	// GIVEN row 2 of a 3-seat cabin and a row-1 passenger
	row := NewCabinRow(2, 3)
	p := NewPassenger(1, SeatID(1, 2, 3), true)

	// WHEN the passenger is offered a seat in row 2
	seated, err := row.TrySit(p)

	// THEN nothing happens
	require.NoError(t, err)
	assert.False(t, seated)
	assert.True(t, p.CarryingBaggage)
	assert.Equal(t, StatusMoving, p.Status)
	assert.Equal(t, 0, row.SeatedCount())
}

func TestCabinRow_TrySit_OwnSeat_Delegates(t *testing.T) {
	row := NewCabinRow(2, 3)
	p := NewPassenger(2, SeatID(2, 3, 3), false)

	seated, err := row.TrySit(p)

	require.NoError(t, err)
	assert.True(t, seated)
	assert.Equal(t, 1, row.SeatedCount())
	assert.Same(t, p, row.Seats[2].Occupant)
}

func TestNewCabin_SeatIDsMatchRowNumbering(t *testing.T) {
	c := NewCabin(3, 2)
	require.Len(t, c.Rows, 3)
	for i, row := range c.Rows {
		assert.Equal(t, i+1, row.RowNo)
		require.Len(t, row.Seats, 2)
		for pos, seat := range row.Seats {
			assert.Equal(t, SeatID(i+1, pos+1, 2), seat.SeatID)
		}
	}
	assert.Nil(t, c.Row(0))
	assert.Nil(t, c.Row(4))
	assert.Same(t, c.Rows[2], c.Row(3))
}
