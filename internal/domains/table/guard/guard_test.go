package guard_test

import (
	"net/http"
	reservationModel "resto/internal/domains/reservation/model"
	"resto/internal/domains/table/guard"
	"resto/internal/domains/table/model"
	"resto/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func occupiedBy(id string) *string {
	return &id
}

func TestSeat(t *testing.T) {
	tests := []struct {
		name        string
		table       model.Table
		reservation reservationModel.Reservation
		wantErr     string
	}{
		{
			name:        "free table with enough seats",
			table:       model.Table{Capacity: 4},
			reservation: reservationModel.Reservation{People: 4, Status: reservationModel.StatusBooked},
		},
		{
			name:        "capacity below party size",
			table:       model.Table{Capacity: 2},
			reservation: reservationModel.Reservation{People: 3, Status: reservationModel.StatusBooked},
			wantErr:     guard.MessageInsufficientCapacity,
		},
		{
			name:        "capacity is checked before occupancy",
			table:       model.Table{Capacity: 2, ReservationID: occupiedBy("r-1")},
			reservation: reservationModel.Reservation{People: 3, Status: reservationModel.StatusBooked},
			wantErr:     guard.MessageInsufficientCapacity,
		},
		{
			name:        "capacity is checked before seated status",
			table:       model.Table{Capacity: 2},
			reservation: reservationModel.Reservation{People: 3, Status: reservationModel.StatusSeated},
			wantErr:     guard.MessageInsufficientCapacity,
		},
		{
			name:        "occupied table",
			table:       model.Table{Capacity: 6, ReservationID: occupiedBy("r-1")},
			reservation: reservationModel.Reservation{People: 2, Status: reservationModel.StatusBooked},
			wantErr:     guard.MessageTableOccupied,
		},
		{
			name:        "occupancy is checked before seated status",
			table:       model.Table{Capacity: 6, ReservationID: occupiedBy("r-1")},
			reservation: reservationModel.Reservation{People: 2, Status: reservationModel.StatusSeated},
			wantErr:     guard.MessageTableOccupied,
		},
		{
			name:        "empty reservation id does not count as occupied",
			table:       model.Table{Capacity: 6, ReservationID: occupiedBy("")},
			reservation: reservationModel.Reservation{People: 2, Status: reservationModel.StatusBooked},
		},
		{
			name:        "reservation already seated",
			table:       model.Table{Capacity: 6},
			reservation: reservationModel.Reservation{People: 2, Status: reservationModel.StatusSeated},
			wantErr:     guard.MessageAlreadySeated,
		},
		{
			name:        "finished reservation",
			table:       model.Table{Capacity: 6},
			reservation: reservationModel.Reservation{People: 2, Status: reservationModel.StatusFinished},
			wantErr:     "reservation finished cannot be seated",
		},
		{
			name:        "cancelled reservation",
			table:       model.Table{Capacity: 6},
			reservation: reservationModel.Reservation{People: 2, Status: reservationModel.StatusCancelled},
			wantErr:     "reservation cancelled cannot be seated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.Seat(tt.table, tt.reservation)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestFinish(t *testing.T) {
	err := guard.Finish(model.Table{Capacity: 4})
	assert.EqualError(t, err, guard.MessageTableNotOccupied)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	assert.NoError(t, guard.Finish(model.Table{Capacity: 4, ReservationID: occupiedBy("r-1")}))
}
