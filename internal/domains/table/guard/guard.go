// Package guard holds the business rules checked right before a table is
// seated or cleared. The checks are pure and read only the rows passed in.
package guard

import (
	"fmt"
	reservationModel "resto/internal/domains/reservation/model"
	"resto/internal/domains/table/model"
	"resto/shared/failure"
)

const (
	MessageInsufficientCapacity = "table capacity must be at least the number of people in the reservation"
	MessageTableOccupied        = "table must not be occupied"
	MessageAlreadySeated        = "reservation is already seated"
	MessageTableNotOccupied     = "table is not occupied"
)

// Seat returns the first rule the pair breaks, in this order: capacity,
// occupancy, reservation already seated, reservation status.
func Seat(table model.Table, reservation reservationModel.Reservation) error {
	if table.Capacity < reservation.People {
		return failure.BadRequestFromString(MessageInsufficientCapacity) //nolint:wrapcheck
	}

	if table.Occupied() {
		return failure.BadRequestFromString(MessageTableOccupied) //nolint:wrapcheck
	}

	if reservation.Status == reservationModel.StatusSeated {
		return failure.BadRequestFromString(MessageAlreadySeated) //nolint:wrapcheck
	}

	if !reservation.Status.CanTransitionTo(reservationModel.StatusSeated) {
		return failure.BadRequestFromString(fmt.Sprintf("reservation %s cannot be seated", reservation.Status)) //nolint:wrapcheck
	}

	return nil
}

func Finish(table model.Table) error {
	if !table.Occupied() {
		return failure.BadRequestFromString(MessageTableNotOccupied) //nolint:wrapcheck
	}

	return nil
}
