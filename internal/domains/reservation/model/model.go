package model

import (
	"resto/shared/model"
	"time"
)

const (
	TableName   = "reservations"
	EntityName  = "reservation"
	DisplayName = "Reservation"

	CacheKeyGet    = "reservation:get"
	CacheKeyGetAll = "reservation:gets"

	FieldID              = "reservation_id"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldMobileNumber    = "mobile_number"
	FieldReservationDate = "reservation_date"
	FieldReservationTime = "reservation_time"
	FieldPeople          = "people"
	FieldStatus          = "status"
)

type Reservation struct {
	ID              string    `db:"reservation_id"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	MobileNumber    string    `db:"mobile_number"`
	ReservationDate time.Time `db:"reservation_date"`
	// ReservationTime is the TIME column as text, "HH:MM" or "HH:MM:SS".
	ReservationTime string `db:"reservation_time"`
	People          int    `db:"people"`
	Status          Status `db:"status"`
	model.Metadata
}
