package model

import "resto/shared/model"

const (
	TableName   = "tables"
	EntityName  = "table"
	DisplayName = "Table"

	FieldID            = "table_id"
	FieldTableName     = "table_name"
	FieldCapacity      = "capacity"
	FieldReservationID = "reservation_id"

	CacheKeyGetAll = "table:gets"
)

type Table struct {
	ID            string  `db:"table_id"`
	Name          string  `db:"table_name"`
	Capacity      int     `db:"capacity"`
	ReservationID *string `db:"reservation_id"`
	model.Metadata
}

// Occupied reports whether a reservation is seated at the table.
func (t Table) Occupied() bool {
	return t.ReservationID != nil && *t.ReservationID != ""
}
