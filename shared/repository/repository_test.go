package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "resto/infras/otel/mocks"
	"resto/shared/dto"
)

type seatRow struct {
	ID            string  `db:"table_id"`
	ReservationID *string `db:"reservation_id"`
}

var errStopped = errors.New("stopped before the database")

// capturingDB records the statement instead of running it.
type capturingDB struct {
	query string
	args  map[string]any
}

func (db *capturingDB) PrepareNamedContext(_ context.Context, query string) (*sqlx.NamedStmt, error) {
	db.query = query

	return nil, errStopped
}

func (db *capturingDB) NamedExecContext(_ context.Context, query string, arg interface{}) (sql.Result, error) {
	db.query = query
	db.args, _ = arg.(map[string]any)

	return nil, nil
}

func newSeatRepository() Repository[seatRow] {
	return NewRepository[seatRow]("table", "tables", "table_id", nil, otelMocks.NewOtel())
}

func byTableID(id string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "table_id", Value: id, Operator: dto.FilterOperatorEq, Table: "tables"},
		},
	}
}

func TestGet_LockedQuery(t *testing.T) {
	repo := newSeatRepository()
	db := &capturingDB{}

	_, err := repo.get(context.Background(), db, byTableID("t-1"), true)

	require.ErrorIs(t, err, errStopped)
	assert.Contains(t, db.query, "SELECT tables.table_id, tables.reservation_id FROM tables")
	assert.Contains(t, db.query, "WHERE (tables.table_id = :table_id)")
	assert.True(t, strings.HasSuffix(db.query, " FOR UPDATE OF tables"), db.query)
}

func TestGet_UnlockedQueryHasNoLock(t *testing.T) {
	repo := newSeatRepository()
	db := &capturingDB{}

	_, err := repo.get(context.Background(), db, byTableID("t-1"), false)

	require.ErrorIs(t, err, errStopped)
	assert.NotContains(t, db.query, "FOR UPDATE")
}

func TestGet_LockRequiresFilter(t *testing.T) {
	repo := newSeatRepository()
	db := &capturingDB{}

	_, err := repo.get(context.Background(), db, dto.FilterGroup{}, true)

	require.ErrorIs(t, err, errRequiredFilter)
	assert.Empty(t, db.query)
}

func TestUpdate_ClearsColumnWithNull(t *testing.T) {
	repo := newSeatRepository()
	db := &capturingDB{}

	fields := map[string]any{
		"reservation_id": nil,
		"modified_by":    "host",
	}

	err := repo.update(context.Background(), db, fields, byTableID("t-1"))

	require.NoError(t, err)
	assert.Contains(t, db.query, "UPDATE tables SET modified_by = :set_modified_by, reservation_id = :set_reservation_id")
	assert.Contains(t, db.query, "WHERE (tables.table_id = :table_id)")

	require.Contains(t, db.args, "set_reservation_id")
	assert.Nil(t, db.args["set_reservation_id"])
	assert.Equal(t, "host", db.args["set_modified_by"])
	assert.Equal(t, "t-1", db.args["table_id"])
}

func TestUpdate_RequiresFilter(t *testing.T) {
	repo := newSeatRepository()
	db := &capturingDB{}

	err := repo.update(context.Background(), db, map[string]any{"reservation_id": nil}, dto.FilterGroup{})

	require.ErrorIs(t, err, errRequiredFilter)
	assert.Empty(t, db.query)
}
