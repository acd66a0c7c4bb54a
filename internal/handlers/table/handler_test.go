package table_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "resto/infras/otel/mocks"
	"resto/internal/domains/table/guard"
	"resto/internal/domains/table/mocks"
	"resto/internal/domains/table/model/dto"
	"resto/internal/handlers/table"
	gDto "resto/shared/dto"
	"resto/shared/failure"
)

type body struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setup(t *testing.T) (*mocks.MockTableService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockTableService(gomock.NewController(t))
	handler := table.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func do(t *testing.T, h http.Handler, method, target, payload string) (*httptest.ResponseRecorder, body) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))

	return rec, b
}

func TestCreateTable(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), dto.CreateTableRequest{TableName: "Bar #1", Capacity: 1}).
			Return(dto.TableResponse{TableID: "t-1", TableName: "Bar #1", Capacity: 1}, nil)

		rec, b := do(t, h, http.MethodPost, "/tables", `{"data":{"table_name":"Bar #1","capacity":1}}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(b.Data), `"reservation_id":null`)
	})

	for _, tt := range []struct {
		name    string
		payload string
		wantErr string
	}{
		{name: "blank name", payload: `{"data":{"table_name":"   ","capacity":2}}`, wantErr: "table_name is required"},
		{name: "one character after trim", payload: `{"data":{"table_name":" a","capacity":2}}`, wantErr: "table_name must be at least 2 characters long"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, h := setup(t)

			rec, b := do(t, h, http.MethodPost, "/tables", tt.payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, b.Error)
		})
	}

	t.Run("padded name reaches the service trimmed", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), dto.CreateTableRequest{TableName: "Patio", Capacity: 2}).
			Return(dto.TableResponse{TableID: "t-2", TableName: "Patio", Capacity: 2}, nil)

		rec, _ := do(t, h, http.MethodPost, "/tables", `{"data":{"table_name":"  Patio ","capacity":2}}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("name too short", func(t *testing.T) {
		_, h := setup(t)

		rec, b := do(t, h, http.MethodPost, "/tables", `{"data":{"table_name":"B","capacity":1}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "table_name must be at least 2 characters long", b.Error)
	})

	t.Run("zero capacity", func(t *testing.T) {
		_, h := setup(t)

		rec, b := do(t, h, http.MethodPost, "/tables", `{"data":{"table_name":"Bar #1","capacity":0}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "capacity is required", b.Error)
	})
}

func TestGetTables(t *testing.T) {
	svc, h := setup(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams) ([]dto.TableResponse, error) {
			assert.Equal(t, "capacity", params.SortBy)

			return []dto.TableResponse{{TableID: "t-1"}}, nil
		})

	rec, b := do(t, h, http.MethodGet, "/tables?sort_by=capacity", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(b.Data), `"table_id":"t-1"`)
}

func TestSeatTable(t *testing.T) {
	t.Run("seated", func(t *testing.T) {
		svc, h := setup(t)

		reservationID := "r-1"
		svc.EXPECT().
			Seat(gomock.Any(), "t-1", dto.SeatTableRequest{ReservationID: "r-1"}).
			Return(dto.TableResponse{TableID: "t-1", ReservationID: &reservationID}, nil)

		rec, b := do(t, h, http.MethodPut, "/tables/t-1/seat", `{"data":{"reservation_id":"r-1"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(b.Data), `"reservation_id":"r-1"`)
	})

	t.Run("empty body is left to the service", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().
			Seat(gomock.Any(), "t-404", dto.SeatTableRequest{}).
			Return(dto.TableResponse{}, failure.EntityNotFound("Table", "t-404"))

		rec, b := do(t, h, http.MethodPut, "/tables/t-404/seat", ``)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Table t-404 cannot be found.", b.Error)
	})

	t.Run("guard rejection", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().
			Seat(gomock.Any(), "t-1", gomock.Any()).
			Return(dto.TableResponse{}, failure.BadRequestFromString(guard.MessageTableOccupied))

		rec, b := do(t, h, http.MethodPut, "/tables/t-1/seat", `{"data":{"reservation_id":"r-2"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, guard.MessageTableOccupied, b.Error)
	})
}

func TestFinishTable(t *testing.T) {
	t.Run("finished", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().Finish(gomock.Any(), "t-1").Return(nil)

		rec, b := do(t, h, http.MethodDelete, "/tables/t-1/seat", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, string(b.Data))
	})

	t.Run("not occupied", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().Finish(gomock.Any(), "t-1").Return(failure.BadRequestFromString(guard.MessageTableNotOccupied))

		rec, b := do(t, h, http.MethodDelete, "/tables/t-1/seat", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, guard.MessageTableNotOccupied, b.Error)
	})
}
