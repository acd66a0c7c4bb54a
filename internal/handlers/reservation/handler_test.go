package reservation_test

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
	"resto/internal/domains/reservation/mocks"
	"resto/internal/domains/reservation/model"
	"resto/internal/domains/reservation/model/dto"
	"resto/internal/handlers/reservation"
	"resto/shared/failure"
)

type body struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setup(t *testing.T) (*mocks.MockReservationService, http.Handler) {
	t.Helper()

	svc := mocks.NewMockReservationService(gomock.NewController(t))
	handler := reservation.New(svc, otelMocks.NewOtel())

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

func TestCreateReservation(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error) {
				assert.Equal(t, "Ada", req.FirstName)
				assert.Equal(t, 2, req.People)

				return dto.ReservationResponse{ReservationID: "r-1", Status: "booked"}, nil
			})

		rec, b := do(t, h, http.MethodPost, "/reservations", `{"data":{"first_name":"Ada","last_name":"Lovelace","mobile_number":"555","reservation_date":"2030-01-15","reservation_time":"19:30","people":2}}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `"r-1"`, string(mustField(t, b.Data, "reservation_id")))
	})

	t.Run("validation error never reaches the service", func(t *testing.T) {
		_, h := setup(t)

		rec, b := do(t, h, http.MethodPost, "/reservations", `{"data":{"first_name":"Ada","last_name":"Lovelace","mobile_number":"555","reservation_date":"2030-01-15","reservation_time":"19:30","people":0}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "people is required", b.Error)
	})

	t.Run("blank names are rejected", func(t *testing.T) {
		_, h := setup(t)

		rec, b := do(t, h, http.MethodPost, "/reservations", `{"data":{"first_name":"   ","last_name":"Lovelace","mobile_number":"555","reservation_date":"2030-01-15","reservation_time":"19:30","people":2}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "first_name is required", b.Error)
	})

	t.Run("missing data member", func(t *testing.T) {
		_, h := setup(t)

		rec, b := do(t, h, http.MethodPost, "/reservations", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "first_name is required", b.Error)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, h := setup(t)

		rec, b := do(t, h, http.MethodPost, "/reservations", `{"data":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, b.Error, "failed to decode request body")
	})
}

func TestGetReservations(t *testing.T) {
	t.Run("passes the query through", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), dto.ListReservationsQuery{Date: "2030-01-15"}).
			Return([]dto.ReservationResponse{}, nil)

		rec, b := do(t, h, http.MethodGet, "/reservations?date=2030-01-15", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(b.Data))
	})

	t.Run("invalid date", func(t *testing.T) {
		_, h := setup(t)

		rec, b := do(t, h, http.MethodGet, "/reservations?date=tomorrow", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "date must match the format 2006-01-02", b.Error)
	})
}

func TestGetReservation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().Get(gomock.Any(), "r-404").Return(dto.ReservationResponse{}, failure.EntityNotFound(model.DisplayName, "r-404"))

		rec, b := do(t, h, http.MethodGet, "/reservations/r-404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Reservation r-404 cannot be found.", b.Error)
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().Get(gomock.Any(), "r-1").Return(dto.ReservationResponse{}, assert.AnError)

		rec, b := do(t, h, http.MethodGet, "/reservations/r-1", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Something went wrong!", b.Error)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		svc, h := setup(t)

		svc.EXPECT().
			UpdateStatus(gomock.Any(), "r-1", dto.UpdateReservationStatusRequest{Status: model.StatusCancelled}).
			Return(dto.ReservationResponse{ReservationID: "r-1", Status: "cancelled"}, nil)

		rec, b := do(t, h, http.MethodPut, "/reservations/r-1/status", `{"data":{"status":"cancelled"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `"cancelled"`, string(mustField(t, b.Data, "status")))
	})

	t.Run("unknown status", func(t *testing.T) {
		_, h := setup(t)

		rec, b := do(t, h, http.MethodPut, "/reservations/r-1/status", `{"data":{"status":"unknown"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status must be one of booked seated finished cancelled", b.Error)
	})
}

func mustField(t *testing.T, raw json.RawMessage, key string) json.RawMessage {
	t.Helper()

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	return fields[key]
}
