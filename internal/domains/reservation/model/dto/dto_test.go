package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto/internal/domains/reservation/model"
	"resto/internal/domains/reservation/model/dto"
	gModel "resto/shared/model"
	"resto/shared/validator"
)

func validRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		FirstName:       " Ada ",
		LastName:        "Lovelace",
		MobileNumber:    "800-555-1212",
		ReservationDate: "2030-01-15",
		ReservationTime: "19:30",
		People:          4,
	}
}

func TestCreateReservationRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateReservationRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*dto.CreateReservationRequest) {}},
		{name: "explicit booked status", mutate: func(r *dto.CreateReservationRequest) { r.Status = "booked" }},
		{
			name:    "missing first name",
			mutate:  func(r *dto.CreateReservationRequest) { r.FirstName = "" },
			wantErr: "first_name is required",
		},
		{
			name:    "blank first name",
			mutate:  func(r *dto.CreateReservationRequest) { r.FirstName = "   " },
			wantErr: "first_name is required",
		},
		{
			name:    "blank last name",
			mutate:  func(r *dto.CreateReservationRequest) { r.LastName = "\t" },
			wantErr: "last_name is required",
		},
		{
			name:    "blank mobile number",
			mutate:  func(r *dto.CreateReservationRequest) { r.MobileNumber = "  " },
			wantErr: "mobile_number is required",
		},
		{
			name:   "padded time",
			mutate: func(r *dto.CreateReservationRequest) { r.ReservationTime = " 19:30 " },
		},
		{
			name:    "bad date",
			mutate:  func(r *dto.CreateReservationRequest) { r.ReservationDate = "15/01/2030" },
			wantErr: "reservation_date must match the format 2006-01-02",
		},
		{
			name:    "bad time",
			mutate:  func(r *dto.CreateReservationRequest) { r.ReservationTime = "7pm" },
			wantErr: "reservation_time must match the format 15:04",
		},
		{
			name:    "zero people",
			mutate:  func(r *dto.CreateReservationRequest) { r.People = 0 },
			wantErr: "people is required",
		},
		{
			name:    "seated on create",
			mutate:  func(r *dto.CreateReservationRequest) { r.Status = "seated" },
			wantErr: "status must be booked",
		},
		{
			name: "first violation wins",
			mutate: func(r *dto.CreateReservationRequest) {
				r.LastName = ""
				r.People = 0
			},
			wantErr: "last_name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestCreateReservationRequest_ValidatedFieldsAreTrimmed(t *testing.T) {
	req := validRequest()
	req.MobileNumber = " 800-555-1212 "

	require.NoError(t, validator.ValidateStruct(&req))

	m, err := req.ToModel("host")

	require.NoError(t, err)
	assert.Equal(t, "Ada", m.FirstName)
	assert.Equal(t, "800-555-1212", m.MobileNumber)
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := validRequest()

	m, err := req.ToModel("host")

	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Ada", m.FirstName)
	assert.Equal(t, model.StatusBooked, m.Status)
	assert.Equal(t, "2030-01-15", m.ReservationDate.Format("2006-01-02"))
	assert.Equal(t, "host", m.CreatedBy)
}

func TestReservationResponse_FromModel(t *testing.T) {
	var res dto.ReservationResponse

	res.FromModel(model.Reservation{
		ID:              "r-1",
		ReservationDate: time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC),
		ReservationTime: "19:30:00",
		People:          2,
		Status:          model.StatusCancelled,
		Metadata:        gModel.Metadata{CreatedBy: "host"},
	})

	assert.Equal(t, "r-1", res.ReservationID)
	assert.Equal(t, "2030-01-15", res.ReservationDate)
	assert.Equal(t, "19:30", res.ReservationTime)
	assert.Equal(t, "cancelled", res.Status)
	assert.Equal(t, "host", res.CreatedBy)
}

func TestFromModels_Empty(t *testing.T) {
	res := dto.FromModels(nil)

	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestListReservationsQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		q := dto.ListReservationsQuery{}

		assert.Empty(t, q.Filter().Filters)
		assert.Equal(t, "reservation_date ASC, reservation_time", q.SortBy())
	})

	t.Run("date hides finished and cancelled", func(t *testing.T) {
		q := dto.ListReservationsQuery{Date: "2030-01-15"}
		filter := q.Filter()

		where, args := filter.GetWhereClause()

		assert.Contains(t, where, "reservations.reservation_date =")
		assert.Contains(t, where, "reservations.status NOT IN")
		assert.Equal(t, "2030-01-15", args[model.FieldReservationDate])
		assert.Equal(t, model.FieldReservationTime, q.SortBy())
	})

	t.Run("mobile number wins over date", func(t *testing.T) {
		q := dto.ListReservationsQuery{Date: "2030-01-15", MobileNumber: " 555 "}
		filter := q.Filter()

		where, _ := filter.GetWhereClause()

		assert.Contains(t, where, "mobile_number")
		assert.NotContains(t, where, "reservation_date")
		assert.Equal(t, "reservation_date ASC, reservation_time", q.SortBy())
	})
}
