package dto

import (
	"fmt"
	"resto/internal/domains/reservation/model"
	"resto/shared/constant"
	gDto "resto/shared/dto"
	gModel "resto/shared/model"
	"resto/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	FirstName       string `json:"first_name"       validate:"required,max=100"`
	LastName        string `json:"last_name"        validate:"required,max=100"`
	MobileNumber    string `json:"mobile_number"    validate:"required,max=20"`
	ReservationDate string `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	ReservationTime string `json:"reservation_time" validate:"required,datetime=15:04"`
	People          int    `json:"people"           validate:"required,min=1"`
	Status          string `json:"status"           validate:"omitempty,eq=booked"`
}

func (c *CreateReservationRequest) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.MobileNumber = strings.TrimSpace(c.MobileNumber)
	c.ReservationDate = strings.TrimSpace(c.ReservationDate)
	c.ReservationTime = strings.TrimSpace(c.ReservationTime)
}

func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	date, err := time.Parse(constant.ReservationDateFormat, c.ReservationDate)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to parse reservation_date: %w", err)
	}

	now := timezone.Now()

	return model.Reservation{
		ID:              uuid.NewString(),
		FirstName:       strings.TrimSpace(c.FirstName),
		LastName:        strings.TrimSpace(c.LastName),
		MobileNumber:    strings.TrimSpace(c.MobileNumber),
		ReservationDate: date,
		ReservationTime: c.ReservationTime,
		People:          c.People,
		Status:          model.StatusBooked,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateReservationStatusRequest struct {
	Status model.Status `db:"status" json:"status" validate:"required,oneof=booked seated finished cancelled"`
}

// ListReservationsQuery holds the optional filters of the list endpoint.
// When both are set, mobile_number wins.
type ListReservationsQuery struct {
	Date         string `json:"date"          validate:"omitempty,datetime=2006-01-02"`
	MobileNumber string `json:"mobile_number" validate:"omitempty,max=20"`
}

func (q *ListReservationsQuery) Normalize() {
	q.Date = strings.TrimSpace(q.Date)
	q.MobileNumber = strings.TrimSpace(q.MobileNumber)
}

func (q ListReservationsQuery) Filter() gDto.FilterGroup {
	if q.MobileNumber != "" {
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldMobileNumber,
					Operator: gDto.FilterOperatorLike,
					Value:    strings.TrimSpace(q.MobileNumber),
					Table:    model.TableName,
				},
			},
		}
	}

	if q.Date != "" {
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldReservationDate,
					Operator: gDto.FilterOperatorEq,
					Value:    q.Date,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorNotIn,
					Value:    []string{model.StatusFinished.String(), model.StatusCancelled.String()},
					Table:    model.TableName,
				},
			},
		}
	}

	return gDto.FilterGroup{}
}

// SortBy is reservation_time for a single day and date then time otherwise.
func (q ListReservationsQuery) SortBy() string {
	if q.MobileNumber == "" && q.Date != "" {
		return model.FieldReservationTime
	}

	return model.FieldReservationDate + " " + gDto.SortDirAsc + ", " + model.FieldReservationTime
}

type ReservationResponse struct {
	ReservationID   string `json:"reservation_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MobileNumber    string `json:"mobile_number"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	People          int    `json:"people"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ReservationID = m.ID
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.MobileNumber = m.MobileNumber
	r.ReservationDate = m.ReservationDate.Format(constant.ReservationDateFormat)
	r.ReservationTime = clockTime(m.ReservationTime)
	r.People = m.People
	r.Status = m.Status.String()
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, 0, len(models))

	for _, m := range models {
		var r ReservationResponse
		r.FromModel(m)

		res = append(res, r)
	}

	return res
}

// clockTime trims the seconds PostgreSQL adds to TIME values.
func clockTime(value string) string {
	if len(value) > len(constant.ReservationTimeFormat) {
		return value[:len(constant.ReservationTimeFormat)]
	}

	return value
}
