package dto

import (
	"resto/internal/domains/table/model"
	gDto "resto/shared/dto"
	gModel "resto/shared/model"
	"resto/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateTableRequest struct {
	TableName string `json:"table_name" validate:"required,min=2,max=100"`
	Capacity  int    `json:"capacity"   validate:"required,min=1"`
}

func (c *CreateTableRequest) Normalize() {
	c.TableName = strings.TrimSpace(c.TableName)
}

func (c *CreateTableRequest) ToModel(user string) model.Table {
	now := timezone.Now()

	return model.Table{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(c.TableName),
		Capacity: c.Capacity,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SeatTableRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
}

func (s *SeatTableRequest) Normalize() {
	s.ReservationID = strings.TrimSpace(s.ReservationID)
}

type TableResponse struct {
	TableID       string  `json:"table_id"`
	TableName     string  `json:"table_name"`
	Capacity      int     `json:"capacity"`
	ReservationID *string `json:"reservation_id"`
	gDto.Metadata
}

func (t *TableResponse) FromModel(m model.Table) {
	t.TableID = m.ID
	t.TableName = m.Name
	t.Capacity = m.Capacity
	t.ReservationID = nil

	if m.Occupied() {
		id := *m.ReservationID
		t.ReservationID = &id
	}

	t.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Table) []TableResponse {
	res := make([]TableResponse, 0, len(models))

	for _, m := range models {
		var t TableResponse
		t.FromModel(m)

		res = append(res, t)
	}

	return res
}
