package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"resto/config"
	"resto/infras/kafka"
	"resto/infras/otel"
	"resto/internal/domains/reservation/model"
	"resto/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

// StatusChanged is published once a status change has been committed.
type StatusChanged struct {
	ReservationID string       `json:"reservation_id"`
	TableID       string       `json:"table_id,omitempty"`
	From          model.Status `json:"from"`
	To            model.Status `json:"to"`
	OccurredAt    time.Time    `json:"occurred_at"`
}

type Publisher interface {
	StatusChanged(ctx context.Context, evt StatusChanged)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

// StatusChanged never fails the caller. Delivery errors are logged and traced.
func (p *publisherImpl) StatusChanged(ctx context.Context, evt StatusChanged) {
	if !p.cfg.Events.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".StatusChanged")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"reservation.id": evt.ReservationID,
		"status.from":    evt.From,
		"status.to":      evt.To,
	})

	err := p.client.SendMessages(ctx, p.cfg.Events.Topic, kafka.Message{
		Key:   evt.ReservationID,
		Value: evt,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", evt.ReservationID).Msg("failed to publish reservation status change")
	}
}
