package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resto/config"
	"resto/infras/kafka"
	kafkaMocks "resto/infras/kafka/mocks"
	otelMocks "resto/infras/otel/mocks"
	"resto/internal/domains/reservation/event"
	"resto/internal/domains/reservation/model"
)

func TestPublisher_StatusChanged(t *testing.T) {
	evt := event.StatusChanged{
		ReservationID: "r-1",
		TableID:       "t-1",
		From:          model.StatusBooked,
		To:            model.StatusSeated,
		OccurredAt:    time.Date(2030, 1, 15, 19, 30, 0, 0, time.UTC),
	}

	t.Run("disabled publisher sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		cfg := &config.Config{}

		event.New(client, cfg, otelMocks.NewOtel()).StatusChanged(context.Background(), evt)
	})

	t.Run("sends the event keyed by reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		cfg := &config.Config{}
		cfg.Events.Enable = true
		cfg.Events.Topic = "reservation-events"

		client.EXPECT().
			SendMessages(gomock.Any(), "reservation-events", gomock.Any()).
			DoAndReturn(func(_ context.Context, topic string, messages ...kafka.Message) error {
				require.Len(t, messages, 1)
				assert.Equal(t, "r-1", messages[0].Key)

				msg, err := messages[0].ToKafkaMessage(topic)
				require.NoError(t, err)

				var body map[string]any
				require.NoError(t, json.Unmarshal(msg.Value, &body))
				assert.Equal(t, "booked", body["from"])
				assert.Equal(t, "seated", body["to"])
				assert.Equal(t, "t-1", body["table_id"])

				return nil
			})

		event.New(client, cfg, otelMocks.NewOtel()).StatusChanged(context.Background(), evt)
	})

	t.Run("delivery failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		cfg := &config.Config{}
		cfg.Events.Enable = true

		client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

		assert.NotPanics(t, func() {
			event.New(client, cfg, otelMocks.NewOtel()).StatusChanged(context.Background(), evt)
		})
	})
}
