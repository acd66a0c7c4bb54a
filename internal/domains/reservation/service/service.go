package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"
	"resto/config"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/internal/domains/reservation/event"
	"resto/internal/domains/reservation/model"
	"resto/internal/domains/reservation/model/dto"
	"resto/internal/domains/reservation/repository"
	"resto/shared"
	"resto/shared/cache"
	"resto/shared/constant"
	gDto "resto/shared/dto"
	"resto/shared/failure"
	"resto/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = model.CacheKeyGet
	cacheGetAllReservation = model.CacheKeyGetAll
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, query dto.ListReservationsQuery) ([]dto.ReservationResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo   repository.Reservation
	tx     postgres.Transactor
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	events event.Publisher
}

func New(
	repo repository.Reservation,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	events event.Publisher,
) Reservation {
	return &serviceImpl{
		repo:   repo,
		tx:     tx,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		events: events,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReservation)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, query dto.ListReservationsQuery) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: query.SortBy(), SortDir: gDto.SortDirAsc}
	filter := query.Filter()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	res = dto.FromModels(models)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save reservations to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return res, failure.EntityNotFound(model.DisplayName, id) //nolint:wrapcheck
	}

	res.FromModel(reservation)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save reservation to cache")
	}

	return res, nil
}

// UpdateStatus covers the transitions a host makes by hand. Seating and
// finishing go through the table endpoints so the table stays consistent.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.Status.IsValid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown status %q", req.Status)) //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		reservation model.Reservation
		previous    model.Status
	)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		found, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get reservation: %w", err)
		}

		if found.ID == "" {
			return failure.EntityNotFound(model.DisplayName, id) //nolint:wrapcheck
		}

		if err := checkStatusUpdate(found.Status, req.Status); err != nil {
			return err
		}

		fields := shared.TransformFields(req, user)
		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update reservation status: %w", err)
		}

		reservation = found
		previous = found.Status
		reservation.Status = req.Status
		reservation.ModifiedAt, _ = fields[constant.FieldModifiedAt].(time.Time)
		reservation.ModifiedBy = user

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to update reservation status")

		return res, err
	}

	s.invalidate(ctx, id)

	s.events.StatusChanged(ctx, event.StatusChanged{
		ReservationID: reservation.ID,
		From:          previous,
		To:            reservation.Status,
		OccurredAt:    timezone.Now(),
	})

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheGetReservation, id))
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReservation)
}

func checkStatusUpdate(current, next model.Status) error {
	if next == model.StatusSeated || next == model.StatusFinished {
		return failure.BadRequestFromString(fmt.Sprintf("status %s is set by the table seat endpoints", next)) //nolint:wrapcheck
	}

	if !current.CanTransitionTo(next) {
		return failure.BadRequestFromString(fmt.Sprintf("reservation status cannot change from %s to %s", current, next)) //nolint:wrapcheck
	}

	return nil
}
