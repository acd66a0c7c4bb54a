package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Table=MockTableService

import (
	"context"
	"fmt"
	"resto/config"
	"resto/infras/otel"
	"resto/infras/postgres"
	"resto/internal/domains/reservation/event"
	reservationModel "resto/internal/domains/reservation/model"
	reservationRepository "resto/internal/domains/reservation/repository"
	"resto/internal/domains/table/guard"
	"resto/internal/domains/table/model"
	"resto/internal/domains/table/model/dto"
	"resto/internal/domains/table/repository"
	"resto/shared"
	"resto/shared/cache"
	"resto/shared/constant"
	gDto "resto/shared/dto"
	"resto/shared/failure"
	"resto/shared/timezone"
	"resto/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var sortableColumns = []string{model.FieldTableName, model.FieldCapacity}

type Table interface {
	Create(ctx context.Context, req dto.CreateTableRequest) (dto.TableResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.TableResponse, error)
	Seat(ctx context.Context, id string, req dto.SeatTableRequest) (dto.TableResponse, error)
	Finish(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Table
	reservationRepo reservationRepository.Reservation
	tx              postgres.Transactor
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
	events          event.Publisher
}

func New(
	repo repository.Table,
	reservationRepo reservationRepository.Reservation,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	events event.Publisher,
) Table {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		tx:              tx,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
		events:          events,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	table := req.ToModel(user)

	if err = s.repo.Insert(ctx, table); err != nil {
		log.Error().Err(err).Msg("failed to create table")

		return res, fmt.Errorf("failed to create table: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.CacheKeyGetAll)

	res.FromModel(table)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.Sanitize(sortableColumns, model.FieldTableName, gDto.SortDirAsc)

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetAll, params, gDto.FilterGroup{})

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for tables")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return nil, fmt.Errorf("failed to get tables: %w", err)
	}

	res = dto.FromModels(models)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save tables to cache")
	}

	return res, nil
}

// Seat assigns a reservation to a table and marks it seated. Both rows are
// locked, table first, for the whole check-and-write.
func (s *serviceImpl) Seat(ctx context.Context, id string, req dto.SeatTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Seat")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		seated   model.Table
		previous reservationModel.Status
	)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		table, err := s.tableExists(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := validator.ValidateStruct(&req); err != nil {
			return err //nolint:wrapcheck
		}

		reservation, err := s.reservationExists(ctx, tx, req.ReservationID)
		if err != nil {
			return err
		}

		if err := guard.Seat(table, reservation); err != nil {
			return err //nolint:wrapcheck
		}

		now := timezone.Now()

		tableFields := map[string]any{
			model.FieldReservationID: reservation.ID,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}
		if err := s.repo.UpdateTx(ctx, tx, tableFields, shared.FilterByID(table.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to seat table: %w", err)
		}

		if err := s.setReservationStatus(ctx, tx, reservation.ID, reservationModel.StatusSeated, user); err != nil {
			return err
		}

		previous = reservation.Status
		seated = table
		seated.ReservationID = &reservation.ID
		seated.ModifiedAt = now
		seated.ModifiedBy = user

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("table_id", id).Msg("failed to seat table")

		return res, err
	}

	s.invalidate(ctx, *seated.ReservationID)

	s.events.StatusChanged(ctx, event.StatusChanged{
		ReservationID: *seated.ReservationID,
		TableID:       seated.ID,
		From:          previous,
		To:            reservationModel.StatusSeated,
		OccurredAt:    timezone.Now(),
	})

	res.FromModel(seated)

	return res, nil
}

// Finish frees the table and marks its reservation finished in one transaction.
func (s *serviceImpl) Finish(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Finish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var reservationID string

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		table, err := s.tableExists(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := guard.Finish(table); err != nil {
			return err //nolint:wrapcheck
		}

		reservationID = *table.ReservationID

		tableFields := map[string]any{
			model.FieldReservationID: nil,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}
		if err := s.repo.UpdateTx(ctx, tx, tableFields, shared.FilterByID(table.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}

		return s.setReservationStatus(ctx, tx, reservationID, reservationModel.StatusFinished, user)
	})
	if err != nil {
		log.Error().Err(err).Str("table_id", id).Msg("failed to finish table")

		return err
	}

	s.invalidate(ctx, reservationID)

	s.events.StatusChanged(ctx, event.StatusChanged{
		ReservationID: reservationID,
		TableID:       id,
		From:          reservationModel.StatusSeated,
		To:            reservationModel.StatusFinished,
		OccurredAt:    timezone.Now(),
	})

	return nil
}

func (s *serviceImpl) tableExists(ctx context.Context, tx *sqlx.Tx, id string) (model.Table, error) {
	table, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return table, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == "" {
		return table, failure.EntityNotFound(model.DisplayName, id) //nolint:wrapcheck
	}

	return table, nil
}

func (s *serviceImpl) reservationExists(ctx context.Context, tx *sqlx.Tx, id string) (reservationModel.Reservation, error) {
	filter := shared.FilterByID(id, reservationModel.FieldID, reservationModel.TableName)

	reservation, err := s.reservationRepo.GetForUpdateTx(ctx, tx, filter)
	if err != nil {
		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return reservation, failure.EntityNotFound(reservationModel.DisplayName, id) //nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) setReservationStatus(ctx context.Context, tx *sqlx.Tx, id string, status reservationModel.Status, user string) error {
	fields := map[string]any{
		reservationModel.FieldStatus: status,
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     user,
	}

	filter := shared.FilterByID(id, reservationModel.FieldID, reservationModel.TableName)
	if err := s.reservationRepo.UpdateTx(ctx, tx, fields, filter); err != nil {
		return fmt.Errorf("failed to set reservation status to %s: %w", status, err)
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, reservationID string) {
	shared.InvalidateCaches(ctx, s.cache, model.CacheKeyGetAll)
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(reservationModel.CacheKeyGet, reservationID))
	shared.InvalidateCaches(ctx, s.cache, reservationModel.CacheKeyGetAll)
}
