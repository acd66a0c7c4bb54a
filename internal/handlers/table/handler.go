package table

import (
	"net/http"
	"resto/infras/otel"
	"resto/internal/domains/table/model/dto"
	"resto/internal/domains/table/service"
	"resto/shared/constant"
	gDto "resto/shared/dto"
	"resto/shared/validator"
	"resto/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Table
	otel    otel.Otel
}

func New(service service.Table, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTable)
		routerGroup.Get("/", handler.GetTables)
		routerGroup.Put("/{"+constant.RequestParamTableID+"}/seat", handler.SeatTable)
		routerGroup.Delete("/{"+constant.RequestParamTableID+"}/seat", handler.FinishTable)
	})
}

// CreateTable handles the creation of a new table.
// @Summary Create a table
// @Tags Table
// @Accept json
// @Produce json
// @Param request body response.Data[dto.CreateTableRequest] true "Table details"
// @Success 201 {object} response.Data[dto.TableResponse] "Created table"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /tables [post]
// @Security APIKeyAuth
func (handler *Handler) CreateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	var req dto.CreateTableRequest

	if err := validator.ValidateEnvelope(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid table request")

		response.WithError(w, err)

		return
	}

	table, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table created " + table.TableID)

	response.WithJSON(w, http.StatusCreated, table)
}

// GetTables lists every table.
// @Summary List tables
// @Description Ordered by table_name unless sort_by picks capacity.
// @Tags Table
// @Produce json
// @Param sort_by query string false "table_name or capacity"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[[]dto.TableResponse] "Tables"
// @Failure 500 {object} response.Error
// @Router /tables [get]
// @Security APIKeyAuth
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	tables, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tables)
}

// SeatTable seats a reservation at a table.
// @Summary Seat a reservation
// @Description The table must be free and large enough, and the reservation must be booked.
// @Tags Table
// @Accept json
// @Produce json
// @Param tableId path string true "Table ID"
// @Param request body response.Data[dto.SeatTableRequest] true "Reservation to seat"
// @Success 200 {object} response.Data[dto.TableResponse] "Occupied table"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /tables/{tableId}/seat [put]
// @Security APIKeyAuth
func (handler *Handler) SeatTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SeatTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamTableID)

	// validated by the service once the table is known to exist
	var req dto.SeatTableRequest

	if err := validator.DecodeEnvelope(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	table, err := handler.service.Seat(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table_id", id).Msg("failed to seat table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + req.ReservationID + " seated at table " + id)

	response.WithJSON(w, http.StatusOK, table)
}

// FinishTable frees a table and finishes its reservation.
// @Summary Finish a table
// @Tags Table
// @Produce json
// @Param tableId path string true "Table ID"
// @Success 200 {object} response.Data[any] "Table freed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /tables/{tableId}/seat [delete]
// @Security APIKeyAuth
func (handler *Handler) FinishTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FinishTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamTableID)

	if err := handler.service.Finish(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table_id", id).Msg("failed to finish table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table " + id + " finished")

	response.WithJSON(w, http.StatusOK, struct{}{})
}
