package reservation

import (
	"net/http"
	"resto/infras/otel"
	"resto/internal/domains/reservation/model/dto"
	"resto/internal/domains/reservation/service"
	"resto/shared/constant"
	"resto/shared/validator"
	"resto/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{"+constant.RequestParamReservationID+"}", handler.GetReservation)
		routerGroup.Put("/{"+constant.RequestParamReservationID+"}/status", handler.UpdateReservationStatus)
	})
}

// CreateReservation handles the creation of a new reservation.
// @Summary Create a reservation
// @Description Create a booked reservation for a party.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body response.Data[dto.CreateReservationRequest] true "Reservation details"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Created reservation"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations [post]
// @Security APIKeyAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest

	if err := validator.ValidateEnvelope(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid reservation request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created " + reservation.ReservationID)

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservations lists reservations for a date or a mobile number.
// @Summary List reservations
// @Description Without filters every reservation is returned. With date, finished and cancelled ones are hidden and the list is ordered by time. mobile_number matches partially and takes precedence over date.
// @Tags Reservation
// @Produce json
// @Param date query string false "Reservation date (YYYY-MM-DD)"
// @Param mobile_number query string false "Full or partial mobile number"
// @Success 200 {object} response.Data[[]dto.ReservationResponse] "Reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations [get]
// @Security APIKeyAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	query := dto.ListReservationsQuery{
		Date:         r.URL.Query().Get(constant.RequestParamDate),
		MobileNumber: r.URL.Query().Get(constant.RequestParamMobileNumber),
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	reservations, err := handler.service.GetAll(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservation retrieves a reservation by its ID.
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param reservationId path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations/{reservationId} [get]
// @Security APIKeyAuth
func (handler *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamReservationID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservationStatus moves a reservation to another status.
// @Summary Update reservation status
// @Description Only booked to cancelled is accepted here. Seating and finishing go through /tables/{tableId}/seat.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param reservationId path string true "Reservation ID"
// @Param request body response.Data[dto.UpdateReservationStatusRequest] true "New status"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Updated reservation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservations/{reservationId}/status [put]
// @Security APIKeyAuth
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamReservationID)

	var req dto.UpdateReservationStatusRequest

	if err := validator.ValidateEnvelope(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid reservation status request")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + id + " is now " + reservation.Status)

	response.WithJSON(w, http.StatusOK, reservation)
}
