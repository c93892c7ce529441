package tracking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/internal/domains/tracking/service"
	"courtside/shared/constant"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Tracking
	otel    otel.Otel
}

func New(service service.Tracking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/track/{code}", handler.TrackBooking)
		routerGroup.Delete("/cancel/{code}", handler.CancelBooking)
	})
}

// TrackBooking looks a booking up by its tracking code.
// @Summary Track a booking
// @Description Look a guest booking up by its 8-character tracking code, with its derived lifecycle status.
// @Tags Tracking
// @Produce json
// @Param code path string true "Tracking code"
// @Success 200 {object} dto.TrackBookingResponse "Tracked booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/track/{code} [get]
func (handler *Handler) TrackBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackBooking")
	defer scope.End()

	code := chi.URLParam(r, constant.RequestParamCode)

	booking, err := handler.service.Track(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to track booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking tracked successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a booking by its tracking code.
// @Summary Cancel a booking
// @Description Cancel a guest booking by its tracking code. A later lookup of the same code reports not found.
// @Tags Tracking
// @Produce json
// @Param code path string true "Tracking code"
// @Success 200 {object} dto.CancelBookingResponse "Cancellation confirmation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/cancel/{code} [delete]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	code := chi.URLParam(r, constant.RequestParamCode)

	res, err := handler.service.Cancel(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithJSON(w, http.StatusOK, res)
}
