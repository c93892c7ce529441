package geo

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/internal/domains/venue/service"
	"courtside/shared/constant"
	"courtside/shared/failure"
	sharedGeo "courtside/shared/geo"
	"courtside/shared/validator"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Venue
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Venue, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/geo", func(routerGroup chi.Router) {
		routerGroup.Get("/distance", handler.GetDistance)
		routerGroup.Get("/options", handler.GetOptions)
		routerGroup.Post("/failure", handler.MapFailure)
	})
}

// FailureRequest carries a browser geolocation error code. Zero and unknown
// codes are accepted and map to the generic message.
type FailureRequest struct {
	Code int `json:"code"`
}

type FailureResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetDistance computes the great-circle distance between two points.
// @Summary Compute distance
// @Description Great-circle distance in kilometers between two coordinates.
// @Tags Geo
// @Produce json
// @Param from_lat query number true "Origin latitude"
// @Param from_lon query number true "Origin longitude"
// @Param to_lat query number true "Destination latitude"
// @Param to_lon query number true "Destination longitude"
// @Success 200 {object} dto.DistanceResponse "Distance in kilometers"
// @Failure 400 {object} response.Error
// @Router /v1/geo/distance [get]
func (handler *Handler) GetDistance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDistance")
	defer scope.End()

	coords, err := parseCoordinates(r, "from_lat", "from_lon", "to_lat", "to_lon")
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse coordinates")

		response.WithError(w, err)

		return
	}

	res := handler.service.Distance(ctx, coords[0], coords[1], coords[2], coords[3])

	response.WithJSON(w, http.StatusOK, res)
}

// GetOptions returns the recommended position-acquisition policy.
// @Summary Get acquisition options
// @Description Position-request options clients should pass to the browser geolocation API.
// @Tags Geo
// @Produce json
// @Success 200 {object} geo.AcquisitionOptions "Acquisition options"
// @Router /v1/geo/options [get]
func (handler *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOptions")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, sharedGeo.Options(handler.cfg))
}

// MapFailure translates a geolocation error code into its user-facing message.
// @Summary Map a geolocation failure
// @Description Translate a browser geolocation error code into the message to show the user.
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body FailureRequest true "Geolocation error code"
// @Success 200 {object} FailureResponse "Mapped failure message"
// @Failure 400 {object} response.Error
// @Router /v1/geo/failure [post]
func (handler *Handler) MapFailure(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MapFailure")
	defer scope.End()

	req := FailureRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, FailureResponse{
		Code:    req.Code,
		Message: sharedGeo.FailureMessage(req.Code),
	})
}

func parseCoordinates(r *http.Request, params ...string) ([]float64, error) {
	values := make([]float64, len(params))

	for i, param := range params {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			return nil, failure.InvalidCoordinates
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, failure.InvalidCoordinates
		}

		values[i] = value
	}

	return values, nil
}
