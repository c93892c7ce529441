package rating

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/internal/domains/rating/model/dto"
	"courtside/internal/domains/rating/service"
	"courtside/shared/constant"
	"courtside/shared/failure"
	"courtside/shared/validator"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Rating
	otel    otel.Otel
}

func New(service service.Rating, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ratings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRating)
		routerGroup.Put("/{id}", handler.UpdateRating)
		routerGroup.Delete("/{id}", handler.DeleteRating)
	})
}

// CreateRating submits a new venue rating.
// @Summary Submit a rating
// @Description Submit an anonymous venue rating. The client is identified by the X-Client-Key header.
// @Tags Rating
// @Accept json
// @Produce json
// @Param X-Client-Key header string true "Anonymous client key"
// @Param request body dto.CreateRatingRequest true "Create Rating Request"
// @Success 201 {object} dto.RatingResponse "Rating submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/ratings [post]
func (handler *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRating")
	defer scope.End()

	req := dto.CreateRatingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, r.Header.Get(constant.RequestHeaderClientKey), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rating")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rating created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateRating revises an existing rating.
// @Summary Update a rating
// @Description Revise a rating previously submitted with the same client key.
// @Tags Rating
// @Accept json
// @Produce json
// @Param X-Client-Key header string true "Anonymous client key"
// @Param id path int true "Rating ID"
// @Param request body dto.UpdateRatingRequest true "Update Rating Request"
// @Success 200 {object} dto.RatingResponse "Rating updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/ratings/{id} [put]
func (handler *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRating")
	defer scope.End()

	id, err := parseRatingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.UpdateRatingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, r.Header.Get(constant.RequestHeaderClientKey), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rating")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rating updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteRating removes a rating.
// @Summary Delete a rating
// @Description Delete a rating and forget the client's rater token.
// @Tags Rating
// @Produce json
// @Param X-Client-Key header string true "Anonymous client key"
// @Param id path int true "Rating ID"
// @Success 200 {object} dto.RatingResponse "Rating deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/ratings/{id} [delete]
func (handler *Handler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRating")
	defer scope.End()

	id, err := parseRatingID(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Delete(ctx, r.Header.Get(constant.RequestHeaderClientKey), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rating")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rating deleted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

func parseRatingID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("invalid rating id") //nolint:wrapcheck
	}

	return id, nil
}
