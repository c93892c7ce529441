package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/internal/domains/feedback/model/dto"
	"courtside/internal/domains/feedback/service"
	"courtside/shared/constant"
	"courtside/shared/validator"
	"courtside/transport/http/response"
)

type Handler struct {
	service service.Feedback
	otel    otel.Otel
}

func New(service service.Feedback, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/feedback", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitFeedback)
	})
}

// SubmitFeedback forwards a contact-form submission.
// @Summary Submit feedback
// @Description Submit a contact-form message to the booking platform.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.SubmitFeedbackRequest true "Submit Feedback Request"
// @Success 201 {object} dto.SubmitFeedbackResponse "Feedback submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/feedback [post]
func (handler *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitFeedback")
	defer scope.End()

	req := dto.SubmitFeedbackRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit feedback")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Feedback submitted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
