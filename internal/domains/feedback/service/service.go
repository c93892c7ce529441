package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"courtside/infras/otel"
	"courtside/infras/upstream"
	"courtside/internal/domains/feedback/model/dto"
	"courtside/shared/constant"
	"courtside/shared/validator"
)

type Feedback interface {
	Submit(ctx context.Context, req dto.SubmitFeedbackRequest) (dto.SubmitFeedbackResponse, error)
}

type serviceImpl struct {
	backend upstream.Client
	otel    otel.Otel
}

func New(backend upstream.Client, ot otel.Otel) Feedback {
	return &serviceImpl{
		backend: backend,
		otel:    ot,
	}
}

// Submit validates the contact form and forwards it. Feedback is fire and
// forget on the backend side, so there is nothing to cache or invalidate.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitFeedbackRequest) (res dto.SubmitFeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	err = s.backend.SubmitFeedback(ctx, upstream.FeedbackPayload{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg(constant.MsgErrorFeedback)

		return res, err
	}

	return dto.SubmitFeedbackResponse{Message: constant.MsgFeedbackSubmitted}, nil
}
