package upstream

//go:generate go run go.uber.org/mock/mockgen -source=./upstream.go -destination=./mocks/upstream_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	trackingModel "courtside/internal/domains/tracking/model"
	venueModel "courtside/internal/domains/venue/model"
	"courtside/shared/constant"
	"courtside/shared/failure"
)

// RatingPayload is the rating body forwarded to the backend.
type RatingPayload struct {
	FutsalID   int64   `json:"futsal_id"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment,omitempty"`
	RaterToken string  `json:"rater_token"`
}

// Rating is the backend's rating record.
type Rating struct {
	ID       int64   `json:"id"`
	FutsalID int64   `json:"futsal_id"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment,omitempty"`
}

// FeedbackPayload is the feedback body forwarded to the backend.
type FeedbackPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// Client is the REST surface of the external booking backend consumed by this
// gateway. Every method is terminal on failure: no retries, no backoff.
type Client interface {
	Venues(ctx context.Context) ([]venueModel.Venue, error)
	SpecialPrices(ctx context.Context, futsalID int64) ([]venueModel.SpecialPrice, error)
	EffectivePrice(ctx context.Context, futsalID int64, date string) (float64, error)
	TrackBooking(ctx context.Context, trackingCode string) (trackingModel.TrackedBooking, error)
	CancelBooking(ctx context.Context, trackingCode string) error
	CreateRating(ctx context.Context, payload RatingPayload) (Rating, error)
	UpdateRating(ctx context.Context, id int64, payload RatingPayload) error
	DeleteRating(ctx context.Context, id int64) error
	SubmitFeedback(ctx context.Context, payload FeedbackPayload) error
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	otel    otel.Otel
}

// New builds the HTTP client for the booking backend using the configured
// base URL and request timeout.
func New(cfg *config.Config, ot otel.Otel) Client {
	return &httpClient{
		baseURL: cfg.Upstream.BaseURL,
		apiKey:  cfg.Upstream.APIKey,
		client: &http.Client{
			Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

func (c *httpClient) Venues(ctx context.Context) (venues []venueModel.Venue, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Venues")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodGet, "/api/futsals", nil, &venues, venueModel.EntityName)

	return venues, err
}

func (c *httpClient) SpecialPrices(ctx context.Context, futsalID int64) (prices []venueModel.SpecialPrice, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SpecialPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	path := fmt.Sprintf("/api/special-prices/%d", futsalID)
	err = c.do(ctx, http.MethodGet, path, nil, &prices, "special prices")

	return prices, err
}

func (c *httpClient) EffectivePrice(ctx context.Context, futsalID int64, date string) (price float64, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".EffectivePrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	res := struct {
		EffectivePrice float64 `json:"effectivePrice"`
	}{}

	path := fmt.Sprintf("/api/special-prices/price/%d/%s", futsalID, date)
	if err = c.do(ctx, http.MethodGet, path, nil, &res, "effective price"); err != nil {
		return 0, err
	}

	return res.EffectivePrice, nil
}

func (c *httpClient) TrackBooking(ctx context.Context, trackingCode string) (booking trackingModel.TrackedBooking, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".TrackBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	path := "/api/bookings/track/" + trackingCode
	err = c.do(ctx, http.MethodGet, path, nil, &booking, trackingModel.EntityName)

	return booking, err
}

func (c *httpClient) CancelBooking(ctx context.Context, trackingCode string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CancelBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.do(ctx, http.MethodDelete, "/api/bookings/cancel/"+trackingCode, nil, nil, trackingModel.EntityName)
}

func (c *httpClient) CreateRating(ctx context.Context, payload RatingPayload) (rating Rating, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateRating")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = c.do(ctx, http.MethodPost, "/api/ratings", payload, &rating, "rating")

	return rating, err
}

func (c *httpClient) UpdateRating(ctx context.Context, id int64, payload RatingPayload) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".UpdateRating")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/ratings/%d", id), payload, nil, "rating")
}

func (c *httpClient) DeleteRating(ctx context.Context, id int64) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".DeleteRating")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/ratings/%d", id), nil, nil, "rating")
}

func (c *httpClient) SubmitFeedback(ctx context.Context, payload FeedbackPayload) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SubmitFeedback")
	defer scope.End()
	defer scope.TraceIfError(err)

	return c.do(ctx, http.MethodPost, "/api/feedback", payload, nil, "feedback")
}

// do performs a single request against the backend. 404 maps to a typed
// not-found failure so callers can fold it into their "Booking not found."
// style messaging; any other non-2xx or transport error maps to an upstream
// failure.
func (c *httpClient) do(ctx context.Context, method, path string, body, out any, entityName string) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	if c.apiKey != "" {
		req.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)
	}

	res, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")

		return failure.UpstreamUnavailable("booking backend unreachable") //nolint:wrapcheck
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return failure.NotFound(entityName + " not found") //nolint:wrapcheck
	case res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices:
		log.Error().Int("status", res.StatusCode).Str("method", method).Str("path", path).Msg("upstream returned an error status")

		return failure.UpstreamUnavailable(fmt.Sprintf("booking backend returned status %d", res.StatusCode)) //nolint:wrapcheck
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}

	return nil
}
